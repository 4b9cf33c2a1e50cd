package el

import (
	"fmt"

	"github.com/hewgo/hew/pkg/dom"
)

// Text creates a detached text node.
func Text(content string) *dom.Text {
	return dom.NewText(content)
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *dom.Text {
	return Text(fmt.Sprintf(format, args...))
}

// Comment creates a detached comment node.
func Comment(content string) *dom.Comment {
	return dom.NewComment(content)
}

// If returns the value if condition is true, otherwise an empty
// sequence that appends nothing. Passing nil through instead would
// leave a placeholder comment, so conditional omission goes through If.
func If(condition bool, value any) any {
	if condition {
		return value
	}
	return Frag{}
}

// IfElse returns the first value if condition is true, the second
// otherwise.
func IfElse(condition bool, ifTrue, ifFalse any) any {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// Unless is the inverse of If.
func Unless(condition bool, value any) any {
	return If(!condition, value)
}

// When is like If but with lazy evaluation. The function is only called
// if condition is true.
func When(condition bool, fn func() any) any {
	if condition {
		return fn()
	}
	return Frag{}
}

// Range maps a slice to a sequence of child values.
func Range[T any](items []T, fn func(item T, index int) any) Frag {
	out := make(Frag, 0, len(items))
	for i, item := range items {
		out = append(out, fn(item, i))
	}
	return out
}

// Repeat creates n child values using the given function.
func Repeat(n int, fn func(i int) any) Frag {
	if n <= 0 {
		return nil
	}
	out := make(Frag, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, fn(i))
	}
	return out
}
