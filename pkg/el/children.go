package el

import (
	"fmt"
	"reflect"

	"github.com/hewgo/hew/pkg/dom"
)

// Elementable is the capability of a value to produce a tree node on
// demand. The normalizer appends the produced node directly. Elementable
// takes priority over fmt.Stringer when a value has both.
type Elementable interface {
	Node() dom.Node
}

// BeforeAppender is the before-append hook capability. The normalizer
// invokes it with the parent element before any content for the value is
// appended.
type BeforeAppender interface {
	BeforeAppend(parent *dom.Element)
}

// AfterAppender is the after-append hook capability. The normalizer
// invokes it with the parent element after the value's content has been
// appended.
type AfterAppender interface {
	AfterAppend(parent *dom.Element)
}

// Frag is an ordered sequence of child values, appended in place and
// flattened depth-first. Sequences nest arbitrarily.
type Frag []any

// Group collects children into a Frag.
func Group(children ...any) Frag { return Frag(children) }

// NilComment is the text of the placeholder comment appended for an
// absent child value. Absence is never silently dropped.
const NilComment = "nil"

// AppendValue normalizes value into child content of parent. It is
// total: every value maps to some appended content. Per value, the step
// order is fixed: the before-append hook (if the value implements
// BeforeAppender), then content dispatch, then the after-append hook
// (AfterAppender). A sequence's hooks fire once for the sequence as a
// whole, independently of each element's own hooks.
//
// Content dispatch, in priority order:
//
//   - an ordered sequence (Frag, []any, any slice or array) recurses
//     over its elements in order;
//   - a dom node (element, text, or comment) is appended directly;
//   - nil appends a placeholder comment reading "nil";
//   - an Elementable's produced node is appended;
//   - a fmt.Stringer appends a text node of its String();
//   - anything else appends a text node of its fmt.Sprint form.
func AppendValue(parent *dom.Element, value any) {
	if h, ok := value.(BeforeAppender); ok {
		h.BeforeAppend(parent)
	}
	appendContent(parent, value)
	if h, ok := value.(AfterAppender); ok {
		h.AfterAppend(parent)
	}
}

func appendContent(parent *dom.Element, value any) {
	switch v := value.(type) {
	case nil:
		parent.AppendChild(dom.NewComment(NilComment))
	case Frag:
		for _, c := range v {
			AppendValue(parent, c)
		}
	case []any:
		for _, c := range v {
			AppendValue(parent, c)
		}
	case []dom.Node:
		for _, c := range v {
			AppendValue(parent, c)
		}
	case []*dom.Element:
		for _, c := range v {
			AppendValue(parent, c)
		}
	case dom.Node:
		if dom.IsNil(v) {
			parent.AppendChild(dom.NewComment(NilComment))
			return
		}
		parent.AppendChild(v)
	case string:
		parent.AppendChild(dom.NewText(v))
	case []byte:
		parent.AppendChild(dom.NewText(string(v)))
	default:
		appendOther(parent, value)
	}
}

// appendOther handles named sequence types, capabilities, and the
// stringify fallback.
func appendOther(parent *dom.Element, value any) {
	// Named slice and array types are still sequences. Their own hook
	// capabilities were already handled by AppendValue.
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		for i := 0; i < rv.Len(); i++ {
			AppendValue(parent, rv.Index(i).Interface())
		}
		return
	}

	if e, ok := value.(Elementable); ok {
		node := e.Node()
		if dom.IsNil(node) {
			parent.AppendChild(dom.NewComment(NilComment))
			return
		}
		parent.AppendChild(node)
		return
	}
	if s, ok := value.(fmt.Stringer); ok {
		parent.AppendChild(dom.NewText(s.String()))
		return
	}
	parent.AppendChild(dom.NewText(fmt.Sprint(value)))
}
