package el

import (
	"testing"

	"github.com/hewgo/hew/pkg/dom"
)

// item produces its own span node and also has a string form, to pin the
// capability priority.
type item struct {
	label string
}

func (i item) Node() dom.Node {
	return New("span", i.label)
}

func (i item) String() string { return "stringer:" + i.label }

// nilItem produces no node.
type nilItem struct{}

func (nilItem) Node() dom.Node { return nil }

// tracked records append-lifecycle hook calls and the child count seen at
// each point.
type tracked struct {
	node   *dom.Element
	events *[]string
}

func (v tracked) Node() dom.Node { return v.node }

func (v tracked) BeforeAppend(parent *dom.Element) {
	*v.events = append(*v.events, "before")
	if parent.ChildCount() != 0 {
		*v.events = append(*v.events, "early-child")
	}
}

func (v tracked) AfterAppend(parent *dom.Element) {
	*v.events = append(*v.events, "after")
	if parent.LastChild() != dom.Node(v.node) {
		*v.events = append(*v.events, "missing-child")
	}
}

func kinds(e *dom.Element) []dom.NodeKind {
	var out []dom.NodeKind
	for _, c := range e.Children() {
		out = append(out, c.Kind())
	}
	return out
}

func TestAppendValue(t *testing.T) {
	t.Run("string becomes a text node", func(t *testing.T) {
		node := New("p", "Hello")
		text, ok := node.FirstChild().(*dom.Text)
		if !ok || text.Data() != "Hello" {
			t.Errorf("first child = %v, want text Hello", node.FirstChild())
		}
	})

	t.Run("byte slice becomes a text node", func(t *testing.T) {
		node := New("p", []byte("raw"))
		text, ok := node.FirstChild().(*dom.Text)
		if !ok || text.Data() != "raw" {
			t.Errorf("first child = %v, want text raw", node.FirstChild())
		}
	})

	t.Run("numbers stringify", func(t *testing.T) {
		node := New("p", 42, 3.5, true)
		want := []string{"42", "3.5", "true"}
		for i, c := range node.Children() {
			if c.(*dom.Text).Data() != want[i] {
				t.Errorf("child %d = %q, want %q", i, c.(*dom.Text).Data(), want[i])
			}
		}
	})

	t.Run("nil leaves a placeholder comment", func(t *testing.T) {
		node := New("div", nil)
		comment, ok := node.FirstChild().(*dom.Comment)
		if !ok || comment.Data() != NilComment {
			t.Errorf("first child = %v, want comment %q", node.FirstChild(), NilComment)
		}
	})

	t.Run("sequence with nil keeps position", func(t *testing.T) {
		childA := New("span")
		node := New("div", []any{childA, nil})

		kids := node.Children()
		if len(kids) != 2 {
			t.Fatalf("ChildCount = %d, want 2", len(kids))
		}
		if kids[0] != dom.Node(childA) {
			t.Error("first child is not childA")
		}
		comment, ok := kids[1].(*dom.Comment)
		if !ok || comment.Data() != NilComment {
			t.Errorf("second child = %v, want comment %q", kids[1], NilComment)
		}
	})

	t.Run("typed nil node leaves a placeholder comment", func(t *testing.T) {
		var missing *dom.Element
		node := New("div", missing)
		comment, ok := node.FirstChild().(*dom.Comment)
		if !ok || comment.Data() != NilComment {
			t.Errorf("first child = %v, want comment %q", node.FirstChild(), NilComment)
		}
	})

	t.Run("nested sequences flatten depth-first", func(t *testing.T) {
		node := New("ul",
			Frag{
				New("li", "1"),
				Frag{New("li", "2"), New("li", "3")},
			},
			New("li", "4"),
		)
		if got := node.TextContent(); got != "1234" {
			t.Errorf("TextContent = %q, want 1234", got)
		}
	})

	t.Run("named slice types are sequences", func(t *testing.T) {
		type labels []string
		node := New("div", labels{"a", "b"})
		if got := kinds(node); len(got) != 2 || got[0] != dom.KindText || got[1] != dom.KindText {
			t.Errorf("children kinds = %v, want two text nodes", got)
		}
	})

	t.Run("array is a sequence", func(t *testing.T) {
		node := New("div", [2]string{"x", "y"})
		if node.TextContent() != "xy" {
			t.Errorf("TextContent = %q, want xy", node.TextContent())
		}
	})

	t.Run("element slice", func(t *testing.T) {
		items := []*dom.Element{New("li", "A"), New("li", "B")}
		node := New("ul", items)
		if node.ChildCount() != 2 {
			t.Fatalf("ChildCount = %d, want 2", node.ChildCount())
		}
	})

	t.Run("elementable wins over stringer", func(t *testing.T) {
		node := New("div", item{label: "x"})
		span, ok := node.FirstChild().(*dom.Element)
		if !ok || span.TagName() != "span" {
			t.Fatalf("first child = %v, want span element", node.FirstChild())
		}
		if span.TextContent() != "x" {
			t.Errorf("TextContent = %q, want x", span.TextContent())
		}
	})

	t.Run("elementable producing nil leaves a placeholder comment", func(t *testing.T) {
		node := New("div", nilItem{})
		comment, ok := node.FirstChild().(*dom.Comment)
		if !ok || comment.Data() != NilComment {
			t.Errorf("first child = %v, want comment %q", node.FirstChild(), NilComment)
		}
	})

	t.Run("detached nodes append directly", func(t *testing.T) {
		text := dom.NewText("t")
		comment := dom.NewComment("c")
		node := New("div", text, comment)
		kids := node.Children()
		if kids[0] != dom.Node(text) || kids[1] != dom.Node(comment) {
			t.Error("text and comment nodes not appended as given")
		}
	})
}

func TestAppendHooks(t *testing.T) {
	t.Run("before fires before attach, after fires after", func(t *testing.T) {
		var events []string
		v := tracked{node: New("span"), events: &events}

		parent := New("div", v)

		want := []string{"before", "after"}
		if len(events) != len(want) {
			t.Fatalf("events = %v, want %v", events, want)
		}
		for i := range want {
			if events[i] != want[i] {
				t.Fatalf("events = %v, want %v", events, want)
			}
		}
		if parent.ChildCount() != 1 {
			t.Errorf("ChildCount = %d, want 1", parent.ChildCount())
		}
	})

	t.Run("sequence hooks fire once for the whole sequence", func(t *testing.T) {
		hookedSeqBefore = 0
		node := New("div", hookedSeq{"a", "b", "c"})

		if hookedSeqBefore != 1 {
			t.Errorf("before hook calls = %d, want 1", hookedSeqBefore)
		}
		if node.ChildCount() != 3 {
			t.Errorf("ChildCount = %d, want 3", node.ChildCount())
		}
	})

	t.Run("hook panic aborts the append", func(t *testing.T) {
		parent := New("div")
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic from before hook")
			}
			if parent.ChildCount() != 0 {
				t.Errorf("ChildCount = %d, want 0 after aborted append", parent.ChildCount())
			}
		}()
		AppendValue(parent, panicky{})
	})
}

// hookedSeq is a named sequence type with its own before hook.
type hookedSeq []any

var hookedSeqBefore int

func (hookedSeq) BeforeAppend(*dom.Element) { hookedSeqBefore++ }

type panicky struct{}

func (panicky) BeforeAppend(*dom.Element) { panic("hook failure") }
