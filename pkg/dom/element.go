package dom

import (
	"fmt"
	"strings"
)

// Element is an element node: a tag with properties, tree attributes,
// class list, inline style, dataset, listeners, and children.
//
// Properties and tree attributes are distinct namespaces, as in the DOM:
// properties hold arbitrary values assigned onto the node object (id,
// htmlFor, tabIndex, value, ...), tree attributes are the string map
// that serializes into markup (role, aria-*, ...).
type Element struct {
	tag string

	props   map[string]any
	attrs   map[string]string
	classes ClassList
	style   Style
	dataset Dataset

	listeners []listenerEntry
	nextLID   int

	children []Node
	parent   *Element
}

// newElement is called by Document after tag validation.
func newElement(tag string) *Element {
	return &Element{tag: tag}
}

// Kind implements Node.
func (e *Element) Kind() NodeKind { return KindElement }

// Parent implements Node.
func (e *Element) Parent() *Element { return e.parent }

func (e *Element) setParent(p *Element) { e.parent = p }

// TagName returns the element's tag name as given at creation.
func (e *Element) TagName() string { return e.tag }

// Properties

// Prop returns the named property and whether it is set.
func (e *Element) Prop(name string) (any, bool) {
	v, ok := e.props[name]
	return v, ok
}

// SetProp assigns a property on the element. Assigning again with the
// same name overwrites the previous value.
func (e *Element) SetProp(name string, value any) {
	if e.props == nil {
		e.props = make(map[string]any)
	}
	e.props[name] = value
}

// RemoveProp deletes a property.
func (e *Element) RemoveProp(name string) {
	delete(e.props, name)
}

// PropNames returns the names of all set properties, unordered.
func (e *Element) PropNames() []string {
	names := make([]string, 0, len(e.props))
	for name := range e.props {
		names = append(names, name)
	}
	return names
}

// Tree attributes

// Attr returns the named tree attribute and whether it is set.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// SetAttr sets a tree attribute.
func (e *Element) SetAttr(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

// RemoveAttr deletes a tree attribute.
func (e *Element) RemoveAttr(name string) {
	delete(e.attrs, name)
}

// AttrNames returns the names of all set tree attributes, unordered.
func (e *Element) AttrNames() []string {
	names := make([]string, 0, len(e.attrs))
	for name := range e.attrs {
		names = append(names, name)
	}
	return names
}

// Classes returns the element's class list for mutation.
func (e *Element) Classes() *ClassList { return &e.classes }

// ClassName returns the class attribute as a single space-joined string.
func (e *Element) ClassName() string { return e.classes.String() }

// SetClassName replaces the entire class attribute, discarding any
// previously set classes. The string is split on whitespace.
func (e *Element) SetClassName(s string) {
	e.classes.entries = e.classes.entries[:0]
	for _, c := range strings.Fields(s) {
		e.classes.Add(c)
	}
}

// StyleMap returns the element's inline style for mutation.
func (e *Element) StyleMap() *Style { return &e.style }

// DataSet returns the element's custom-data map for mutation.
func (e *Element) DataSet() *Dataset { return &e.dataset }

// Children

// Children returns the element's children in document order. The
// returned slice is a copy; mutating it does not affect the tree.
func (e *Element) Children() []Node {
	out := make([]Node, len(e.children))
	copy(out, e.children)
	return out
}

// ChildCount returns the number of children.
func (e *Element) ChildCount() int { return len(e.children) }

// FirstChild returns the first child, or nil.
func (e *Element) FirstChild() Node {
	if len(e.children) == 0 {
		return nil
	}
	return e.children[0]
}

// LastChild returns the last child, or nil.
func (e *Element) LastChild() Node {
	if len(e.children) == 0 {
		return nil
	}
	return e.children[len(e.children)-1]
}

// AppendChild appends child as the last child of e. A child already
// attached elsewhere is detached from its old parent first.
func (e *Element) AppendChild(child Node) {
	if IsNil(child) {
		panic("dom: AppendChild called with nil node")
	}
	if p := child.Parent(); p != nil {
		p.RemoveChild(child) //nolint:errcheck // child is known attached
	}
	child.setParent(e)
	e.children = append(e.children, child)
}

// InsertBefore inserts child immediately before ref. A nil ref appends.
// Returns an error if ref is not a child of e.
func (e *Element) InsertBefore(child, ref Node) error {
	if IsNil(child) {
		panic("dom: InsertBefore called with nil node")
	}
	if IsNil(ref) {
		e.AppendChild(child)
		return nil
	}
	idx := e.indexOf(ref)
	if idx < 0 {
		return fmt.Errorf("dom: reference node is not a child of <%s>", e.tag)
	}
	if p := child.Parent(); p != nil {
		p.RemoveChild(child) //nolint:errcheck
		// Removal may have shifted the reference position.
		if idx = e.indexOf(ref); idx < 0 {
			return fmt.Errorf("dom: reference node is not a child of <%s>", e.tag)
		}
	}
	child.setParent(e)
	e.children = append(e.children, nil)
	copy(e.children[idx+1:], e.children[idx:])
	e.children[idx] = child
	return nil
}

// RemoveChild detaches child from e. Returns an error if child is not a
// child of e.
func (e *Element) RemoveChild(child Node) error {
	idx := e.indexOf(child)
	if idx < 0 {
		return fmt.Errorf("dom: node to remove is not a child of <%s>", e.tag)
	}
	child.setParent(nil)
	e.children = append(e.children[:idx], e.children[idx+1:]...)
	return nil
}

func (e *Element) indexOf(n Node) int {
	for i, c := range e.children {
		if c == n {
			return i
		}
	}
	return -1
}

// TextContent returns the concatenated data of all descendant text nodes
// in document order.
func (e *Element) TextContent() string {
	var b strings.Builder
	e.appendTextContent(&b)
	return b.String()
}

func (e *Element) appendTextContent(b *strings.Builder) {
	for _, c := range e.children {
		switch n := c.(type) {
		case *Text:
			b.WriteString(n.Data())
		case *Element:
			n.appendTextContent(b)
		}
	}
}
