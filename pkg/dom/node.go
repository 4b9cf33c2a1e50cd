package dom

// NodeKind is the node type discriminator.
type NodeKind uint8

const (
	KindElement NodeKind = iota // <div>, <button>, etc.
	KindText                    // Plain character data
	KindComment                 // <!-- ... -->
)

// String returns the string representation of the NodeKind.
func (k NodeKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComment:
		return "Comment"
	default:
		return "Unknown"
	}
}

// Node is a unit of the document tree: an element, a text node, or a
// comment. The set of implementations is closed; callers dispatch on the
// concrete type or on Kind().
type Node interface {
	Kind() NodeKind

	// Parent returns the element this node is currently attached to,
	// or nil for a detached node.
	Parent() *Element

	setParent(*Element)
}

// Text is a character-data node.
type Text struct {
	data   string
	parent *Element
}

// NewText creates a detached text node.
func NewText(data string) *Text {
	return &Text{data: data}
}

// Kind implements Node.
func (t *Text) Kind() NodeKind { return KindText }

// Parent implements Node.
func (t *Text) Parent() *Element { return t.parent }

func (t *Text) setParent(p *Element) { t.parent = p }

// Data returns the text content.
func (t *Text) Data() string { return t.data }

// SetData replaces the text content.
func (t *Text) SetData(data string) { t.data = data }

// Comment is a comment node.
type Comment struct {
	data   string
	parent *Element
}

// NewComment creates a detached comment node.
func NewComment(data string) *Comment {
	return &Comment{data: data}
}

// Kind implements Node.
func (c *Comment) Kind() NodeKind { return KindComment }

// Parent implements Node.
func (c *Comment) Parent() *Element { return c.parent }

func (c *Comment) setParent(p *Element) { c.parent = p }

// Data returns the comment text.
func (c *Comment) Data() string { return c.data }

// SetData replaces the comment text.
func (c *Comment) SetData(data string) { c.data = data }

// IsNil reports whether n is nil, including a typed nil carried inside the
// interface value.
func IsNil(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Element:
		return v == nil
	case *Text:
		return v == nil
	case *Comment:
		return v == nil
	default:
		return false
	}
}
