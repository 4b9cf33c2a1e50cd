package el

import (
	"github.com/hewgo/hew/pkg/dom"
)

// Props is a property bag: a plain key/value mapping applied onto an
// element. Keys are independent and later bags overwrite earlier ones
// for the same key (last-write-wins). See applyProp for the handful of
// special-cased keys.
type Props map[string]any

// Hook is a constructor-level callback. The classifier invokes it
// immediately and synchronously with the element under construction;
// its position among the arguments matters, since it observes the
// partially built element.
type Hook = func(*dom.Element)

// New creates an element for tag and populates it from args, scanned
// strictly left to right. Each argument is routed by shape:
//
//  1. Props or map[string]any: applied as a property bag.
//  2. func(*dom.Element): invoked immediately with the element.
//  3. anything else: appended as child content (see AppendValue).
//
// Mixed argument kinds interleave in argument order: later property
// writes overwrite earlier ones, and a hook sees exactly the properties
// and children applied before it.
//
// New does not validate tag names itself; it panics with the host
// document's error (wrapping dom.ErrInvalidTagName) when the document
// rejects the tag. A panic out of a hook or a child producer likewise
// propagates to the caller unmodified, leaving the element partially
// constructed.
func New(tag string, args ...any) *dom.Element {
	return NewIn(dom.Default(), tag, args...)
}

// NewIn is New against an explicit host document.
func NewIn(doc *dom.Document, tag string, args ...any) *dom.Element {
	node, err := doc.CreateElement(tag)
	if err != nil {
		panic(err)
	}
	for _, arg := range args {
		apply(node, arg)
	}
	return node
}

// apply routes one constructor argument. Classification precedence:
// property bag, then unary callback, then child content.
func apply(node *dom.Element, arg any) {
	switch v := arg.(type) {
	case Props:
		applyProps(node, v)
	case map[string]any:
		applyProps(node, Props(v))
	case func(*dom.Element):
		v(node)
	default:
		AppendValue(node, arg)
	}
}

// CustomElement creates an element with a custom tag name.
func CustomElement(tag string, args ...any) *dom.Element {
	return New(tag, args...)
}
