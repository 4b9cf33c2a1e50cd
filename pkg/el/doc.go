// Package el is hew's element-construction DSL.
//
// Every well-known HTML tag has a constructor that builds a real dom
// element immediately:
//
//	card := el.Div(
//		el.Props{"id": "card", "class": []string{"panel", "wide"}},
//		el.H2("Status"),
//		el.P("All systems nominal"),
//	)
//
// Constructor arguments are classified by shape, in order: a property
// bag (Props or map[string]any) is applied to the element, a
// func(*dom.Element) runs immediately with the element, and anything
// else is appended as child content. Child content is normalized
// recursively: nodes append directly, sequences flatten depth-first,
// nil leaves a placeholder comment, and other values stringify into
// text nodes. See New for the full contract.
package el
