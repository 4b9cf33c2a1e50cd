package el

import "github.com/hewgo/hew/pkg/dom"

// On returns a constructor hook that registers fn as a listener for the
// named event on the element under construction:
//
//	el.Button("Save", el.OnClick(func(ev *dom.Event) { ... }))
func On(name string, fn dom.Listener) Hook {
	return func(node *dom.Element) {
		node.AddEventListener(name, fn)
	}
}

// Mouse events

func OnClick(fn dom.Listener) Hook       { return On("click", fn) }
func OnDblClick(fn dom.Listener) Hook    { return On("dblclick", fn) }
func OnMouseDown(fn dom.Listener) Hook   { return On("mousedown", fn) }
func OnMouseUp(fn dom.Listener) Hook     { return On("mouseup", fn) }
func OnMouseMove(fn dom.Listener) Hook   { return On("mousemove", fn) }
func OnMouseEnter(fn dom.Listener) Hook  { return On("mouseenter", fn) }
func OnMouseLeave(fn dom.Listener) Hook  { return On("mouseleave", fn) }
func OnContextMenu(fn dom.Listener) Hook { return On("contextmenu", fn) }
func OnWheel(fn dom.Listener) Hook       { return On("wheel", fn) }

// Keyboard events

func OnKeyDown(fn dom.Listener) Hook { return On("keydown", fn) }
func OnKeyUp(fn dom.Listener) Hook   { return On("keyup", fn) }

// Form events

func OnInput(fn dom.Listener) Hook  { return On("input", fn) }
func OnChange(fn dom.Listener) Hook { return On("change", fn) }
func OnSubmit(fn dom.Listener) Hook { return On("submit", fn) }
func OnFocus(fn dom.Listener) Hook  { return On("focus", fn) }
func OnBlur(fn dom.Listener) Hook   { return On("blur", fn) }

// Misc events

func OnLoad(fn dom.Listener) Hook   { return On("load", fn) }
func OnScroll(fn dom.Listener) Hook { return On("scroll", fn) }
