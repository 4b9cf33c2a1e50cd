package dom

// Event is delivered to listeners registered on an element. There is no
// capture, bubbling, or default-action machinery; dispatch invokes the
// target's own listeners synchronously in registration order.
type Event struct {
	Type   string
	Target *Element
	Data   any
}

// Listener handles a dispatched event.
type Listener func(*Event)

// ListenerHandle identifies a registered listener for removal.
type ListenerHandle int

type listenerEntry struct {
	typ string
	fn  Listener
	id  ListenerHandle
}

// AddEventListener registers fn for events of the given type and returns
// a handle for later removal.
func (e *Element) AddEventListener(typ string, fn Listener) ListenerHandle {
	e.nextLID++
	id := ListenerHandle(e.nextLID)
	e.listeners = append(e.listeners, listenerEntry{typ: typ, fn: fn, id: id})
	return id
}

// RemoveEventListener unregisters the listener identified by h.
func (e *Element) RemoveEventListener(h ListenerHandle) {
	for i, entry := range e.listeners {
		if entry.id == h {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

// ListenerCount returns the number of listeners registered for the given
// event type.
func (e *Element) ListenerCount(typ string) int {
	n := 0
	for _, entry := range e.listeners {
		if entry.typ == typ {
			n++
		}
	}
	return n
}

// DispatchEvent invokes the element's listeners for ev.Type in
// registration order. ev.Target is set to the element if unset.
func (e *Element) DispatchEvent(ev *Event) {
	if ev.Target == nil {
		ev.Target = e
	}
	// Snapshot so listeners may add or remove listeners mid-dispatch.
	entries := make([]listenerEntry, len(e.listeners))
	copy(entries, e.listeners)
	for _, entry := range entries {
		if entry.typ == ev.Type {
			entry.fn(ev)
		}
	}
}
