package gui

// Event is a multicast callback list.
type Event[T any] struct {
	listeners []func(T)
}

// AddListener registers fn. Nil callbacks are ignored.
func (e *Event[T]) AddListener(fn func(T)) {
	if fn == nil {
		return
	}
	e.listeners = append(e.listeners, fn)
}

func (e *Event[T]) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls every listener in registration order.
func (e *Event[T]) Invoke(arg T) {
	for _, l := range e.listeners {
		l(arg)
	}
}

func (e *Event[T]) ListenerCount() int {
	return len(e.listeners)
}

// FocusChange describes keyboard focus moving between nodes. Zero means no
// node.
type FocusChange struct {
	From, To ID
}
