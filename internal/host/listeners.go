package host

type listener[T any] struct {
	fn func(T)
}

// listeners is an ordered subscriber list that tolerates unsubscribing
// while an event is being delivered
type listeners[T any] struct {
	items []*listener[T]
}

func (l *listeners[T]) add(fn func(T)) func() {
	entry := &listener[T]{fn: fn}
	l.items = append(l.items, entry)
	return func() {
		entry.fn = nil
		for i, other := range l.items {
			if other == entry {
				l.items = append(l.items[:i], l.items[i+1:]...)
				return
			}
		}
	}
}

func (l *listeners[T]) emit(v T) {
	snapshot := append([]*listener[T](nil), l.items...)
	for _, entry := range snapshot {
		if entry.fn != nil {
			entry.fn(v)
		}
	}
}

func (l *listeners[T]) len() int {
	return len(l.items)
}
