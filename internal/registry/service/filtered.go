package service

import "sync"

// Predicate selects the items a view shows.
type Predicate[T any] func(T) bool

// ShowAll is the default predicate of every view.
func ShowAll[T any](T) bool { return true }

// FilteredList is a read-only projection of one registry collection. It holds
// no items of its own: Items recomputes the projection from the source on
// every call and hands out a fresh slice.
type FilteredList[T any] struct {
	mu        sync.RWMutex
	source    func() []T
	predicate Predicate[T]
}

func newFilteredList[T any](source func() []T) *FilteredList[T] {
	return &FilteredList[T]{source: source, predicate: ShowAll[T]}
}

func (l *FilteredList[T]) Items() []T {
	l.mu.RLock()
	pred := l.predicate
	l.mu.RUnlock()

	all := l.source()
	out := make([]T, 0, len(all))
	for _, item := range all {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

func (l *FilteredList[T]) Len() int { return len(l.Items()) }

// SetPredicate replaces the active predicate. A nil predicate shows all.
func (l *FilteredList[T]) SetPredicate(pred Predicate[T]) {
	if pred == nil {
		pred = ShowAll[T]
	}
	l.mu.Lock()
	l.predicate = pred
	l.mu.Unlock()
}

// Reset swaps back to showing everything.
func (l *FilteredList[T]) Reset() { l.SetPredicate(nil) }
