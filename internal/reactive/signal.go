package reactive

import (
	"slices"
)

// Source is the subscribe capability dependencies expose to computed values,
// effects, and the DOM binder. Watch registers a change callback and returns
// its removal function.
type Source interface {
	Watch(fn func()) (unwatch func())
}

// Signal is a reactive value cell. Writes that do not change the value
// (under the cell's equality function) are no-ops: no listener runs, no
// state changes.
type Signal[T any] struct {
	sched *Scheduler
	value T
	equal func(a, b T) bool
	subs  []*subscription[T]
}

type subscription[T any] struct {
	fn func(T)
}

// NewSignal creates a cell on the Default scheduler.
func NewSignal[T any](initial T) *Signal[T] {
	return NewSignalOn(Default, initial)
}

// NewSignalOn creates a cell bound to sched.
func NewSignalOn[T any](sched *Scheduler, initial T) *Signal[T] {
	return &Signal[T]{
		sched: sched,
		value: initial,
		equal: SameValue[T],
	}
}

// WithEqual replaces the change detector and returns the signal.
func (s *Signal[T]) WithEqual(equal func(a, b T) bool) *Signal[T] {
	s.equal = equal
	return s
}

// Get returns the latest stored value.
func (s *Signal[T]) Get() T {
	return s.value
}

// Set stores v and notifies subscribers, unless v equals the current value.
// Outside a batch every listener runs synchronously with the new value;
// inside a batch each call is bound to v and queued, firing on the
// outermost batch's completion in write order.
func (s *Signal[T]) Set(v T) {
	if s.equal(s.value, v) {
		return
	}
	s.value = v

	// Snapshot so subscribes/unsubscribes from inside listeners do not
	// disturb this notification round.
	subs := slices.Clone(s.subs)
	if s.sched.Batching() {
		for _, sub := range subs {
			fn := sub.fn
			s.sched.enqueue(func() { fn(v) })
		}
		return
	}
	for _, sub := range subs {
		sub.fn(v)
	}
}

// Subscribe adds a listener and returns the closure removing exactly that
// listener. Calling the closure more than once is harmless.
func (s *Signal[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	sub := &subscription[T]{fn: fn}
	s.subs = append(s.subs, sub)
	return func() {
		for i, candidate := range s.subs {
			if candidate == sub {
				s.subs = slices.Delete(s.subs, i, i+1)
				return
			}
		}
	}
}

// Watch implements Source, dropping the value argument.
func (s *Signal[T]) Watch(fn func()) (unwatch func()) {
	return s.Subscribe(func(T) { fn() })
}
