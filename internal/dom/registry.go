package dom

import (
	"lyra/internal/reactive"
)

// BoundValue is what a data-* property binding resolves to: a current value
// plus the watch capability. Conformance to this interface is the signal
// check; no structural duck-typing on arbitrary shapes.
type BoundValue interface {
	reactive.Source
	Value() any
}

type signalBinding[T any] struct {
	s *reactive.Signal[T]
}

func (b signalBinding[T]) Value() any {
	return b.s.Get()
}

func (b signalBinding[T]) Watch(fn func()) func() {
	return b.s.Watch(fn)
}

// Bind adapts a typed signal for registration.
func Bind[T any](s *reactive.Signal[T]) BoundValue {
	return signalBinding[T]{s: s}
}

type entry struct {
	handler Handler
	signal  BoundValue
	value   any
	isValue bool
}

// Registry maps the string keys written in data-* attributes to handlers,
// signals, and plain values. Components register what their markup refers
// to; mount never dereferences anything outside the registry.
type Registry struct {
	entries map[string]entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Handle registers an event handler under name.
func (r *Registry) Handle(name string, h Handler) *Registry {
	e := r.entries[name]
	e.handler = h
	r.entries[name] = e
	return r
}

// Signal registers a reactive binding under name.
func (r *Registry) Signal(name string, v BoundValue) *Registry {
	e := r.entries[name]
	e.signal = v
	r.entries[name] = e
	return r
}

// Set registers a plain (non-reactive) value under name, read by
// data-class-* bindings.
func (r *Registry) Set(name string, v any) *Registry {
	e := r.entries[name]
	e.value = v
	e.isValue = true
	r.entries[name] = e
	return r
}

// The registry makes open property-bag traversal impossible, but lookups
// against prototype-pollution keys are still rejected outright.
func unsafeName(name string) bool {
	switch name {
	case "__proto__", "constructor", "prototype":
		return true
	}
	return false
}

func (r *Registry) handlerFor(name string) (Handler, bool) {
	if r == nil || unsafeName(name) {
		return nil, false
	}
	e, ok := r.entries[name]
	if !ok || e.handler == nil {
		return nil, false
	}
	return e.handler, true
}

func (r *Registry) signalFor(name string) (BoundValue, bool) {
	if r == nil || unsafeName(name) {
		return nil, false
	}
	e, ok := r.entries[name]
	if !ok || e.signal == nil {
		return nil, false
	}
	return e.signal, true
}

func (r *Registry) valueFor(name string) (any, bool) {
	if r == nil || unsafeName(name) {
		return nil, false
	}
	e, ok := r.entries[name]
	if !ok || !e.isValue {
		return nil, false
	}
	return e.value, true
}
