// Package dom provides the host-DOM side of the Lyra runtime: an in-memory
// element tree with the small surface the mount engine needs (ordered
// attributes, class list, properties, event listeners, native value
// semantics), a typed binding registry replacing open-ended property-bag
// lookup, and the Mount/cleanup protocol that wires compiled data-*
// attributes to live behavior.
package dom

import (
	"slices"
)

// Attr is one attribute on an element, in authored order.
type Attr struct {
	Name  string
	Value string
}

// Event is delivered to handlers attached via AddEventListener.
type Event struct {
	Type   string
	Target *Element
}

// Handler reacts to one dispatched event.
type Handler func(Event)

type listener struct {
	event string
	fn    Handler
}

// Element is an in-memory DOM element. Value-bearing tags (input, textarea,
// select) route "value" through a native field; everything else lands in the
// generic property map.
type Element struct {
	tag       string
	attrs     []Attr
	children  []*Element
	classes   []string
	props     map[string]any
	listeners []*listener
	scope     *Registry

	nativeValue string
}

// NewElement creates an element with the given tag and attributes.
func NewElement(tag string, attrs ...Attr) *Element {
	return &Element{
		tag:   tag,
		attrs: attrs,
		props: make(map[string]any),
	}
}

func (e *Element) TagName() string {
	return e.tag
}

// SetAttr replaces an existing attribute's value or appends a new one,
// preserving order.
func (e *Element) SetAttr(name, value string) *Element {
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			e.attrs[i].Value = value
			return e
		}
	}
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
	return e
}

// Attr returns the named attribute's value.
func (e *Element) Attr(name string) (string, bool) {
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			return e.attrs[i].Value, true
		}
	}
	return "", false
}

// Attrs returns the ordered attribute list. READONLY.
func (e *Element) Attrs() []Attr {
	return e.attrs
}

// Append adds child elements.
func (e *Element) Append(children ...*Element) *Element {
	e.children = append(e.children, children...)
	return e
}

// Children returns the child elements. READONLY.
func (e *Element) Children() []*Element {
	return e.children
}

// SetScope attaches an element-local binding registry consulted before the
// mount root's scope.
func (e *Element) SetScope(r *Registry) *Element {
	e.scope = r
	return e
}

// AddClass adds name to the class list if absent.
func (e *Element) AddClass(name string) {
	if !slices.Contains(e.classes, name) {
		e.classes = append(e.classes, name)
	}
}

// RemoveClass removes name from the class list.
func (e *Element) RemoveClass(name string) {
	if i := slices.Index(e.classes, name); i >= 0 {
		e.classes = slices.Delete(e.classes, i, i+1)
	}
}

// HasClass reports membership in the class list.
func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.classes, name)
}

// SetProperty sets a runtime property. "value" on a value-bearing element
// goes through the native setter instead.
func (e *Element) SetProperty(name string, v any) {
	e.props[name] = v
}

// Property reads a runtime property.
func (e *Element) Property(name string) (any, bool) {
	v, ok := e.props[name]
	return v, ok
}

// SetValue is the native value setter for input/textarea/select.
func (e *Element) SetValue(v string) {
	e.nativeValue = v
}

// Value reads the native value.
func (e *Element) Value() string {
	return e.nativeValue
}

// IsValueBearing reports whether the element has a native value slot.
func (e *Element) IsValueBearing() bool {
	switch e.tag {
	case "input", "textarea", "select":
		return true
	}
	return false
}

// AddEventListener attaches fn for the event type and returns its removal
// closure. Removal is identity-based and calling it twice is harmless.
func (e *Element) AddEventListener(event string, fn Handler) (remove func()) {
	l := &listener{event: event, fn: fn}
	e.listeners = append(e.listeners, l)
	return func() {
		if i := slices.Index(e.listeners, l); i >= 0 {
			e.listeners = slices.Delete(e.listeners, i, i+1)
		}
	}
}

// Dispatch fires every listener registered for the event type, in
// registration order.
func (e *Element) Dispatch(event string) {
	snapshot := slices.Clone(e.listeners)
	for _, l := range snapshot {
		if l.event == event {
			l.fn(Event{Type: event, Target: e})
		}
	}
}
