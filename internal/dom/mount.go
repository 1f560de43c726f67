package dom

import (
	"strings"
)

const (
	onAttrPrefix    = "data-on-"
	classAttrPrefix = "data-class-"
)

// bindableProps are the four recognized property bindings and the data-*
// attribute carrying each one's registry key.
var bindableProps = []struct {
	attr string
	prop string
}{
	{attr: "data-value", prop: "value"},
	{attr: "data-checked", prop: "checked"},
	{attr: "data-disabled", prop: "disabled"},
	{attr: "data-aria-label", prop: "ariaLabel"},
}

// Mount walks the subtree rooted at root (inclusive) and wires every
// data-on-*, data-class-*, and recognized data-<property> attribute against
// scope (element-local scopes take precedence). The element list is
// snapshotted before any mutation, so class/attribute changes made while
// binding cannot disturb the traversal.
//
// Mounting the same root again without running the first cleanup stacks a
// second, independent set of bindings (duplicate listeners included); call
// cleanup first when that is not wanted.
//
// The returned cleanup removes every event listener and signal subscription
// this mount installed. It is idempotent: later calls find an empty set and
// do nothing.
func Mount(root *Element, scope *Registry) (cleanup func()) {
	var undo []func()

	for _, el := range snapshot(root) {
		for _, attr := range el.Attrs() {
			switch {
			case strings.HasPrefix(attr.Name, onAttrPrefix):
				event := attr.Name[len(onAttrPrefix):]
				if event == "" {
					continue
				}
				if h, ok := resolveHandler(el, scope, attr.Value); ok {
					undo = append(undo, el.AddEventListener(event, h))
				}
			case strings.HasPrefix(attr.Name, classAttrPrefix):
				name := attr.Name[len(classAttrPrefix):]
				if name == "" {
					continue
				}
				bindClass(el, scope, name, attr.Value)
			default:
				if prop, ok := bindableProp(attr.Name); ok {
					if u := bindProperty(el, scope, prop, attr.Value); u != nil {
						undo = append(undo, u)
					}
				}
			}
		}
	}

	return func() {
		for _, u := range undo {
			u()
		}
		undo = nil
	}
}

// snapshot collects root and every descendant, depth-first, before any
// binding mutates the tree.
func snapshot(root *Element) []*Element {
	if root == nil {
		return nil
	}
	out := []*Element{root}
	for i := 0; i < len(out); i++ {
		out = append(out, out[i].children...)
	}
	return out
}

func bindableProp(attrName string) (string, bool) {
	for _, bp := range bindableProps {
		if bp.attr == attrName {
			return bp.prop, true
		}
	}
	return "", false
}

// resolveHandler looks the key up on the element's own scope first, then on
// the mount scope.
func resolveHandler(el *Element, scope *Registry, key string) (Handler, bool) {
	if h, ok := el.scope.handlerFor(key); ok {
		return h, true
	}
	return scope.handlerFor(key)
}

// bindClass applies a one-shot boolean class binding. Non-boolean values are
// ignored: no class mutation, no error.
func bindClass(el *Element, scope *Registry, class, key string) {
	v, ok := el.scope.valueFor(key)
	if !ok {
		v, ok = scope.valueFor(key)
	}
	if !ok {
		return
	}
	on, isBool := v.(bool)
	if !isBool {
		return
	}
	if on {
		el.AddClass(class)
	} else {
		el.RemoveClass(class)
	}
}

// bindProperty wires a signal to a DOM property: apply the current value
// immediately, then re-apply on every notification. Non-signal registry
// entries are ignored. Returns the unsubscribe, or nil when nothing bound.
func bindProperty(el *Element, scope *Registry, prop, key string) func() {
	sig, ok := el.scope.signalFor(key)
	if !ok {
		sig, ok = scope.signalFor(key)
	}
	if !ok {
		return nil
	}

	applyProperty(el, prop, sig.Value())
	return sig.Watch(func() {
		applyProperty(el, prop, sig.Value())
	})
}
