package reactive

// Effect subscribes fn to every dependency and returns a disposer that
// unsubscribes from all of them. Dependencies lacking the Source capability
// (or nil) are silently skipped, not an error.
func Effect(fn func(), deps ...any) (dispose func()) {
	var unwatch []func()
	for _, dep := range deps {
		src, ok := dep.(Source)
		if !ok || src == nil {
			continue
		}
		unwatch = append(unwatch, src.Watch(fn))
	}
	return func() {
		for _, u := range unwatch {
			u()
		}
		unwatch = nil
	}
}
