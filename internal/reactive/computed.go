package reactive

// Computed is a derived signal: its value is recomputed synchronously
// whenever any dependency notifies, and the re-set obeys the same
// suppression and batching rules as any other write.
type Computed[T any] struct {
	*Signal[T]
	unwatch []func()
}

// NewComputed evaluates fn once for the initial value and re-evaluates on
// every dependency change. Nil dependencies are skipped.
func NewComputed[T any](sched *Scheduler, fn func() T, deps ...Source) *Computed[T] {
	c := &Computed[T]{
		Signal: NewSignalOn(sched, fn()),
	}
	for _, dep := range deps {
		if dep == nil {
			continue
		}
		c.unwatch = append(c.unwatch, dep.Watch(func() {
			c.Set(fn())
		}))
	}
	return c
}

// Dispose detaches the computed from its dependencies. The cached value
// stays readable.
func (c *Computed[T]) Dispose() {
	for _, u := range c.unwatch {
		u()
	}
	c.unwatch = nil
}
