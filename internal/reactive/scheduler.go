// Package reactive is the Lyra runtime: signal cells with same-value
// suppression, batched notification through an explicit Scheduler, derived
// values, and effects. Everything is single-threaded and synchronous; the
// only "concurrency" is reentrancy (nested batches, writes from inside
// listeners), which the queue discipline tolerates without losing,
// duplicating, or reordering notifications.
package reactive

// Scheduler owns the batch depth counter and the FIFO queue of pending
// listener invocations. Tests construct their own instances; application
// code usually goes through Default.
type Scheduler struct {
	depth    int
	queue    []func()
	flushing bool
}

// Default is the process-wide scheduler used by the package-level helpers.
var Default = NewScheduler()

// NewScheduler creates an independent scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Batch runs fn with notifications deferred. Writes inside fn queue their
// listener calls in write order; the queue flushes once, in FIFO order, when
// the outermost batch completes. Nested calls never flush early. A panic in
// fn still restores the depth counter (and flushes whatever was queued)
// before propagating.
func (s *Scheduler) Batch(fn func()) {
	s.depth++
	defer func() {
		s.depth--
		if s.depth == 0 {
			s.flush()
		}
	}()
	fn()
}

// Batching reports whether a batch is active.
func (s *Scheduler) Batching() bool {
	return s.depth > 0
}

func (s *Scheduler) enqueue(fn func()) {
	s.queue = append(s.queue, fn)
}

// flush drains the queue in FIFO order. Indexed iteration tolerates
// listeners appending more work mid-flush; the flushing flag keeps a batch
// opened by a flushed listener from draining the queue a second time.
func (s *Scheduler) flush() {
	if s.flushing {
		return
	}
	s.flushing = true
	defer func() { s.flushing = false }()

	for i := 0; i < len(s.queue); i++ {
		s.queue[i]()
	}
	s.queue = s.queue[:0]
}

// Batch defers notifications on the Default scheduler.
func Batch(fn func()) {
	Default.Batch(fn)
}
