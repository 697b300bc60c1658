package kernel

import "github.com/gammazero/deque"

// Sema is a counting semaphore for cooperative tasks. It is a scheduling
// primitive, not a lock: there is no parallelism to exclude. Blocked tasks
// wait in LIFO order, so the most recently blocked task is released first;
// starvation under contention is possible. There is no priority
// inheritance.
type Sema struct {
	count       int8
	waiters     deque.Deque[*Task]
	initialized bool
}

// NewSema returns a semaphore with the given initial count.
func NewSema(initial int8) *Sema {
	s := new(Sema)
	s.Init(initial)
	return s
}

// Init prepares a caller-allocated semaphore, for embedding and static
// allocation.
func (s *Sema) Init(initial int8) {
	s.count = initial
	s.waiters.Clear()
	s.initialized = true
}

// Destroy drops the waiter queue. The waiting tasks themselves are not
// touched: destroying a semaphore that still has blocked waiters strands
// them, so don't.
func (s *Sema) Destroy() error {
	if !s.initialized {
		return ErrUninitialized
	}
	s.waiters.Clear()
	s.initialized = false
	return nil
}

// Wait decrements the count. If the count goes negative the task blocks:
// it is queued on the semaphore, its state becomes Blocked, and Wait
// reports true: the body must return immediately and re-invoke Wait with
// the same resume point on its next activation, which then falls through.
// With a positive count Wait reports false and the body continues.
//
// Wait must be called directly from a task body; it is a suspension point.
func (s *Sema) Wait(t *Task, at uint16) bool {
	if t.awoken {
		// Just released by Signal; the count already accounts for us.
		t.awoken = false
		return false
	}
	s.count--
	if s.count < 0 {
		t.state = StateBlocked
		t.resume = at
		s.waiters.PushFront(t)
		return true
	}
	return false
}

// Signal increments the count and readies the head waiter, if any. The
// released task does not preempt the signaller: it runs once the signaller
// reaches its own next suspension point. A signaller that wants the
// released task to run promptly should yield right after signalling.
func (s *Sema) Signal() {
	s.count++
	if s.waiters.Len() > 0 {
		t := s.waiters.PopFront()
		t.state = StateReady
		t.awoken = true
	}
}

// Count returns the current counter value. Negative values count blocked
// waiters.
func (s *Sema) Count() int8 { return s.count }

// Waiting returns the number of tasks blocked on the semaphore.
func (s *Sema) Waiting() int { return s.waiters.Len() }
