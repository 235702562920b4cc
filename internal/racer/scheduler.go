package racer

// Scheduler arranges exactly one future invocation of fn.
// Hosts decide when: on the next display frame, after a timer, or on the
// next fixed-rate update.
type Scheduler interface {
	Schedule(fn func())
}

// SchedulerFunc adapts a plain function to the Scheduler interface.
type SchedulerFunc func(fn func())

// Schedule calls f(fn).
func (f SchedulerFunc) Schedule(fn func()) {
	f(fn)
}

// PendingScheduler holds at most one pending invocation until the host
// drains it. A newer Schedule replaces an older pending one.
type PendingScheduler struct {
	pending func()
}

// Schedule stores fn as the pending invocation.
func (s *PendingScheduler) Schedule(fn func()) {
	s.pending = fn
}

// Pending reports whether an invocation is waiting.
func (s *PendingScheduler) Pending() bool {
	return s.pending != nil
}

// Take removes and returns the pending invocation, or nil.
func (s *PendingScheduler) Take() func() {
	fn := s.pending
	s.pending = nil
	return fn
}

// RunPending runs the pending invocation, if any, and reports whether one ran.
// The invocation may schedule its successor; that one waits for the next call.
func (s *PendingScheduler) RunPending() bool {
	fn := s.Take()
	if fn == nil {
		return false
	}
	fn()
	return true
}
