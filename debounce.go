package showcase

import "time"

// Debouncer collapses bursts of calls into one invocation of fn that runs
// once wait has elapsed since the last Call.
type Debouncer struct {
	sched   *Scheduler
	wait    time.Duration
	fn      func()
	pending TimerHandle
}

// Debounce returns a Debouncer that runs fn on s after a wait-long quiet period.
func Debounce(s *Scheduler, wait time.Duration, fn func()) *Debouncer {
	return &Debouncer{sched: s, wait: wait, fn: fn}
}

// Call restarts the quiet period. Only the last Call in a burst runs fn.
func (d *Debouncer) Call() {
	d.pending.Stop()
	d.pending = d.sched.AfterFunc(d.wait, d.fn)
}

// Stop cancels a pending invocation. It reports whether one was pending.
func (d *Debouncer) Stop() bool {
	return d.pending.Stop()
}

// Pending reports whether fn is scheduled to run.
func (d *Debouncer) Pending() bool {
	return d.pending.Active()
}
