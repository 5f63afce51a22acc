package showcase

import (
	"sort"
	"time"
)

// Scheduler is a frame-driven timer queue. Time only moves when Advance is
// called (Scene.Step does this once per frame), so every callback runs on the
// game loop goroutine and tests can step time exactly.
type Scheduler struct {
	now    time.Duration
	timers []*timer
	seq    uint64
}

type timer struct {
	due      time.Duration
	interval time.Duration // > 0 for repeating timers
	seq      uint64
	fn       func()
	stopped  bool
}

// TimerHandle cancels a scheduled callback.
type TimerHandle struct {
	t *timer
	s *Scheduler
}

// NewScheduler creates an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of timers waiting to fire.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// AfterFunc runs fn once, d after the current time. A non-positive d fires on
// the next Advance.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) TimerHandle {
	return s.add(d, 0, fn)
}

// Every runs fn every interval until the handle is stopped. The first call
// happens one interval from now.
func (s *Scheduler) Every(interval time.Duration, fn func()) TimerHandle {
	if interval <= 0 {
		panic("showcase: Every requires a positive interval")
	}
	return s.add(interval, interval, fn)
}

func (s *Scheduler) add(d, interval time.Duration, fn func()) TimerHandle {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &timer{due: s.now + d, interval: interval, seq: s.seq, fn: fn}
	s.timers = append(s.timers, t)
	return TimerHandle{t: t, s: s}
}

// Advance moves time forward by dt and runs every timer that came due, in due
// order. While a callback runs, Now reports that timer's due time, so timers
// scheduled from a callback are relative to it and fire within the same
// Advance if they fall before the target time. Now ends at the target.
func (s *Scheduler) Advance(dt time.Duration) {
	target := s.now
	if dt > 0 {
		target += dt
	}
	for {
		t := s.popDue(target)
		if t == nil {
			break
		}
		if t.due > s.now {
			s.now = t.due
		}
		if t.interval > 0 {
			t.due += t.interval
			s.timers = append(s.timers, t)
		} else {
			t.stopped = true
		}
		t.fn()
	}
	s.now = target
}

// popDue removes and returns the earliest non-stopped timer due at or before
// limit.
func (s *Scheduler) popDue(limit time.Duration) *timer {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = live
	if len(s.timers) == 0 {
		return nil
	}
	sort.SliceStable(s.timers, func(i, j int) bool {
		if s.timers[i].due != s.timers[j].due {
			return s.timers[i].due < s.timers[j].due
		}
		return s.timers[i].seq < s.timers[j].seq
	})
	t := s.timers[0]
	if t.due > limit {
		return nil
	}
	copy(s.timers, s.timers[1:])
	s.timers[len(s.timers)-1] = nil
	s.timers = s.timers[:len(s.timers)-1]
	return t
}

// Stop cancels the timer. It reports whether the call prevented a future run.
// Stopping a zero handle or an already stopped timer returns false.
func (h TimerHandle) Stop() bool {
	if h.t == nil || h.t.stopped {
		return false
	}
	h.t.stopped = true
	return true
}

// Active reports whether the timer will still fire.
func (h TimerHandle) Active() bool {
	return h.t != nil && !h.t.stopped
}
