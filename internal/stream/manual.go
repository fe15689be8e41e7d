package stream

import "time"

// ManualScheduler is a Scheduler driven by virtual time. Nothing fires
// until Advance is called, which makes timer-driven sequences
// deterministic in tests and headless runs.
type ManualScheduler struct {
	now    time.Duration
	nextID int
	timers []*manualTimer
}

type manualTimer struct {
	id       int
	period   time.Duration
	due      time.Duration
	fire     func()
	canceled bool
}

// NewManualScheduler creates a scheduler at virtual time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Every arms a repeating timer; its first tick is one period from now.
func (s *ManualScheduler) Every(interval time.Duration, fire func()) func() {
	period := Period(interval)
	s.nextID++
	t := &manualTimer{
		id:     s.nextID,
		period: period,
		due:    s.now + period,
		fire:   fire,
	}
	s.timers = append(s.timers, t)
	return func() {
		t.canceled = true
		s.compact()
	}
}

// Now returns the current virtual time.
func (s *ManualScheduler) Now() time.Duration {
	return s.now
}

// Active returns the number of armed timers.
func (s *ManualScheduler) Active() int {
	return len(s.timers)
}

// Advance moves virtual time forward by d, firing every tick that falls
// due on the way in due-time order. Ticks due at the same instant fire in
// the order their timers were armed. A fire callback may cancel or arm
// timers; the change is visible to the remaining ticks of this call.
// Advance returns the number of ticks fired.
func (s *ManualScheduler) Advance(d time.Duration) int {
	target := s.now + d
	fired := 0
	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}
		s.now = t.due
		t.due += t.period
		t.fire()
		fired++
	}
	s.now = target
	return fired
}

// AdvanceTicks fires exactly n ticks (or fewer if no timer is armed),
// moving virtual time to each tick in turn.
func (s *ManualScheduler) AdvanceTicks(n int) int {
	fired := 0
	for fired < n {
		t := s.nextDue(-1)
		if t == nil {
			break
		}
		s.now = t.due
		t.due += t.period
		t.fire()
		fired++
	}
	return fired
}

// nextDue returns the earliest armed timer due at or before limit.
// A negative limit means no limit.
func (s *ManualScheduler) nextDue(limit time.Duration) *manualTimer {
	var best *manualTimer
	for _, t := range s.timers {
		if t.canceled || (limit >= 0 && t.due > limit) {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.id < best.id) {
			best = t
		}
	}
	return best
}

func (s *ManualScheduler) compact() {
	kept := s.timers[:0]
	for _, t := range s.timers {
		if !t.canceled {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = kept
}
