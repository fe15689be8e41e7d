package stream

import "time"

// MinInterval is the shortest period a Scheduler arms a timer with.
// Callers may request shorter or non-positive intervals; they are raised to
// this value because a repeating timer needs a positive period.
const MinInterval = time.Millisecond

// Scheduler arms repeating timers whose ticks are delivered on the event
// loop that owns the sequence being driven.
type Scheduler interface {
	// Every invokes fire once per interval until cancel is called.
	// After cancel returns, fire is never invoked again, even for a tick
	// that was already due.
	Every(interval time.Duration, fire func()) (cancel func())
}

// Period returns the effective timer period for a requested interval.
func Period(interval time.Duration) time.Duration {
	if interval < MinInterval {
		return MinInterval
	}
	return interval
}

// Restartable keeps at most one timer armed: each Restart cancels the
// previous timer before arming the next one.
type Restartable struct {
	sched  Scheduler
	cancel func()
}

// NewRestartable creates a restartable timer on the given scheduler.
func NewRestartable(sched Scheduler) *Restartable {
	return &Restartable{sched: sched}
}

// Restart replaces the active timer with one firing every interval.
func (r *Restartable) Restart(interval time.Duration, fire func()) {
	r.Stop()
	r.cancel = r.sched.Every(interval, fire)
}

// Stop cancels the active timer, if any.
func (r *Restartable) Stop() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

// Active reports whether a timer is armed.
func (r *Restartable) Active() bool {
	return r.cancel != nil
}
