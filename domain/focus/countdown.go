package focus

import (
	"time"
)

const defaultSessionDuration = 25 * time.Minute

// Countdown tracks elapsed focus time against a configured total. It does not
// tick by itself; the owner feeds it wall-clock instants. Not safe for
// concurrent use.
type Countdown struct {
	status       TimerStatus
	total        time.Duration
	remaining    time.Duration
	accumulated  time.Duration
	runStartedAt time.Time
}

// NewCountdown returns an idle countdown over the given total duration.
// A non-positive total falls back to the default session length.
func NewCountdown(total time.Duration) *Countdown {
	if total <= 0 {
		total = defaultSessionDuration
	}
	return &Countdown{
		status:    TimerIdle,
		total:     total,
		remaining: total,
	}
}

func (c *Countdown) Status() TimerStatus { return c.status }

func (c *Countdown) Total() time.Duration { return c.total }

// Remaining returns the time left as of the last Start/Pause/Tick call.
func (c *Countdown) Remaining() time.Duration { return c.remaining }

// Elapsed returns the focused time counted so far.
func (c *Countdown) Elapsed() time.Duration { return c.total - c.remaining }

// Configure replaces the total duration. Only allowed while idle; any other
// state is a no-op.
func (c *Countdown) Configure(total time.Duration) {
	if c.status != TimerIdle || total <= 0 {
		return
	}
	c.total = total
	c.remaining = total
}

// Start begins or resumes the countdown at the given instant. It reports
// whether the timer actually started. A finished countdown must be stopped
// before it can start again.
func (c *Countdown) Start(now time.Time) bool {
	if c.status != TimerIdle && c.status != TimerPaused {
		return false
	}
	c.status = TimerRunning
	c.runStartedAt = now
	c.recompute(now)
	return true
}

// Pause freezes the countdown at the given instant. It reports whether the
// timer was running.
func (c *Countdown) Pause(now time.Time) bool {
	if c.status != TimerRunning {
		return false
	}
	c.accumulated += now.Sub(c.runStartedAt)
	c.status = TimerPaused
	c.recompute(now)
	return true
}

// Stop resets the countdown back to idle with the full total remaining.
func (c *Countdown) Stop() {
	c.status = TimerIdle
	c.accumulated = 0
	c.remaining = c.total
	c.runStartedAt = time.Time{}
}

// Tick recomputes the remaining time at the given instant and reports whether
// the countdown just finished.
func (c *Countdown) Tick(now time.Time) bool {
	if c.status != TimerRunning {
		return false
	}
	c.recompute(now)
	if c.remaining > 0 {
		return false
	}
	c.accumulated = c.total
	c.status = TimerFinished
	return true
}

func (c *Countdown) recompute(now time.Time) {
	elapsed := c.accumulated
	if c.status == TimerRunning {
		elapsed += now.Sub(c.runStartedAt)
	}
	remaining := c.total - elapsed
	if remaining < 0 {
		remaining = 0
	}
	c.remaining = remaining
}
