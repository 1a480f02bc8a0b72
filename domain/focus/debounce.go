package focus

import (
	"time"
)

const defaultBlinkThreshold = 500 * time.Millisecond

// PresenceDebouncer turns noisy per-frame presence readings into stable
// edges. Detection is reported immediately; absence only after it has lasted
// longer than the blink threshold, so looking away or blinking does not count
// as leaving. Not safe for concurrent use.
type PresenceDebouncer struct {
	threshold       time.Duration
	stable          bool
	lastRawDetected time.Time
}

// NewPresenceDebouncer returns a debouncer with the given absence threshold.
// A non-positive threshold falls back to the default.
func NewPresenceDebouncer(threshold time.Duration) *PresenceDebouncer {
	if threshold <= 0 {
		threshold = defaultBlinkThreshold
	}
	return &PresenceDebouncer{threshold: threshold}
}

// Stable returns the current debounced presence value.
func (d *PresenceDebouncer) Stable() bool { return d.stable }

// Observe feeds one raw reading and returns the resulting edge, if any.
func (d *PresenceDebouncer) Observe(detected bool, now time.Time) PresenceEdge {
	if detected {
		d.lastRawDetected = now
		if !d.stable {
			d.stable = true
			return EdgeRegained
		}
		return EdgeNone
	}
	if !d.stable || d.lastRawDetected.IsZero() {
		return EdgeNone
	}
	if now.Sub(d.lastRawDetected) > d.threshold {
		d.stable = false
		return EdgeLost
	}
	return EdgeNone
}

// Reset clears the debouncer back to its initial absent state.
func (d *PresenceDebouncer) Reset() {
	d.stable = false
	d.lastRawDetected = time.Time{}
}
