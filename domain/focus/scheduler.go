package focus

import (
	"time"
)

// taskKey identifies one of the engine's delayed tasks. Each key has at most
// one pending timer.
type taskKey int

const (
	taskTick taskKey = iota
	taskCalibration
	taskAbsence
	taskResume
)

func (k taskKey) String() string {
	switch k {
	case taskTick:
		return "tick"
	case taskCalibration:
		return "calibration"
	case taskAbsence:
		return "absence"
	case taskResume:
		return "resume"
	default:
		return "unknown"
	}
}

// taskScheduler manages the engine's cancellable delayed tasks. Scheduling a
// key replaces any pending timer for it, and every (re)schedule bumps a
// per-key generation so expirations of superseded timers can be recognized
// and dropped. All methods must be called from the engine's event loop; only
// the fire callback crosses goroutines.
type taskScheduler struct {
	fire   func(key taskKey, gen uint64)
	timers map[taskKey]*time.Timer
	gens   map[taskKey]uint64
}

func newTaskScheduler(fire func(key taskKey, gen uint64)) *taskScheduler {
	return &taskScheduler{
		fire:   fire,
		timers: make(map[taskKey]*time.Timer),
		gens:   make(map[taskKey]uint64),
	}
}

// schedule arms the key to fire after d, replacing any pending timer.
func (s *taskScheduler) schedule(key taskKey, d time.Duration) {
	s.cancel(key)
	gen := s.gens[key]
	s.timers[key] = time.AfterFunc(d, func() {
		s.fire(key, gen)
	})
}

// cancel stops the pending timer for key, if any, and invalidates any
// expiration already in flight.
func (s *taskScheduler) cancel(key taskKey) {
	if t, ok := s.timers[key]; ok {
		t.Stop()
		delete(s.timers, key)
	}
	s.gens[key]++
}

// fired validates an expiration against the current generation. A stale
// expiration (superseded or cancelled after firing) returns false and must be
// ignored.
func (s *taskScheduler) fired(key taskKey, gen uint64) bool {
	if s.gens[key] != gen {
		return false
	}
	delete(s.timers, key)
	return true
}

// pending reports whether the key currently has an armed timer.
func (s *taskScheduler) pending(key taskKey) bool {
	_, ok := s.timers[key]
	return ok
}

// cancelAll stops every pending timer.
func (s *taskScheduler) cancelAll() {
	for key := range s.timers {
		s.cancel(key)
	}
}
