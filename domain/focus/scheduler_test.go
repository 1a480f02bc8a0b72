package focus

import (
	"testing"
	"time"
)

type firedTask struct {
	key taskKey
	gen uint64
}

func collectFired(t *testing.T, events chan firedTask, window time.Duration) []firedTask {
	t.Helper()
	var out []firedTask
	deadline := time.After(window)
	for {
		select {
		case f := <-events:
			out = append(out, f)
		case <-deadline:
			return out
		}
	}
}

func TestSchedulerFireAndValidate(t *testing.T) {
	events := make(chan firedTask, 16)
	s := newTaskScheduler(func(key taskKey, gen uint64) {
		events <- firedTask{key, gen}
	})

	s.schedule(taskTick, 10*time.Millisecond)
	if !s.pending(taskTick) {
		t.Error("expected pending timer after schedule")
	}

	select {
	case f := <-events:
		if f.key != taskTick {
			t.Errorf("expected taskTick, got %v", f.key)
		}
		if !s.fired(f.key, f.gen) {
			t.Error("expected current-generation expiration to validate")
		}
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
	if s.pending(taskTick) {
		t.Error("expected no pending timer after expiration")
	}
}

func TestSchedulerCancel(t *testing.T) {
	events := make(chan firedTask, 16)
	s := newTaskScheduler(func(key taskKey, gen uint64) {
		events <- firedTask{key, gen}
	})

	s.schedule(taskAbsence, 30*time.Millisecond)
	s.cancel(taskAbsence)
	if s.pending(taskAbsence) {
		t.Error("expected no pending timer after cancel")
	}

	for _, f := range collectFired(t, events, 100*time.Millisecond) {
		if s.fired(f.key, f.gen) {
			t.Error("cancelled expiration must not validate")
		}
	}
}

func TestSchedulerSupersede(t *testing.T) {
	events := make(chan firedTask, 16)
	s := newTaskScheduler(func(key taskKey, gen uint64) {
		events <- firedTask{key, gen}
	})

	s.schedule(taskResume, 30*time.Millisecond)
	s.schedule(taskResume, 10*time.Millisecond)

	valid := 0
	for _, f := range collectFired(t, events, 150*time.Millisecond) {
		if s.fired(f.key, f.gen) {
			valid++
		}
	}
	if valid != 1 {
		t.Errorf("expected exactly one valid expiration, got %d", valid)
	}
}

func TestSchedulerCancelAll(t *testing.T) {
	events := make(chan firedTask, 16)
	s := newTaskScheduler(func(key taskKey, gen uint64) {
		events <- firedTask{key, gen}
	})

	s.schedule(taskTick, 30*time.Millisecond)
	s.schedule(taskAbsence, 30*time.Millisecond)
	s.schedule(taskResume, 30*time.Millisecond)
	s.cancelAll()

	for _, key := range []taskKey{taskTick, taskAbsence, taskResume} {
		if s.pending(key) {
			t.Errorf("expected no pending timer for %v after cancelAll", key)
		}
	}
	for _, f := range collectFired(t, events, 100*time.Millisecond) {
		if s.fired(f.key, f.gen) {
			t.Errorf("expiration for %v must not validate after cancelAll", f.key)
		}
	}
}
