package model

import (
	"testing"
	"time"
)

func TestMeterModel_BasicLifecycle(t *testing.T) {
	m := NewMeterModel()
	base := time.Unix(0, 0)

	// Start at t0 and focus for 5s.
	m.OnTick(true, base)
	m.OnTick(true, base.Add(5*time.Second))
	run, total := m.Values()
	if run != 5*time.Second || total != 5*time.Second {
		t.Fatalf("expected 5s run & total; got run=%v total=%v", run, total)
	}

	// Stop focusing at 5s.
	m.OnTick(false, base.Add(5*time.Second))
	run, total = m.Values()
	if run != 5*time.Second || total != 5*time.Second {
		t.Fatalf("after stop expected persisted 5s; got run=%v total=%v", run, total)
	}
	if m.Runs() != 1 {
		t.Fatalf("expected 1 completed run, got %d", m.Runs())
	}

	// Idle 2s (no change expected).
	m.OnTick(false, base.Add(7*time.Second))
	run2, total2 := m.Values()
	if run2 != run || total2 != total {
		t.Fatalf("idle tick should not change durations: got run=%v total=%v", run2, total2)
	}

	// Second run at 10s lasting 3s.
	m.OnTick(true, base.Add(10*time.Second))
	m.OnTick(true, base.Add(13*time.Second))
	r3, t3 := m.Values()
	if r3 != 3*time.Second {
		t.Fatalf("second run expected 3s, got %v", r3)
	}
	if t3 != 8*time.Second { // 5 + 3 ongoing
		t.Fatalf("total should include previous 5s + current 3s; got %v", t3)
	}

	// Stop the second run, finalizing totals.
	m.OnTick(false, base.Add(13*time.Second))
	if m.Runs() != 2 {
		t.Fatalf("expected 2 completed runs, got %d", m.Runs())
	}
	if m.Longest() != 5*time.Second {
		t.Fatalf("expected longest run 5s, got %v", m.Longest())
	}
}

func TestMeterModel_LongestTracksOngoingRun(t *testing.T) {
	m := NewMeterModel()
	base := time.Unix(0, 0)

	m.OnTick(true, base)
	m.OnTick(false, base.Add(2*time.Second))
	if m.Longest() != 2*time.Second {
		t.Fatalf("expected longest 2s, got %v", m.Longest())
	}

	// An ongoing run overtakes the completed one once it is longer.
	m.OnTick(true, base.Add(10*time.Second))
	m.OnTick(true, base.Add(11*time.Second))
	if m.Longest() != 2*time.Second {
		t.Fatalf("short ongoing run must not count yet, got %v", m.Longest())
	}
	m.OnTick(true, base.Add(13*time.Second))
	if m.Longest() != 3*time.Second {
		t.Fatalf("expected ongoing 3s run to lead, got %v", m.Longest())
	}
}

func TestMeterModel_NilSafe(t *testing.T) {
	var m *MeterModel
	m.OnTick(true, time.Unix(0, 0))
	if run, total := m.Values(); run != 0 || total != 0 {
		t.Fatalf("nil model should report zeros, got run=%v total=%v", run, total)
	}
	if m.Runs() != 0 || m.Longest() != 0 {
		t.Fatal("nil model should report zero runs")
	}
}
