package focus

import (
	"testing"
	"time"
)

func TestDebouncerDetectionIsImmediate(t *testing.T) {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	d := NewPresenceDebouncer(500 * time.Millisecond)

	if d.Stable() {
		t.Fatal("expected initial stable value to be absent")
	}
	if edge := d.Observe(true, base); edge != EdgeRegained {
		t.Errorf("expected EdgeRegained on first detection, got %v", edge)
	}
	if !d.Stable() {
		t.Error("expected stable presence after detection")
	}
	if edge := d.Observe(true, base.Add(100*time.Millisecond)); edge != EdgeNone {
		t.Errorf("repeated detection should be EdgeNone, got %v", edge)
	}
}

func TestDebouncerBlinkBelowThreshold(t *testing.T) {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	d := NewPresenceDebouncer(500 * time.Millisecond)
	d.Observe(true, base)

	// Raw absence shorter than the threshold never produces an edge.
	if edge := d.Observe(false, base.Add(200*time.Millisecond)); edge != EdgeNone {
		t.Errorf("short absence should be EdgeNone, got %v", edge)
	}
	if edge := d.Observe(false, base.Add(450*time.Millisecond)); edge != EdgeNone {
		t.Errorf("absence at threshold boundary should be EdgeNone, got %v", edge)
	}
	if !d.Stable() {
		t.Error("stable presence should survive a blink")
	}

	// Coming back resets the absence window without an edge.
	if edge := d.Observe(true, base.Add(500*time.Millisecond)); edge != EdgeNone {
		t.Errorf("return while still stable should be EdgeNone, got %v", edge)
	}
	if edge := d.Observe(false, base.Add(900*time.Millisecond)); edge != EdgeNone {
		t.Errorf("absence window should restart after return, got %v", edge)
	}
}

func TestDebouncerAbsenceBeyondThreshold(t *testing.T) {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	d := NewPresenceDebouncer(500 * time.Millisecond)
	d.Observe(true, base)

	if edge := d.Observe(false, base.Add(501*time.Millisecond)); edge != EdgeLost {
		t.Errorf("expected EdgeLost past the threshold, got %v", edge)
	}
	if d.Stable() {
		t.Error("expected stable absence after EdgeLost")
	}
	if edge := d.Observe(false, base.Add(time.Second)); edge != EdgeNone {
		t.Errorf("EdgeLost must fire only once, got %v", edge)
	}
	if edge := d.Observe(true, base.Add(2*time.Second)); edge != EdgeRegained {
		t.Errorf("expected EdgeRegained on return, got %v", edge)
	}
}

func TestDebouncerAbsenceBeforeAnyDetection(t *testing.T) {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	d := NewPresenceDebouncer(500 * time.Millisecond)

	if edge := d.Observe(false, base); edge != EdgeNone {
		t.Errorf("absence before any detection should be EdgeNone, got %v", edge)
	}
	if edge := d.Observe(false, base.Add(10*time.Second)); edge != EdgeNone {
		t.Errorf("prolonged absence before any detection should be EdgeNone, got %v", edge)
	}
}

func TestDebouncerReset(t *testing.T) {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	d := NewPresenceDebouncer(500 * time.Millisecond)
	d.Observe(true, base)
	d.Reset()

	if d.Stable() {
		t.Error("expected absent after reset")
	}
	if edge := d.Observe(false, base.Add(time.Minute)); edge != EdgeNone {
		t.Errorf("absence after reset should be EdgeNone, got %v", edge)
	}
	if edge := d.Observe(true, base.Add(2*time.Minute)); edge != EdgeRegained {
		t.Errorf("expected EdgeRegained after reset, got %v", edge)
	}
}

func TestDebouncerDefaultThreshold(t *testing.T) {
	d := NewPresenceDebouncer(0)
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	d.Observe(true, base)
	if edge := d.Observe(false, base.Add(defaultBlinkThreshold)); edge != EdgeNone {
		t.Errorf("absence equal to the default threshold should be EdgeNone, got %v", edge)
	}
	if edge := d.Observe(false, base.Add(defaultBlinkThreshold+time.Millisecond)); edge != EdgeLost {
		t.Errorf("absence past the default threshold should be EdgeLost, got %v", edge)
	}
}
