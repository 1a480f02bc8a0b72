package presenter

import (
	"testing"
	"time"
)

type mockCommands struct {
	toggles   int
	warnCalls int
	lastWarn  bool
	durations []time.Duration
}

func (m *mockCommands) ToggleStartStop()                  { m.toggles++ }
func (m *mockCommands) SetWarningMode(on bool)            { m.warnCalls++; m.lastWarn = on }
func (m *mockCommands) SetCustomDuration(d time.Duration) { m.durations = append(m.durations, d) }

func TestControlPresenter_Toggle(t *testing.T) {
	m := &mockCommands{}
	p := NewControlPresenter(m, nil)
	p.Toggle()
	p.Toggle()
	if m.toggles != 2 {
		t.Fatalf("expected 2 toggles, got %d", m.toggles)
	}
	p.SetWarningMode(false)
	if m.warnCalls != 1 || m.lastWarn {
		t.Fatalf("warning mode not forwarded: calls=%d last=%v", m.warnCalls, m.lastWarn)
	}
}

func TestControlPresenter_ApplyDuration(t *testing.T) {
	m := &mockCommands{}
	p := NewControlPresenter(m, nil)

	if !p.ApplyDuration(" 45 ") {
		t.Fatalf("expected 45 minutes to be accepted")
	}
	if len(m.durations) != 1 || m.durations[0] != 45*time.Minute {
		t.Fatalf("expected 45m applied, got %v", m.durations)
	}

	for _, bad := range []string{"", "abc", "0", "-5", "481", "12.5"} {
		if p.ApplyDuration(bad) {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
	if len(m.durations) != 1 {
		t.Fatalf("rejected values must not reach the engine, got %v", m.durations)
	}
}
