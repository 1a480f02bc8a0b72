package presenter

import (
	"testing"
	"time"

	"github.com/soocke/focus-timer-go/domain/focus"
	"github.com/soocke/focus-timer-go/ui/model"
)

type mockSnapshotSource struct{ snap focus.Snapshot }

func (s *mockSnapshotSource) Snapshot() focus.Snapshot { return s.snap }

type mockSessionView struct {
	countdowns  int
	remaining   time.Duration
	total       time.Duration
	status      string
	warning     bool
	meterCalls  int
	meterRun    time.Duration
	meterTotal  time.Duration
	stats       string
	active      bool
	activeCalls int
}

func (v *mockSessionView) SetCountdown(remaining, total time.Duration) {
	v.countdowns++
	v.remaining = remaining
	v.total = total
}
func (v *mockSessionView) SetStatus(text string) { v.status = text }
func (v *mockSessionView) SetWarning(on bool)    { v.warning = on }
func (v *mockSessionView) SetMeter(run, total time.Duration) {
	v.meterCalls++
	v.meterRun = run
	v.meterTotal = total
}
func (v *mockSessionView) SetStats(text string) { v.stats = text }
func (v *mockSessionView) SetActive(active bool) {
	v.activeCalls++
	v.active = active
}

func TestSessionPresenter_PushesSnapshotChanges(t *testing.T) {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	src := &mockSnapshotSource{snap: focus.Snapshot{
		State:       focus.StateInactive,
		Timer:       focus.TimerIdle,
		Remaining:   25 * time.Minute,
		Total:       25 * time.Minute,
		Calibration: -1,
	}}
	view := &mockSessionView{}
	p := NewSessionPresenter(src, model.NewMeterModel(), view)

	p.Tick(base)
	if view.countdowns != 1 || view.remaining != 25*time.Minute || view.total != 25*time.Minute {
		t.Fatalf("first tick did not push countdown: calls=%d remaining=%v", view.countdowns, view.remaining)
	}
	if view.status != "Ready" {
		t.Fatalf("expected Ready status, got %q", view.status)
	}
	if view.active {
		t.Fatalf("inactive snapshot reported active")
	}

	// An unchanged snapshot only advances the meter.
	p.Tick(base.Add(100 * time.Millisecond))
	if view.countdowns != 1 || view.activeCalls != 1 {
		t.Fatalf("unchanged snapshot re-pushed state: countdowns=%d activeCalls=%d", view.countdowns, view.activeCalls)
	}
	if view.meterCalls != 2 {
		t.Fatalf("expected meter update on every tick, got %d", view.meterCalls)
	}

	src.snap.State = focus.StatePresent
	src.snap.Timer = focus.TimerRunning
	src.snap.Remaining = 24 * time.Minute
	p.Tick(base.Add(200 * time.Millisecond))
	if view.countdowns != 2 || view.remaining != 24*time.Minute {
		t.Fatalf("changed snapshot not pushed: calls=%d remaining=%v", view.countdowns, view.remaining)
	}
	if view.status != "Focusing" || !view.active {
		t.Fatalf("expected active Focusing view, got status=%q active=%v", view.status, view.active)
	}

	// The meter counts focused presence between ticks.
	p.Tick(base.Add(300 * time.Millisecond))
	if view.meterRun != 100*time.Millisecond || view.meterTotal != 100*time.Millisecond {
		t.Fatalf("expected 100ms of metered focus, got run=%v total=%v", view.meterRun, view.meterTotal)
	}
}

func TestSessionPresenter_StatusText(t *testing.T) {
	cases := []struct {
		name string
		snap focus.Snapshot
		want string
	}{
		{"ready", focus.Snapshot{State: focus.StateInactive}, "Ready"},
		{"denied", focus.Snapshot{State: focus.StateInactive, PermissionDenied: true}, "Capture access denied"},
		{"calibrating", focus.Snapshot{State: focus.StateCalibrating, Calibration: 2}, "Calibrating... 2"},
		{"focusing", focus.Snapshot{State: focus.StatePresent}, "Focusing"},
		{"grace", focus.Snapshot{State: focus.StateAbsentGrace}, "Are you there?"},
		{"paused", focus.Snapshot{State: focus.StateAutoPaused}, "Paused"},
		{"paused in background", focus.Snapshot{State: focus.StateAutoPaused, Backgrounded: true}, "Paused (app in background)"},
	}
	for _, tc := range cases {
		if got := statusText(tc.snap); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestSessionPresenter_StatsText(t *testing.T) {
	if got := statsText(focus.RunningStats{}); got != "No sessions today" {
		t.Fatalf("empty stats: got %q", got)
	}
	stats := focus.RunningStats{TotalFocus: 65 * time.Minute, Interruptions: 3, Sessions: 2, Score: 88}
	want := "Today: 2 sessions, 1:05:00 focused, score 88"
	if got := statsText(stats); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSessionPresenter_FormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{90 * time.Second, "01:30"},
		{25 * time.Minute, "25:00"},
		{3*time.Hour + 7*time.Second, "3:00:07"},
		{-time.Second, "00:00"},
	}
	for _, tc := range cases {
		if got := formatDuration(tc.d); got != tc.want {
			t.Errorf("formatDuration(%v): got %q, want %q", tc.d, got, tc.want)
		}
	}
}
