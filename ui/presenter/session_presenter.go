package presenter

import (
	"fmt"
	"time"

	"github.com/soocke/focus-timer-go/domain/focus"
	"github.com/soocke/focus-timer-go/ui/model"
)

// SnapshotSource provides the engine state the presenter requires.
type SnapshotSource interface {
	Snapshot() focus.Snapshot
}

// SessionView displays the formatted session state.
type SessionView interface {
	SetCountdown(remaining, total time.Duration)
	SetStatus(text string)
	SetWarning(on bool)
	SetMeter(run, total time.Duration)
	SetStats(text string)
	SetActive(active bool)
}

// SessionPresenter formats engine snapshots from the source to the view.
//
// The focus meter advances every tick; the remaining view setters only run
// when the snapshot actually changed since the last reflected one.
type SessionPresenter struct {
	source SnapshotSource
	meter  *model.MeterModel
	view   SessionView
	last   focus.Snapshot // last reflected snapshot
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(source SnapshotSource, meter *model.MeterModel, view SessionView) *SessionPresenter {
	return &SessionPresenter{source: source, meter: meter, view: view}
}

// Tick updates the presenter: advance the focus meter and push values to the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.source == nil || p.meter == nil || p.view == nil {
		return
	}
	snap := p.source.Snapshot()
	p.meter.OnTick(snap.State == focus.StatePresent || snap.State == focus.StateAbsentGrace, now)
	run, total := p.meter.Values()
	p.view.SetMeter(run, total)
	if snap == p.last {
		return
	}
	p.last = snap
	p.view.SetCountdown(snap.Remaining, snap.Total)
	p.view.SetStatus(statusText(snap))
	p.view.SetWarning(snap.Warning)
	p.view.SetStats(statsText(snap.Stats))
	p.view.SetActive(snap.State.Active())
}

func statusText(snap focus.Snapshot) string {
	switch snap.State {
	case focus.StateInactive:
		if snap.PermissionDenied {
			return "Capture access denied"
		}
		return "Ready"
	case focus.StateCalibrating:
		return fmt.Sprintf("Calibrating... %d", snap.Calibration)
	case focus.StatePresent:
		return "Focusing"
	case focus.StateAbsentGrace:
		return "Are you there?"
	case focus.StateAutoPaused:
		if snap.Backgrounded {
			return "Paused (app in background)"
		}
		return "Paused"
	default:
		return snap.State.String()
	}
}

func statsText(stats focus.RunningStats) string {
	if stats.Sessions == 0 {
		return "No sessions today"
	}
	return fmt.Sprintf("Today: %d sessions, %s focused, score %d",
		stats.Sessions, formatDuration(stats.TotalFocus), stats.Score)
}

func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
