package view

import (
	"fmt"
	"time"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// SessionStats updates the focus meter and the daily totals line.
type SessionStats interface {
	SetMeter(run, total time.Duration)
	SetStats(text string)
}

type sessionStats struct {
	meterLbl *LabelWidget
	statsLbl *LabelWidget
}

// NewSessionStats creates the focus meter and daily totals labels in a grid
// layout, occupying two rows starting at row.
func NewSessionStats(row int) SessionStats {
	s := &sessionStats{meterLbl: Label(Width(32), Anchor("w")), statsLbl: Label(Width(40), Anchor("w"))}
	Grid(s.meterLbl, Row(row), Column(0), Columnspan(2), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
	Grid(s.statsLbl, Row(row+1), Column(0), Columnspan(2), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
	s.meterLbl.Configure(Txt("Focus: 00:00 / 00:00"))
	s.statsLbl.Configure(Txt("No sessions today"))
	return s
}

// SetMeter updates the focused time display for the current run and session.
func (s *sessionStats) SetMeter(run, total time.Duration) {
	if s == nil || s.meterLbl == nil {
		return
	}
	s.meterLbl.Configure(Txt(fmt.Sprintf("Focus: %s / %s", clockFormat(run), clockFormat(total))))
}

// SetStats updates the daily totals line.
func (s *sessionStats) SetStats(text string) {
	if s == nil || s.statsLbl == nil {
		return
	}
	s.statsLbl.Configure(Txt(text))
}

// clockFormat renders a duration as mm:ss, or h:mm:ss above an hour.
func clockFormat(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	seconds := int(d.Seconds())
	h, min, sec := seconds/3600, (seconds%3600)/60, seconds%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, min, sec)
	}
	return fmt.Sprintf("%02d:%02d", min, sec)
}
