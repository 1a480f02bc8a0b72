package model

import (
	"time"
)

// MeterModel tracks the current focus run and the accumulated focused time
// across runs. A run is an unbroken stretch of focused presence; absence or
// a pause ends it. It is decoupled from the UI; presenters should poll
// Values() and update views. The zero value is ready to use.
type MeterModel struct {
	active      bool
	runStart    time.Time
	lastRun     time.Duration
	accumulated time.Duration
	runs        int
	longest     time.Duration
}

// NewMeterModel returns a pointer to a ready-to-use MeterModel.
func NewMeterModel() *MeterModel { return &MeterModel{} }

// OnTick updates the model using the current focusing state and timestamp.
// Call periodically (for example, from a presenter tick).
func (m *MeterModel) OnTick(focusing bool, now time.Time) {
	if m == nil {
		return
	}
	if focusing {
		if !m.active { // transition off -> on
			m.active = true
			m.runStart = now
			m.lastRun = 0
		}
		m.lastRun = now.Sub(m.runStart)
	} else if m.active { // transition on -> off
		m.lastRun = now.Sub(m.runStart)
		m.accumulated += m.lastRun
		m.runs++
		if m.lastRun > m.longest {
			m.longest = m.lastRun
		}
		m.active = false
	}
}

// Values returns the current run duration and the total accumulated duration.
// The total includes the ongoing run when active.
func (m *MeterModel) Values() (run, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	run = m.lastRun
	total = m.accumulated
	if m.active {
		total += run
	}
	return
}

// Runs returns the number of completed focus runs.
func (m *MeterModel) Runs() int {
	if m == nil {
		return 0
	}
	return m.runs
}

// Longest returns the longest completed focus run. The ongoing run counts
// once it outgrows every completed one.
func (m *MeterModel) Longest() time.Duration {
	if m == nil {
		return 0
	}
	if m.active && m.lastRun > m.longest {
		return m.lastRun
	}
	return m.longest
}
