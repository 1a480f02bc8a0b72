package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/soocke/focus-timer-go/config"
)

// Scenario scripts a full session against the engine with simulated presence.
type Scenario struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Config      Timings `yaml:"config"`
	Steps       []Step  `yaml:"steps"`
	Expect      Expect  `yaml:"expect"`
}

// Timings overrides engine timing knobs for fast simulated runs.
// Zero values keep the engine defaults.
type Timings struct {
	SessionSeconds        int   `yaml:"session_seconds"`
	TickMillis            int   `yaml:"tick_millis"`
	BlinkThresholdMillis  int   `yaml:"blink_threshold_millis"`
	WarningDelayMillis    int   `yaml:"warning_delay_millis"`
	AutoPauseDelayMillis  int   `yaml:"auto_pause_delay_millis"`
	ResumeDelayMillis     int   `yaml:"resume_delay_millis"`
	CalibrationTicks      int   `yaml:"calibration_ticks"`
	CalibrationStepMillis int   `yaml:"calibration_step_millis"`
	WarningMode           *bool `yaml:"warning_mode"`
	MinRecordSeconds      *int  `yaml:"min_record_seconds"`
	ShortSessionSeconds   *int  `yaml:"short_session_seconds"`
}

// Step is one scripted input at an offset from scenario start.
type Step struct {
	AtMs     int    `yaml:"at_ms"`
	Presence string `yaml:"presence"` // "detected" or "absent"
	Action   string `yaml:"action"`   // start, stop, background, foreground, warning_on, warning_off
}

// Expect describes the snapshot the engine must settle on.
type Expect struct {
	FinalState         string `yaml:"final_state"`
	RecordedSessions   *int   `yaml:"recorded_sessions"`
	TotalInterruptions *int   `yaml:"total_interruptions"`
	MinScore           *int   `yaml:"min_score"`
	MaxScore           *int   `yaml:"max_score"`
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes scenario YAML.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", sc.Name)
	}
	return &sc, nil
}

// Apply writes the timing overrides onto cfg.
func (t Timings) Apply(cfg *config.Config) {
	if cfg == nil {
		return
	}
	if t.TickMillis > 0 {
		cfg.TickMillis = t.TickMillis
	}
	if t.BlinkThresholdMillis > 0 {
		cfg.BlinkThresholdMillis = t.BlinkThresholdMillis
	}
	if t.WarningDelayMillis > 0 {
		cfg.WarningDelayMillis = t.WarningDelayMillis
	}
	if t.AutoPauseDelayMillis > 0 {
		cfg.AutoPauseDelayMillis = t.AutoPauseDelayMillis
	}
	if t.ResumeDelayMillis > 0 {
		cfg.ResumeDelayMillis = t.ResumeDelayMillis
	}
	if t.CalibrationTicks > 0 {
		cfg.CalibrationTicks = t.CalibrationTicks
	}
	if t.CalibrationStepMillis > 0 {
		cfg.CalibrationStepMillis = t.CalibrationStepMillis
	}
	if t.WarningMode != nil {
		cfg.WarningMode = *t.WarningMode
	}
	if t.MinRecordSeconds != nil {
		cfg.MinRecordSeconds = *t.MinRecordSeconds
	}
	if t.ShortSessionSeconds != nil {
		cfg.ShortSessionSeconds = *t.ShortSessionSeconds
	}
}

// SessionDuration returns the scripted session length, or 0 to keep the
// config default.
func (t Timings) SessionDuration() time.Duration {
	if t.SessionSeconds <= 0 {
		return 0
	}
	return time.Duration(t.SessionSeconds) * time.Second
}
