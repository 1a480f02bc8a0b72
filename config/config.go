package config

import (
	"encoding/json"
	"os"
	"time"
)

// Config holds runtime configuration for the session engine and app behavior.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Session timing
	SessionMinutes        int  `json:"session_minutes"`
	TickMillis            int  `json:"tick_millis"`
	CalibrationTicks      int  `json:"calibration_ticks"`
	CalibrationStepMillis int  `json:"calibration_step_millis"`
	WarningMode           bool `json:"warning_mode"`

	// Presence thresholds
	BlinkThresholdMillis int `json:"blink_threshold_millis"`
	WarningDelayMillis   int `json:"warning_delay_millis"`
	AutoPauseDelayMillis int `json:"auto_pause_delay_millis"`
	ResumeDelayMillis    int `json:"resume_delay_millis"`

	// Recording rules. Zero disables the respective cutoff.
	MinRecordSeconds    int `json:"min_record_seconds"`
	ShortSessionSeconds int `json:"short_session_seconds"`
	InterruptionPenalty int `json:"interruption_penalty"`

	// Capture pipeline
	CaptureIntervalMillis int     `json:"capture_interval_millis"`
	ActivityThreshold     float64 `json:"activity_threshold"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:                 false,
		SessionMinutes:        25,
		TickMillis:            100,
		CalibrationTicks:      3,
		CalibrationStepMillis: 1000,
		WarningMode:           true,
		BlinkThresholdMillis:  500,
		WarningDelayMillis:    1000,
		AutoPauseDelayMillis:  5000,
		ResumeDelayMillis:     1000,
		MinRecordSeconds:      10,
		ShortSessionSeconds:   30,
		InterruptionPenalty:   5,
		CaptureIntervalMillis: 200,
		ActivityThreshold:     0.02,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.SessionMinutes < 1 {
		c.SessionMinutes = 25
	}
	if c.SessionMinutes > 480 {
		c.SessionMinutes = 480
	}
	if c.TickMillis < 10 || c.TickMillis > 1000 {
		c.TickMillis = 100
	}
	if c.CalibrationTicks < 1 || c.CalibrationTicks > 10 {
		c.CalibrationTicks = 3
	}
	if c.CalibrationStepMillis < 100 || c.CalibrationStepMillis > 5000 {
		c.CalibrationStepMillis = 1000
	}
	if c.BlinkThresholdMillis < 50 || c.BlinkThresholdMillis > 5000 {
		c.BlinkThresholdMillis = 500
	}
	if c.WarningDelayMillis < 100 {
		c.WarningDelayMillis = 1000
	}
	if c.AutoPauseDelayMillis <= c.WarningDelayMillis {
		c.AutoPauseDelayMillis = c.WarningDelayMillis * 5
	}
	if c.ResumeDelayMillis < 100 || c.ResumeDelayMillis > 10000 {
		c.ResumeDelayMillis = 1000
	}
	if c.MinRecordSeconds < 0 {
		c.MinRecordSeconds = 10
	}
	if c.ShortSessionSeconds < 0 {
		c.ShortSessionSeconds = 30
	}
	if c.InterruptionPenalty < 1 || c.InterruptionPenalty > 100 {
		c.InterruptionPenalty = 5
	}
	if c.CaptureIntervalMillis < 50 || c.CaptureIntervalMillis > 5000 {
		c.CaptureIntervalMillis = 200
	}
	if c.ActivityThreshold <= 0 || c.ActivityThreshold > 1 {
		c.ActivityThreshold = 0.02
	}
	return nil
}

// Duration accessors keep millisecond fields out of callers.

func (c *Config) SessionDuration() time.Duration {
	return time.Duration(c.SessionMinutes) * time.Minute
}

func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

func (c *Config) CalibrationStep() time.Duration {
	return time.Duration(c.CalibrationStepMillis) * time.Millisecond
}

func (c *Config) BlinkThreshold() time.Duration {
	return time.Duration(c.BlinkThresholdMillis) * time.Millisecond
}

func (c *Config) WarningDelay() time.Duration {
	return time.Duration(c.WarningDelayMillis) * time.Millisecond
}

func (c *Config) AutoPauseDelay() time.Duration {
	return time.Duration(c.AutoPauseDelayMillis) * time.Millisecond
}

func (c *Config) ResumeDelay() time.Duration {
	return time.Duration(c.ResumeDelayMillis) * time.Millisecond
}

func (c *Config) MinRecord() time.Duration {
	return time.Duration(c.MinRecordSeconds) * time.Second
}

func (c *Config) ShortSession() time.Duration {
	return time.Duration(c.ShortSessionSeconds) * time.Second
}

func (c *Config) CaptureInterval() time.Duration {
	return time.Duration(c.CaptureIntervalMillis) * time.Millisecond
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
