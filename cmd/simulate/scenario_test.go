package main

import (
	"testing"
	"time"

	"github.com/soocke/focus-timer-go/assets"
	"github.com/soocke/focus-timer-go/config"
)

func TestDefaultScenarioParses(t *testing.T) {
	sc, err := Parse(assets.DefaultScenarioYAML)
	if err != nil {
		t.Fatalf("parse embedded scenario: %v", err)
	}
	if sc.Name == "" || len(sc.Steps) == 0 {
		t.Fatalf("embedded scenario incomplete: %+v", sc)
	}
	if sc.Expect.FinalState != "Inactive" {
		t.Fatalf("expected the scenario to end Inactive, got %q", sc.Expect.FinalState)
	}
	cfg := config.DefaultConfig()
	sc.Config.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded scenario config invalid: %v", err)
	}
}

func TestParseRejectsEmptySteps(t *testing.T) {
	if _, err := Parse([]byte("name: empty\n")); err == nil {
		t.Fatalf("expected an error for a scenario with no steps")
	}
}

func TestTimingsApply(t *testing.T) {
	cfg := config.DefaultConfig()
	warning := false
	minRec := 0
	tm := Timings{
		SessionSeconds:       4,
		TickMillis:           20,
		BlinkThresholdMillis: 60,
		WarningMode:          &warning,
		MinRecordSeconds:     &minRec,
	}
	tm.Apply(cfg)
	if cfg.TickMillis != 20 || cfg.BlinkThresholdMillis != 60 {
		t.Fatalf("timing overrides not applied: %+v", cfg)
	}
	if cfg.WarningMode {
		t.Fatalf("warning mode override not applied")
	}
	if cfg.MinRecordSeconds != 0 {
		t.Fatalf("zero min record override not applied, got %d", cfg.MinRecordSeconds)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if tm.SessionDuration() != 4*time.Second {
		t.Fatalf("session duration: %v", tm.SessionDuration())
	}
	if (Timings{}).SessionDuration() != 0 {
		t.Fatalf("zero timings must keep the default duration")
	}
}
