// Command simulate runs scripted presence scenarios against the session
// engine and checks the snapshot and records it settles on. Scenarios drive
// the engine through the same event surface the UI uses, just faster.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/soocke/focus-timer-go/assets"
	"github.com/soocke/focus-timer-go/config"
	"github.com/soocke/focus-timer-go/domain/focus"
	"github.com/soocke/focus-timer-go/domain/presence"
)

var verbose bool

func main() {
	scenarioPath := flag.String("scenario", "", "Path to scenario YAML file (default: built-in scenario)")
	scenarioDir := flag.String("dir", "scenarios", "Directory containing scenario files")
	listScenarios := flag.Bool("list", false, "List available scenarios")
	runAll := flag.Bool("all", false, "Run all scenarios")
	flag.BoolVar(&verbose, "v", false, "Verbose output")
	flag.Parse()

	logger := newLogger()

	if *listScenarios {
		fmt.Println("Available scenarios:")
		if sc, err := Parse(assets.DefaultScenarioYAML); err == nil {
			fmt.Printf("  %s - %s (built-in)\n", sc.Name, strings.TrimSpace(sc.Description))
		}
		scenarios, _ := filepath.Glob(filepath.Join(*scenarioDir, "*.yaml"))
		for _, s := range scenarios {
			sc, err := Load(s)
			if err != nil {
				continue
			}
			fmt.Printf("  %s - %s\n", sc.Name, strings.TrimSpace(sc.Description))
		}
		return
	}

	if *runAll {
		scenarios, _ := filepath.Glob(filepath.Join(*scenarioDir, "*.yaml"))
		if len(scenarios) == 0 {
			log.Fatalf("no scenarios under %s", *scenarioDir)
		}
		results := make(map[string]bool)
		for _, s := range scenarios {
			sc, err := Load(s)
			if err != nil {
				log.Printf("Failed to load %s: %v", s, err)
				results[s] = false
				continue
			}
			results[sc.Name] = runScenario(sc, logger)
		}

		fmt.Println("\n=== Summary ===")
		passed, failed := 0, 0
		for name, success := range results {
			if success {
				fmt.Printf("  ✓ %s\n", name)
				passed++
			} else {
				fmt.Printf("  ✗ %s\n", name)
				failed++
			}
		}
		fmt.Printf("\nPassed: %d, Failed: %d\n", passed, failed)
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	var sc *Scenario
	var err error
	if *scenarioPath == "" {
		sc, err = Parse(assets.DefaultScenarioYAML)
	} else {
		sc, err = Load(*scenarioPath)
	}
	if err != nil {
		log.Fatalf("Failed to load scenario: %v", err)
	}
	if !runScenario(sc, logger) {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func runScenario(sc *Scenario, logger *slog.Logger) bool {
	log.Printf("=== Scenario: %s ===", sc.Name)
	if sc.Description != "" {
		log.Printf("Description: %s", strings.TrimSpace(sc.Description))
	}

	cfg := config.DefaultConfig()
	sc.Config.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		log.Printf("✗ invalid config: %v", err)
		return false
	}

	fsm := focus.NewSessionFSM(logger, cfg, nil, focus.ActionCallbacks{
		RequestCaptureAccess: func(result func(granted bool)) { result(true) },
	})
	defer fsm.Close()

	sim := presence.NewSimulator(logger, nil, 0, fsm)
	sim.Start()
	defer sim.Stop()

	fsm.AddListener(func(prev, next focus.SessionState) {
		if verbose {
			log.Printf("  state %s -> %s", prev, next)
		}
	})

	if d := sc.Config.SessionDuration(); d > 0 {
		fsm.SetCustomDuration(d)
	}

	start := time.Now()
	for _, step := range sc.Steps {
		at := time.Duration(step.AtMs) * time.Millisecond
		if wait := at - time.Since(start); wait > 0 {
			time.Sleep(wait)
		}
		if err := applyStep(fsm, sim, step); err != nil {
			log.Printf("✗ %v", err)
			return false
		}
		if verbose {
			log.Printf("  %5dms %s", step.AtMs, describeStep(step))
		}
	}

	// Let in-flight events and timers settle.
	time.Sleep(200 * time.Millisecond)

	return checkExpectations(sc.Expect, fsm)
}

func applyStep(fsm *focus.SessionFSM, sim *presence.Simulator, step Step) error {
	switch step.Presence {
	case "", "detected", "absent":
	default:
		return fmt.Errorf("unknown presence %q at %dms", step.Presence, step.AtMs)
	}
	if step.Presence != "" {
		sim.SetDetected(step.Presence == "detected")
	}
	switch step.Action {
	case "":
	case "start", "stop", "toggle":
		fsm.ToggleStartStop()
	case "background":
		fsm.AppBackgrounded()
	case "foreground":
		fsm.AppForegrounded()
	case "warning_on":
		fsm.SetWarningMode(true)
	case "warning_off":
		fsm.SetWarningMode(false)
	default:
		return fmt.Errorf("unknown action %q at %dms", step.Action, step.AtMs)
	}
	return nil
}

func describeStep(step Step) string {
	parts := make([]string, 0, 2)
	if step.Presence != "" {
		parts = append(parts, "presence="+step.Presence)
	}
	if step.Action != "" {
		parts = append(parts, "action="+step.Action)
	}
	if len(parts) == 0 {
		return "noop"
	}
	return strings.Join(parts, " ")
}

func checkExpectations(exp Expect, fsm *focus.SessionFSM) bool {
	snap := fsm.Snapshot()
	records := fsm.Records()
	allPassed := true
	if exp.FinalState != "" && snap.State.String() != exp.FinalState {
		log.Printf("  ✗ final state %s, want %s", snap.State, exp.FinalState)
		allPassed = false
	}
	if exp.RecordedSessions != nil && len(records) != *exp.RecordedSessions {
		log.Printf("  ✗ recorded %d sessions, want %d", len(records), *exp.RecordedSessions)
		allPassed = false
	}
	if exp.TotalInterruptions != nil && snap.Stats.Interruptions != *exp.TotalInterruptions {
		log.Printf("  ✗ %d interruptions, want %d", snap.Stats.Interruptions, *exp.TotalInterruptions)
		allPassed = false
	}
	for _, r := range records {
		if exp.MinScore != nil && r.Score < *exp.MinScore {
			log.Printf("  ✗ record %s score %d below %d", r.ID, r.Score, *exp.MinScore)
			allPassed = false
		}
		if exp.MaxScore != nil && r.Score > *exp.MaxScore {
			log.Printf("  ✗ record %s score %d above %d", r.ID, r.Score, *exp.MaxScore)
			allPassed = false
		}
	}
	if allPassed {
		log.Printf("✓ Expectations passed")
	}
	return allPassed
}
