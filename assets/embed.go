package assets

import (
	_ "embed"
)

// DefaultScenarioYAML contains the built-in simulation scenario used when no
// scenario file is given.
//
//go:embed default_scenario.yaml
var DefaultScenarioYAML []byte
