package config

import (
	_ "embed"
)

//go:embed defaults/invasion.yaml
var defaultRulesYAML []byte

// DefaultRules returns the built-in rules.
func DefaultRules() Rules {
	return Rules{
		InitialInterval: 600,
		LevelUpScore:    20,
		SpeedStep:       50,
		EndThreshold:    15,
		Width:           30,
	}
}

// DefaultYAML returns the embedded default rules file.
func DefaultYAML() []byte {
	return defaultRulesYAML
}
