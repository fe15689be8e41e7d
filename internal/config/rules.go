// Package config provides YAML-based rules loading, difficulty presets and
// environment-based server configuration for the game.
package config

import "fmt"

// Rules contains the tunable constants of a game.
type Rules struct {
	// InitialInterval is the spawn interval in milliseconds at level 1.
	InitialInterval int `yaml:"initial_interval"`
	// LevelUpScore is the score multiple that triggers a level-up.
	LevelUpScore int `yaml:"level_up_score"`
	// SpeedStep is subtracted from the spawn interval on every level-up.
	SpeedStep int `yaml:"speed_step"`
	// EndThreshold is the number of falling letters that ends the game.
	EndThreshold int `yaml:"end_threshold"`
	// Width is the playfield width in columns.
	Width int `yaml:"width"`
}

// Validate reports the first rule that makes a game unplayable.
func (r Rules) Validate() error {
	switch {
	case r.InitialInterval < 1:
		return fmt.Errorf("initial_interval must be at least 1, got %d", r.InitialInterval)
	case r.LevelUpScore < 2:
		// the level-up bonus point would land on the next multiple
		return fmt.Errorf("level_up_score must be at least 2, got %d", r.LevelUpScore)
	case r.SpeedStep < 1:
		return fmt.Errorf("speed_step must be at least 1, got %d", r.SpeedStep)
	case r.EndThreshold < 1:
		return fmt.Errorf("end_threshold must be at least 1, got %d", r.EndThreshold)
	case r.Width < 1:
		return fmt.Errorf("width must be at least 1, got %d", r.Width)
	}
	return nil
}

// IntervalAt returns the spawn interval in effect at the given level.
// No floor is applied; the result can reach zero or go negative.
func (r Rules) IntervalAt(level int) int {
	if level < 1 {
		level = 1
	}
	return r.InitialInterval - (level-1)*r.SpeedStep
}
