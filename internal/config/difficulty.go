package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// InitialIntervalForPreset returns the starting spawn interval for a preset.
func InitialIntervalForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 800
	case DifficultyHard:
		return 450
	default:
		return 600
	}
}

// ApplyPreset modifies the rules based on a difficulty preset.
// An empty preset leaves the rules untouched.
func ApplyPreset(r *Rules, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	r.InitialInterval = InitialIntervalForPreset(preset)
}
