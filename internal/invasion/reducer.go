package invasion

import "github.com/vovakirdan/alphabet-invasion/internal/config"

// State is one frame of the game as seen by the renderer.
type State struct {
	Score   int
	Level   int
	Letters []Letter // Newest first
}

// InitialState returns the state a game starts from.
func InitialState() State {
	return State{Score: 0, Level: 1, Letters: []Letter{}}
}

// Effect is a side effect requested by a reduction.
type Effect struct {
	RateChanged bool
	Rate        int // New spawn interval (ms); may be zero or negative
}

// Reduce folds one (key, batch) pairing into the state.
//
// Only the newest letter can be cleared. A score that lands on a multiple
// of rules.LevelUpScore triggers a level-up: the field is cleared, a bonus
// point is added, and the spawn interval drops by rules.SpeedStep.
func Reduce(rules config.Rules, state State, key string, batch LetterBatch) (State, Effect) {
	score := state.Score
	level := state.Level
	letters := batch.Letters

	if len(letters) > 0 && key != NoKey && string(letters[0].Char) == key {
		score++
		letters = append([]Letter(nil), letters[1:]...)
	}

	var effect Effect
	if score > 0 && score%rules.LevelUpScore == 0 {
		letters = nil
		level++
		score++
		effect = Effect{RateChanged: true, Rate: batch.Interval - rules.SpeedStep}
	}

	if letters == nil {
		letters = []Letter{}
	}
	return State{Score: score, Level: level, Letters: letters}, effect
}

// Over reports whether the state ends the game.
func Over(rules config.Rules, state State) bool {
	return len(state.Letters) >= rules.EndThreshold
}
