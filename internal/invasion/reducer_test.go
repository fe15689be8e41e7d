package invasion

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/alphabet-invasion/internal/config"
)

func letters(s string) []Letter {
	out := make([]Letter, 0, len(s))
	for i, r := range s {
		out = append(out, Letter{Char: r, Column: i})
	}
	return out
}

func TestReduceMatchClearsNewestLetter(t *testing.T) {
	rules := config.DefaultRules()
	state := State{Score: 3, Level: 1, Letters: letters("bc")}
	batch := LetterBatch{Interval: 600, Letters: letters("qbc")}

	next, effect := Reduce(rules, state, "q", batch)

	assert.Equal(t, 4, next.Score)
	assert.Equal(t, 1, next.Level)
	assert.Equal(t, []Letter{{Char: 'b', Column: 1}, {Char: 'c', Column: 2}}, next.Letters)
	assert.False(t, effect.RateChanged)
	assert.Equal(t, letters("qbc"), batch.Letters, "the batch must not be modified")
}

func TestReduceOnlyNewestLetterMatches(t *testing.T) {
	rules := config.DefaultRules()
	batch := LetterBatch{Interval: 600, Letters: letters("abc")}

	next, _ := Reduce(rules, InitialState(), "c", batch)

	assert.Zero(t, next.Score, "older letters cannot be cleared")
	assert.Equal(t, batch.Letters, next.Letters)
}

func TestReduceMismatchKeepsScore(t *testing.T) {
	rules := config.DefaultRules()

	tests := []struct {
		name string
		key  string
	}{
		{"wrong letter", "x"},
		{"no key", NoKey},
		{"named key", "enter"},
		{"uppercase", "Q"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			state := State{Score: 5, Level: 2, Letters: letters("q")}
			batch := LetterBatch{Interval: 550, Letters: letters("qr")}

			next, effect := Reduce(rules, state, tc.key, batch)

			assert.Equal(t, 5, next.Score)
			assert.Equal(t, 2, next.Level)
			assert.Equal(t, batch.Letters, next.Letters)
			assert.False(t, effect.RateChanged)
		})
	}
}

func TestReduceEmptyBatch(t *testing.T) {
	next, effect := Reduce(config.DefaultRules(), InitialState(), "a", LetterBatch{Interval: 600})

	assert.Equal(t, InitialState(), next)
	assert.False(t, effect.RateChanged)
}

func TestReduceFirstMatchScenario(t *testing.T) {
	batch := LetterBatch{Interval: 600, Letters: []Letter{{Char: 'q', Column: 12}}}

	next, _ := Reduce(config.DefaultRules(), InitialState(), "q", batch)

	assert.Equal(t, State{Score: 1, Level: 1, Letters: []Letter{}}, next)
}

func TestReduceLevelUp(t *testing.T) {
	rules := config.DefaultRules()
	state := State{Score: 19, Level: 1, Letters: letters("a")}
	batch := LetterBatch{Interval: 600, Letters: letters("za")}

	next, effect := Reduce(rules, state, "z", batch)

	assert.Equal(t, State{Score: 21, Level: 2, Letters: []Letter{}}, next)
	assert.Equal(t, Effect{RateChanged: true, Rate: 550}, effect)
}

func TestReduceLevelUpHasNoFloor(t *testing.T) {
	rules := config.DefaultRules()
	state := State{Score: 259, Level: 13}
	batch := LetterBatch{Interval: 0, Letters: letters("k")}

	_, effect := Reduce(rules, state, "k", batch)

	require.True(t, effect.RateChanged)
	assert.Equal(t, -50, effect.Rate)
}

func TestReduceProperties(t *testing.T) {
	rules := config.DefaultRules()
	rng := rand.New(rand.NewSource(7))
	state := InitialState()
	pool := []Letter{}
	interval := rules.InitialInterval

	for i := 0; i < 5000; i++ {
		// grow the field like the letter stream would
		if rng.Intn(2) == 0 {
			pool = append([]Letter{{Char: rune('a' + rng.Intn(26)), Column: rng.Intn(rules.Width)}}, pool...)
		}
		batch := LetterBatch{Interval: interval, Letters: pool}

		key := string(rune('a' + rng.Intn(26)))
		if len(pool) > 0 && rng.Intn(3) > 0 {
			key = string(pool[0].Char)
		}

		next, effect := Reduce(rules, state, key, batch)

		require.GreaterOrEqual(t, next.Score, state.Score, "score must not decrease")
		require.GreaterOrEqual(t, next.Level, state.Level, "level must not decrease")

		if next.Level != state.Level {
			require.Equal(t, state.Level+1, next.Level)
			require.Equal(t, 1, next.Score%rules.LevelUpScore, "level-up adds a bonus point")
			require.Empty(t, next.Letters)
			require.True(t, effect.RateChanged)
			require.Equal(t, interval-rules.SpeedStep, effect.Rate)
			interval = effect.Rate
		} else {
			require.False(t, effect.RateChanged)
			if next.Score == state.Score {
				require.Equal(t, pool, next.Letters)
			} else {
				require.Equal(t, state.Score+1, next.Score)
				require.Equal(t, pool[1:], next.Letters)
			}
		}

		state = next
		pool = next.Letters
	}

	assert.Greater(t, state.Level, 1, "the run should have levelled up")
}

func TestOver(t *testing.T) {
	rules := config.DefaultRules()

	assert.False(t, Over(rules, State{Letters: make([]Letter, 14)}))
	assert.True(t, Over(rules, State{Letters: make([]Letter, 15)}))
	assert.True(t, Over(rules, State{Letters: make([]Letter, 16)}))
}
