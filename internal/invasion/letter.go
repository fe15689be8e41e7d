// Package invasion implements Alphabet Invasion: letters spawn on a timer
// that speeds up with every level, and the player clears them by typing.
//
// The game is a composition of two push sources, the timer-driven letter
// stream and the key stream, paired by latest value and folded through a
// pure reducer. It holds no external dependencies beyond the stream
// primitives so the whole loop can run on a virtual clock in tests.
package invasion

import (
	"math/rand"
	"time"
)

// Letter is one falling character.
type Letter struct {
	Char   rune // Lowercase letter to type
	Column int  // Horizontal position in [0, width)
}

// LetterBatch is what the letter stream emits on every tick.
type LetterBatch struct {
	Interval int      // Spawn interval (ms) of the timer that produced this batch
	Letters  []Letter // Newest first
}

// LetterSource generates random letters at random columns.
type LetterSource struct {
	rng   *rand.Rand
	width int
}

// NewLetterSource creates a generator for a playfield of the given width.
// A zero seed picks one from the current time.
func NewLetterSource(seed int64, width int) *LetterSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if width < 1 {
		width = 1
	}
	return &LetterSource{
		rng:   rand.New(rand.NewSource(seed)),
		width: width,
	}
}

// Next returns a letter drawn uniformly from a-z at a uniform column.
func (s *LetterSource) Next() Letter {
	return Letter{
		Char:   rune('a' + s.rng.Intn(26)),
		Column: s.rng.Intn(s.width),
	}
}
