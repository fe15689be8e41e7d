package invasion

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/alphabet-invasion/internal/config"
	"github.com/vovakirdan/alphabet-invasion/internal/stream"
)

// SimulationConfig describes a headless run with a scripted typist.
type SimulationConfig struct {
	Rules    config.Rules
	Seed     int64   // Letter and typist seed; 0 picks a time-based seed
	MaxTicks int     // Spawn ticks before the run is cut off
	Accuracy float64 // Chance in [0, 1] that the typist hits the newest letter
}

// SimulationResult summarizes a headless run.
type SimulationResult struct {
	Final     State
	States    int           // States emitted
	Ticks     int           // Spawn ticks delivered
	Completed bool          // Whether the game reached the end threshold
	Interval  int           // Spawn interval at the end of the run
	Elapsed   time.Duration // Virtual time played
}

// Simulate plays a game on a virtual clock. After every spawn tick the
// typist types the newest letter with probability Accuracy and otherwise
// misses the tick.
func Simulate(cfg SimulationConfig) SimulationResult {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	typist := rand.New(rand.NewSource(seed ^ 0x5eed))

	sched := stream.NewManualScheduler()
	game := NewGame(cfg.Rules, sched, seed)

	var res SimulationResult
	game.Subscribe(stream.Observer[State]{
		Next:     func(State) { res.States++ },
		Complete: func() { res.Completed = true },
	})

	for res.Ticks < cfg.MaxTicks && game.Status() == StatusRunning {
		if sched.AdvanceTicks(1) == 0 {
			break
		}
		res.Ticks++
		if game.Status() != StatusRunning {
			break
		}

		letters := game.State().Letters
		if len(letters) == 0 {
			continue
		}
		if typist.Float64() >= cfg.Accuracy {
			continue
		}
		_ = game.Press(string(letters[0].Char))
	}

	game.Stop()
	res.Final = game.State()
	res.Interval = game.Interval()
	res.Elapsed = sched.Now()
	return res
}
