package invasion

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alphabet-invasion/internal/config"
	"github.com/vovakirdan/alphabet-invasion/internal/stream"
)

// ErrNotStarted is returned by Press before Subscribe.
var ErrNotStarted = errors.New("invasion: game not started")

// Status is the lifecycle of a Game.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusTerminated
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Game wires the letter stream and key stream into a sequence of states.
// All methods must be called from the event loop that delivers the
// scheduler's ticks.
type Game struct {
	rules   config.Rules
	rate    *SpawnRate
	letters *LetterStream
	keys    *KeyStream
	latest  *stream.Latest[string, LetterBatch]
	state   State
	status  Status
	steps   int
	obs     stream.Observer[State]
	logger  *log.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger for level-ups and game over.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// NewGame creates a game whose letter timers run on sched.
// seed drives letter generation; zero picks a time-based seed.
func NewGame(rules config.Rules, sched stream.Scheduler, seed int64, opts ...Option) *Game {
	g := &Game{
		rules:   rules,
		rate:    NewSpawnRate(rules.InitialInterval),
		letters: NewLetterStream(sched, NewLetterSource(seed, rules.Width)),
		keys:    &KeyStream{},
		state:   InitialState(),
	}
	g.latest = stream.NewLatest(g.step)
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	return g
}

// Subscribe starts the game and delivers every state to obs.Next.
// obs.Complete is called once, after the state that reaches the end
// threshold. Subscribe on a started game does nothing.
func (g *Game) Subscribe(obs stream.Observer[State]) {
	if g.status != StatusIdle {
		return
	}
	g.obs = obs
	g.status = StatusRunning
	g.keys.Start(g.latest.PushLeft)
	g.letters.Start(g.rate, g.latest.PushRight)
	g.logger.Debug("game started", "interval", g.rate.Read(), "width", g.rules.Width)
}

// Press forwards a key identifier to the game. Presses after termination
// are ignored.
func (g *Game) Press(key string) error {
	if g.status == StatusIdle {
		return ErrNotStarted
	}
	g.keys.Press(key)
	return nil
}

// Fail terminates a running game with an upstream error, which is
// delivered to obs.Error instead of completion.
func (g *Game) Fail(err error) {
	if g.status != StatusRunning {
		return
	}
	g.teardown()
	g.logger.Error("game failed", "error", err)
	g.obs.OnError(err)
}

// Stop terminates a running game without any terminal signal.
func (g *Game) Stop() {
	if g.status != StatusRunning {
		return
	}
	g.teardown()
}

// State returns the most recently emitted state.
func (g *Game) State() State {
	return g.state
}

// Status returns the lifecycle status.
func (g *Game) Status() Status {
	return g.status
}

// Interval returns the current spawn interval in milliseconds.
func (g *Game) Interval() int {
	return g.rate.Read()
}

// Steps returns the number of reductions performed.
func (g *Game) Steps() int {
	return g.steps
}

// step runs one reduction for a (key, batch) pairing.
func (g *Game) step(key string, batch LetterBatch) {
	if g.status != StatusRunning {
		return
	}

	next, effect := Reduce(g.rules, g.state, key, batch)
	g.state = next
	g.steps++

	if effect.RateChanged {
		// Restarts the letter timer before anything else can tick
		g.rate.Set(effect.Rate)
		g.logger.Info("level up", "level", next.Level, "score", next.Score, "interval", effect.Rate)
	}
	g.letters.Settle(next.Letters)
	g.latest.ReplaceRight(LetterBatch{Interval: batch.Interval, Letters: next.Letters})

	g.obs.OnNext(next)

	if Over(g.rules, next) {
		g.teardown()
		g.logger.Info("game over", "score", next.Score, "level", next.Level, "steps", g.steps)
		g.obs.OnComplete()
	}
}

func (g *Game) teardown() {
	g.status = StatusTerminated
	g.keys.Stop()
	g.letters.Stop()
}
