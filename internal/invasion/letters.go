package invasion

import (
	"time"

	"github.com/vovakirdan/alphabet-invasion/internal/stream"
)

// LetterStream spawns one letter per timer tick and emits the accumulated
// batch. The timer follows a SpawnRate: every rate change cancels the
// running timer, resets the batch and arms a new timer at the new rate.
type LetterStream struct {
	source      *LetterSource
	timer       *stream.Restartable
	batch       LetterBatch
	emit        func(LetterBatch)
	unsubscribe func()
}

// NewLetterStream creates a stream that arms its timers on sched.
func NewLetterStream(sched stream.Scheduler, source *LetterSource) *LetterStream {
	return &LetterStream{
		source: source,
		timer:  stream.NewRestartable(sched),
	}
}

// Start follows rate and sends every batch to emit.
func (s *LetterStream) Start(rate *SpawnRate, emit func(LetterBatch)) {
	s.Stop()
	s.emit = emit
	s.unsubscribe = rate.Subscribe(s.restart)
}

// Stop cancels the timer and detaches from the rate.
func (s *LetterStream) Stop() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	s.timer.Stop()
	s.emit = nil
}

// Settle replaces the letters the next tick builds on.
func (s *LetterStream) Settle(letters []Letter) {
	s.batch.Letters = letters
}

// Batch returns the current accumulated batch.
func (s *LetterStream) Batch() LetterBatch {
	return s.batch
}

// Running reports whether a spawn timer is armed.
func (s *LetterStream) Running() bool {
	return s.timer.Active()
}

func (s *LetterStream) restart(interval int) {
	s.batch = LetterBatch{Interval: interval}
	s.timer.Restart(time.Duration(interval)*time.Millisecond, s.tick)
}

func (s *LetterStream) tick() {
	letters := make([]Letter, 0, len(s.batch.Letters)+1)
	letters = append(letters, s.source.Next())
	letters = append(letters, s.batch.Letters...)
	s.batch = LetterBatch{Interval: s.batch.Interval, Letters: letters}
	if s.emit != nil {
		s.emit(s.batch)
	}
}
