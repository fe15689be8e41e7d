// Package tui provides the Bubble Tea integration for the game.
// Bubble Tea's update loop is the single event loop the game runs on:
// key presses and timer ticks both arrive as messages and are handled one
// at a time.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/alphabet-invasion/internal/stream"
)

// timerMsg is sent when a scheduled timer's period elapses.
type timerMsg struct {
	id int
}

// Scheduler implements stream.Scheduler on top of tea.Tick. Timers are
// armed by queueing tick commands which the model returns from Update;
// a tick for a canceled timer is dropped when it arrives.
type Scheduler struct {
	nextID  int
	timers  map[int]*teaTimer
	pending []tea.Cmd
}

type teaTimer struct {
	period time.Duration
	fire   func()
}

var _ stream.Scheduler = (*Scheduler)(nil)

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{timers: make(map[int]*teaTimer)}
}

// Every arms a repeating timer. The first tick is queued immediately and
// reaches Bubble Tea with the next Flush.
func (s *Scheduler) Every(interval time.Duration, fire func()) func() {
	s.nextID++
	id := s.nextID
	s.timers[id] = &teaTimer{period: stream.Period(interval), fire: fire}
	s.arm(id)
	return func() {
		delete(s.timers, id)
	}
}

// Handle delivers a timer message. It reports false for ticks of canceled
// timers, which are dropped.
func (s *Scheduler) Handle(msg timerMsg) bool {
	t, ok := s.timers[msg.id]
	if !ok {
		return false
	}
	t.fire()
	// fire may have canceled the timer
	if _, ok := s.timers[msg.id]; ok {
		s.arm(msg.id)
	}
	return true
}

// Flush returns the queued tick commands as one command.
func (s *Scheduler) Flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Active returns the number of armed timers.
func (s *Scheduler) Active() int {
	return len(s.timers)
}

func (s *Scheduler) arm(id int) {
	period := s.timers[id].period
	s.pending = append(s.pending, tea.Tick(period, func(time.Time) tea.Msg {
		return timerMsg{id: id}
	}))
}
