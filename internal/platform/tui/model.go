package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alphabet-invasion/internal/config"
	"github.com/vovakirdan/alphabet-invasion/internal/core"
	"github.com/vovakirdan/alphabet-invasion/internal/invasion"
	"github.com/vovakirdan/alphabet-invasion/internal/stream"
)

// session holds what the game's observer writes to. It lives behind a
// pointer because Bubble Tea copies the model on every update.
type session struct {
	rules config.Rules
	game  *invasion.Game
	frame *core.Screen
	state invasion.State
	over  bool
	games int
}

// render is the game's Next handler.
func (s *session) render(state invasion.State) {
	s.state = state
	RenderState(s.frame, state, s.rules)
}

// gameOver is the game's Complete handler.
func (s *session) gameOver() {
	s.over = true
}

// ignoreError is the game's Error handler. The game logs failures itself
// and the last frame stays on screen.
func (s *session) ignoreError(error) {}

// Model is the Bubble Tea model for one player.
type Model struct {
	rules    config.Rules
	config   core.RuntimeConfig
	sched    *Scheduler
	sess     *session
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	width    int
	height   int
	quitting bool
}

// NewModel creates a model that plays with the given rules.
func NewModel(rules config.Rules, cfg core.RuntimeConfig, logger *log.Logger) Model {
	w, h := FrameSize(rules)
	return Model{
		rules:  rules,
		config: cfg,
		sched:  NewScheduler(),
		sess: &session{
			rules: rules,
			frame: core.NewScreen(w, h),
		},
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
}

// Init starts the first game.
func (m Model) Init() tea.Cmd {
	m.startGame()
	return m.sched.Flush()
}

// startGame replaces the session's game with a fresh one.
func (m Model) startGame() {
	// Only the first game honors a fixed seed; replays get fresh letters
	seed := m.config.Seed
	if m.sess.games > 0 {
		seed = 0
	}
	if m.sess.game != nil {
		m.sess.game.Stop()
	}

	g := invasion.NewGame(m.rules, m.sched, seed, invasion.WithLogger(m.logger))
	m.sess.game = g
	m.sess.over = false
	m.sess.games++
	m.sess.render(invasion.InitialState())

	g.Subscribe(stream.Observer[invasion.State]{
		Next:     m.sess.render,
		Error:    m.sess.ignoreError,
		Complete: m.sess.gameOver,
	})
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case timerMsg:
		m.sched.Handle(msg)
	}

	return m, m.sched.Flush()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.sess.game.Stop()
		m.quitting = true
		return m, tea.Quit

	case m.sess.over:
		if key.Matches(msg, m.keys.forGameOver(true).Restart) {
			m.startGame()
		}
		return m, m.sched.Flush()
	}

	//nolint:errcheck // The game is always started once Init has run
	m.sess.game.Press(msg.String())
	return m, m.sched.Flush()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	frameW, frameH := FrameSize(m.rules)
	if m.width > 0 && m.height > 0 && (m.width < frameW || m.height < frameH+2) {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", frameW, frameH+2, m.width, m.height)
	}

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.sess.frame))
	sb.WriteString("\n")
	if m.sess.over {
		sb.WriteString(gameOverStyle.Render("GAME OVER!"))
	}
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys.forGameOver(m.sess.over)))
	return sb.String()
}

// State returns the state currently on screen.
func (m Model) State() invasion.State {
	return m.sess.state
}

// GameOver reports whether the current game has ended.
func (m Model) GameOver() bool {
	return m.sess.over
}

// Run starts the Bubble Tea program for a local player.
func Run(rules config.Rules, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(rules, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
