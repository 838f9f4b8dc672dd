package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/engine"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// maxStep caps a single simulation step so a stalled terminal does not
// teleport entities through each other.
const maxStep = 250 * time.Millisecond

// Model is the Bubble Tea model for one game session.
type Model struct {
	game     *engine.Game
	store    *storage.Store
	screen   *core.Screen
	field    *FieldRenderer
	scores   *HiScoresView
	keys     KeyMap
	latch    *KeyLatch
	config   core.RuntimeConfig
	logger   *log.Logger
	last     time.Time
	state    engine.State
	high     int
	quitting bool
}

// NewModel creates a model driving game. store may be nil.
func NewModel(game *engine.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	keys := DefaultKeyMap()
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)

	m := Model{
		game:   game,
		store:  store,
		screen: screen,
		field:  NewFieldRenderer(screen),
		scores: NewHiScoresView(store, keys, cfg.ScreenW, cfg.ScreenH),
		keys:   keys,
		latch:  NewKeyLatch(cfg.Hold),
		config: cfg,
		logger: logger,
		state:  game.State(),
	}
	m.high = m.highScore()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.state == engine.StateHiScores {
		if cmd := m.scores.Update(msg); cmd != nil {
			return m, cmd
		}
	}

	m.latch.Press(action, time.Now())
	return m, nil
}

// handleResize processes window resize events. The field is scaled, so the
// simulation is unaffected.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.scores.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by the wall time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.config.TickInterval()
	if !m.last.IsZero() {
		dt = min(now.Sub(m.last), maxStep)
	}
	m.last = now

	frame := m.latch.Frame(now)
	m.game.Step(float64(dt)/float64(time.Millisecond), &frame)
	m.latch.Sync(frame)

	if st := m.game.State(); st != m.state {
		switch st {
		case engine.StateHiScores:
			m.scores.Refresh()
		case engine.StateGameOver:
			m.high = m.highScore()
		}
		m.state = st
	}

	return m, tickCmd(m.config.TickInterval())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == engine.StateHiScores {
		return m.scores.View()
	}

	m.field.Render(m.game.Snapshot(), m.high)
	return RenderScreen(m.screen)
}

func (m Model) highScore() int {
	if m.store == nil {
		return 0
	}
	high, err := m.store.HighScore()
	if err != nil {
		m.logger.Warn("could not read high score", "err", err)
		return 0
	}
	return high
}

// IsQuitting returns true once the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// ScoreRecorder returns a game-over handler saving each finished run to
// store under player. Failures are logged and otherwise ignored.
func ScoreRecorder(store *storage.Store, player string, logger *log.Logger) func(engine.Session) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return func(s engine.Session) {
		if store == nil {
			return
		}
		if _, err := store.SaveScore(player, s.Score, s.Level); err != nil {
			logger.Warn("could not save score", "player", player, "score", s.Score, "err", err)
			return
		}
		logger.Debug("score saved", "player", player, "score", s.Score)
	}
}

// Run starts the Bubble Tea program for game on the local terminal.
func Run(game *engine.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
