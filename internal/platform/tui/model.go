package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// Game is the contract between a game and the terminal driver.
// Games contain pure logic with no Bubble Tea dependency; the driver
// handles input mapping, timing and painting.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	// PreferredLevel is the level saved for the next run.
	PreferredLevel() int
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	width      int
	height     int
	ticking    bool // false once the session ended; no tick is in flight
	quitting   bool
}

// NewModel creates a model and resets the game. A nil logger discards output.
func NewModel(game Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sessionID := uuid.NewString()
	h := help.New()
	h.ShowAll = false

	m := Model{
		game:       game,
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger.With("session", sessionID),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		ticking:    true,
	}
	m.screen = core.NewScreen(m.playArea())

	game.Reset(cfg)
	m.gameState = game.State()
	m.logger.Info("session started", "game", game.ID(), "seed", cfg.Seed, "fps", cfg.TickRate)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.playArea())
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.ticking = false
		m.savePreferences()
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}

	m.inputFrame.Set(action)
	if m.ticking {
		return m, nil
	}

	// The loop is stopped after game over. Level changes apply right away;
	// start and restart bring the loop back.
	switch action {
	case core.ActionStart, core.ActionRestart:
		m.ticking = true
		return m, tickCmd(m.config.TickRate)
	case core.ActionLevelUp, core.ActionLevelDown:
		m.step()
	default:
		m.inputFrame.Clear()
	}
	return m, nil
}

// handleResize adapts the screen buffer without touching the game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(m.playArea())
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.ticking || m.quitting {
		return m, nil
	}

	m.step()
	if m.gameState.GameOver {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// step runs one simulation frame with the pending input and logs what changed.
func (m *Model) step() {
	wasOver := m.gameState.GameOver
	wasRunning := m.gameState.Running

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State
	st := result.State

	if st.Running && !wasRunning {
		m.logger.Info("game started", "level", st.Level)
	}
	if result.Cleared > 0 {
		m.logger.Info("lines cleared", "count", result.Cleared, "lines", st.Lines, "score", st.Score)
	}
	if result.LevelChanged {
		m.logger.Info("level changed", "level", st.Level)
	}
	if st.GameOver && !wasOver {
		m.logger.Info("game over", "score", st.Score, "lines", st.Lines, "level", st.Level)
	}
}

// savePreferences stores the level to offer next time. Failures are logged.
func (m Model) savePreferences() {
	if m.store == nil {
		return
	}
	prefs := storage.Preferences{
		StartLevel: m.game.PreferredLevel(),
		TickRate:   m.config.TickRate,
	}
	if err := m.store.SavePreferences(prefs); err != nil {
		m.logger.Warn("could not save preferences", "error", err)
	}
}

// playArea is the screen size left for the game once the help view is placed.
func (m Model) playArea() (int, int) {
	h := m.height - lipgloss.Height(m.help.View(m.keys))
	return m.width, max(h, 0)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for game.
func Run(game Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
