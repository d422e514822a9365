package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/simon"
	"github.com/vovakirdan/tui-simon/internal/storage"
)

// Model is the Bubble Tea model for a Simon board.
// The engine runs on the Bubble Tea update goroutine: keys are forwarded to
// it as they arrive and ticks advance its clock by real elapsed time.
type Model struct {
	engine   *simon.Engine
	hud      *hud
	store    *storage.Store
	config   core.RuntimeConfig
	seed     int64
	keys     *KeyMapper
	help     help.Model
	logger   *log.Logger
	lastTick time.Time

	scoreboard ScoreboardModel
	showScores bool
	quitting   bool
}

// NewModel creates a board for one player. store may be nil, in which case
// nothing is persisted.
func NewModel(settings simon.Settings, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := cfg.ResolveSeed()
	h := newHUD()

	engine := simon.New(settings,
		simon.WithDisplay(h),
		simon.WithListener(h),
		simon.WithHighScores(storage.HighScores{Store: store}),
		simon.WithSeed(seed),
		simon.WithLogger(logger),
	)

	hp := help.New()
	hp.Width = cfg.ScreenW

	return Model{
		engine: engine,
		hud:    h,
		store:  store,
		config: cfg,
		seed:   seed,
		keys:   NewKeyMapper(),
		help:   hp,
		logger: logger,
	}
}

// Engine exposes the game engine, mainly for tests.
func (m Model) Engine() *simon.Engine {
	return m.engine
}

// Init starts the tick loop. The game itself waits for the start key.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showScores {
			return m.updateScoreboard(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		if m.showScores {
			return m.updateScoreboard(msg)
		}
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input on the board.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionStart:
		m.engine.Start()
	case core.ActionRestart:
		m.engine.Restart()
	case core.ActionScoreboard:
		// Only between games; a running round keeps its clock going
		if !m.engine.State().Running() {
			m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
			m.showScores = true
		}
	default:
		if sig, ok := SignalFor(action); ok {
			m.engine.Select(sig)
		}
	}

	m.recordFinishedGame()
	return m, nil
}

func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.scoreboard, cmd = m.scoreboard.Update(msg)

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		m.showScores = false
	}
	return m, cmd
}

// handleTick advances the game clock by the time since the last tick.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	now := time.Time(msg)
	m.engine.Advance(frameDelta(m.lastTick, now))
	m.lastTick = now

	return m, tickCmd(m.config.TickInterval())
}

// recordFinishedGame stores the game that just ended, once.
func (m Model) recordFinishedGame() {
	final, ok := m.hud.takeFinished()
	if !ok || m.store == nil {
		return
	}

	s := m.engine.Session()
	rec := storage.GameRecord{
		SessionID: s.ID,
		Score:     final,
		Sequence:  s.Sequence().String(),
		Preset:    m.config.Preset,
		Seed:      m.seed,
		Player:    m.config.Player,
		StartedAt: s.StartedAt,
		EndedAt:   time.Now(),
	}
	if _, err := m.store.SaveGame(rec); err != nil {
		m.logger.Warn("could not save game", "session", s.ID, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showScores {
		return m.scoreboard.View()
	}
	return renderBoard(m.engine.Snapshot(), m.hud, m.help.View(m.keys.Keys()), m.config.ScreenW, m.config.ScreenH)
}

// Run starts the Bubble Tea program with a new board.
func Run(settings simon.Settings, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(settings, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
