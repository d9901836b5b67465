package tui

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/tuigames/chaserun/internal/core"
	"github.com/tuigames/chaserun/internal/games/chase"
	"github.com/tuigames/chaserun/internal/registry"
	"github.com/tuigames/chaserun/internal/storage"
)

// holdTicks is how many ticks a press keeps its key "held". Terminals
// deliver repeat events but no key-up, so each repeat refreshes the
// countdown; roughly 200ms at 60 ticks covers the usual repeat delay.
const holdTicks = 12

// bestTimeSeeder is implemented by games that track a persisted best.
type bestTimeSeeder interface {
	SetBestTime(int)
}

// runStats is implemented by games that report per-run combat stats.
type runStats interface {
	Repels() int
	MaxCombo() int
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	held       map[core.Action]int
	gameState  core.GameState
	logger     *log.Logger
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the finished run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "chaserun"})

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		held:       make(map[core.Action]int),
		logger:     logger,
	}

	// Gameplay events are fire-and-forget: log and move on.
	if cg, ok := game.(*chase.Game); ok {
		cg.SetEventHandler(func(e chase.Event) {
			logger.Debug("event", "kind", e.String())
		})
	}

	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.seedBestTime()

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// seedBestTime reads the persisted best into the game. Best-effort: a
// storage failure leaves the in-memory value at zero.
func (m Model) seedBestTime() {
	seeder, ok := m.game.(bestTimeSeeder)
	if !ok || m.store == nil {
		return
	}
	if best, err := m.store.HighScore(m.game.ID()); err == nil {
		seeder.SetBestTime(best)
	}
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
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}

	// Back to menu is available once the run has ended or is paused.
	if action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, nil
	}

	m.inputFrame.Set(action)
	if m.keyMapper.Holdable(action) {
		m.held[action] = holdTicks
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Reinitialize game with new dimensions if needed
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.seedBestTime()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Decay held-key countdowns and rebuild the level-triggered set.
	for a, n := range m.held {
		if n <= 1 {
			delete(m.held, a)
			m.inputFrame.ReleaseHeld(a)
			continue
		}
		m.held[a] = n - 1
		m.inputFrame.SetHeld(a)
	}

	wasOver := m.gameState.GameOver

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Record the run once when it ends
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		m.saveRun()
		m.scoreSaved = true
	}
	if wasOver && !m.gameState.GameOver {
		// Back at the title after a restart: the next run gets its own record.
		m.scoreSaved = false
	}

	// Clear edge-triggered input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveRun persists the finished run. Failures are swallowed; the
// in-memory best stays authoritative.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
		m.logger.Debug("score save failed", "error", err)
	}
	if stats, ok := m.game.(runStats); ok {
		if _, err := m.store.SaveRun(m.game.ID(), m.gameState.Score, stats.Repels(), stats.MaxCombo()); err != nil {
			m.logger.Debug("run save failed", "error", err)
		}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
