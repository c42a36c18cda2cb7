package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cat-and-mouse/internal/config"
	"github.com/vovakirdan/cat-and-mouse/internal/core"
	"github.com/vovakirdan/cat-and-mouse/internal/registry"
	"github.com/vovakirdan/cat-and-mouse/internal/storage"
)

// Audio is the part of the sound manager the terminal front-end drives.
type Audio interface {
	ToggleMusic() bool
	ToggleSounds() bool
}

// configurable games accept a reloaded configuration.
type configurable interface {
	SetConfig(cfg config.CatMouseConfig)
}

// summarizer games report run totals for the scoreboard.
type summarizer interface {
	Summary() (mice int, distance float64, ticks int)
}

// Options carries the optional collaborators of a play session.
type Options struct {
	Store     *storage.Store  // nil disables the scoreboard
	Audio     Audio           // nil disables the M/N toggles
	Watcher   *config.Watcher // nil disables live config reload
	Logger    *log.Logger
	FixedSeed bool // keep the seed on restart instead of drawing a new one
}

// ConfigMsg delivers a reloaded configuration from the watcher.
type ConfigMsg struct {
	Config config.CatMouseConfig
}

// ConfigErrMsg delivers a watcher error.
type ConfigErrMsg struct {
	Err error
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	hold       HoldLatch
	gameState  core.GameState
	quitting   bool
	back       bool // Esc pressed: return to the menu
	scoreSaved bool // Whether the current run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		hold:       NewHoldLatch(cfg.TickRate),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.opts.Watcher != nil {
		cmds = append(cmds, waitForConfig(m.opts.Watcher))
	}
	return tea.Batch(cmds...)
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

	case ConfigMsg:
		return m.handleConfig(msg)

	case ConfigErrMsg:
		m.opts.Logger.Warn("config reload failed", "err", msg.Err)
		return m, waitForConfig(m.opts.Watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionMoveLeft, core.ActionMoveRight:
		m.hold.Press(action)
	case core.ActionToggleMusic:
		if m.opts.Audio != nil {
			m.opts.Audio.ToggleMusic()
		}
	case core.ActionToggleSound:
		if m.opts.Audio != nil {
			m.opts.Audio.ToggleSounds()
		}
	case core.ActionRestart:
		m.restart()
	case core.ActionBack:
		m.saveRun()
		m.back = true
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The renderer scales the world to the screen, so the run is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.hold.Apply(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	if m.gameState.GameOver {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// handleConfig applies a reloaded configuration and starts a fresh run.
func (m Model) handleConfig(msg ConfigMsg) (tea.Model, tea.Cmd) {
	if c, ok := m.game.(configurable); ok {
		m.saveRun()
		c.SetConfig(msg.Config)
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.opts.Logger.Info("config reloaded")
	}
	return m, waitForConfig(m.opts.Watcher)
}

// restart records the current run and begins a new one.
func (m *Model) restart() {
	m.saveRun()
	if !m.opts.FixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.hold.Release()
	m.inputFrame.Clear()
	m.scoreSaved = false
}

// saveRun records the current run once, if it scored anything.
func (m *Model) saveRun() {
	if m.scoreSaved || m.opts.Store == nil {
		return
	}
	state := m.game.State()
	if state.Score <= 0 {
		return
	}

	run := storage.RunResult{
		GameID: m.game.ID(),
		Score:  state.Score,
		Seed:   m.config.Seed,
	}
	if s, ok := m.game.(summarizer); ok {
		run.Mice, run.Distance, run.Ticks = s.Summary()
	}

	if _, err := m.opts.Store.SaveRun(run); err != nil {
		m.opts.Logger.Warn("cannot save run", "err", err)
		return
	}
	m.scoreSaved = true
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(config.UserDir(), "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// GoingBack reports whether the session ended with a return to the menu.
func (m Model) GoingBack() bool {
	return m.back
}

// Run starts the Bubble Tea program for the game.
// Returns true if the player asked to go back to the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (goBack bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.GoingBack(), nil
}
