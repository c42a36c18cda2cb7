package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cat-and-mouse/internal/config"
	"github.com/vovakirdan/cat-and-mouse/internal/core"
	"github.com/vovakirdan/cat-and-mouse/internal/storage"
)

// stubGame records inputs and scores one point per step with MoveRight.
type stubGame struct {
	score    int
	resets   int
	seeds    []int64
	frames   []core.InputFrame
	lastCfg  *config.CatMouseConfig
	stopNext bool
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(rc core.RuntimeConfig) {
	g.resets++
	g.score = 0
	g.seeds = append(g.seeds, rc.Seed)
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	if in.Has(core.ActionMoveRight) {
		g.score++
	}
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(dst *core.Screen) { dst.Clear() }

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.stopNext}
}

func (g *stubGame) SetConfig(cfg config.CatMouseConfig) { g.lastCfg = &cfg }

func (g *stubGame) Summary() (int, float64, int) { return g.score / 10, float64(g.score) * 5, len(g.frames) }

type fakeAudio struct{ music, sounds int }

func (a *fakeAudio) ToggleMusic() bool  { a.music++; return a.music%2 == 0 }
func (a *fakeAudio) ToggleSounds() bool { a.sounds++; return a.sounds%2 == 0 }

func newTestModel(t *testing.T, g *stubGame, opts Options) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 7}
	m := NewModel(g, cfg, opts)
	m.game.Reset(m.config)
	return m
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelHeldMovementReachesGame(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, Options{})

	m = step(t, m, runeKey('d'))
	for i := 0; i < 3; i++ {
		m = step(t, m, TickMsg{})
	}

	if g.score != 3 {
		t.Errorf("score = %d, want 3 (right held for three ticks)", g.score)
	}
	for i, f := range g.frames {
		if !f.Has(core.ActionMoveRight) {
			t.Errorf("frame %d missing MoveRight", i)
		}
	}
}

func TestModelOneShotActionsCleared(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, Options{})

	m = step(t, m, runeKey('h'))
	m = step(t, m, TickMsg{})
	m = step(t, m, TickMsg{})

	if len(g.frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(g.frames))
	}
	if !g.frames[0].Has(core.ActionToggleHitboxes) {
		t.Error("first frame should carry the toggle")
	}
	if g.frames[1].Has(core.ActionToggleHitboxes) {
		t.Error("toggle should not repeat on the next frame")
	}
}

func TestModelAudioToggles(t *testing.T) {
	g := &stubGame{}
	a := &fakeAudio{}
	m := newTestModel(t, g, Options{Audio: a})

	m = step(t, m, runeKey('m'))
	m = step(t, m, runeKey('n'))
	m = step(t, m, runeKey('n'))

	if a.music != 1 || a.sounds != 2 {
		t.Errorf("toggles = (%d, %d), want (1, 2)", a.music, a.sounds)
	}

	// No audio is not an error.
	m2 := newTestModel(t, &stubGame{}, Options{})
	step(t, m2, runeKey('m'))
}

func TestModelRestartSavesRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &stubGame{}
	m := newTestModel(t, g, Options{Store: store, FixedSeed: true})

	m = step(t, m, runeKey('d'))
	for i := 0; i < 20; i++ {
		m = step(t, m, TickMsg{})
	}
	m = step(t, m, runeKey('r'))

	runs, err := store.TopRuns("stub", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(runs))
	}
	if runs[0].Score != 20 || runs[0].Mice != 2 || runs[0].Distance != 100 || runs[0].Seed != 7 {
		t.Errorf("unexpected run: %+v", runs[0])
	}
	if g.score != 0 || g.seeds[len(g.seeds)-1] != 7 {
		t.Errorf("restart should reset with the fixed seed, seeds=%v", g.seeds)
	}
	if m.hold.Held() != core.ActionNone {
		t.Error("restart should release held movement")
	}

	// A zero-score quit is not recorded.
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Error("quit should return tea.Quit")
	}
	if !next.(Model).quitting {
		t.Error("model should be quitting")
	}
	runs, _ = store.TopRuns("stub", 10)
	if len(runs) != 1 {
		t.Errorf("zero score run should not be saved, got %d runs", len(runs))
	}
}

func TestModelBackGoesToMenu(t *testing.T) {
	m := newTestModel(t, &stubGame{}, Options{})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.GoingBack() {
		t.Error("esc should return to the menu")
	}
	if m.View() != "" {
		t.Error("view should be empty when leaving")
	}
}

func TestModelConfigReload(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, Options{})
	resets := g.resets

	cfg := config.DefaultCatMouseConfig()
	cfg.Score.MousePoints = 25
	m = step(t, m, ConfigMsg{Config: cfg})

	if g.lastCfg == nil || g.lastCfg.Score.MousePoints != 25 {
		t.Fatal("reloaded config not applied")
	}
	if g.resets != resets+1 {
		t.Error("reload should start a fresh run")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, Options{})
	resets := g.resets

	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, want 100x30", m.screen.Width(), m.screen.Height())
	}
	if g.resets != resets {
		t.Error("resize should not reset the run")
	}
}
