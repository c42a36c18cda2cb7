package catmouse

import (
	"strings"
	"testing"

	"github.com/vovakirdan/cat-and-mouse/internal/config"
	"github.com/vovakirdan/cat-and-mouse/internal/core"
	"github.com/vovakirdan/cat-and-mouse/internal/games/catmouse/sim"
)

type cueRecorder struct {
	cues []core.Cue
}

func (r *cueRecorder) Play(c core.Cue) { r.cues = append(r.cues, c) }

func newTestGame(t *testing.T, seed int64) (*Game, *cueRecorder) {
	t.Helper()
	rec := &cueRecorder{}
	g := New(config.DefaultCatMouseConfig(), rec, nil)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g, rec
}

// addMouseOnPlayer places an active mouse overlapping the cat's hitbox.
func addMouseOnPlayer(g *Game) {
	hb := g.Player().Hitbox(0)
	g.World().Mice().Add(sim.NewMouse(g.World().Offset()+hb.X+5, hb.Y+16, g.cfg.Mice))
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		inputs[i] = core.NewInputFrame(core.ActionMoveRight)
		if i%30 == 0 {
			inputs[i].Set(core.ActionJump)
		}
	}

	run := func() *Game {
		g, _ := newTestGame(t, 12345)
		for _, in := range inputs {
			g.Step(in)
		}
		return g
	}

	g1, g2 := run(), run()
	if g1.State() != g2.State() {
		t.Errorf("states differ: %+v vs %+v", g1.State(), g2.State())
	}
	i1, i2 := g1.Info(), g2.Info()
	if i1 != i2 {
		t.Errorf("runs diverged:\n%+v\n%+v", i1, i2)
	}
	if i1.Offset != 900*g1.cfg.Player.Speed {
		t.Errorf("Offset = %v, want %v", i1.Offset, 900*g1.cfg.Player.Speed)
	}
}

func TestGameScoresPerMouse(t *testing.T) {
	g, rec := newTestGame(t, 1)
	points := g.cfg.Score.MousePoints

	addMouseOnPlayer(g)
	res := g.Step(core.NewInputFrame())
	if len(res.Cues) != 1 || res.Cues[0] != core.CueCollision {
		t.Fatalf("tick 1 cues = %v, want [collision]", res.Cues)
	}
	if g.State().Score != 0 {
		t.Fatalf("score should change once the caught mouse is removed, got %d", g.State().Score)
	}

	res = g.Step(core.NewInputFrame())
	if g.State().Score != points {
		t.Fatalf("Score = %d, want %d", g.State().Score, points)
	}
	if len(res.Cues) != 1 || res.Cues[0] != core.CueMouseCollect {
		t.Errorf("tick 2 cues = %v, want [mouse_collect]", res.Cues)
	}

	addMouseOnPlayer(g)
	addMouseOnPlayer(g)
	g.Step(core.NewInputFrame())
	g.Step(core.NewInputFrame())
	if g.State().Score != 3*points {
		t.Errorf("Score = %d, want %d", g.State().Score, 3*points)
	}
	if g.Info().CollectedMice != 3 {
		t.Errorf("CollectedMice = %d, want 3", g.Info().CollectedMice)
	}

	if len(rec.cues) != 4 {
		t.Errorf("played %d cues, want 4: %v", len(rec.cues), rec.cues)
	}
}

func TestGameLeftMovementClamped(t *testing.T) {
	g, _ := newTestGame(t, 1)
	left := core.NewInputFrame(core.ActionMoveLeft)

	for i := 0; i < 20; i++ {
		g.Step(left)
		if off := g.World().Offset(); off != 0 {
			t.Fatalf("offset moved to %v at the world start", off)
		}
	}

	cfg := config.DefaultCatMouseConfig()
	cfg.Player.Speed = 7
	g.SetConfig(cfg)
	g.Reset(core.RuntimeConfig{Seed: 1})
	g.Step(core.NewInputFrame(core.ActionMoveRight))
	g.Step(core.NewInputFrame(core.ActionMoveRight))
	for i := 0; i < 5; i++ {
		g.Step(left)
		if off := g.World().Offset(); off < 0 {
			t.Fatalf("offset went negative: %v", off)
		}
	}
	if off := g.World().Offset(); off != 0 {
		t.Errorf("offset = %v, want 0", off)
	}
	if g.Player().WorldX() != g.World().Offset() {
		t.Errorf("player world x %v out of sync with offset %v", g.Player().WorldX(), g.World().Offset())
	}
}

func TestGameRightWinsOverLeft(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.Step(core.NewInputFrame(core.ActionMoveLeft, core.ActionMoveRight))
	if off := g.World().Offset(); off != g.cfg.Player.Speed {
		t.Errorf("offset = %v, want %v", off, g.cfg.Player.Speed)
	}
	if !g.Player().FacingRight() {
		t.Error("cat should face right")
	}
}

func TestGamePause(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.Step(core.NewInputFrame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	y := g.Player().Y()
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame(core.ActionMoveRight))
	}
	if g.World().Offset() != 0 || g.Player().Y() != y {
		t.Error("paused game must not advance")
	}
	g.Step(core.NewInputFrame(core.ActionPause))
	if g.State().Paused {
		t.Error("expected unpaused")
	}
}

func TestGameResetAndRestart(t *testing.T) {
	g, _ := newTestGame(t, 42)
	for i := 0; i < 50; i++ {
		g.Step(core.NewInputFrame(core.ActionMoveRight, core.ActionToggleHitboxes))
	}
	addMouseOnPlayer(g)
	g.Step(core.NewInputFrame())
	g.Step(core.NewInputFrame())

	g.Step(core.NewInputFrame(core.ActionRestart))
	if g.World().Offset() != 0 {
		t.Errorf("Offset after restart = %v", g.World().Offset())
	}
	if g.State().Score != 0 || g.ShowHitboxes() || g.Ticks() != 0 {
		t.Errorf("state not reset: %+v hitboxes=%v ticks=%d", g.State(), g.ShowHitboxes(), g.Ticks())
	}
}

func TestGameQuit(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.Step(core.NewInputFrame(core.ActionQuit))
	if !g.State().GameOver {
		t.Fatal("quit should end the run")
	}
	g.Step(core.NewInputFrame(core.ActionMoveRight))
	if g.World().Offset() != 0 {
		t.Error("stopped game must not advance")
	}
}

func TestStateAddScore(t *testing.T) {
	s := NewState()
	if err := s.AddScore(5); err != nil {
		t.Fatalf("AddScore(5): %v", err)
	}
	err := s.AddScore(-1)
	if err == nil {
		t.Fatal("expected error for negative points")
	}
	if s.Score() != 5 {
		t.Errorf("Score() = %d, want 5", s.Score())
	}
	s.ToggleHitboxes()
	s.Stop()
	s.Reset()
	if !s.Running() || s.ShowHitboxes() || s.Score() != 0 {
		t.Errorf("Reset left %+v", s)
	}
}

type fakeAudio struct{ cueRecorder }

func (fakeAudio) MusicEnabled() bool { return true }
func (fakeAudio) SoundEnabled() bool { return false }

func TestGameRender(t *testing.T) {
	g := New(config.DefaultCatMouseConfig(), &fakeAudio{}, nil)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 3})
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing score: %q", screen.Row(0))
	}
	if !strings.ContainsRune(out, CatChar) {
		t.Error("cat not drawn")
	}
	if !strings.ContainsRune(out, PlatformTopChar) {
		t.Error("platforms not drawn")
	}

	g.Step(core.NewInputFrame(core.ActionToggleHitboxes))
	g.Render(screen)
	if !strings.Contains(screen.Row(0), "music:on sfx:off") {
		t.Errorf("debug line missing audio status: %q", screen.Row(0))
	}

	g.Step(core.NewInputFrame(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}
}

func TestViewportCells(t *testing.T) {
	screen := core.NewScreen(80, 25)
	vp := newViewport(screen, 800, 600)

	x, y, w, h := vp.cells(core.NewRect(0, 0, 800, 600))
	if x != 0 || y != hudRows || w != 80 || h != 24 {
		t.Errorf("full rect -> (%d, %d, %d, %d)", x, y, w, h)
	}
	_, _, w, h = vp.cells(core.NewRect(100, 100, 1, 1))
	if w != 1 || h != 1 {
		t.Errorf("tiny rect should cover one cell, got %dx%d", w, h)
	}
}
