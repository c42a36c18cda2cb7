// Package gui runs the game in a desktop window with ebiten.
package gui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/cat-and-mouse/internal/config"
	"github.com/vovakirdan/cat-and-mouse/internal/core"
	"github.com/vovakirdan/cat-and-mouse/internal/games/catmouse"
	"github.com/vovakirdan/cat-and-mouse/internal/storage"
)

// Audio is the part of the sound manager the window drives.
type Audio interface {
	ToggleMusic() bool
	ToggleSounds() bool
}

// Options carries the optional collaborators of a window session.
type Options struct {
	Store     *storage.Store
	Audio     Audio
	Watcher   *config.Watcher
	Logger    *log.Logger
	FixedSeed bool
}

// Window adapts a catmouse.Game to ebiten.Game.
type Window struct {
	game    *catmouse.Game
	sprites Sprites
	opts    Options
	runtime core.RuntimeConfig
	saved   bool
}

// NewWindow creates a window for g and loads its sprites.
func NewWindow(g *catmouse.Game, rc core.RuntimeConfig, opts Options) *Window {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	rc.ScreenW, rc.ScreenH = 0, 0
	g.Reset(rc)
	return &Window{
		game:    g,
		sprites: LoadSprites(g.Config(), opts.Logger),
		opts:    opts,
		runtime: rc,
	}
}

// Update advances one tick. Implements ebiten.Game.
func (w *Window) Update() error {
	w.pollConfig()

	in := readInput(ebitenKeys)
	if in.Has(core.ActionQuit) {
		w.saveRun()
		return ebiten.Termination
	}
	if w.opts.Audio != nil {
		if in.Has(core.ActionToggleMusic) {
			w.opts.Audio.ToggleMusic()
		}
		if in.Has(core.ActionToggleSound) {
			w.opts.Audio.ToggleSounds()
		}
	}
	if in.Has(core.ActionRestart) {
		w.restart()
		return nil
	}

	w.game.Step(in)
	return nil
}

// pollConfig applies a pending reload without blocking the frame.
func (w *Window) pollConfig() {
	if w.opts.Watcher == nil {
		return
	}
	select {
	case cfg, ok := <-w.opts.Watcher.Configs:
		if !ok {
			w.opts.Watcher = nil
			return
		}
		w.saveRun()
		w.game.SetConfig(cfg)
		w.game.Reset(w.runtime)
		w.sprites = LoadSprites(cfg, w.opts.Logger)
		w.saved = false
		w.opts.Logger.Info("config reloaded")
	case err, ok := <-w.opts.Watcher.Errors:
		if ok {
			w.opts.Logger.Warn("config reload failed", "err", err)
		}
	default:
	}
}

func (w *Window) restart() {
	w.saveRun()
	if !w.opts.FixedSeed {
		w.runtime.Seed = time.Now().UnixNano()
	}
	w.game.Reset(w.runtime)
	w.saved = false
}

func (w *Window) saveRun() {
	if w.saved || w.opts.Store == nil || w.game.State().Score <= 0 {
		return
	}
	run := storage.RunResult{GameID: w.game.ID(), Score: w.game.State().Score, Seed: w.runtime.Seed}
	run.Mice, run.Distance, run.Ticks = w.game.Summary()
	if _, err := w.opts.Store.SaveRun(run); err != nil {
		w.opts.Logger.Warn("cannot save run", "err", err)
		return
	}
	w.saved = true
}

// Draw renders the world. Implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Skyblue)

	world := w.game.World()
	offset := world.Offset()

	for _, p := range world.VisiblePlatforms() {
		r := p.Bounds(offset)
		drawStretched(screen, w.sprites.Platform, r.X, r.Y, r.W, r.H, false)
	}
	for _, m := range world.VisibleMice() {
		drawStretched(screen, w.sprites.Mouse, m.X()-offset, m.Y(), m.Width(), m.Height(), false)
	}
	p := w.game.Player()
	drawStretched(screen, w.sprites.Cat, p.X(), p.Y(), p.Width(), p.Height(), !p.FacingRight())

	if w.game.ShowHitboxes() {
		w.drawHitboxes(screen)
	}
	w.drawHUD(screen)
}

func (w *Window) drawHitboxes(screen *ebiten.Image) {
	world := w.game.World()
	offset := world.Offset()
	stroke := func(r core.Rect, c core.Color) {
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, c.RGBA(), false)
	}
	for _, p := range world.VisiblePlatforms() {
		stroke(p.Hitbox(offset), core.ColorBrightRed)
	}
	for _, m := range world.VisibleMice() {
		stroke(m.Hitbox(offset), core.ColorBrightCyan)
	}
	stroke(w.game.Player().Hitbox(offset), core.ColorBrightMagenta)
}

func (w *Window) drawHUD(screen *ebiten.Image) {
	info := w.game.Info()
	vector.FillRect(screen, 0, 0, 200, 20, colornames.Black, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d  Mice: %d", info.Score, info.CollectedMice), 6, 2)

	if info.ShowHitboxes {
		lines := []string{
			fmt.Sprintf("Player: (%.0f, %.0f)", info.PlayerX, info.PlayerY),
			fmt.Sprintf("World X: %.0f", info.WorldX),
			fmt.Sprintf("Velocity Y: %.1f", info.VelY),
			fmt.Sprintf("Jumping: %v", info.Jumping),
			fmt.Sprintf("Platforms: %d", info.VisiblePlatforms),
			fmt.Sprintf("Mice: %d", info.ActiveMice),
			fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS()),
		}
		if info.Audio != nil {
			lines = append(lines, fmt.Sprintf("Music: %s  Sound: %s", onOff(info.Audio.MusicEnabled()), onOff(info.Audio.SoundEnabled())))
		}
		for i, l := range lines {
			ebitenutil.DebugPrintAt(screen, l, 6, 24+i*16)
		}
	}

	if info.Paused {
		sw := screen.Bounds().Dx()
		sh := screen.Bounds().Dy()
		ebitenutil.DebugPrintAt(screen, "PAUSED - press P", sw/2-48, sh/2)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Layout keeps the logical size fixed. Implements ebiten.Game.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	c := w.game.Config().Screen
	return c.Width, c.Height
}

// Run opens the window and blocks until it is closed.
func Run(g *catmouse.Game, rc core.RuntimeConfig, opts Options) error {
	screen := g.Config().Screen
	ebiten.SetWindowSize(screen.Width, screen.Height)
	ebiten.SetWindowTitle(g.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if rc.TickRate > 0 {
		ebiten.SetTPS(rc.TickRate)
	}

	w := NewWindow(g, rc, opts)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	w.saveRun()
	return nil
}
