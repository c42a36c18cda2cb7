package sim

import (
	"math/rand"

	"github.com/vovakirdan/cat-and-mouse/internal/config"
)

// World owns the platforms and mice and the camera offset that scrolls them.
type World struct {
	offset float64

	cfg       config.CatMouseConfig
	generator *PlatformGenerator
	platforms *PlatformManager
	mice      *MouseManager
}

// NewWorld builds the initial platform layout. All randomness comes from rng.
func NewWorld(cfg config.CatMouseConfig, rng *rand.Rand) *World {
	screenW := float64(cfg.Screen.Width)
	gen := NewPlatformGenerator(cfg.Platforms, rng)
	return &World{
		cfg:       cfg,
		generator: gen,
		platforms: NewPlatformManager(gen.GenerateInitialPlatforms(), screenW, cfg.Platforms.VisibleRange, cfg.Platforms.RemoveMargin),
		mice:      NewMouseManager(cfg.Mice, screenW, rng),
	}
}

// Offset returns the camera scroll in world pixels.
func (w *World) Offset() float64 { return w.offset }

// Update scrolls the camera by movement, prunes and streams platforms, then
// ticks the mice against the new visible set.
func (w *World) Update(movement float64) {
	w.offset += movement

	w.platforms.RemoveOffscreenPlatforms(w.offset)
	w.generateAhead()
	w.mice.Update(w.offset, w.VisiblePlatforms())
}

func (w *World) generateAhead() {
	for w.needMorePlatforms() {
		last, ok := w.platforms.LastPlatform()
		if !ok {
			w.platforms.AddPlatform(w.generator.StartPlatform())
			continue
		}
		w.platforms.AddPlatform(w.generator.GeneratePlatform(last))
	}
}

func (w *World) needMorePlatforms() bool {
	if w.platforms.Count() < w.cfg.Platforms.InitialCount {
		return true
	}
	last, ok := w.platforms.LastPlatform()
	if !ok {
		return true
	}
	return last.Right() < w.offset+float64(w.cfg.Screen.Width)+w.cfg.Platforms.VisibleRange
}

// CheckPlayerCollisions resolves the player against every visible platform
// it overlaps, then against the mice. It reports whether anything collided.
func (w *World) CheckPlayerCollisions(player *Player) bool {
	hadPlatform := false
	for _, p := range w.VisiblePlatforms() {
		if !player.Hitbox(w.offset).Intersects(p.Hitbox(player.WorldX())) {
			continue
		}
		player.OnCollide(p)
		p.OnCollide(player)
		hadPlatform = true
	}
	hadMouse := w.mice.CheckCollisions(player, w.offset)
	return hadPlatform || hadMouse
}

// CanMoveLeft reports whether the camera may scroll back.
func (w *World) CanMoveLeft() bool {
	return w.offset > 0
}

func (w *World) VisiblePlatforms() []*Platform { return w.platforms.VisiblePlatforms(w.offset) }
func (w *World) VisibleMice() []*Mouse         { return w.mice.VisibleMice(w.offset) }
func (w *World) Platforms() []*Platform        { return w.platforms.Platforms() }
func (w *World) PlatformCount() int            { return w.platforms.Count() }
func (w *World) ActivePlatformCount() int      { return len(w.VisiblePlatforms()) }
func (w *World) CollectedMice() int            { return w.mice.CollectedCount() }
func (w *World) ActiveMice() int               { return w.mice.ActiveCount() }

// Mice exposes the mouse manager for callers that place mice directly.
func (w *World) Mice() *MouseManager { return w.mice }
