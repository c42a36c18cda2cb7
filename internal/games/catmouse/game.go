// Package catmouse implements the cat and mouse platformer: the cat runs and
// jumps across streamed platforms and catches bobbing mice for points.
package catmouse

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cat-and-mouse/internal/config"
	"github.com/vovakirdan/cat-and-mouse/internal/core"
	"github.com/vovakirdan/cat-and-mouse/internal/games/catmouse/sim"
	"github.com/vovakirdan/cat-and-mouse/internal/registry"
)

// ID is the registry and scoreboard identifier.
const ID = "catmouse"

// AudioStatus is implemented by sound players that can report mute state.
type AudioStatus interface {
	MusicEnabled() bool
	SoundEnabled() bool
}

// Game is the per-tick controller: it turns input into movement, advances
// the world and the player, resolves collisions and awards score.
type Game struct {
	cfg    config.CatMouseConfig
	cues   core.CuePlayer
	logger *log.Logger

	runtime       core.RuntimeConfig
	world         *sim.World
	player        *sim.Player
	state         State
	paused        bool
	lastCollected int
	tickCount     int
}

// New creates a game with the given configuration, cue player and logger.
// A nil cue player or logger is replaced by a silent default.
func New(cfg config.CatMouseConfig, cues core.CuePlayer, logger *log.Logger) *Game {
	if cues == nil {
		cues = core.NopCuePlayer{}
	}
	if logger == nil {
		logger = log.Default()
	}
	g := &Game{cfg: cfg, cues: cues, logger: logger}
	g.Reset(core.DefaultConfig())
	return g
}

// NewFromDeps creates a game from registry dependencies.
func NewFromDeps(d registry.Deps) *Game {
	cfg := config.Embedded()
	if d.Config != nil {
		cfg = *d.Config
	}
	return New(cfg, d.Sound, d.Logger)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.cfg.Screen.Title != "" {
		return g.cfg.Screen.Title
	}
	return "Cat and Mouse"
}

// Reset starts a new run. The seed fully determines platform layout and spawns.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	rng := rand.New(rand.NewSource(rc.Seed))
	g.world = sim.NewWorld(g.cfg, rng)
	g.player = sim.NewPlayer(g.cfg.Player, float64(g.cfg.Screen.Height))
	g.state.Reset()
	g.paused = false
	g.lastCollected = 0
	g.tickCount = 0
	g.logger.Debug("new run", "seed", rc.Seed, "platforms", g.world.PlatformCount())
}

// SetConfig replaces the configuration used by the next Reset.
func (g *Game) SetConfig(cfg config.CatMouseConfig) {
	g.cfg = cfg
}

// Config returns the active configuration.
func (g *Game) Config() config.CatMouseConfig {
	return g.cfg
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) {
		g.state.Stop()
	}
	if !g.state.Running() {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	if in.Has(core.ActionToggleHitboxes) {
		g.state.ToggleHitboxes()
	}
	if in.Has(core.ActionJump) {
		g.player.Jump()
	}

	movement := g.movement(in)
	g.world.Update(movement)
	g.player.Update(g.world.VisiblePlatforms(), movement)

	var cues []core.Cue
	if g.world.CheckPlayerCollisions(g.player) {
		cues = append(cues, core.CueCollision)
	}

	if caught := g.world.CollectedMice() - g.lastCollected; caught > 0 {
		if err := g.state.AddScore(caught * g.cfg.Score.MousePoints); err != nil {
			panic(err)
		}
		g.lastCollected = g.world.CollectedMice()
		cues = append(cues, core.CueMouseCollect)
		g.logger.Debug("mouse caught", "score", g.state.Score(), "total", g.lastCollected)
	}

	for _, c := range cues {
		g.cues.Play(c)
	}
	return core.StepResult{State: g.State(), Cues: cues}
}

// movement resolves horizontal intent. Right wins over left, and left is
// clamped so the camera never scrolls before the world start.
func (g *Game) movement(in core.InputFrame) float64 {
	switch {
	case in.Has(core.ActionMoveRight):
		return g.player.Move(1)
	case in.Has(core.ActionMoveLeft) && g.world.CanMoveLeft():
		dx := g.player.Move(-1)
		if off := g.world.Offset(); off+dx < 0 {
			dx = -off
		}
		return dx
	}
	return 0
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score(),
		GameOver: !g.state.Running(),
		Paused:   g.paused,
	}
}

// World returns the simulation world for read-only rendering.
func (g *Game) World() *sim.World { return g.world }

// Player returns the cat for read-only rendering.
func (g *Game) Player() *sim.Player { return g.player }

// ShowHitboxes reports whether the hitbox overlay is on.
func (g *Game) ShowHitboxes() bool { return g.state.ShowHitboxes() }

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool { return g.paused }

// Ticks returns the number of simulated ticks in this run.
func (g *Game) Ticks() int { return g.tickCount }

// Summary returns the run totals recorded on the scoreboard.
func (g *Game) Summary() (mice int, distance float64, ticks int) {
	return g.world.CollectedMice(), g.world.Offset(), g.tickCount
}

// Info is a snapshot for heads-up displays.
type Info struct {
	PlayerX, PlayerY float64
	WorldX           float64
	VelY             float64
	Jumping          bool
	FacingRight      bool
	Offset           float64
	Platforms        int
	VisiblePlatforms int
	ActiveMice       int
	CollectedMice    int
	Score            int
	ShowHitboxes     bool
	Paused           bool
	Audio            AudioStatus // nil when the cue player cannot report it
}

// Info returns a snapshot of the run.
func (g *Game) Info() Info {
	info := Info{
		PlayerX:          g.player.X(),
		PlayerY:          g.player.Y(),
		WorldX:           g.player.WorldX(),
		VelY:             g.player.VelY(),
		Jumping:          g.player.IsJumping(),
		FacingRight:      g.player.FacingRight(),
		Offset:           g.world.Offset(),
		Platforms:        g.world.PlatformCount(),
		VisiblePlatforms: g.world.ActivePlatformCount(),
		ActiveMice:       g.world.ActiveMice(),
		CollectedMice:    g.world.CollectedMice(),
		Score:            g.state.Score(),
		ShowHitboxes:     g.state.ShowHitboxes(),
		Paused:           g.paused,
	}
	if a, ok := g.cues.(AudioStatus); ok {
		info.Audio = a
	}
	return info
}

func init() {
	registry.Register(ID, func(d registry.Deps) registry.Game {
		return NewFromDeps(d)
	})
}
