package sim

import (
	"github.com/vovakirdan/cat-and-mouse/internal/config"
	"github.com/vovakirdan/cat-and-mouse/internal/core"
)

// Player is the cat. x and y are screen coordinates; worldX tracks how far
// the cat has travelled, which equals the camera offset.
type Player struct {
	cfg          config.PlayerConfig
	screenHeight float64

	x, y        float64
	worldX      float64
	velY        float64
	jumping     bool
	facingRight bool
	grounded    bool
	caught      int

	hitbox core.Rect
}

// NewPlayer creates a player at the configured start position.
func NewPlayer(cfg config.PlayerConfig, screenHeight float64) *Player {
	p := &Player{
		cfg:          cfg,
		screenHeight: screenHeight,
		facingRight:  true,
	}
	p.setPosition(cfg.InitialX, cfg.InitialY)
	return p
}

// setPosition is the only writer of x and y so the hitbox never goes stale.
func (p *Player) setPosition(x, y float64) {
	p.x, p.y = x, y
	hb := p.cfg.Hitbox
	p.hitbox = core.NewRect(x+hb.OffsetX, y+hb.OffsetY, hb.Width, hb.Height)
}

func (p *Player) setY(y float64) { p.setPosition(p.x, y) }

func (p *Player) X() float64        { return p.x }
func (p *Player) Y() float64        { return p.y }
func (p *Player) WorldX() float64   { return p.worldX }
func (p *Player) VelY() float64     { return p.velY }
func (p *Player) Width() float64    { return p.cfg.Width }
func (p *Player) Height() float64   { return p.cfg.Height }
func (p *Player) IsJumping() bool   { return p.jumping }
func (p *Player) FacingRight() bool { return p.facingRight }

// OnGround reports whether the last update ended standing on a platform.
func (p *Player) OnGround() bool { return p.grounded }

// Caught returns how many mice the player has been notified about.
func (p *Player) Caught() int { return p.caught }

// Hitbox returns the collision rectangle. The player lives in screen space,
// so offset is ignored.
func (p *Player) Hitbox(float64) core.Rect { return p.hitbox }

// Jump starts a jump unless one is already in progress.
func (p *Player) Jump() {
	if p.jumping {
		return
	}
	p.velY = -p.cfg.JumpPower
	p.jumping = true
}

// Move sets the facing direction and returns the horizontal delta for
// direction (-1, 0 or 1). It does not move the player.
func (p *Player) Move(direction int) float64 {
	if direction != 0 {
		p.facingRight = direction > 0
	}
	return float64(direction) * p.cfg.Speed
}

// Update advances the player one tick: scroll, gravity, platform resolution
// in list order, then the screen floor.
func (p *Player) Update(platforms []*Platform, xMovement float64) {
	p.worldX += xMovement

	p.velY += p.cfg.Gravity
	p.setY(p.y + p.velY)

	grounded := false
	for _, pl := range platforms {
		if p.resolve(pl.Hitbox(p.worldX)) {
			grounded = true
		}
	}
	p.grounded = grounded

	if floor := p.screenHeight - p.cfg.Height; !grounded && p.y > floor {
		p.setY(floor)
		p.velY = 0
		p.jumping = false
	}
}

// resolve pushes the player out of an overlapping platform strip.
// It reports whether the player landed on it.
func (p *Player) resolve(ph core.Rect) bool {
	if !p.hitbox.Intersects(ph) {
		return false
	}
	hb := p.cfg.Hitbox
	switch {
	case p.velY > 0 && p.hitbox.Bottom() > ph.Y:
		p.setY(ph.Y - (hb.OffsetY + hb.Height))
		p.velY = 0
		p.jumping = false
		return true
	case p.velY < 0 && p.hitbox.Y < ph.Bottom():
		p.setY(ph.Bottom() - hb.OffsetY)
		p.velY = 0
	}
	return false
}

// OnCollide resolves platforms against the player's current world position
// and counts caught mice.
func (p *Player) OnCollide(other Collidable) {
	switch o := other.(type) {
	case *Platform:
		p.resolve(o.Hitbox(p.worldX))
	case *Mouse:
		p.caught++
	}
}
