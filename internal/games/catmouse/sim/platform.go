package sim

import (
	"github.com/vovakirdan/cat-and-mouse/internal/config"
	"github.com/vovakirdan/cat-and-mouse/internal/core"
)

// Platform is a static ledge in world coordinates. Only its top strip collides.
// Platforms are immutable once created.
type Platform struct {
	x, y          float64
	width, height float64
	hitboxOffset  float64
	hitboxHeight  float64
}

// NewPlatform creates a platform whose height and hitbox strip come from cfg.
func NewPlatform(x, y, width float64, cfg config.PlatformConfig) *Platform {
	return &Platform{
		x:            x,
		y:            y,
		width:        width,
		height:       cfg.Height,
		hitboxOffset: cfg.HitboxOffset,
		hitboxHeight: cfg.HitboxHeight,
	}
}

func (p *Platform) X() float64      { return p.x }
func (p *Platform) Y() float64      { return p.y }
func (p *Platform) Width() float64  { return p.width }
func (p *Platform) Height() float64 { return p.height }

// Right returns the world x of the right edge.
func (p *Platform) Right() float64 { return p.x + p.width }

// Hitbox returns the top collision strip shifted into screen space.
func (p *Platform) Hitbox(offset float64) core.Rect {
	return core.NewRect(p.x-offset, p.y+p.hitboxOffset, p.width, p.hitboxHeight)
}

// Bounds returns the full visual rectangle shifted into screen space.
func (p *Platform) Bounds(offset float64) core.Rect {
	return core.NewRect(p.x-offset, p.y, p.width, p.height)
}

// ContainsPoint reports whether the world point lies within the platform.
func (p *Platform) ContainsPoint(x, y float64) bool {
	return p.Bounds(0).Contains(x, y)
}

// DistanceTo returns the distance from the platform center to a world point.
func (p *Platform) DistanceTo(x, y float64) float64 {
	cx, cy := p.Bounds(0).Center()
	return core.Distance(cx, cy, x, y)
}

// OnCollide is a no-op: platforms do not react to being touched.
func (p *Platform) OnCollide(Collidable) {}
