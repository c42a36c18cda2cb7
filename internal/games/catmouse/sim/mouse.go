package sim

import (
	"github.com/vovakirdan/cat-and-mouse/internal/config"
	"github.com/vovakirdan/cat-and-mouse/internal/core"
)

// Mouse is a collectible that bobs up and down until the cat catches it.
type Mouse struct {
	x, y          float64
	width, height float64
	collected     bool
	frame         float64

	amplitude float64
	speed     float64
	divisor   int
}

// NewMouse creates an active mouse at the given world position.
func NewMouse(x, y float64, cfg config.MiceConfig) *Mouse {
	divisor := cfg.AnimationDivisor
	if divisor <= 0 {
		divisor = 1
	}
	return &Mouse{
		x:         x,
		y:         y,
		width:     cfg.Width,
		height:    cfg.Height,
		amplitude: cfg.Amplitude,
		speed:     cfg.AnimationSpeed,
		divisor:   divisor,
	}
}

func (m *Mouse) X() float64      { return m.x }
func (m *Mouse) Y() float64      { return m.y }
func (m *Mouse) Width() float64  { return m.width }
func (m *Mouse) Height() float64 { return m.height }
func (m *Mouse) Collected() bool { return m.collected }
func (m *Mouse) Frame() float64  { return m.frame }

// Update advances the bob animation. Collected mice stay still.
func (m *Mouse) Update() {
	if m.collected {
		return
	}
	m.frame += m.speed
	if int(m.frame)%m.divisor == 0 {
		m.y += m.amplitude
	} else {
		m.y -= m.amplitude
	}
}

// Hitbox returns the mouse rectangle shifted into screen space.
func (m *Mouse) Hitbox(offset float64) core.Rect {
	return core.NewRect(m.x-offset, m.y, m.width, m.height)
}

// CheckCollision reports whether an active mouse overlaps other, with the
// mouse shifted by offset. Collected mice never collide.
func (m *Mouse) CheckCollision(other core.Rect, offset float64) bool {
	if m.collected {
		return false
	}
	return m.Hitbox(offset).Intersects(other)
}

// Collect marks the mouse as caught. It reports false if it already was.
func (m *Mouse) Collect() bool {
	if m.collected {
		return false
	}
	m.collected = true
	return true
}

// Respawn moves the mouse and makes it active again.
func (m *Mouse) Respawn(x, y float64) {
	m.x = x
	m.y = y
	m.collected = false
}

// OnCollide collects the mouse when the player touches it.
func (m *Mouse) OnCollide(other Collidable) {
	if _, ok := other.(*Player); ok {
		m.Collect()
	}
}
