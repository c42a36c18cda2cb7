package sim

import (
	"math/rand"

	"github.com/vovakirdan/cat-and-mouse/internal/config"
)

// MouseManager spawns mice on visible platforms, animates them and removes
// them once caught or scrolled past.
type MouseManager struct {
	cfg         config.MiceConfig
	screenWidth float64
	rng         *rand.Rand

	mice      []*Mouse
	collected int
	timer     int
}

// NewMouseManager creates an empty manager.
func NewMouseManager(cfg config.MiceConfig, screenWidth float64, rng *rand.Rand) *MouseManager {
	return &MouseManager{cfg: cfg, screenWidth: screenWidth, rng: rng}
}

// Update runs one tick: animate, drop collected mice (counting them), drop
// mice left behind the screen, then advance the spawn timer.
func (m *MouseManager) Update(offset float64, visible []*Platform) {
	for _, mouse := range m.mice {
		mouse.Update()
	}

	kept := m.mice[:0]
	for _, mouse := range m.mice {
		switch {
		case mouse.Collected():
			m.collected++
		case mouse.X()-offset < -m.cfg.RemoveOffset:
		default:
			kept = append(kept, mouse)
		}
	}
	for i := len(kept); i < len(m.mice); i++ {
		m.mice[i] = nil
	}
	m.mice = kept

	m.timer++
	if m.timer >= m.cfg.SpawnInterval {
		m.spawn(offset, visible)
		m.timer = 0
	}
}

// spawn places at most one mouse above a random visible platform. A sample
// that lands off screen is discarded without retrying.
func (m *MouseManager) spawn(offset float64, visible []*Platform) {
	if len(visible) == 0 {
		return
	}
	p := visible[m.rng.Intn(len(visible))]
	x := p.X() + float64(randInclusive(m.rng, m.cfg.SpawnMargin, int(p.Width())-m.cfg.SpawnMargin))
	y := p.Y() - m.cfg.SpawnOffsetY

	if x > offset && x < offset+m.screenWidth {
		m.mice = append(m.mice, NewMouse(x, y, m.cfg))
	}
}

// CheckCollisions collects every active mouse overlapping the player and
// notifies the player once per mouse. It reports whether any were caught.
func (m *MouseManager) CheckCollisions(player Collidable, offset float64) bool {
	shift := 0.0
	if m.cfg.CollectInScreenSpace {
		shift = offset
	}
	hb := player.Hitbox(offset)

	caught := false
	for _, mouse := range m.mice {
		if !mouse.CheckCollision(hb, shift) {
			continue
		}
		mouse.Collect()
		player.OnCollide(mouse)
		caught = true
	}
	return caught
}

// VisibleMice returns mice whose screen x lies within the removal margin
// around the screen.
func (m *MouseManager) VisibleMice(offset float64) []*Mouse {
	visible := make([]*Mouse, 0, len(m.mice))
	for _, mouse := range m.mice {
		sx := mouse.X() - offset
		if -m.cfg.RemoveOffset < sx && sx < m.screenWidth+m.cfg.RemoveOffset {
			visible = append(visible, mouse)
		}
	}
	return visible
}

// Add inserts a mouse directly, bypassing the spawn timer.
func (m *MouseManager) Add(mouse *Mouse) {
	m.mice = append(m.mice, mouse)
}

// Mice returns a copy of the held mice.
func (m *MouseManager) Mice() []*Mouse {
	out := make([]*Mouse, len(m.mice))
	copy(out, m.mice)
	return out
}

// CollectedCount returns how many caught mice have been removed so far.
func (m *MouseManager) CollectedCount() int {
	return m.collected
}

// ActiveCount returns the number of held mice not yet caught.
func (m *MouseManager) ActiveCount() int {
	n := 0
	for _, mouse := range m.mice {
		if !mouse.Collected() {
			n++
		}
	}
	return n
}
