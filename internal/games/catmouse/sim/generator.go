package sim

import (
	"math/rand"

	"github.com/vovakirdan/cat-and-mouse/internal/config"
)

// PlatformGenerator chains platforms left to right with random gaps and widths.
type PlatformGenerator struct {
	cfg config.PlatformConfig
	rng *rand.Rand
}

// NewPlatformGenerator creates a generator drawing from rng.
func NewPlatformGenerator(cfg config.PlatformConfig, rng *rand.Rand) *PlatformGenerator {
	return &PlatformGenerator{cfg: cfg, rng: rng}
}

// StartPlatform returns the fixed platform the run begins on.
func (g *PlatformGenerator) StartPlatform() *Platform {
	return NewPlatform(0, g.cfg.StartY, g.cfg.StartWidth, g.cfg)
}

// GenerateInitialPlatforms returns the start platform followed by
// InitialCount platforms whose heights alternate by index.
func (g *PlatformGenerator) GenerateInitialPlatforms() []*Platform {
	platforms := make([]*Platform, 0, g.cfg.InitialCount+1)
	platforms = append(platforms, g.StartPlatform())

	for i := 1; i <= g.cfg.InitialCount; i++ {
		last := platforms[len(platforms)-1]
		x := g.nextX(last)
		step := float64(i % g.cfg.AlternationPattern)
		y := g.cfg.StartY - step*g.cfg.HeightVariation*g.cfg.AlternationMultiplier
		platforms = append(platforms, NewPlatform(x, y, g.width(), g.cfg))
	}
	return platforms
}

// GeneratePlatform returns the platform following last, at a random height
// within the configured y range.
func (g *PlatformGenerator) GeneratePlatform(last *Platform) *Platform {
	x := g.nextX(last)
	y := float64(randInclusive(g.rng, g.cfg.YRangeMin, g.cfg.YRangeMax))
	return NewPlatform(x, y, g.width(), g.cfg)
}

func (g *PlatformGenerator) nextX(last *Platform) float64 {
	return last.Right() + float64(randInclusive(g.rng, g.cfg.SpacingMin, g.cfg.SpacingMax))
}

func (g *PlatformGenerator) width() float64 {
	return float64(randInclusive(g.rng, g.cfg.MinWidth, g.cfg.MaxWidth))
}

// randInclusive returns a uniform integer in [lo, hi]. It returns lo when hi < lo.
func randInclusive(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
