package gui

import (
	"image/color"
	_ "image/png"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/cat-and-mouse/internal/config"
)

// Sprites holds the images drawn for each entity.
type Sprites struct {
	Cat      *ebiten.Image
	Mouse    *ebiten.Image
	Platform *ebiten.Image
}

// LoadSprites reads the configured images. A missing or unreadable file is
// replaced by a flat placeholder and a warning, never an error.
func LoadSprites(cfg config.CatMouseConfig, logger *log.Logger) Sprites {
	a := cfg.Assets
	return Sprites{
		Cat:      loadSprite(a.Dir, a.Cat, int(cfg.Player.Width), int(cfg.Player.Height), colornames.Orange, logger),
		Mouse:    loadSprite(a.Dir, a.Mouse, int(cfg.Mice.Width), int(cfg.Mice.Height), colornames.Lightgray, logger),
		Platform: loadSprite(a.Dir, a.Platform, cfg.Platforms.MaxWidth, int(cfg.Platforms.Height), colornames.Saddlebrown, logger),
	}
}

func loadSprite(dir, name string, w, h int, fallback color.Color, logger *log.Logger) *ebiten.Image {
	if name != "" {
		path := filepath.Join(dir, name)
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err == nil {
			return img
		}
		logger.Warn("sprite not loaded, using placeholder", "path", path, "err", err)
	}
	img := ebiten.NewImage(max(w, 1), max(h, 1))
	img.Fill(fallback)
	return img
}

// drawStretched draws img scaled to w x h at (x, y), mirrored when flip is set.
func drawStretched(dst, img *ebiten.Image, x, y, w, h float64, flip bool) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	if flip {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(w, 0)
	}
	op.GeoM.Translate(x, y)
	dst.DrawImage(img, op)
}
