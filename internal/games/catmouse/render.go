package catmouse

import (
	"fmt"
	"math"

	"github.com/vovakirdan/cat-and-mouse/internal/core"
)

// Visual characters for rendering
const (
	PlatformTopChar  = '▀'
	PlatformFillChar = '█'
	CatChar          = '#'
	MouseChar        = 'm'
	FloorChar        = '▁'
)

// hudRows is the number of terminal rows used by the status line.
const hudRows = 1

// viewport maps world pixels onto terminal cells below the HUD.
type viewport struct {
	sx, sy float64
	top    int
	cols   int
	rows   int
}

func newViewport(dst *core.Screen, screenW, screenH int) viewport {
	rows := dst.Height() - hudRows
	if rows < 1 {
		rows = 1
	}
	return viewport{
		sx:   float64(dst.Width()) / float64(screenW),
		sy:   float64(rows) / float64(screenH),
		top:  hudRows,
		cols: dst.Width(),
		rows: rows,
	}
}

// cells converts a screen-space pixel rectangle to a cell rectangle that
// covers it. Anything non-empty covers at least one cell.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x0 := int(math.Floor(r.X * v.sx))
	y0 := int(math.Floor(r.Y * v.sy))
	x1 := int(math.Ceil(r.Right() * v.sx))
	y1 := int(math.Ceil(r.Bottom() * v.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0 + v.top, x1 - x0, y1 - y0
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	vp := newViewport(dst, g.cfg.Screen.Width, g.cfg.Screen.Height)
	offset := g.world.Offset()

	dst.DrawHLine(0, dst.Height()-1, dst.Width(), FloorChar, core.ColorGray)

	for _, p := range g.world.VisiblePlatforms() {
		x, y, w, h := vp.cells(p.Bounds(offset))
		dst.FillArea(x, y, w, h, PlatformFillChar, core.ColorGreen)
		dst.DrawHLine(x, y, w, PlatformTopChar, core.ColorBrightGreen)
	}

	for _, m := range g.world.VisibleMice() {
		x, y, w, h := vp.cells(core.NewRect(m.X()-offset, m.Y(), m.Width(), m.Height()))
		dst.FillArea(x, y, w, h, MouseChar, core.ColorWhite)
	}

	g.drawCat(dst, vp)

	if g.state.ShowHitboxes() {
		g.drawHitboxes(dst, vp)
	}

	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	} else if !g.state.Running() {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.state.Score()))
	}
}

func (g *Game) drawCat(dst *core.Screen, vp viewport) {
	p := g.player
	x, y, w, h := vp.cells(core.NewRect(p.X(), p.Y(), p.Width(), p.Height()))
	dst.FillArea(x, y, w, h, CatChar, core.ColorOrange)

	// Ears on the top row, face on the leading edge.
	dst.SetColor(x, y, '^', core.ColorOrange)
	dst.SetColor(x+w-1, y, '^', core.ColorOrange)
	if p.FacingRight() {
		dst.SetColor(x+w-1, y+h/2, '>', core.ColorBrightYellow)
	} else {
		dst.SetColor(x, y+h/2, '<', core.ColorBrightYellow)
	}
}

func (g *Game) drawHitboxes(dst *core.Screen, vp viewport) {
	offset := g.world.Offset()
	outline := func(r core.Rect, c core.Color) {
		x, y, w, h := vp.cells(r)
		if w < 2 || h < 2 {
			dst.DrawHLine(x, y, w, '─', c)
			return
		}
		dst.DrawBox(x, y, w, h, c)
	}

	for _, p := range g.world.VisiblePlatforms() {
		outline(p.Hitbox(offset), core.ColorBrightRed)
	}
	for _, m := range g.world.VisibleMice() {
		outline(m.Hitbox(offset), core.ColorBrightCyan)
	}
	outline(g.player.Hitbox(offset), core.ColorBrightMagenta)
}

func (g *Game) drawHUD(dst *core.Screen) {
	info := g.Info()
	left := fmt.Sprintf(" Score: %d  Mice: %d ", info.Score, info.CollectedMice)
	dst.DrawTextColor(0, 0, left, core.ColorBrightYellow)

	right := "←→ move  Space jump  H hitboxes  M/N audio  P pause  Q quit "
	if info.ShowHitboxes {
		right = debugLine(info)
	}
	if x := dst.Width() - len([]rune(right)); x > len(left) {
		dst.DrawTextColor(x, 0, right, core.ColorGray)
	}
}

// debugLine formats the debug readout shown alongside the hitbox overlay.
func debugLine(info Info) string {
	line := fmt.Sprintf("x:%.0f y:%.0f vy:%.1f plat:%d/%d mice:%d",
		info.WorldX, info.PlayerY, info.VelY, info.VisiblePlatforms, info.Platforms, info.ActiveMice)
	if info.Audio != nil {
		line += fmt.Sprintf(" music:%s sfx:%s", onOff(info.Audio.MusicEnabled()), onOff(info.Audio.SoundEnabled()))
	}
	return line + " "
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillArea(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBrightWhite)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
