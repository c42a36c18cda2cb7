package core

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Color represents a foreground color for a screen cell.
// The terminal front-end maps these to ANSI 256-color codes and the window
// front-end to RGBA, so both draw the same palette.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

var rgba = map[Color]color.RGBA{
	ColorDefault:       colornames.White,
	ColorGreen:         colornames.Forestgreen,
	ColorWhite:         colornames.Whitesmoke,
	ColorBrightRed:     colornames.Red,
	ColorBrightGreen:   colornames.Lime,
	ColorBrightYellow:  colornames.Yellow,
	ColorBrightMagenta: colornames.Magenta,
	ColorBrightCyan:    colornames.Cyan,
	ColorBrightWhite:   colornames.White,
	ColorOrange:        colornames.Orange,
	ColorGray:          colornames.Gray,
}

// RGBA returns the pixel color for c. Unknown colors are white.
func (c Color) RGBA() color.RGBA {
	if v, ok := rgba[c]; ok {
		return v
	}
	return colornames.White
}
