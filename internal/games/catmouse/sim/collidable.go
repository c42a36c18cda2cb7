// Package sim holds the cat and mouse simulation: platforms, mice, the
// player's physics and the world that streams them. It never renders and
// never plays sound; front-ends read its state through accessors.
package sim

import "github.com/vovakirdan/cat-and-mouse/internal/core"

// Collidable is anything that takes part in collision handling.
//
// Hitbox returns the collision rectangle in screen space for the given world
// offset. Objects that already live in screen space ignore the offset.
// OnCollide is called with the other party after an overlap was detected.
type Collidable interface {
	Hitbox(offset float64) core.Rect
	OnCollide(other Collidable)
}

var (
	_ Collidable = (*Platform)(nil)
	_ Collidable = (*Mouse)(nil)
	_ Collidable = (*Player)(nil)
)
