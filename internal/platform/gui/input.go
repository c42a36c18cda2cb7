package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/cat-and-mouse/internal/core"
)

// heldBindings are polled every tick while the key is down.
var heldBindings = []struct {
	action core.Action
	keys   []ebiten.Key
}{
	{core.ActionMoveLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
	{core.ActionMoveRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
}

// pressBindings fire once per key press.
var pressBindings = []struct {
	action core.Action
	keys   []ebiten.Key
}{
	{core.ActionJump, []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp}},
	{core.ActionToggleHitboxes, []ebiten.Key{ebiten.KeyH}},
	{core.ActionToggleMusic, []ebiten.Key{ebiten.KeyM}},
	{core.ActionToggleSound, []ebiten.Key{ebiten.KeyN}},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP}},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}},
}

// keyState reports key status; ebiten's pollers in the window, fakes in tests.
type keyState struct {
	pressed     func(ebiten.Key) bool
	justPressed func(ebiten.Key) bool
}

var ebitenKeys = keyState{
	pressed:     ebiten.IsKeyPressed,
	justPressed: inpututil.IsKeyJustPressed,
}

// readInput builds the frame for one tick.
func readInput(ks keyState) core.InputFrame {
	frame := core.NewInputFrame()
	for _, b := range heldBindings {
		if anyKey(b.keys, ks.pressed) {
			frame.Set(b.action)
		}
	}
	for _, b := range pressBindings {
		if anyKey(b.keys, ks.justPressed) {
			frame.Set(b.action)
		}
	}
	return frame
}

func anyKey(keys []ebiten.Key, f func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if f(k) {
			return true
		}
	}
	return false
}
