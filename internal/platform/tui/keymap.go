package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cat-and-mouse/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionMoveLeft, false
	case "d", "right":
		return core.ActionMoveRight, false
	case " ", "w", "up":
		return core.ActionJump, false
	case "h":
		return core.ActionToggleHitboxes, false
	case "m":
		return core.ActionToggleMusic, false
	case "n":
		return core.ActionToggleSound, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "esc", "b":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}

// Terminals report key presses but never key releases, so a held arrow key
// arrives as one press, a pause of the OS repeat delay, then a stream of
// repeats. HoldLatch turns that stream back into a held/released state.
const (
	firstPressHold = 0.45 // seconds; covers the usual autorepeat delay
	repeatHold     = 0.12 // seconds; a little over the usual repeat interval
)

// HoldLatch keeps a horizontal direction held for a number of ticks after
// the last key event.
type HoldLatch struct {
	action    core.Action
	remaining int
	first     int
	repeat    int
}

// NewHoldLatch creates a latch for the given tick rate.
func NewHoldLatch(tickRate int) HoldLatch {
	if tickRate <= 0 {
		tickRate = 60
	}
	first := int(firstPressHold * float64(tickRate))
	repeat := int(repeatHold * float64(tickRate))
	if repeat < 1 {
		repeat = 1
	}
	if first < repeat {
		first = repeat
	}
	return HoldLatch{first: first, repeat: repeat}
}

// Press registers a key event for a movement action. Pressing the opposite
// direction releases the previous one immediately.
func (h *HoldLatch) Press(a core.Action) {
	if a == h.action && h.remaining > 0 {
		h.remaining = max(h.remaining, h.repeat)
		return
	}
	h.action = a
	h.remaining = h.first
}

// Release drops the held direction.
func (h *HoldLatch) Release() {
	h.action = core.ActionNone
	h.remaining = 0
}

// Apply sets the held action on the frame and counts down one tick.
func (h *HoldLatch) Apply(frame *core.InputFrame) {
	if h.remaining <= 0 {
		return
	}
	frame.Set(h.action)
	h.remaining--
	if h.remaining == 0 {
		h.action = core.ActionNone
	}
}

// Held returns the currently held action, or ActionNone.
func (h *HoldLatch) Held() core.Action {
	if h.remaining <= 0 {
		return core.ActionNone
	}
	return h.action
}
