package catmouse

import (
	"errors"
	"fmt"
)

// ErrNegativePoints is returned when a caller tries to subtract score.
var ErrNegativePoints = errors.New("catmouse: score points must not be negative")

// State holds the per-run flags and score.
type State struct {
	running      bool
	showHitboxes bool
	score        int
}

// NewState returns a fresh running state.
func NewState() State {
	return State{running: true}
}

func (s *State) Running() bool      { return s.running }
func (s *State) ShowHitboxes() bool { return s.showHitboxes }
func (s *State) Score() int         { return s.score }

// AddScore adds points to the score.
func (s *State) AddScore(points int) error {
	if points < 0 {
		return fmt.Errorf("%w: %d", ErrNegativePoints, points)
	}
	s.score += points
	return nil
}

// ToggleHitboxes flips the hitbox overlay.
func (s *State) ToggleHitboxes() {
	s.showHitboxes = !s.showHitboxes
}

// Stop ends the run.
func (s *State) Stop() {
	s.running = false
}

// Reset restores the defaults of a new run.
func (s *State) Reset() {
	*s = NewState()
}
