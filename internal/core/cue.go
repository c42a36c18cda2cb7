package core

// Cue names a fire-and-forget sound event raised by the simulation.
type Cue string

const (
	CueCollision    Cue = "collision"
	CueMouseCollect Cue = "mouse_collect"
)

// CuePlayer plays sound cues. Implementations must not block the caller.
type CuePlayer interface {
	Play(cue Cue)
}

// CuePlayerFunc adapts a plain function to CuePlayer.
type CuePlayerFunc func(Cue)

// Play calls f(cue).
func (f CuePlayerFunc) Play(cue Cue) { f(cue) }

// NopCuePlayer discards every cue.
type NopCuePlayer struct{}

// Play does nothing.
func (NopCuePlayer) Play(Cue) {}
