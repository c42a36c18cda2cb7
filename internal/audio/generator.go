package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ThudGenerator is a short falling-pitch thump for landings and bumps.
type ThudGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewThudGenerator creates a thud generator.
func NewThudGenerator(sr beep.SampleRate) *ThudGenerator {
	return &ThudGenerator{sr: sr}
}

func (g *ThudGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	decay := float64(g.sr.N(120 * time.Millisecond))
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		env := math.Max(0, 1-float64(g.pos)/decay)
		freq := 90 + 60*env
		sample := 0.5 * env * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThudGenerator) Err() error {
	return nil
}

// ChirpGenerator is a rising two-note squeak for a caught mouse.
type ChirpGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewChirpGenerator creates a chirp generator.
func NewChirpGenerator(sr beep.SampleRate) *ChirpGenerator {
	return &ChirpGenerator{sr: sr}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	half := g.sr.N(90 * time.Millisecond)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		freq := 880.0
		if g.pos >= half {
			freq = 1320
		}
		// Short attack, then a linear fade per note.
		notePos := g.pos % half
		env := math.Min(float64(notePos)/float64(g.sr.N(5*time.Millisecond)), 1) *
			(1 - float64(notePos)/float64(half))
		sample := 0.3 * env * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// musicNotes is a pentatonic phrase in Hz, one entry per beat.
var musicNotes = []float64{261.63, 329.63, 392.00, 440.00, 392.00, 329.63, 293.66, 329.63}

// MusicGenerator plays a soft looping arpeggio with a bass drone.
type MusicGenerator struct {
	sr   beep.SampleRate
	pos  int
	beat int
}

// NewMusicGenerator creates the background music generator.
func NewMusicGenerator(sr beep.SampleRate) *MusicGenerator {
	return &MusicGenerator{
		sr:   sr,
		beat: sr.N(250 * time.Millisecond),
	}
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		note := musicNotes[(g.pos/g.beat)%len(musicNotes)]
		beatPos := float64(g.pos%g.beat) / float64(g.beat)

		lead := 0.2 * (1 - beatPos) * math.Sin(2*math.Pi*note*t)
		bass := 0.08 * math.Sin(2*math.Pi*musicNotes[0]/2*t)
		sample := lead + bass

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error {
	return nil
}
