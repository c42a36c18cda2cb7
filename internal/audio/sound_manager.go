// Package audio plays the game's sound cues and background music through
// the system speaker. Every call is safe without an audio device: when
// Initialize fails the manager stays silent.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/cat-and-mouse/internal/config"
	"github.com/vovakirdan/cat-and-mouse/internal/core"
)

const defaultSampleRate = beep.SampleRate(44100)

// SoundManager mixes cues and a looping music track onto the speaker.
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	sr          beep.SampleRate
	mixer       *beep.Mixer
	music       *beep.Ctrl
	logger      *log.Logger
	musicOn     bool
	soundOn     bool
	initialized bool
}

// NewSoundManager creates a manager. Nothing is opened until Initialize.
func NewSoundManager(cfg config.AudioConfig, logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.Default()
	}
	sr := beep.SampleRate(cfg.SampleRate)
	if sr <= 0 {
		sr = defaultSampleRate
	}
	return &SoundManager{
		cfg:     cfg,
		sr:      sr,
		mixer:   &beep.Mixer{},
		logger:  logger,
		musicOn: cfg.MusicEnabled,
		soundOn: cfg.SoundEnabled,
	}
}

// Initialize opens the speaker and starts the music loop.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.sr, sm.sr.N(100*time.Millisecond)); err != nil {
		return err
	}

	sm.music = &beep.Ctrl{
		Streamer: withVolume(beep.Loop(-1, NewMusicGenerator(sm.sr)), sm.cfg.MusicVolume),
		Paused:   !sm.musicOn,
	}
	sm.mixer.Add(sm.music)
	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Debug("audio initialized", "sample_rate", int(sm.sr))
	return nil
}

// Cleanup stops all sounds and closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.music = nil
	sm.initialized = false
}

// Play starts a one-shot cue. Unknown cues are logged and ignored.
func (sm *SoundManager) Play(cue core.Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.soundOn {
		return
	}

	s := cueStreamer(sm.sr, cue)
	if s == nil {
		sm.logger.Warn("unknown sound cue", "cue", cue)
		return
	}
	speaker.Lock()
	sm.mixer.Add(withVolume(s, sm.cfg.SoundVolume))
	speaker.Unlock()
}

// ToggleMusic pauses or resumes the music loop and returns the new state.
func (sm *SoundManager) ToggleMusic() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.musicOn = !sm.musicOn
	if sm.music != nil {
		speaker.Lock()
		sm.music.Paused = !sm.musicOn
		speaker.Unlock()
	}
	return sm.musicOn
}

// ToggleSounds mutes or unmutes sound effects and returns the new state.
func (sm *SoundManager) ToggleSounds() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.soundOn = !sm.soundOn
	return sm.soundOn
}

// MusicEnabled reports whether music is playing or would play.
func (sm *SoundManager) MusicEnabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.musicOn
}

// SoundEnabled reports whether sound effects are audible.
func (sm *SoundManager) SoundEnabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.soundOn
}

// cueStreamer returns a finite streamer for cue, or nil if the cue is unknown.
func cueStreamer(sr beep.SampleRate, cue core.Cue) beep.Streamer {
	switch cue {
	case core.CueCollision:
		return beep.Take(sr.N(120*time.Millisecond), NewThudGenerator(sr))
	case core.CueMouseCollect:
		return beep.Take(sr.N(180*time.Millisecond), NewChirpGenerator(sr))
	}
	return nil
}

// withVolume scales s by a linear volume in [0, 1].
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
