package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/cat-and-mouse/internal/audio"
	"github.com/vovakirdan/cat-and-mouse/internal/config"
	"github.com/vovakirdan/cat-and-mouse/internal/core"
	"github.com/vovakirdan/cat-and-mouse/internal/games/catmouse"
	"github.com/vovakirdan/cat-and-mouse/internal/registry"
	"github.com/vovakirdan/cat-and-mouse/internal/storage"
)

// session holds everything a front-end needs for one process lifetime.
// Optional parts (store, watcher) are nil when unavailable.
type session struct {
	cfg     config.CatMouseConfig
	logger  *log.Logger
	logOut  io.Closer
	sound   *audio.SoundManager
	store   *storage.Store
	watcher *config.Watcher
}

// openSession loads config and opens the logger, sound, scores and watcher.
// toFile sends logs to --log-file so they do not corrupt a terminal UI.
func openSession(toFile bool) (*session, error) {
	s := &session{}

	var err error
	s.logger, s.logOut, err = newLogger(toFile)
	if err != nil {
		return nil, err
	}

	s.cfg, err = config.LoadCatMouse(flagConfig)
	if err != nil {
		s.Close()
		return nil, err
	}

	s.sound = audio.NewSoundManager(s.cfg.Audio, s.logger)
	if s.cfg.Audio.Enabled {
		if err := s.sound.Initialize(); err != nil {
			s.logger.Warn("audio unavailable, continuing silently", "error", err)
		}
	}

	s.store, err = storage.Open(flagDBPath)
	if err != nil {
		s.logger.Warn("could not open scores database", "error", err)
		s.store = nil
	}

	if flagWatch {
		path := config.Locate(flagConfig)
		if path == "" {
			s.logger.Warn("--watch given but no config file found; using embedded defaults")
		} else if s.watcher, err = config.NewWatcher(path); err != nil {
			s.logger.Warn("cannot watch config", "path", path, "error", err)
			s.watcher = nil
		} else {
			s.logger.Info("watching config", "path", path)
		}
	}

	return s, nil
}

// newGame creates the game through the registry with the session's deps.
func (s *session) newGame() (*catmouse.Game, error) {
	g, err := registry.Create(catmouse.ID, registry.Deps{
		Config: &s.cfg,
		Sound:  s.sound,
		Logger: s.logger,
	})
	if err != nil {
		return nil, err
	}
	cm, ok := g.(*catmouse.Game)
	if !ok {
		return nil, fmt.Errorf("unexpected game type %T", g)
	}
	return cm, nil
}

// runtimeConfig builds the per-run settings from flags and config.
func (s *session) runtimeConfig(width, height int) core.RuntimeConfig {
	rate := flagFPS
	if rate <= 0 {
		rate = s.cfg.Screen.FPS
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: rate,
		Seed:     flagSeed,
	}
}

// Close releases everything in reverse order of opening.
func (s *session) Close() {
	if s.watcher != nil {
		s.watcher.Close()
	}
	if s.store != nil {
		s.store.Close()
	}
	if s.sound != nil {
		s.sound.Cleanup()
	}
	if s.logOut != nil {
		s.logOut.Close()
	}
}

// newLogger builds the process logger from --log-level and --log-file.
func newLogger(toFile bool) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	var closer io.Closer
	if toFile {
		f, err := openLogFile(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "catmouse",
		Level:           level,
	})
	return logger, closer, nil
}

func openLogFile(path string) (*os.File, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// terminalSize returns the terminal dimensions, or 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
