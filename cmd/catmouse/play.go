package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cat-and-mouse/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  A/D, Left/Right  - Run
  Space/W/Up       - Jump
  H                - Toggle hitboxes and debug info
  M / N            - Toggle music / sound effects
  P                - Pause
  R                - Restart with a new seed (same seed with --seed)
  Esc              - Back
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a text screenshot

Terminals report key presses but not releases, so holding a direction
keeps the cat running until the key repeat stops.

Examples:
  catmouse play
  catmouse play --seed 42
  catmouse play --config ./my-catmouse.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	s, err := openSession(true)
	if err != nil {
		return err
	}
	defer s.Close()

	game, err := s.newGame()
	if err != nil {
		return err
	}

	width, height := terminalSize()
	if _, err := tui.Run(game, s.runtimeConfig(width, height), s.tuiOptions()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// tuiOptions wires the session into the terminal front-end.
func (s *session) tuiOptions() tui.Options {
	return tui.Options{
		Store:     s.store,
		Audio:     s.sound,
		Watcher:   s.watcher,
		Logger:    s.logger,
		FixedSeed: flagSeed != 0,
	}
}
