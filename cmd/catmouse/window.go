package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cat-and-mouse/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a run in a desktop window with sprites loaded from assets.dir.
Missing images are drawn as colored blocks.

Controls are the same as 'catmouse play'; Esc or Q closes the window.

Examples:
  catmouse window
  catmouse window --seed 42 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	s, err := openSession(false)
	if err != nil {
		return err
	}
	defer s.Close()

	game, err := s.newGame()
	if err != nil {
		return err
	}

	return gui.Run(game, s.runtimeConfig(0, 0), gui.Options{
		Store:     s.store,
		Audio:     s.sound,
		Watcher:   s.watcher,
		Logger:    s.logger,
		FixedSeed: flagSeed != 0,
	})
}
