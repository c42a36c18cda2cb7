package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cat-and-mouse/internal/games/catmouse"
	"github.com/vovakirdan/cat-and-mouse/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
Esc during a run returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  catmouse menu
  catmouse menu --fps 30
  catmouse menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	s, err := openSession(true)
	if err != nil {
		return err
	}
	defer s.Close()

	width, height := terminalSize()
	cfg := s.runtimeConfig(width, height)

	for {
		high := 0
		if s.store != nil {
			if h, err := s.store.HighScore(catmouse.ID); err == nil {
				high = h
			}
		}

		result, err := tui.RunMenu(cfg, high)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch result.Choice {
		case tui.ChoiceQuit:
			return nil

		case tui.ChoiceScores:
			back, err := tui.RunScoreboard(s.store, catmouse.ID, s.cfg.Screen.Title, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}

		case tui.ChoicePlay:
			game, err := s.newGame()
			if err != nil {
				return err
			}
			back, err := tui.Run(game, cfg, s.tuiOptions())
			if err != nil {
				return fmt.Errorf("running game: %w", err)
			}
			if !back {
				return nil
			}
		}
	}
}
