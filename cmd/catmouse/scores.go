package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cat-and-mouse/internal/games/catmouse"
	"github.com/vovakirdan/cat-and-mouse/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 runs and totals.

Examples:
  catmouse scores
  catmouse scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(catmouse.ID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	runs, err := store.TopRuns(catmouse.ID, 10)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Cat and Mouse")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'catmouse play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-9s  %s\n", "Rank", "Score", "Mice", "Distance", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-9s  %s\n", "----", "-----", "----", "--------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-6d  %-9.0f  %s\n", i+1, r.Score, r.Mice, r.Distance, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(catmouse.ID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Average: %.1f  Mice caught: %d\n",
			stats.HighScore, stats.Runs, stats.AvgScore, stats.TotalMice)
	}
	return nil
}
