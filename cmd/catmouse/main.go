// catmouse is a side-scrolling platformer: a cat runs across endless
// platforms and catches mice for points.
//
// Usage:
//
//	catmouse play            - Play in the terminal
//	catmouse window          - Play in a desktop window
//	catmouse menu            - Start menu with play and high scores
//	catmouse scores          - Show high scores
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.catmouse/scores.db)
//	--config <path>      - Use a custom config YAML
//	--watch              - Reload the config file when it changes
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Log destination for the terminal front-end
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/cat-and-mouse/internal/games/catmouse"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagWatch    bool
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catmouse",
	Short: "Cat and Mouse - a side-scrolling platformer",
	Long: `Cat and Mouse is a side-scrolling platformer. Run right across
endless platforms, jump between them and catch the mice bobbing on top.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  menu     - Interactive menu with high scores
  scores   - View high scores

Examples:
  catmouse play
  catmouse window --seed 42
  catmouse menu --config ./my-catmouse.yaml --watch
  catmouse scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = screen.fps from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.catmouse/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagWatch, "watch", false, "Reload the config file on change")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.catmouse/catmouse.log", "Log file used while the terminal is in use")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}
