// cascade is a match-3 tile-swapping puzzle for the terminal.
//
// Usage:
//
//	cascade list              - List available modes
//	cascade play [mode]       - Play a mode (default: cascade)
//	cascade menu              - Pick modes interactively
//	cascade serve             - Start SSH server for remote play
//	cascade scores <mode>     - Show high scores for a mode
//	cascade simulate          - Run the engine headless and print its events
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.cascade/scores.db)
//	--verbose       - Log debug output to stderr
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-cascade/internal/games/cascade"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cascade",
	Short: "Cascade - a match-3 puzzle in your terminal",
	Long: `Cascade is a terminal match-3 puzzle. Swap two neighbouring tiles to
line up three or more of a colour; matched tiles vanish, the columns
fall and new tiles drop in, sometimes setting off chain reactions.

Available commands:
  list      - Show all game modes
  play      - Play a mode directly
  menu      - Interactive mode picker
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Run the engine without a terminal UI

Examples:
  cascade play
  cascade play cascade_moves --difficulty hard
  cascade menu
  cascade serve --ssh :2222
  cascade simulate --seed 42 --moves 20`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time, except for simulate)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cascade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger returns a stderr logger honouring --verbose.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
