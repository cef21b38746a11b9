package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-cascade/internal/config"
	"github.com/vovakirdan/tui-cascade/internal/core"
	"github.com/vovakirdan/tui-cascade/internal/games/cascade"
	"github.com/vovakirdan/tui-cascade/internal/platform/tui"
	"github.com/vovakirdan/tui-cascade/internal/registry"
	"github.com/vovakirdan/tui-cascade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the specified mode (default: cascade).

Controls:
  Arrows/WASD/hjkl  - Move the cursor
  Enter/Space       - Select a tile; select a neighbour to swap
  ?                 - Show a legal swap
  P                 - Pause
  R                 - Restart (after game over)
  B/Esc             - Back (when paused or after game over)
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 5 colours, long cascades
  normal - 6 colours
  hard   - 7 colours, few matches

Without --difficulty a selector is shown before the game starts.

Examples:
  cascade play
  cascade play cascade_moves
  cascade play --difficulty hard --seed 42
  cascade play --config ./my-cascade.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	}
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := cascade.IDClassic
	if len(args) > 0 {
		gameID = args[0]
	}

	info, ok := registry.Lookup(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'cascade list' to see available modes.")
		os.Exit(1)
	}

	if err := configureGames(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	closeLog := setupGameLog()
	defer closeLog()

	cfg := runtimeConfig()

	if flagDifficulty == "" {
		sel, err := tui.RunSetup(info.Title, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if sel == nil {
			return
		}
		cascade.SetDifficultyPreset(string(sel.Preset))
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	_, runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// configureGames passes --config and --difficulty to the game package.
func configureGames() error {
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}
	if flagConfig != "" {
		if _, err := config.LoadCascade(flagConfig); err != nil {
			return err
		}
	}
	cascade.SetConfigPath(flagConfig)
	cascade.SetDifficultyPreset(flagDifficulty)
	return nil
}

// setupGameLog sends game logs to ~/.cascade/debug.log when --verbose is set.
// The terminal belongs to the UI while a game runs.
func setupGameLog() (closeFn func()) {
	if !flagVerbose {
		return func() {}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return func() {}
	}
	dir := filepath.Join(home, ".cascade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open debug log: %v\n", err)
		return func() {}
	}

	logger := log.NewWithOptions(f, log.Options{ReportTimestamp: true, Prefix: "cascade"})
	logger.SetLevel(log.DebugLevel)
	cascade.SetLogger(logger)
	return func() { f.Close() }
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. A missing database only disables
// score keeping.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
