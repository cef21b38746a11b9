package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-cascade/internal/games/cascade"
	"github.com/vovakirdan/tui-cascade/internal/platform/tui"
	"github.com/vovakirdan/tui-cascade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start cascade with a mode picker menu",
	Long: `Start cascade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode, then pick a
difficulty. After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  cascade menu
  cascade menu --fps 30
  cascade menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := configureGames(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	closeLog := setupGameLog()
	defer closeLog()

	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		info, ok := registry.Lookup(menuResult.GameID)
		if !ok {
			return
		}

		if flagDifficulty == "" {
			sel, setupErr := tui.RunSetup(info.Title, cfg)
			if setupErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", setupErr)
				continue
			}
			if sel == nil {
				continue
			}
			cascade.SetDifficultyPreset(string(sel.Preset))
		}

		game, err := registry.Create(info.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		if _, err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		// Only the first game honours --seed; NewModel picks a fresh one for 0
		cfg.Seed = 0
	}
}
