package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-cascade/internal/registry"
	"github.com/vovakirdan/tui-cascade/internal/storage"
)

var (
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 high scores for the specified mode.

Examples:
  cascade scores cascade
  cascade scores cascade_moves --recent
  cascade scores cascade --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest finished games instead of the top scores")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	info, ok := registry.Lookup(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'cascade list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		err = store.ClearScores(gameID)
		if err == nil {
			fmt.Printf("Cleared scores for %s\n", info.Title)
		}
	case flagRecent:
		err = printRecent(store, info)
	default:
		err = printTop(store, info)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printTop(store *storage.Store, info registry.GameInfo) error {
	scores, err := store.TopScores(info.ID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'cascade play %s' to set the first high score!\n", info.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-12s  %-10s  %s\n", "----", "------", "-----", "----")
	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-12s  %-10d  %s\n", i+1, player, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(info.ID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Average: %.0f  Best combo: x%d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, max(stats.BestCombo, 1))
	return nil
}

func printRecent(store *storage.Store, info registry.GameInfo) error {
	games, err := store.RecentGames(info.ID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Recent Games - %s\n", info.Title)
	fmt.Println()

	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-12s  %-8s  %-6s  %-6s  %-20s  %s\n", "Date", "Player", "Score", "Moves", "Combo", "Seed", "ID")
	for _, g := range games {
		player := g.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-16s  %-12s  %-8d  %-6d  x%-5d  %-20d  %s\n",
			g.CreatedAt.Format("2006-01-02 15:04"), player, g.Score, g.Moves, max(g.BestCombo, 1), g.Seed, g.ID)
	}
	fmt.Println()
	fmt.Println("Replay a board with 'cascade simulate --seed <seed>'.")
	return nil
}
