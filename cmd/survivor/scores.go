package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vkoshelev/tui-survivor/internal/storage"
)

var flagResetScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top 10 runs.

Examples:
  survivor scores
  survivor scores --db ./scores.db
  survivor scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagResetScores, "reset", false, "Delete all leaderboard entries")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagResetScores {
		if err := store.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing leaderboard: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Leaderboard cleared.")
		return
	}

	entries, err := store.Top()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Leaderboard")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'survivor play' to get on the board!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-10s  %-6s  %-6s  %-6s  %s\n", "Rank", "Name", "Mode", "Round", "Kills", "Time", "Date")
	fmt.Printf("  %-4s  %-16s  %-10s  %-6s  %-6s  %-6s  %s\n", "----", "----", "----", "-----", "-----", "----", "----")

	// Print entries
	for i, e := range entries {
		timeStr := fmt.Sprintf("%d:%02d", e.TimeSurvivedSec/60, e.TimeSurvivedSec%60)
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-10s  %-6d  %-6d  %-6s  %s\n", i+1, e.Name, e.Mode, e.HighestRound, e.Kills, timeStr, dateStr)
	}

	// Show best round
	fmt.Println()
	best, err := store.BestRound()
	if err == nil && best > 0 {
		fmt.Printf("Best: round %d\n", best)
	}
}
