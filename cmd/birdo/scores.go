package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tuigames/birdo/internal/platform/tui"
	"github.com/tuigames/birdo/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and agent episodes",
	Long: `Display the top 10 high scores and per-policy agent statistics.

Examples:
  birdo scores
  birdo scores --interactive`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse scores in a TUI table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		if err := tui.RunScoreboard(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'birdo play' to set the first high score!")
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}

		fmt.Println()
		if high, highErr := store.HighScore(); highErr == nil {
			fmt.Printf("Best: %d\n", high)
		}
	}

	stats, err := store.EpisodeStats()
	if err != nil || len(stats) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Agent Episodes")
	fmt.Println()
	fmt.Printf("  %-10s  %-9s  %-6s  %-10s  %s\n", "Policy", "Episodes", "Best", "Avg Score", "Avg Ticks")
	for _, st := range stats {
		fmt.Printf("  %-10s  %-9d  %-6d  %-10.1f  %.0f\n",
			st.Policy, st.Episodes, st.BestScore, st.AvgScore, st.AvgTicks)
	}
}
