package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/storage"
)

var (
	flagLimit  int
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the round history",
	Long: `Display the best recorded rounds, or the most recent ones with --recent.

Examples:
  brickbreaker scores
  brickbreaker scores --recent --limit 20
  brickbreaker scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent rounds instead of the best")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the whole history")
}

func runScores(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := openStore(cfg.Storage)
	if err != nil {
		return fmt.Errorf("error opening round history: %w", err)
	}
	if store == nil {
		return errors.New("round history is disabled")
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRounds(); err != nil {
			return fmt.Errorf("error clearing round history: %w", err)
		}
		fmt.Println("Round history cleared.")
		return nil
	}

	var rounds []storage.Round
	title := "Best rounds"
	if flagRecent {
		title = "Recent rounds"
		rounds, err = store.RecentRounds(flagLimit)
	} else {
		rounds, err = store.TopRounds(flagLimit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving rounds: %w", err)
	}

	fmt.Printf("Brick Breaker - %s\n", title)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Run 'brickbreaker play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %s\n", "Rank", "Score", "Result", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %s\n", "----", "-----", "------", "----", "----")
	for i, r := range rounds {
		secs := int(r.Duration.Seconds())
		fmt.Printf("  %-4d  %-6d  %-6s  %d:%02d  %s\n",
			i+1, r.Score, r.Result, secs/60, secs%60, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Rounds: %d  Wins: %d  Best: %d  Average: %.0f\n",
			stats.Rounds, stats.Wins, stats.BestScore, stats.AvgScore)
	}
	return nil
}
