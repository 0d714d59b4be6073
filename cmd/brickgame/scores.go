package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-arcade/internal/registry"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show recorded results",
	Long: `Display the best recorded results and play statistics.
Without a game argument every registered game is shown.

Examples:
  brickgame scores
  brickgame scores tetris --limit 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results per game")
}

func runScores(cmd *cobra.Command, args []string) error {
	games := registry.List()
	if len(args) == 1 {
		var picked []registry.GameInfo
		for _, g := range games {
			if g.ID == args[0] {
				picked = append(picked, g)
			}
		}
		if len(picked) == 0 {
			return fmt.Errorf("unknown game %q, run 'brickgame list' to see available games", args[0])
		}
		games = picked
	}

	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	for i, g := range games {
		if i > 0 {
			fmt.Println()
		}
		if err := a.printScores(cmd.Context(), g); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) printScores(ctx context.Context, g registry.GameInfo) error {
	fmt.Printf("High Scores - %s\n", g.Title)
	fmt.Printf("Best: %d\n\n", a.highScore(g.ID))

	if a.results == nil {
		return errors.New("results database is unavailable")
	}

	scores, err := a.results.TopScores(ctx, g.ID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Printf("Play 'brickgame play %s' to set the first high score!\n", g.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %-5s  %-8s  %s\n", "Rank", "Score", "Level", "Result", "Date")
	fmt.Printf("  %-4s  %-7s  %-5s  %-8s  %s\n", "----", "-----", "-----", "------", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-7d  %-5d  %-8s  %s\n", i+1, e.Score, e.Level, e.Outcome, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := a.results.GameStats(ctx, g.ID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Printf("\n%d games, average %.0f, %d wins\n", stats.GamesCount, stats.AvgScore, stats.Wins)
	return nil
}
