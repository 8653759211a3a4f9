package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/geometry-fighter/internal/platform/tui"
	"github.com/vovakirdan/geometry-fighter/internal/storage"
)

var (
	flagInteractive bool
	flagLimit       int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best score and round history",
	Long: `Display the best score and the top rounds.

The gdata backend keeps only the best score.

Examples:
  geofighter scores
  geofighter scores --limit 25
  geofighter scores --interactive`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

var resetScoresCmd = &cobra.Command{
	Use:   "reset-scores",
	Short: "Delete the best score and round history",
	Args:  cobra.NoArgs,
	RunE:  runResetScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of rounds to list")
}

func runScores(cmd *cobra.Command, args []string) error {
	logger, _, err := newLogger(false)
	if err != nil {
		return err
	}

	backend, err := openBackend()
	if err != nil {
		return err
	}
	defer backend.Close()

	best, err := backend.best.LoadBestScore()
	if err != nil {
		logger.Warn("cannot read best score", "err", err)
	}

	if backend.sqlite == nil {
		fmt.Printf("Best: %d\n", best)
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(backend.sqlite, storage.GameID, width, height)
	}

	scores, err := backend.sqlite.TopScores(storage.GameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Geometry Fighter")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'geofighter play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", best)
	if stats, err := backend.sqlite.GetGameStats(storage.GameID); err == nil {
		fmt.Printf("Rounds: %d  Average: %.1f\n", stats.GamesCount, stats.AvgScore)
	}
	return nil
}

func runResetScores(cmd *cobra.Command, args []string) error {
	logger, _, err := newLogger(false)
	if err != nil {
		return err
	}

	backend, err := openBackend()
	if err != nil {
		return err
	}
	defer backend.Close()

	if err := backend.reset(); err != nil {
		return err
	}
	logger.Info("scores cleared", "store", flagStore)
	fmt.Println("Scores cleared.")
	return nil
}
