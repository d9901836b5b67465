package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tuigames/chaserun/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show best runs for a game",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gameID := "chase"
		if len(args) > 0 {
			gameID = args[0]
		}

		store, err := storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("cannot open scores database: %w", err)
		}
		defer store.Close()

		runs, err := store.TopRuns(gameID, 10)
		if err != nil {
			return err
		}

		if len(runs) == 0 {
			fmt.Printf("No runs recorded for %q yet.\n", gameID)
			return nil
		}

		best, err := store.HighScore(gameID)
		if err != nil {
			return err
		}

		fmt.Printf("Best runs for %q (best: %s):\n", gameID, formatCentiseconds(best))
		for i, run := range runs {
			fmt.Printf("  %2d. %8s  repels %-3d combo x%-2d  %s\n",
				i+1,
				formatCentiseconds(run.DurationCs),
				run.Repels,
				run.MaxCombo,
				run.CreatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func formatCentiseconds(cs int) string {
	total := cs / 100
	return fmt.Sprintf("%d:%02d.%02d", total/60, total%60, cs%100)
}
