package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		stats, _, err := st.Sessions().LoadStats(ctx)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}
		cards, _, err := st.Sessions().LoadCards(ctx)
		if err != nil {
			return fmt.Errorf("load cards: %w", err)
		}
		reviews, err := st.Events().ReviewCount(ctx)
		if err != nil {
			return fmt.Errorf("count reviews: %w", err)
		}

		accuracy := 0.0
		if stats.Total > 0 {
			accuracy = float64(stats.Correct) / float64(stats.Total) * 100
		}

		fmt.Printf("Flashcards:       %d (%d due now)\n", len(cards), cards.DueCount(time.Now()))
		fmt.Printf("Answers marked:   %d (%d correct, %d incorrect)\n", stats.Total, stats.Correct, stats.Incorrect)
		fmt.Printf("Accuracy:         %.0f%%\n", accuracy)
		fmt.Printf("Reviews recorded: %d\n", reviews)
		return nil
	},
}
