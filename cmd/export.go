package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/ahmadkhatib02/echolearn/internal/export"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export flashcards and stats to a JSON backup",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		cards, _, err := st.Sessions().LoadCards(ctx)
		if err != nil {
			return fmt.Errorf("load cards: %w", err)
		}
		if len(cards) == 0 {
			return fmt.Errorf("nothing to export: no flashcards saved")
		}
		stats, _, err := st.Sessions().LoadStats(ctx)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		now := time.Now()
		data, err := export.Encode(cards, stats, now)
		if err != nil {
			return fmt.Errorf("encode backup: %w", err)
		}

		name := export.Filename(now)
		if len(args) == 1 {
			name = args[0]
		}
		if err := os.WriteFile(name, data, 0o644); err != nil {
			return fmt.Errorf("write backup: %w", err)
		}
		fmt.Printf("Exported %d flashcards to %s\n", len(cards), name)
		return nil
	},
}
