package cmd

import (
	"fmt"
	"os"

	"github.com/ahmadkhatib02/echolearn/internal/export"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore flashcards and stats from a JSON backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read backup: %w", err)
		}
		cards, stats, err := export.Decode(data)
		if err != nil {
			return fmt.Errorf("invalid backup file: %w", err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		sessions := st.Sessions()
		if err := sessions.SaveCards(ctx, cards); err != nil {
			return fmt.Errorf("save cards: %w", err)
		}
		if err := sessions.SaveStats(ctx, stats); err != nil {
			return fmt.Errorf("save stats: %w", err)
		}
		fmt.Printf("Imported %d flashcards from %s\n", len(cards), args[0])
		return nil
	},
}
