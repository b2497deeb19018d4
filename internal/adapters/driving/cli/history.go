package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent searches",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "maximum number of entries")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if services == nil || services.History == nil {
		return errors.New("history not available")
	}

	entries, err := services.History.Recent(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	if len(entries) == 0 {
		cmd.Println("No past searches.")
		return nil
	}

	for _, entry := range entries {
		cmd.Printf("%s  %-40s %d hits\n", entry.SearchedAt.Format("2006-01-02 15:04"), entry.Query, entry.Hits)
	}
	return nil
}
