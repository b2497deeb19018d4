package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mailseek-labs/mailseek-cli/internal/core/domain"
)

var findJSON bool

var findCmd = &cobra.Command{
	Use:   "find [query]",
	Short: "Run a search to completion and print the results",
	Long: `Runs one search against the mail index and prints every hit once the
tool exits. This is the non-interactive counterpart of the tui command.`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func init() {
	findCmd.Flags().BoolVar(&findJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(findCmd)
}

// findResult is the JSON shape of one hit.
type findResult struct {
	ID     string            `json:"id"`
	Fields map[string]string `json:"fields,omitempty"`
	Text   string            `json:"text"`
}

func runFind(cmd *cobra.Command, args []string) error {
	query := args[0]

	if services == nil || services.Find == nil {
		return errors.New("search service not configured")
	}

	candidates, err := services.Find.Find(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if findJSON {
		return outputFindJSON(cmd, candidates)
	}

	return outputFindTable(cmd, candidates)
}

func outputFindJSON(cmd *cobra.Command, candidates []domain.Candidate) error {
	results := make([]findResult, 0, len(candidates))
	for _, c := range candidates {
		if c.IsNotice() {
			continue
		}
		text, _ := c.Record.Text()
		results = append(results, findResult{
			ID:     c.Record.ID,
			Fields: c.Record.Fields,
			Text:   text,
		})
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputFindTable(cmd *cobra.Command, candidates []domain.Candidate) error {
	hits := 0
	for _, c := range candidates {
		if c.IsNotice() {
			cmd.Println(c.Notice)
			continue
		}
		text, ok := c.Record.Text()
		if !ok {
			continue
		}
		hits++
		cmd.Printf("  [%d] %s\n", hits, text)
	}

	if hits == 0 {
		return nil
	}
	cmd.Println()
	cmd.Printf("%d hits\n", hits)
	return nil
}
