// Package cli implements the mailseek command-line interface.
// It is a driving adapter: commands translate flags and arguments into
// calls on the core services.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mailseek-labs/mailseek-cli/internal/core/ports/driving"
	"github.com/mailseek-labs/mailseek-cli/internal/logger"
)

// version is the build version, overridden at link time.
var version = "dev"

// verbose enables debug logging on stderr.
var verbose bool

// Services aggregates the core services the commands drive. The entry
// point wires concrete implementations before Execute.
type Services struct {
	// Find runs one-shot searches for the find command.
	Find driving.OneShotSearch

	// Search drives incremental runs for the tui command.
	Search driving.IncrementalSearch

	// Action opens chosen candidates in the external viewer.
	Action driving.CandidateActionService

	// History recalls past searches. Optional.
	History driving.HistoryService
}

// services holds the wired services for the running process.
var services *Services

// SetServices installs the service implementations the commands use.
func SetServices(s *Services) {
	services = s
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "mailseek",
	Short: "Interactive search front-end for your local mail index",
	Long: `mailseek drives a mail indexer's query tool as a live subprocess and
presents its results as you type: each keystroke restarts the search and
the candidate list grows while output streams in.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
