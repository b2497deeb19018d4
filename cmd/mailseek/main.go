// Command mailseek is an interactive search front-end for a local mail
// index. It drives the index's query tool as a subprocess and streams its
// results into a live candidate list.
package main

import (
	"fmt"
	"os"

	"github.com/mailseek-labs/mailseek-cli/internal/adapters/driven/config/file"
	"github.com/mailseek-labs/mailseek-cli/internal/adapters/driven/mailtool"
	"github.com/mailseek-labs/mailseek-cli/internal/adapters/driven/storage/sqlite"
	"github.com/mailseek-labs/mailseek-cli/internal/adapters/driven/viewer"
	"github.com/mailseek-labs/mailseek-cli/internal/adapters/driving/cli"
	"github.com/mailseek-labs/mailseek-cli/internal/core/services"
	"github.com/mailseek-labs/mailseek-cli/internal/logger"
)

// version is overridden at link time.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settingsStore, err := file.NewSettingsStore(os.Getenv("MAILSEEK_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("initialising config: %w", err)
	}
	defer settingsStore.Close()

	settings, err := settingsStore.Load()
	if err != nil {
		// Load falls back to defaults on a broken file.
		logger.Warn("loading config: %v", err)
	}

	searchSvc := services.NewSearchService(mailtool.NewRunner(), settings)
	if err := settingsStore.Watch(searchSvc.ApplySettings); err != nil {
		logger.Warn("config watch unavailable: %v", err)
	}

	actionSvc := services.NewCandidateActionService(viewer.Default(settings.Executable))

	svcs := &cli.Services{
		Find:   searchSvc,
		Search: searchSvc,
		Action: actionSvc,
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		logger.Warn("history disabled: %v", err)
	} else {
		defer store.Close()
		historyStore := store.HistoryStore()
		searchSvc.SetHistoryStore(historyStore)
		svcs.History = services.NewHistoryService(historyStore)
	}

	cli.SetServices(svcs)
	cli.SetVersion(version)
	return cli.Execute()
}
