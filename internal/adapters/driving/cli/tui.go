package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mailseek-labs/mailseek-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive search interface",
	Long: `Launch the interactive search interface.

Results stream in as you type; every keystroke restarts the search.

Controls:
  ↑/ctrl+p, ↓/ctrl+n - Navigate candidates
  Enter              - Open the selected message
  ctrl+r             - Recall a recent search
  f1                 - Toggle help
  esc, ctrl+c        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("tui requires a terminal; use find for scripted output")
	}

	if services == nil || services.Search == nil {
		return errors.New("search service not configured")
	}

	ports := tui.NewPorts(services.Search, services.Action, services.History)

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())
	services.Search.SetUpdateSink(app.Sink())
	defer services.Search.Stop()

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
