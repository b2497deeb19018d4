package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mailseek-labs/mailseek-cli/internal/adapters/driving/tui/keymap"
	"github.com/mailseek-labs/mailseek-cli/internal/adapters/driving/tui/messages"
	"github.com/mailseek-labs/mailseek-cli/internal/adapters/driving/tui/styles"
	"github.com/mailseek-labs/mailseek-cli/internal/adapters/driving/tui/views/search"
	"github.com/mailseek-labs/mailseek-cli/internal/core/ports/driving"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings.
	keymap *keymap.KeyMap

	// searchView is the incremental search view.
	searchView *search.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	searchView := search.NewView(s, km, ports.Search, ports.Action, ports.History)

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		searchView:  searchView,
		currentView: messages.ViewSearch,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	return a
}

// Sink returns the update sink to register with the search service before
// the program runs.
func (a *App) Sink() driving.UpdateSink {
	return a.searchView.Sink()
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("mailseek"),
		a.searchView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.searchView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), a.keymap.Quit) {
			a.ports.Search.Stop()
			return a, tea.Quit
		}
		if keymap.Matches(msg.String(), a.keymap.Help) {
			if a.currentView == messages.ViewHelp {
				a.currentView = messages.ViewSearch
			} else {
				a.currentView = messages.ViewHelp
			}
			return a, nil
		}
		if a.currentView == messages.ViewHelp {
			if keymap.Matches(msg.String(), a.keymap.Back) {
				a.currentView = messages.ViewSearch
			}
			return a, nil
		}
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Everything else belongs to the search view, help included: stream
	// publications keep arriving while the help view is up.
	a.searchView, cmd = a.searchView.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewSearch:
		return a.searchView.View()
	default:
		return a.searchView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `mailseek help

Query:
  (type)       Narrow the search as you type
  ctrl+u       Clear the query

Candidates:
  ↑/ctrl+p     Move up
  ↓/ctrl+n     Move down
  enter        Open the selected message

Other:
  ctrl+r       Recall a recent search
  f1           Toggle this help
  esc          Quit
  ctrl+c       Quit

[f1] back to search`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SearchView returns the search view (for testing).
func (a *App) SearchView() *search.View {
	return a.searchView
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.searchView.SetDimensions(width, height)
}
