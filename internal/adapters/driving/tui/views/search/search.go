// Package search provides the incremental search view for the TUI.
package search

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mailseek-labs/mailseek-cli/internal/adapters/driving/tui/components/input"
	"github.com/mailseek-labs/mailseek-cli/internal/adapters/driving/tui/components/list"
	"github.com/mailseek-labs/mailseek-cli/internal/adapters/driving/tui/components/status"
	"github.com/mailseek-labs/mailseek-cli/internal/adapters/driving/tui/keymap"
	"github.com/mailseek-labs/mailseek-cli/internal/adapters/driving/tui/messages"
	"github.com/mailseek-labs/mailseek-cli/internal/adapters/driving/tui/styles"
	"github.com/mailseek-labs/mailseek-cli/internal/core/domain"
	"github.com/mailseek-labs/mailseek-cli/internal/core/ports/driving"
)

// updateBuffer bounds the publication channel. The consume goroutine blocks
// when the UI falls this far behind, which the throttle makes unlikely.
const updateBuffer = 64

// historyLimit is how many past searches the recall overlay shows.
const historyLimit = 10

// historyOverlay is the recent-searches selection overlay.
type historyOverlay struct {
	entries  []domain.HistoryEntry
	selected int
}

// View is the incremental search view: query input, live candidate list,
// and status bar. Every keystroke that changes the query restarts the
// search run.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QueryInput
	list      *list.CandidateList
	statusbar *status.Bar

	searchService  driving.IncrementalSearch
	actionService  driving.CandidateActionService
	historyService driving.HistoryService
	ctx            context.Context

	// updates carries publications from the run's consume goroutine into
	// the Bubbletea loop.
	updates chan driving.SearchUpdate

	history *historyOverlay

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new search view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	searchService driving.IncrementalSearch,
	actionService driving.CandidateActionService,
	historyService driving.HistoryService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:         s,
		keymap:         km,
		input:          input.NewQueryInput(s),
		list:           list.NewCandidateList(s),
		statusbar:      status.NewBar(s, km),
		searchService:  searchService,
		actionService:  actionService,
		historyService: historyService,
		ctx:            context.Background(),
		updates:        make(chan driving.SearchUpdate, updateBuffer),
		width:          80,
		height:         24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Sink returns the update sink to register with the search service. The
// sink may be invoked from any goroutine.
func (v *View) Sink() driving.UpdateSink {
	return func(u driving.SearchUpdate) {
		v.updates <- u
	}
}

// Init initialises the view and arms the publication listener.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Init(), v.waitForUpdate())
}

// waitForUpdate blocks until the next publication arrives.
func (v *View) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		return messages.CandidatesPublished{Update: <-v.updates}
	}
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.CandidatesPublished:
		v.applyUpdate(msg.Update)
		return v, v.waitForUpdate()

	case messages.CandidateOpened:
		v.err = msg.Err
		return v, nil

	case messages.HistoryLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.history = &historyOverlay{entries: msg.Entries}
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// applyUpdate folds one publication into the display. Publications from
// runs older than the one on screen are ignored.
func (v *View) applyUpdate(u driving.SearchUpdate) {
	if u.Generation < v.list.Generation() {
		return
	}
	if v.input.Value() == "" {
		// The query was cleared after this publication was queued.
		return
	}

	v.list.SetCandidates(u.Generation, u.Query, u.Candidates)
	v.statusbar.SetState(u.State)
	v.statusbar.SetHits(u.Count)

	if u.State == domain.RunFailed && len(u.Candidates) > 0 && u.Candidates[0].IsNotice() {
		v.statusbar.SetMessage(u.Candidates[0].Notice)
	} else {
		v.statusbar.SetMessage("")
	}
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.history != nil {
		return v.handleHistoryKey(msg)
	}

	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Back):
		v.searchService.Stop()
		return v, func() tea.Msg { return messages.Quit{} }

	case keymap.Matches(keyStr, v.keymap.Up):
		v.list.MoveUp()
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Down):
		v.list.MoveDown()
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Open):
		return v, v.openSelected()

	case keymap.Matches(keyStr, v.keymap.History):
		return v, v.loadHistory()

	case keymap.Matches(keyStr, v.keymap.Clear):
		v.input.Reset()
		return v, v.restartSearch("")
	}

	// Everything else edits the query.
	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	after := v.input.Value()

	if after != before {
		return v, tea.Batch(cmd, v.restartSearch(after))
	}
	return v, cmd
}

// handleHistoryKey processes keyboard input while the history overlay is up.
func (v *View) handleHistoryKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keymap.Back):
		v.history = nil
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Up):
		if v.history.selected > 0 {
			v.history.selected--
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Down):
		if v.history.selected < len(v.history.entries)-1 {
			v.history.selected++
		}
		return v, nil

	case keymap.Matches(keyStr, v.keymap.Open):
		if len(v.history.entries) == 0 {
			v.history = nil
			return v, nil
		}
		query := v.history.entries[v.history.selected].Query
		v.history = nil
		v.input.SetValue(query)
		return v, v.restartSearch(query)
	}

	return v, nil
}

// restartSearch cancels the active run and starts one for query. An empty
// query stops searching and empties the list.
func (v *View) restartSearch(query string) tea.Cmd {
	if query == "" {
		v.searchService.Stop()
		v.list.Clear()
		v.statusbar.Clear()
		v.err = nil
		return nil
	}

	return func() tea.Msg {
		if v.searchService == nil {
			return messages.ErrorOccurred{Err: ErrNoSearchService}
		}
		if err := v.searchService.Start(v.ctx, query); err != nil {
			return messages.ErrorOccurred{Err: err}
		}
		return nil
	}
}

// openSelected hands the selected candidate to the external viewer.
func (v *View) openSelected() tea.Cmd {
	selected := v.list.SelectedCandidate()
	if selected == nil || selected.IsNotice() {
		return nil
	}

	cand := *selected
	return func() tea.Msg {
		err := v.actionService.OpenCandidate(v.ctx, cand)
		return messages.CandidateOpened{ID: cand.Record.ID, Err: err}
	}
}

// loadHistory fetches recent searches for the overlay.
func (v *View) loadHistory() tea.Cmd {
	return func() tea.Msg {
		if v.historyService == nil {
			return messages.HistoryLoaded{Err: ErrNoHistoryService}
		}
		entries, err := v.historyService.Recent(v.ctx, historyLimit)
		return messages.HistoryLoaded{Entries: entries, Err: err}
	}
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	header := v.styles.Title.Render("mailseek")
	sections = append(sections, header, "")

	sections = append(sections, v.input.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	if v.history != nil {
		sections = append(sections, v.renderHistory())
	} else {
		sections = append(sections, v.list.View())
	}

	sections = append(sections, "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHistory renders the recent-searches overlay.
func (v *View) renderHistory() string {
	if len(v.history.entries) == 0 {
		return v.styles.Border.Padding(0, 1).Render(v.styles.Muted.Render("No past searches"))
	}

	lines := make([]string, 0, len(v.history.entries)+1)
	lines = append(lines, v.styles.Title.Render("Recent searches"))
	for i, entry := range v.history.entries {
		indicator := "  "
		if i == v.history.selected {
			indicator = "> "
		}
		line := indicator + entry.Query
		if i == v.history.selected {
			lines = append(lines, v.styles.Selected.Render(line))
		} else {
			lines = append(lines, v.styles.Normal.Render(line))
		}
	}

	return v.styles.Border.Padding(0, 1).Render(strings.Join(lines, "\n"))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-8)
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current query text.
func (v *View) Query() string {
	return v.input.Value()
}

// Candidates returns the candidates on display.
func (v *View) Candidates() []domain.Candidate {
	return v.list.Candidates()
}

// SelectedIndex returns the index of the selected candidate.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// SelectedCandidate returns the currently selected candidate, or nil.
func (v *View) SelectedCandidate() *domain.Candidate {
	return v.list.SelectedCandidate()
}

// HistoryVisible returns whether the history overlay is up.
func (v *View) HistoryVisible() bool {
	return v.history != nil
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Reset returns the view to its initial empty state.
func (v *View) Reset() {
	v.input.Reset()
	v.list.Clear()
	v.statusbar.Clear()
	v.history = nil
	v.err = nil
}
