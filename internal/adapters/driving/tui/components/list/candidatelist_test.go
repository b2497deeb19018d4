package list

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailseek-labs/mailseek-cli/internal/adapters/driving/tui/styles"
	"github.com/mailseek-labs/mailseek-cli/internal/core/domain"
)

func record(id, text string) domain.Candidate {
	return domain.RecordCandidate(domain.Record{
		ID:  id,
		Raw: id + domain.FieldDelimiter + text,
	})
}

func TestNewCandidateList(t *testing.T) {
	l := NewCandidateList(styles.DefaultStyles())

	require.NotNil(t, l)
	assert.True(t, l.IsEmpty())
	assert.Nil(t, l.SelectedCandidate())
}

func TestCandidateList_SetCandidatesResetsSelectionOnNewRun(t *testing.T) {
	l := NewCandidateList(nil)

	l.SetCandidates(1, "q", []domain.Candidate{record("a", "one"), record("b", "two")})
	l.MoveDown()
	require.Equal(t, 1, l.Selected())

	l.SetCandidates(2, "qu", []domain.Candidate{record("a", "one"), record("b", "two")})

	assert.Equal(t, 0, l.Selected())
}

func TestCandidateList_SelectionFollowsRecordWithinRun(t *testing.T) {
	l := NewCandidateList(nil)

	l.SetCandidates(1, "q", []domain.Candidate{record("a", "one"), record("b", "two")})
	l.MoveDown()

	l.SetCandidates(1, "q", []domain.Candidate{
		record("a", "one"), record("b", "two"), record("c", "three"),
	})

	assert.Equal(t, 1, l.Selected())
	assert.Equal(t, "b", l.SelectedCandidate().Record.ID)
}

func TestCandidateList_SelectionResetsWhenRecordGone(t *testing.T) {
	l := NewCandidateList(nil)

	l.SetCandidates(1, "q", []domain.Candidate{record("a", "one"), record("b", "two")})
	l.MoveDown()

	l.SetCandidates(1, "q", []domain.Candidate{record("a", "one"), record("c", "three")})

	assert.Equal(t, 0, l.Selected())
}

func TestCandidateList_MoveBounds(t *testing.T) {
	l := NewCandidateList(nil)
	l.SetCandidates(1, "q", []domain.Candidate{record("a", "one"), record("b", "two")})

	l.MoveUp()
	assert.Equal(t, 0, l.Selected())

	l.MoveDown()
	l.MoveDown()
	l.MoveDown()
	assert.Equal(t, 1, l.Selected())
}

func TestCandidateList_ViewSkipsUnrenderableRecords(t *testing.T) {
	l := NewCandidateList(nil)
	l.SetDimensions(80, 20)

	broken := domain.RecordCandidate(domain.Record{ID: "x", Raw: "no-delimiter-here"})
	l.SetCandidates(1, "q", []domain.Candidate{record("a", "visible row"), broken})

	out := l.View()
	assert.Contains(t, out, "visible row")
	assert.NotContains(t, out, "no-delimiter-here")
}

func TestCandidateList_ViewRendersNotices(t *testing.T) {
	l := NewCandidateList(nil)
	l.SetDimensions(80, 20)

	l.SetCandidates(1, "q", []domain.Candidate{domain.NoticeCandidate("need more input")})

	assert.Contains(t, l.View(), "need more input")
}

func TestCandidateList_ViewEmpty(t *testing.T) {
	l := NewCandidateList(nil)

	assert.Contains(t, l.View(), "No matches")
}

func TestCandidateList_UpdateHandlesArrowKeys(t *testing.T) {
	l := NewCandidateList(nil)
	l.SetCandidates(1, "q", []domain.Candidate{record("a", "one"), record("b", "two")})

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, l.Selected())

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, l.Selected())
}

func TestCandidateList_Clear(t *testing.T) {
	l := NewCandidateList(nil)
	l.SetCandidates(3, "q", []domain.Candidate{record("a", "one")})

	l.Clear()

	assert.True(t, l.IsEmpty())
	assert.Equal(t, uint64(3), l.Generation())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 40))
	assert.Equal(t, "aaaaaaa...", truncate("aaaaaaaaaaaaaaaaaaaa", 10))
	// Floor keeps very narrow widths usable.
	assert.Equal(t, "aaaaaaa...", truncate("aaaaaaaaaaaaaaaaaaaa", 2))
}
