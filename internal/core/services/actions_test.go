package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailseek-labs/mailseek-cli/internal/core/domain"
)

// fakeViewer records opened message identifiers.
type fakeViewer struct {
	opened []string
	err    error
}

func (f *fakeViewer) Open(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.opened = append(f.opened, id)
	return nil
}

func TestCandidateActionService_OpenCandidate(t *testing.T) {
	viewer := &fakeViewer{}
	svc := NewCandidateActionService(viewer)

	c := domain.RecordCandidate(domain.Record{
		ID:  "id123",
		Raw: "id123" + domain.FieldDelimiter + "Subject line",
	})
	err := svc.OpenCandidate(context.Background(), c)

	require.NoError(t, err)
	require.Len(t, viewer.opened, 1)
	assert.Equal(t, "id123", viewer.opened[0])
}

func TestCandidateActionService_RejectsNotice(t *testing.T) {
	svc := NewCandidateActionService(&fakeViewer{})
	err := svc.OpenCandidate(context.Background(), domain.NoticeCandidate("no matches found"))
	assert.ErrorIs(t, err, domain.ErrInvalidSelection)
}

func TestCandidateActionService_RejectsValueWithoutDelimiter(t *testing.T) {
	svc := NewCandidateActionService(&fakeViewer{})
	c := domain.RecordCandidate(domain.Record{ID: "x", Raw: "no delimiter"})
	err := svc.OpenCandidate(context.Background(), c)
	assert.ErrorIs(t, err, domain.ErrInvalidSelection)
}

func TestCandidateActionService_WrapsViewerError(t *testing.T) {
	viewerErr := errors.New("viewer exploded")
	svc := NewCandidateActionService(&fakeViewer{err: viewerErr})

	c := domain.RecordCandidate(domain.Record{
		ID:  "id123",
		Raw: "id123" + domain.FieldDelimiter + "Subject",
	})
	err := svc.OpenCandidate(context.Background(), c)

	require.Error(t, err)
	assert.ErrorIs(t, err, viewerErr)
	assert.Contains(t, err.Error(), "id123")
}

func TestHistoryService_Recent(t *testing.T) {
	store := &fakeHistory{}
	require.NoError(t, store.Add(context.Background(), domain.HistoryEntry{ID: "1", Query: "from:alice"}))

	svc := NewHistoryService(store)
	entries, err := svc.Recent(context.Background(), 0)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "from:alice", entries[0].Query)
}
