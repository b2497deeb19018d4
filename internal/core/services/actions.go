package services

import (
	"context"
	"fmt"

	"github.com/mailseek-labs/mailseek-cli/internal/core/domain"
	"github.com/mailseek-labs/mailseek-cli/internal/core/ports/driven"
	"github.com/mailseek-labs/mailseek-cli/internal/core/ports/driving"
	"github.com/mailseek-labs/mailseek-cli/internal/logger"
)

// Ensure CandidateActionService implements the interface.
var _ driving.CandidateActionService = (*CandidateActionService)(nil)

// CandidateActionService resolves a chosen candidate to its stable
// identifier and hands it to the external message viewer.
type CandidateActionService struct {
	viewer driven.MessageViewer
}

// NewCandidateActionService creates a new candidate action service.
func NewCandidateActionService(viewer driven.MessageViewer) *CandidateActionService {
	return &CandidateActionService{viewer: viewer}
}

// OpenCandidate extracts the identifier preceding the first field delimiter
// and opens the message. Notice candidates and values without a delimiter
// are rejected: only parser-produced records should ever reach selection.
func (s *CandidateActionService) OpenCandidate(ctx context.Context, c domain.Candidate) error {
	if c.IsNotice() {
		return domain.ErrInvalidSelection
	}
	id, ok := domain.SelectionID(c.Record.Raw)
	if !ok {
		return domain.ErrInvalidSelection
	}
	logger.Debug("opening message %s", id)
	if err := s.viewer.Open(ctx, id); err != nil {
		return fmt.Errorf("opening message %s: %w", id, err)
	}
	return nil
}
