package driving

import (
	"context"

	"github.com/mailseek-labs/mailseek-cli/internal/core/domain"
)

// CandidateActionService performs actions on a chosen candidate.
type CandidateActionService interface {
	// OpenCandidate resolves the candidate's stable identifier and hands it
	// to the external message viewer. Notice candidates are not actionable
	// and return domain.ErrInvalidSelection.
	OpenCandidate(ctx context.Context, c domain.Candidate) error
}
