package interview

import (
	"context"

	domain "github.com/prepslot/interview-scheduler/internal/domain/interview"
	"github.com/prepslot/interview-scheduler/internal/models"
)

// AnnotateCancelReason updates the reason on an already-cancelled
// interview, the single mutation a terminal record still accepts.
type AnnotateCancelReason struct {
	repo domain.Repository
}

func NewAnnotateCancelReason(repo domain.Repository) *AnnotateCancelReason {
	return &AnnotateCancelReason{repo: repo}
}

func (uc *AnnotateCancelReason) Execute(
	ctx context.Context,
	actor Actor,
	interviewID uint,
	reason string,
) (*models.Interview, error) {

	iv, err := uc.repo.GetInterview(ctx, interviewID)
	if err != nil {
		return nil, err
	}

	if err := mustBeParty(iv, actor); err != nil {
		return nil, err
	}

	if err := domain.AnnotateCancelReason(iv, reason); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateInterview(ctx, iv); err != nil {
		return nil, err
	}

	return iv, nil
}
