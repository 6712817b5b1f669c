package interview

import (
	"context"

	domain "github.com/prepslot/interview-scheduler/internal/domain/interview"
	"github.com/prepslot/interview-scheduler/internal/httperr"
	"github.com/prepslot/interview-scheduler/internal/models"
)

type ListForTrainee struct {
	repo domain.Repository
}

func NewListForTrainee(repo domain.Repository) *ListForTrainee {
	return &ListForTrainee{repo: repo}
}

func (uc *ListForTrainee) Execute(
	ctx context.Context,
	traineeID uint,
	status string,
) ([]models.Interview, error) {

	if status != "" {
		switch domain.Status(status) {
		case domain.StatusScheduled, domain.StatusInProgress,
			domain.StatusCompleted, domain.StatusCancelled, domain.StatusNoShow:
		default:
			return nil, httperr.ErrBusiness("invalid_status")
		}
	}

	return uc.repo.ListInterviewsForTrainee(ctx, traineeID, status)
}
