package interview

import (
	"context"
	"time"

	domain "github.com/prepslot/interview-scheduler/internal/domain/interview"
	"github.com/prepslot/interview-scheduler/internal/httperr"
	"github.com/prepslot/interview-scheduler/internal/models"
)

type ListForInterviewer struct {
	repo domain.Repository
}

func NewListForInterviewer(repo domain.Repository) *ListForInterviewer {
	return &ListForInterviewer{repo: repo}
}

// Execute lists an interviewer's schedule for [fromDate, toDate). An
// empty toDate means a single day.
func (uc *ListForInterviewer) Execute(
	ctx context.Context,
	interviewerID uint,
	fromDate string,
	toDate string,
) ([]models.Interview, error) {

	from, err := time.Parse(domain.DateLayout, fromDate)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if toDate == "" {
		toDate = from.AddDate(0, 0, 1).Format(domain.DateLayout)
	} else if _, err := time.Parse(domain.DateLayout, toDate); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	return uc.repo.ListInterviewsForInterviewer(ctx, interviewerID, fromDate, toDate)
}
