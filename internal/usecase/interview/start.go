package interview

import (
	"context"

	"github.com/prepslot/interview-scheduler/internal/clock"
	domain "github.com/prepslot/interview-scheduler/internal/domain/interview"
	"github.com/prepslot/interview-scheduler/internal/models"
	"github.com/prepslot/interview-scheduler/internal/notify"
)

type StartInterview struct {
	repo   domain.Repository
	clock  clock.Clock
	notify *notify.Dispatcher
}

func NewStartInterview(
	repo domain.Repository,
	clk clock.Clock,
	notify *notify.Dispatcher,
) *StartInterview {
	return &StartInterview{
		repo:   repo,
		clock:  clk,
		notify: notify,
	}
}

func (uc *StartInterview) Execute(
	ctx context.Context,
	actor Actor,
	interviewID uint,
) (*models.Interview, error) {

	iv, err := uc.repo.GetInterview(ctx, interviewID)
	if err != nil {
		return nil, err
	}

	if err := mustBeParty(iv, actor); err != nil {
		return nil, err
	}

	if err := domain.Start(iv, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateInterview(ctx, iv); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		Entity:        "interview",
		EntityID:      iv.ID,
		Transition:    "started",
		TraineeID:     &iv.TraineeID,
		InterviewerID: iv.InterviewerID,
	})

	return iv, nil
}
