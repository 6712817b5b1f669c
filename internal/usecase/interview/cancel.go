package interview

import (
	"context"

	"github.com/prepslot/interview-scheduler/internal/clock"
	domain "github.com/prepslot/interview-scheduler/internal/domain/interview"
	"github.com/prepslot/interview-scheduler/internal/models"
	"github.com/prepslot/interview-scheduler/internal/notify"
)

type CancelInterview struct {
	repo   domain.Repository
	clock  clock.Clock
	notify *notify.Dispatcher
}

func NewCancelInterview(
	repo domain.Repository,
	clk clock.Clock,
	notify *notify.Dispatcher,
) *CancelInterview {
	return &CancelInterview{
		repo:   repo,
		clock:  clk,
		notify: notify,
	}
}

func (uc *CancelInterview) Execute(
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

	if err := domain.Cancel(iv, reason, uc.clock.Now()); err != nil {
		return nil, err
	}

	// Status write and slot release commit together, so the slot can
	// never stay booked under a cancelled interview.
	err = uc.repo.Transact(ctx, func(tx domain.Repository) error {
		if err := tx.UpdateInterview(ctx, iv); err != nil {
			return err
		}
		if iv.SlotID != nil {
			return tx.MarkSlotFree(ctx, *iv.SlotID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		Entity:        "interview",
		EntityID:      iv.ID,
		Transition:    "cancelled",
		TraineeID:     &iv.TraineeID,
		InterviewerID: iv.InterviewerID,
		Metadata:      map[string]any{"reason": reason},
	})

	return iv, nil
}
