package interview

import (
	"context"

	"github.com/prepslot/interview-scheduler/internal/clock"
	domain "github.com/prepslot/interview-scheduler/internal/domain/interview"
	"github.com/prepslot/interview-scheduler/internal/httperr"
	"github.com/prepslot/interview-scheduler/internal/models"
	"github.com/prepslot/interview-scheduler/internal/notify"
)

// ForceStatus is the administrative override: any non-terminal
// interview may be pushed into completed, cancelled or no_show.
type ForceStatus struct {
	repo   domain.Repository
	clock  clock.Clock
	notify *notify.Dispatcher
}

func NewForceStatus(
	repo domain.Repository,
	clk clock.Clock,
	notify *notify.Dispatcher,
) *ForceStatus {
	return &ForceStatus{
		repo:   repo,
		clock:  clk,
		notify: notify,
	}
}

func (uc *ForceStatus) Execute(
	ctx context.Context,
	actor Actor,
	interviewID uint,
	target domain.Status,
	reason string,
) (*models.Interview, error) {

	if !actor.IsAdmin() {
		return nil, httperr.ErrBusiness("not_allowed")
	}

	iv, err := uc.repo.GetInterview(ctx, interviewID)
	if err != nil {
		return nil, err
	}

	if err := domain.Force(iv, target, reason, uc.clock.Now()); err != nil {
		return nil, err
	}

	releaseSlot := target == domain.StatusCancelled && iv.SlotID != nil

	err = uc.repo.Transact(ctx, func(tx domain.Repository) error {
		if err := tx.UpdateInterview(ctx, iv); err != nil {
			return err
		}
		if releaseSlot {
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
		Transition:    "forced_" + string(target),
		TraineeID:     &iv.TraineeID,
		InterviewerID: iv.InterviewerID,
		Metadata:      map[string]any{"reason": reason, "admin_id": actor.ID},
	})

	return iv, nil
}
