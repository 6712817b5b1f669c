package interview

import (
	"context"

	domain "github.com/prepslot/interview-scheduler/internal/domain/interview"
	"github.com/prepslot/interview-scheduler/internal/httperr"
	"github.com/prepslot/interview-scheduler/internal/notify"
)

// ReleaseSlot lets an interviewer withdraw unbooked availability.
// A booked slot stays put until its interview is cancelled.
type ReleaseSlot struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewReleaseSlot(
	repo domain.Repository,
	notify *notify.Dispatcher,
) *ReleaseSlot {
	return &ReleaseSlot{
		repo:   repo,
		notify: notify,
	}
}

func (uc *ReleaseSlot) Execute(
	ctx context.Context,
	interviewerID uint,
	slotID uint,
) error {

	slot, err := uc.repo.GetSlot(ctx, slotID)
	if err != nil {
		return err
	}

	if slot.InterviewerID != interviewerID {
		return httperr.ErrBusiness("not_allowed")
	}

	if err := uc.repo.DeleteFreeSlot(ctx, slotID); err != nil {
		return err
	}

	uc.notify.Dispatch(notify.Event{
		Entity:        "slot",
		EntityID:      slot.ID,
		Transition:    "withdrawn",
		InterviewerID: &slot.InterviewerID,
		Metadata:      map[string]any{"date": slot.Date, "time": slot.TimeLabel},
	})

	return nil
}
