package interview

import (
	"context"

	"github.com/prepslot/interview-scheduler/internal/clock"
	domain "github.com/prepslot/interview-scheduler/internal/domain/interview"
	"github.com/prepslot/interview-scheduler/internal/models"
	"github.com/prepslot/interview-scheduler/internal/notify"
)

type PublishSlotInput struct {
	InterviewerID uint
	Date          string
	Time          string
}

type PublishSlot struct {
	repo   domain.Repository
	clock  clock.Clock
	notify *notify.Dispatcher
}

func NewPublishSlot(
	repo domain.Repository,
	clk clock.Clock,
	notify *notify.Dispatcher,
) *PublishSlot {
	return &PublishSlot{
		repo:   repo,
		clock:  clk,
		notify: notify,
	}
}

func (uc *PublishSlot) Execute(
	ctx context.Context,
	in PublishSlotInput,
) (*models.AvailabilitySlot, error) {

	if err := domain.ValidateSchedule(in.Date, in.Time, uc.clock.Now()); err != nil {
		return nil, err
	}

	slot := &models.AvailabilitySlot{
		InterviewerID: in.InterviewerID,
		Date:          in.Date,
		TimeLabel:     in.Time,
		Mode:          string(domain.ModeLive),
	}

	if err := uc.repo.CreateSlot(ctx, slot); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		Entity:        "slot",
		EntityID:      slot.ID,
		Transition:    "published",
		InterviewerID: &slot.InterviewerID,
		Metadata:      map[string]any{"date": slot.Date, "time": slot.TimeLabel},
	})

	return slot, nil
}
