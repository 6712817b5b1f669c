package interview

import (
	"context"

	"github.com/prepslot/interview-scheduler/internal/clock"
	domain "github.com/prepslot/interview-scheduler/internal/domain/interview"
	"github.com/prepslot/interview-scheduler/internal/httperr"
	"github.com/prepslot/interview-scheduler/internal/models"
	"github.com/prepslot/interview-scheduler/internal/notify"
)

type RescheduleInput struct {
	InterviewID uint

	// Live mode: the replacement slot, by id or triple.
	SlotID        uint
	InterviewerID uint

	Date string
	Time string
}

// Reschedule moves a scheduled interview. For live mode the old slot
// release and the new slot grab ride one storage transaction: either
// both take effect or the interview and both slots stay exactly as
// they were.
type Reschedule struct {
	repo   domain.Repository
	clock  clock.Clock
	notify *notify.Dispatcher
}

func NewReschedule(
	repo domain.Repository,
	clk clock.Clock,
	notify *notify.Dispatcher,
) *Reschedule {
	return &Reschedule{
		repo:   repo,
		clock:  clk,
		notify: notify,
	}
}

func (uc *Reschedule) Execute(
	ctx context.Context,
	actor Actor,
	in RescheduleInput,
) (*models.Interview, error) {

	iv, err := uc.repo.GetInterview(ctx, in.InterviewID)
	if err != nil {
		return nil, err
	}

	if err := mustBeParty(iv, actor); err != nil {
		return nil, err
	}

	if err := domain.CanReschedule(domain.Status(iv.Status)); err != nil {
		return nil, err
	}

	if iv.Mode == string(domain.ModeLive) {
		return uc.rescheduleLive(ctx, iv, in)
	}
	return uc.rescheduleSlotless(ctx, iv, in)
}

func (uc *Reschedule) rescheduleLive(
	ctx context.Context,
	iv *models.Interview,
	in RescheduleInput,
) (*models.Interview, error) {

	if iv.SlotID == nil {
		return nil, httperr.ErrBusiness("slot_not_found")
	}
	oldSlotID := *iv.SlotID

	err := uc.repo.Transact(ctx, func(tx domain.Repository) error {
		newSlot, err := uc.resolveNewSlot(ctx, tx, in)
		if err != nil {
			return err
		}

		if newSlot.ID == oldSlotID {
			return httperr.ErrBusiness("same_slot")
		}

		if !domain.Bookable(newSlot.Date, newSlot.TimeLabel, uc.clock.Now()) {
			return httperr.ErrBusiness("past_schedule")
		}

		if err := tx.MarkSlotFree(ctx, oldSlotID); err != nil {
			return err
		}

		if err := tx.MarkSlotBooked(ctx, newSlot.ID); err != nil {
			// Rolls back the release above, restoring the old hold.
			if httperr.IsBusiness(err, "already_booked") {
				return httperr.ErrBusiness("slot_taken")
			}
			return err
		}

		interviewerID := newSlot.InterviewerID
		iv.SlotID = &newSlot.ID
		iv.InterviewerID = &interviewerID
		iv.Date = newSlot.Date
		iv.TimeLabel = newSlot.TimeLabel

		return tx.UpdateInterview(ctx, iv)
	})
	if err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		Entity:        "interview",
		EntityID:      iv.ID,
		Transition:    "rescheduled",
		TraineeID:     &iv.TraineeID,
		InterviewerID: iv.InterviewerID,
		Metadata:      map[string]any{"date": iv.Date, "time": iv.TimeLabel},
	})

	return iv, nil
}

func (uc *Reschedule) resolveNewSlot(
	ctx context.Context,
	tx domain.Repository,
	in RescheduleInput,
) (*models.AvailabilitySlot, error) {

	if in.SlotID != 0 {
		return tx.GetSlot(ctx, in.SlotID)
	}

	if in.InterviewerID != 0 && in.Date != "" && in.Time != "" {
		return tx.FindSlot(ctx, in.InterviewerID, in.Date, in.Time)
	}

	return nil, httperr.ErrBusiness("missing_slot")
}

func (uc *Reschedule) rescheduleSlotless(
	ctx context.Context,
	iv *models.Interview,
	in RescheduleInput,
) (*models.Interview, error) {

	now := uc.clock.Now()
	if err := domain.ValidateSchedule(in.Date, in.Time, now); err != nil {
		if httperr.IsBusiness(err, "past_date") || httperr.IsBusiness(err, "past_time") {
			return nil, httperr.ErrBusiness("past_schedule")
		}
		return nil, err
	}

	iv.Date = in.Date
	iv.TimeLabel = in.Time

	if err := uc.repo.UpdateInterview(ctx, iv); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		Entity:     "interview",
		EntityID:   iv.ID,
		Transition: "rescheduled",
		TraineeID:  &iv.TraineeID,
		Metadata:   map[string]any{"date": iv.Date, "time": iv.TimeLabel},
	})

	return iv, nil
}
