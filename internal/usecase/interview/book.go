package interview

import (
	"context"

	"github.com/prepslot/interview-scheduler/internal/clock"
	domain "github.com/prepslot/interview-scheduler/internal/domain/interview"
	"github.com/prepslot/interview-scheduler/internal/httperr"
	"github.com/prepslot/interview-scheduler/internal/models"
	"github.com/prepslot/interview-scheduler/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type BookInterviewInput struct {
	Mode      string
	TraineeID uint

	// Live mode: either SlotID or the interviewer/date/time triple
	// resolves to a slot. Slotless modes use Date/Time directly.
	SlotID        uint
	InterviewerID uint

	Date string
	Time string

	DurationMin int
	Difficulty  string
	Language    string
	FocusArea   string

	RecordingConsent bool
	DataUsageConsent bool
}

// ======================================================
// USE CASE — the allocator
// ======================================================

type BookInterview struct {
	repo   domain.Repository
	clock  clock.Clock
	notify *notify.Dispatcher
}

func NewBookInterview(
	repo domain.Repository,
	clk clock.Clock,
	notify *notify.Dispatcher,
) *BookInterview {
	return &BookInterview{
		repo:   repo,
		clock:  clk,
		notify: notify,
	}
}

func (uc *BookInterview) Execute(
	ctx context.Context,
	in BookInterviewInput,
) (*models.Interview, error) {

	mode := domain.Mode(in.Mode)
	req, err := domain.RequirementsFor(mode)
	if err != nil {
		return nil, err
	}

	if in.FocusArea == "" {
		return nil, httperr.ErrBusiness("missing_focus_area")
	}
	if !domain.IsValidDuration(in.DurationMin) {
		return nil, httperr.ErrBusiness("invalid_duration")
	}
	if in.Difficulty != "" && !domain.IsValidDifficulty(in.Difficulty) {
		return nil, httperr.ErrBusiness("invalid_difficulty")
	}
	if req.NeedsRecordingConsent && !in.RecordingConsent {
		return nil, httperr.ErrBusiness("missing_recording_consent")
	}

	if mode == domain.ModeLive {
		return uc.bookLive(ctx, in)
	}
	return uc.bookSlotless(ctx, mode, in)
}

// --------------------------------------------------
// Live mode: resolve the slot, grab it, record.
// --------------------------------------------------

func (uc *BookInterview) bookLive(
	ctx context.Context,
	in BookInterviewInput,
) (*models.Interview, error) {

	slot, err := uc.resolveSlot(ctx, in)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	if !domain.Bookable(slot.Date, slot.TimeLabel, now) {
		return nil, httperr.ErrBusiness("past_schedule")
	}

	interviewerID := slot.InterviewerID

	iv := &models.Interview{
		Mode:             string(domain.ModeLive),
		TraineeID:        in.TraineeID,
		InterviewerID:    &interviewerID,
		Date:             slot.Date,
		TimeLabel:        slot.TimeLabel,
		DurationMin:      in.DurationMin,
		Difficulty:       in.Difficulty,
		Language:         in.Language,
		FocusArea:        in.FocusArea,
		RecordingConsent: in.RecordingConsent,
		DataUsageConsent: in.DataUsageConsent,
		Status:           string(domain.InitialStatus()),
		SlotID:           &slot.ID,
	}

	// Slot flip and ledger insert commit together; losing the
	// compare-and-swap leaves nothing behind.
	err = uc.repo.Transact(ctx, func(tx domain.Repository) error {
		if err := tx.MarkSlotBooked(ctx, slot.ID); err != nil {
			if httperr.IsBusiness(err, "already_booked") {
				return httperr.ErrBusiness("slot_taken")
			}
			return err
		}
		return tx.CreateInterview(ctx, iv)
	})
	if err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		Entity:        "interview",
		EntityID:      iv.ID,
		Transition:    "booked",
		TraineeID:     &iv.TraineeID,
		InterviewerID: iv.InterviewerID,
		Metadata:      map[string]any{"date": iv.Date, "time": iv.TimeLabel, "mode": iv.Mode},
	})

	return iv, nil
}

func (uc *BookInterview) resolveSlot(
	ctx context.Context,
	in BookInterviewInput,
) (*models.AvailabilitySlot, error) {

	if in.SlotID != 0 {
		return uc.repo.GetSlot(ctx, in.SlotID)
	}

	if in.InterviewerID != 0 && in.Date != "" && in.Time != "" {
		return uc.repo.FindSlot(ctx, in.InterviewerID, in.Date, in.Time)
	}

	return nil, httperr.ErrBusiness("missing_slot")
}

// --------------------------------------------------
// Slotless modes: ai sessions have no capacity limit;
// peer/friend sessions are recorded without a
// counterparty check (partner matching is out-of-band).
// --------------------------------------------------

func (uc *BookInterview) bookSlotless(
	ctx context.Context,
	mode domain.Mode,
	in BookInterviewInput,
) (*models.Interview, error) {

	now := uc.clock.Now()
	if err := domain.ValidateSchedule(in.Date, in.Time, now); err != nil {
		if httperr.IsBusiness(err, "past_date") || httperr.IsBusiness(err, "past_time") {
			return nil, httperr.ErrBusiness("past_schedule")
		}
		return nil, err
	}

	iv := &models.Interview{
		Mode:             string(mode),
		TraineeID:        in.TraineeID,
		Date:             in.Date,
		TimeLabel:        in.Time,
		DurationMin:      in.DurationMin,
		Difficulty:       in.Difficulty,
		Language:         in.Language,
		FocusArea:        in.FocusArea,
		RecordingConsent: in.RecordingConsent,
		DataUsageConsent: in.DataUsageConsent,
		Status:           string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateInterview(ctx, iv); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		Entity:     "interview",
		EntityID:   iv.ID,
		Transition: "booked",
		TraineeID:  &iv.TraineeID,
		Metadata:   map[string]any{"date": iv.Date, "time": iv.TimeLabel, "mode": iv.Mode},
	})

	return iv, nil
}
