package interview

import (
	"context"
	"time"

	"github.com/prepslot/interview-scheduler/internal/clock"
	domain "github.com/prepslot/interview-scheduler/internal/domain/interview"
	"github.com/prepslot/interview-scheduler/internal/httperr"
)

type GetAvailability struct {
	repo  domain.Repository
	clock clock.Clock
}

func NewGetAvailability(repo domain.Repository, clk clock.Clock) *GetAvailability {
	return &GetAvailability{repo: repo, clock: clk}
}

// Execute answers "what can be booked now". It filters with the exact
// predicate the allocator applies, so nothing listed here is rejected
// at booking time for being too close.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.Offering, error) {

	if !domain.IsValidMode(in.Mode) {
		return nil, httperr.ErrBusiness("invalid_mode")
	}

	if _, err := time.Parse(domain.DateLayout, in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	now := uc.clock.Now()

	if in.Mode != domain.ModeLive {
		offerings := make([]domain.Offering, 0, len(domain.TimeLabels))
		for _, label := range domain.TimeLabels {
			if domain.Bookable(in.Date, label, now) {
				offerings = append(offerings, domain.Offering{Time: label})
			}
		}
		return offerings, nil
	}

	slots, err := uc.repo.ListSlotsForDate(ctx, in.Date, false)
	if err != nil {
		return nil, err
	}

	offerings := make([]domain.Offering, 0, len(slots))
	for _, slot := range slots {
		if !domain.Bookable(slot.Date, slot.TimeLabel, now) {
			continue
		}
		offerings = append(offerings, domain.Offering{
			Time:            slot.TimeLabel,
			SlotID:          slot.ID,
			InterviewerID:   slot.InterviewerID,
			InterviewerName: slot.Interviewer.Name,
			Headline:        slot.Interviewer.Headline,
		})
	}

	return offerings, nil
}
