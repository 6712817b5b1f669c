package interview

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/prepslot/interview-scheduler/internal/domain/interview"
	"github.com/prepslot/interview-scheduler/internal/httperr"
)

func TestGetAvailabilityValidatesInput(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	avail := NewGetAvailability(env.repo, env.clk)

	_, err := avail.Execute(ctx, domain.AvailabilityInput{Date: tomorrow, Mode: "group"})
	assert.True(t, httperr.IsBusiness(err, "invalid_mode"))

	_, err = avail.Execute(ctx, domain.AvailabilityInput{Date: "tomorrow", Mode: domain.ModeAI})
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestGetAvailabilitySlotlessFiltersByBuffer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	avail := NewGetAvailability(env.repo, env.clk)

	// Frozen now is 09:45. The 30 minute buffer pushes the earliest
	// bookable label today to 11:00.
	offerings, err := avail.Execute(ctx, domain.AvailabilityInput{Date: today, Mode: domain.ModeAI})
	require.NoError(t, err)

	var labels []string
	for _, o := range offerings {
		labels = append(labels, o.Time)
	}
	assert.Equal(t, []string{"11:00", "12:00", "14:00", "15:00", "16:00", "17:00", "18:00"}, labels)

	// Tomorrow the full grid is open.
	offerings, err = avail.Execute(ctx, domain.AvailabilityInput{Date: tomorrow, Mode: domain.ModePeer})
	require.NoError(t, err)
	assert.Len(t, offerings, len(domain.TimeLabels))
}

func TestGetAvailabilityLiveListsFreeSlotsOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	avail := NewGetAvailability(env.repo, env.clk)
	book := NewBookInterview(env.repo, env.clk, env.notif)

	free := env.seedSlot(t, tomorrow, "10:00")
	booked := env.seedSlot(t, tomorrow, "14:00")
	env.seedSlot(t, today, "10:00") // inside the buffer, must not surface

	_, err := book.Execute(ctx, env.liveRequest(booked.ID))
	require.NoError(t, err)

	offerings, err := avail.Execute(ctx, domain.AvailabilityInput{Date: tomorrow, Mode: domain.ModeLive})
	require.NoError(t, err)
	require.Len(t, offerings, 1)
	assert.Equal(t, free.ID, offerings[0].SlotID)
	assert.Equal(t, "10:00", offerings[0].Time)
	assert.Equal(t, "Dana Reeve", offerings[0].InterviewerName)
	assert.Equal(t, "Staff Engineer", offerings[0].Headline)

	offerings, err = avail.Execute(ctx, domain.AvailabilityInput{Date: today, Mode: domain.ModeLive})
	require.NoError(t, err)
	assert.Empty(t, offerings)
}

// Whatever the read path lists, the allocator accepts, and whatever it
// omits for being too close, the allocator rejects. Both sides share
// one predicate, so the listing never dangles phantom availability.
func TestAvailabilityMatchesAllocator(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	avail := NewGetAvailability(env.repo, env.clk)
	book := NewBookInterview(env.repo, env.clk, env.notif)

	offerings, err := avail.Execute(ctx, domain.AvailabilityInput{Date: today, Mode: domain.ModeAI})
	require.NoError(t, err)

	listed := make(map[string]bool)
	for _, o := range offerings {
		listed[o.Time] = true
	}

	for _, label := range domain.TimeLabels {
		req := env.liveRequest(0)
		req.Mode = string(domain.ModeAI)
		req.Date = today
		req.Time = label

		_, err := book.Execute(ctx, req)
		if listed[label] {
			assert.NoError(t, err, "listed label %s must book", label)
		} else {
			assert.True(t, httperr.IsBusiness(err, "past_schedule"),
				"omitted label %s must be rejected", label)
		}
	}
}
