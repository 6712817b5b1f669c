package interview

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/prepslot/interview-scheduler/internal/domain/interview"
	"github.com/prepslot/interview-scheduler/internal/httperr"
	"github.com/prepslot/interview-scheduler/internal/models"
)

func TestBookLiveHappyPath(t *testing.T) {
	env := newTestEnv(t)
	uc := NewBookInterview(env.repo, env.clk, env.notif)
	slot := env.seedSlot(t, tomorrow, "10:00")

	iv, err := uc.Execute(context.Background(), env.liveRequest(slot.ID))
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusScheduled), iv.Status)
	assert.Equal(t, tomorrow, iv.Date)
	assert.Equal(t, "10:00", iv.TimeLabel)
	require.NotNil(t, iv.SlotID)
	assert.Equal(t, slot.ID, *iv.SlotID)
	require.NotNil(t, iv.InterviewerID)
	assert.Equal(t, env.interviewer.ID, *iv.InterviewerID)

	assert.True(t, env.slotState(t, slot.ID))
}

func TestBookLiveByTriple(t *testing.T) {
	env := newTestEnv(t)
	uc := NewBookInterview(env.repo, env.clk, env.notif)
	slot := env.seedSlot(t, tomorrow, "14:00")

	in := env.liveRequest(0)
	in.InterviewerID = env.interviewer.ID
	in.Date = tomorrow
	in.Time = "14:00"

	iv, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, iv.SlotID)
	assert.Equal(t, slot.ID, *iv.SlotID)
}

func TestBookLiveSlotTakenLeavesNothingBehind(t *testing.T) {
	env := newTestEnv(t)
	uc := NewBookInterview(env.repo, env.clk, env.notif)
	slot := env.seedSlot(t, tomorrow, "10:00")

	_, err := uc.Execute(context.Background(), env.liveRequest(slot.ID))
	require.NoError(t, err)

	in := env.liveRequest(slot.ID)
	in.TraineeID = env.traineeB.ID
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))

	var count int64
	require.NoError(t, env.db.Model(&models.Interview{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "the losing request must not persist a booking")
}

func TestBookValidation(t *testing.T) {
	env := newTestEnv(t)
	uc := NewBookInterview(env.repo, env.clk, env.notif)
	slot := env.seedSlot(t, tomorrow, "10:00")

	testCases := []struct {
		name    string
		mutate  func(*BookInterviewInput)
		errCode string
	}{
		{
			name:    "unknown mode",
			mutate:  func(in *BookInterviewInput) { in.Mode = "onsite" },
			errCode: "invalid_mode",
		},
		{
			name:    "missing focus area",
			mutate:  func(in *BookInterviewInput) { in.FocusArea = "" },
			errCode: "missing_focus_area",
		},
		{
			name:    "off-menu duration",
			mutate:  func(in *BookInterviewInput) { in.DurationMin = 90 },
			errCode: "invalid_duration",
		},
		{
			name:    "unknown difficulty",
			mutate:  func(in *BookInterviewInput) { in.Difficulty = "impossible" },
			errCode: "invalid_difficulty",
		},
		{
			name:    "live without recording consent",
			mutate:  func(in *BookInterviewInput) { in.RecordingConsent = false },
			errCode: "missing_recording_consent",
		},
		{
			name: "live without any slot reference",
			mutate: func(in *BookInterviewInput) {
				in.SlotID = 0
				in.InterviewerID = 0
			},
			errCode: "missing_slot",
		},
		{
			name:    "live with unknown slot",
			mutate:  func(in *BookInterviewInput) { in.SlotID = 9999 },
			errCode: "slot_not_found",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in := env.liveRequest(slot.ID)
			tc.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			assert.True(t, httperr.IsBusiness(err, tc.errCode),
				"want %s, got %v", tc.errCode, err)
		})
	}
}

func TestBookRejectsNearPastSlot(t *testing.T) {
	env := newTestEnv(t)
	uc := NewBookInterview(env.repo, env.clk, env.notif)

	// 10:00 today is only 15 minutes out at the frozen 09:45.
	slot := env.seedSlot(t, today, "10:00")

	_, err := uc.Execute(context.Background(), env.liveRequest(slot.ID))
	assert.True(t, httperr.IsBusiness(err, "past_schedule"))
	assert.False(t, env.slotState(t, slot.ID))
}

func TestBookSlotlessModes(t *testing.T) {
	env := newTestEnv(t)
	uc := NewBookInterview(env.repo, env.clk, env.notif)

	ai := BookInterviewInput{
		Mode:             string(domain.ModeAI),
		TraineeID:        env.trainee.ID,
		Date:             tomorrow,
		Time:             "09:00",
		DurationMin:      30,
		FocusArea:        "behavioral",
		RecordingConsent: true,
	}

	iv, err := uc.Execute(context.Background(), ai)
	require.NoError(t, err)
	assert.Nil(t, iv.SlotID)
	assert.Nil(t, iv.InterviewerID)

	// AI sessions have no capacity limit: the same time books twice.
	ai.TraineeID = env.traineeB.ID
	_, err = uc.Execute(context.Background(), ai)
	require.NoError(t, err)

	// Peer sessions need no recording consent.
	peer := BookInterviewInput{
		Mode:        string(domain.ModePeer),
		TraineeID:   env.trainee.ID,
		Date:        tomorrow,
		Time:        "15:00",
		DurationMin: 45,
		FocusArea:   "coding",
	}
	_, err = uc.Execute(context.Background(), peer)
	require.NoError(t, err)

	// AI without consent is rejected.
	ai.RecordingConsent = false
	_, err = uc.Execute(context.Background(), ai)
	assert.True(t, httperr.IsBusiness(err, "missing_recording_consent"))

	// Slotless schedules follow the same buffer rule.
	peer.Date = today
	peer.Time = "10:00"
	_, err = uc.Execute(context.Background(), peer)
	assert.True(t, httperr.IsBusiness(err, "past_schedule"))
}

// N racing bookings on one slot, exactly one winner.
func TestBookConcurrentSingleWinner(t *testing.T) {
	env := newTestEnv(t)
	uc := NewBookInterview(env.repo, env.clk, env.notif)
	slot := env.seedSlot(t, tomorrow, "10:00")

	const workers = 8

	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), env.liveRequest(slot.ID))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins int
	for err := range results {
		if err == nil {
			wins++
		} else {
			assert.True(t, httperr.IsBusiness(err, "slot_taken"))
		}
	}
	assert.Equal(t, 1, wins)

	var count int64
	require.NoError(t, env.db.Model(&models.Interview{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
	assert.True(t, env.slotState(t, slot.ID))
}
