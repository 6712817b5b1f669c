package interview

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/prepslot/interview-scheduler/internal/clock"
	domain "github.com/prepslot/interview-scheduler/internal/domain/interview"
	infraRepo "github.com/prepslot/interview-scheduler/internal/infra/repository"
	"github.com/prepslot/interview-scheduler/internal/models"
	"github.com/prepslot/interview-scheduler/internal/notify"
)

// Frozen "now" for every use-case test: 2026-03-10 09:45 local.
var testNow = time.Date(2026, 3, 10, 9, 45, 0, 0, time.Local)

const (
	today    = "2026-03-10"
	tomorrow = "2026-03-11"
)

type testEnv struct {
	db    *gorm.DB
	repo  domain.Repository
	clk   clock.Fixed
	notif *notify.Dispatcher

	trainee     models.Participant
	traineeB    models.Participant
	interviewer models.Participant
	admin       models.Participant
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Participant{},
		&models.AvailabilitySlot{},
		&models.Interview{},
		&models.NotificationEvent{},
	))

	env := &testEnv{
		db:   db,
		repo: infraRepo.NewInterviewGormRepository(db),
		clk:  clock.Fixed{T: testNow},
		notif: notify.NewDispatcher(
			notify.NewRecorder(db, nil, zap.NewNop()),
			zap.NewNop(),
		),
	}

	env.trainee = models.Participant{Name: "Priya Shah", Role: models.RoleTrainee}
	env.traineeB = models.Participant{Name: "Tom Okafor", Role: models.RoleTrainee}
	env.interviewer = models.Participant{Name: "Dana Reeve", Role: models.RoleInterviewer, Headline: "Staff Engineer"}
	env.admin = models.Participant{Name: "Root Admin", Role: models.RoleAdmin}

	for _, p := range []*models.Participant{
		&env.trainee, &env.traineeB, &env.interviewer, &env.admin,
	} {
		require.NoError(t, db.Create(p).Error)
	}

	return env
}

func (e *testEnv) seedSlot(t *testing.T, date, label string) *models.AvailabilitySlot {
	t.Helper()

	slot := &models.AvailabilitySlot{
		InterviewerID: e.interviewer.ID,
		Date:          date,
		TimeLabel:     label,
		Mode:          string(domain.ModeLive),
	}
	require.NoError(t, e.repo.CreateSlot(context.Background(), slot))
	return slot
}

func (e *testEnv) slotState(t *testing.T, slotID uint) bool {
	t.Helper()

	slot, err := e.repo.GetSlot(context.Background(), slotID)
	require.NoError(t, err)
	return slot.IsBooked
}

func (e *testEnv) liveRequest(slotID uint) BookInterviewInput {
	return BookInterviewInput{
		Mode:             string(domain.ModeLive),
		TraineeID:        e.trainee.ID,
		SlotID:           slotID,
		DurationMin:      60,
		Difficulty:       "intermediate",
		Language:         "en",
		FocusArea:        "system design",
		RecordingConsent: true,
	}
}

func (e *testEnv) traineeActor() Actor {
	return Actor{ID: e.trainee.ID, Role: models.RoleTrainee}
}

func (e *testEnv) interviewerActor() Actor {
	return Actor{ID: e.interviewer.ID, Role: models.RoleInterviewer}
}

func (e *testEnv) adminActor() Actor {
	return Actor{ID: e.admin.ID, Role: models.RoleAdmin}
}
