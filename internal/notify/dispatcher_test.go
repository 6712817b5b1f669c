package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/prepslot/interview-scheduler/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, db.AutoMigrate(&models.NotificationEvent{}))
	return db
}

func TestDispatchPersistsEvent(t *testing.T) {
	db := newTestDB(t)
	d := NewDispatcher(NewRecorder(db, nil, zap.NewNop()), zap.NewNop())

	trainee := uint(7)
	d.Dispatch(Event{
		Entity:     "interview",
		EntityID:   42,
		Transition: "booked",
		TraineeID:  &trainee,
		Metadata:   map[string]any{"date": "2026-03-11", "time": "10:00"},
	})

	var row models.NotificationEvent
	require.Eventually(t, func() bool {
		return db.First(&row).Error == nil
	}, 2*time.Second, 10*time.Millisecond)

	assert.NotEmpty(t, row.EventID)
	assert.Equal(t, "interview", row.Entity)
	assert.Equal(t, uint(42), row.EntityID)
	assert.Equal(t, "booked", row.Transition)
	require.NotNil(t, row.TraineeID)
	assert.Equal(t, trainee, *row.TraineeID)
	assert.JSONEq(t, `{"date":"2026-03-11","time":"10:00"}`, row.Metadata)
}

func TestRecordWithoutRedisKeepsDurableRow(t *testing.T) {
	db := newTestDB(t)
	r := NewRecorder(db, nil, zap.NewNop())

	require.NoError(t, r.Record(Event{Entity: "slot", EntityID: 3, Transition: "published"}))

	var count int64
	require.NoError(t, db.Model(&models.NotificationEvent{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRecordAssignsUniqueEventIDs(t *testing.T) {
	db := newTestDB(t)
	r := NewRecorder(db, nil, zap.NewNop())

	require.NoError(t, r.Record(Event{Entity: "slot", EntityID: 1, Transition: "published"}))
	require.NoError(t, r.Record(Event{Entity: "slot", EntityID: 1, Transition: "withdrawn"}))

	var rows []models.NotificationEvent
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 2)
	assert.NotEqual(t, rows[0].EventID, rows[1].EventID)
}
