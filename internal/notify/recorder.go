package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/prepslot/interview-scheduler/internal/models"
)

// Channel is the Redis channel the notification sender subscribes to.
const Channel = "scheduler.events"

const publishTimeout = 2 * time.Second

// Recorder persists notification events and, when Redis is configured,
// publishes them for the out-of-process sender. A nil client keeps the
// durable trail and skips the fan-out.
type Recorder struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger *zap.Logger
}

func NewRecorder(db *gorm.DB, rdb *redis.Client, logger *zap.Logger) *Recorder {
	return &Recorder{
		db:     db,
		rdb:    rdb,
		logger: logger,
	}
}

func (r *Recorder) Record(ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.NotificationEvent{
		EventID:       uuid.NewString(),
		Entity:        ev.Entity,
		EntityID:      ev.EntityID,
		Transition:    ev.Transition,
		TraineeID:     ev.TraineeID,
		InterviewerID: ev.InterviewerID,
		Metadata:      metaJSON,
	}

	if err := r.db.Create(&row).Error; err != nil {
		return err
	}

	r.publish(&row)
	return nil
}

func (r *Recorder) publish(row *models.NotificationEvent) {
	if r.rdb == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	payload, err := json.Marshal(row)
	if err != nil {
		return
	}

	// Best effort. The durable row is the source of truth; a missed
	// publish only delays the sender until its next poll.
	if err := r.rdb.Publish(ctx, Channel, payload).Err(); err != nil {
		r.logger.Warn("notify publish failed",
			zap.String("event_id", row.EventID),
			zap.Error(err),
		)
	}
}
