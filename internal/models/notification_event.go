package models

import "time"

// NotificationEvent is the durable trail handed to the notification
// sender. Delivery, templating and read/unread tracking live elsewhere;
// the scheduler only records what happened and to whom.
type NotificationEvent struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EventID string `gorm:"size:36;uniqueIndex" json:"event_id"`

	Entity     string `gorm:"size:20" json:"entity"`
	EntityID   uint   `json:"entity_id"`
	Transition string `gorm:"size:40" json:"transition"`

	TraineeID     *uint `json:"trainee_id,omitempty"`
	InterviewerID *uint `json:"interviewer_id,omitempty"`

	Metadata string `gorm:"type:text" json:"metadata,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
