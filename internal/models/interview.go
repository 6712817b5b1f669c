package models

import "time"

// Interview is the ledger's primary record: one scheduled practice
// session of any mode. Only live-mode rows reference a slot.
type Interview struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Mode string `gorm:"size:10;index" json:"mode"`

	TraineeID uint        `gorm:"index" json:"trainee_id"`
	Trainee   Participant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"trainee"`

	InterviewerID *uint        `gorm:"index" json:"interviewer_id"`
	Interviewer   *Participant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"interviewer,omitempty"`

	Date        string `gorm:"size:10;index:idx_interview_date" json:"date"`
	TimeLabel   string `gorm:"size:5" json:"time"`
	DurationMin int    `json:"duration_min"`

	Difficulty string `gorm:"size:20" json:"difficulty"`
	Language   string `gorm:"size:30" json:"language"`
	FocusArea  string `gorm:"size:60" json:"focus_area"`

	RecordingConsent bool `json:"recording_consent"`
	DataUsageConsent bool `json:"data_usage_consent"`

	Status string `gorm:"size:20;default:'scheduled';index" json:"status"`

	SlotID *uint             `json:"slot_id,omitempty"`
	Slot   *AvailabilitySlot `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CancelReason string `gorm:"size:255" json:"cancel_reason,omitempty"`

	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
