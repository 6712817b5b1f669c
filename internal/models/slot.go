package models

import "time"

// AvailabilitySlot is one published unit of live-interview availability.
// The (interviewer, date, time, mode) tuple is unique so the same hour
// cannot be published twice.
type AvailabilitySlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	InterviewerID uint        `gorm:"uniqueIndex:idx_slot_tuple" json:"interviewer_id"`
	Interviewer   Participant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"interviewer"`

	// Date is date-only, "2006-01-02".
	Date      string `gorm:"size:10;uniqueIndex:idx_slot_tuple;index:idx_slot_date" json:"date"`
	TimeLabel string `gorm:"size:5;uniqueIndex:idx_slot_tuple" json:"time"`
	Mode      string `gorm:"size:10;uniqueIndex:idx_slot_tuple" json:"mode"`

	IsBooked bool `gorm:"default:false" json:"is_booked"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
