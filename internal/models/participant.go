package models

import "time"

// Roles come from the identity provider; the scheduler only trusts them.
const (
	RoleTrainee     = "trainee"
	RoleInterviewer = "interviewer"
	RoleAdmin       = "admin"
)

type Participant struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:120" json:"name"`
	Role     string `gorm:"size:20" json:"role"`
	Headline string `gorm:"size:255" json:"headline"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
