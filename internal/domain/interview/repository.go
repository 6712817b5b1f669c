package interview

import (
	"context"

	"github.com/prepslot/interview-scheduler/internal/models"
)

type Repository interface {
	// -------- Slots --------
	CreateSlot(
		ctx context.Context,
		slot *models.AvailabilitySlot,
	) error

	GetSlot(
		ctx context.Context,
		slotID uint,
	) (*models.AvailabilitySlot, error)

	FindSlot(
		ctx context.Context,
		interviewerID uint,
		date string,
		timeLabel string,
	) (*models.AvailabilitySlot, error)

	ListSlotsForDate(
		ctx context.Context,
		date string,
		includeBooked bool,
	) ([]models.AvailabilitySlot, error)

	ListSlotsForInterviewer(
		ctx context.Context,
		interviewerID uint,
		fromDate string,
	) ([]models.AvailabilitySlot, error)

	DeleteFreeSlot(
		ctx context.Context,
		slotID uint,
	) error

	// -------- Slot flag (compare-and-swap) --------
	MarkSlotBooked(
		ctx context.Context,
		slotID uint,
	) error

	MarkSlotFree(
		ctx context.Context,
		slotID uint,
	) error

	// -------- Interviews --------
	CreateInterview(
		ctx context.Context,
		iv *models.Interview,
	) error

	GetInterview(
		ctx context.Context,
		interviewID uint,
	) (*models.Interview, error)

	UpdateInterview(
		ctx context.Context,
		iv *models.Interview,
	) error

	ListInterviewsForTrainee(
		ctx context.Context,
		traineeID uint,
		status string,
	) ([]models.Interview, error)

	ListInterviewsForInterviewer(
		ctx context.Context,
		interviewerID uint,
		fromDate string,
		toDate string,
	) ([]models.Interview, error)

	// -------- Participants --------
	GetParticipant(
		ctx context.Context,
		id uint,
	) (*models.Participant, error)

	// -------- Transactions --------
	// Transact runs fn against a repository bound to one storage
	// transaction; any error rolls the whole unit back.
	Transact(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
