package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/prepslot/interview-scheduler/internal/domain/interview"
	"github.com/prepslot/interview-scheduler/internal/httperr"
	"github.com/prepslot/interview-scheduler/internal/models"
)

type InterviewGormRepository struct {
	db *gorm.DB
}

func NewInterviewGormRepository(db *gorm.DB) *InterviewGormRepository {
	return &InterviewGormRepository{db: db}
}

// --------------------------------------------------
// Slots
// --------------------------------------------------

func (r *InterviewGormRepository) CreateSlot(
	ctx context.Context,
	slot *models.AvailabilitySlot,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.AvailabilitySlot{}).
		Where(
			"interviewer_id = ? AND date = ? AND time_label = ? AND mode = ?",
			slot.InterviewerID, slot.Date, slot.TimeLabel, slot.Mode,
		).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness("duplicate_slot")
	}

	if err := r.db.WithContext(ctx).Create(slot).Error; err != nil {
		// The unique index is the backstop when two publishes race
		// past the count above.
		if httperr.IsExclusionConflict(err) {
			return httperr.ErrBusiness("duplicate_slot")
		}
		return err
	}

	return nil
}

func (r *InterviewGormRepository) GetSlot(
	ctx context.Context,
	slotID uint,
) (*models.AvailabilitySlot, error) {

	var slot models.AvailabilitySlot
	if err := r.db.WithContext(ctx).
		Preload("Interviewer").
		First(&slot, slotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("slot_not_found")
		}
		return nil, err
	}

	return &slot, nil
}

func (r *InterviewGormRepository) FindSlot(
	ctx context.Context,
	interviewerID uint,
	date string,
	timeLabel string,
) (*models.AvailabilitySlot, error) {

	var slot models.AvailabilitySlot
	if err := r.db.WithContext(ctx).
		Preload("Interviewer").
		Where(
			"interviewer_id = ? AND date = ? AND time_label = ? AND mode = ?",
			interviewerID, date, timeLabel, string(domain.ModeLive),
		).
		First(&slot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("slot_not_found")
		}
		return nil, err
	}

	return &slot, nil
}

func (r *InterviewGormRepository) ListSlotsForDate(
	ctx context.Context,
	date string,
	includeBooked bool,
) ([]models.AvailabilitySlot, error) {

	q := r.db.WithContext(ctx).
		Preload("Interviewer").
		Where("date = ? AND mode = ?", date, string(domain.ModeLive))

	if !includeBooked {
		q = q.Where("is_booked = ?", false)
	}

	var slots []models.AvailabilitySlot
	if err := q.Order("time_label ASC").Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *InterviewGormRepository) ListSlotsForInterviewer(
	ctx context.Context,
	interviewerID uint,
	fromDate string,
) ([]models.AvailabilitySlot, error) {

	var slots []models.AvailabilitySlot
	if err := r.db.WithContext(ctx).
		Where("interviewer_id = ? AND date >= ?", interviewerID, fromDate).
		Order("date ASC, time_label ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

// DeleteFreeSlot removes a slot only while nothing holds it. The
// is_booked guard in the WHERE clause makes delete-vs-book races safe.
func (r *InterviewGormRepository) DeleteFreeSlot(
	ctx context.Context,
	slotID uint,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND is_booked = ?", slotID, false).
		Delete(&models.AvailabilitySlot{})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		var slot models.AvailabilitySlot
		if err := r.db.WithContext(ctx).First(&slot, slotID).Error; err != nil {
			return httperr.ErrBusiness("slot_not_found")
		}
		return httperr.ErrBusiness("slot_in_use")
	}

	return nil
}

// --------------------------------------------------
// Slot flag (compare-and-swap)
// --------------------------------------------------

// MarkSlotBooked flips free → booked. The conditional UPDATE is the
// whole no-double-booking guarantee: of N concurrent bookings exactly
// one row-update wins, the rest observe RowsAffected == 0.
func (r *InterviewGormRepository) MarkSlotBooked(
	ctx context.Context,
	slotID uint,
) error {
	return r.casSlotFlag(ctx, slotID, false, true, "already_booked")
}

func (r *InterviewGormRepository) MarkSlotFree(
	ctx context.Context,
	slotID uint,
) error {
	return r.casSlotFlag(ctx, slotID, true, false, "already_free")
}

func (r *InterviewGormRepository) casSlotFlag(
	ctx context.Context,
	slotID uint,
	expected bool,
	next bool,
	conflictCode string,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.AvailabilitySlot{}).
		Where("id = ? AND is_booked = ?", slotID, expected).
		Update("is_booked", next)
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		var slot models.AvailabilitySlot
		if err := r.db.WithContext(ctx).First(&slot, slotID).Error; err != nil {
			return httperr.ErrBusiness("slot_not_found")
		}
		return httperr.ErrBusiness(conflictCode)
	}

	return nil
}

// --------------------------------------------------
// Interviews
// --------------------------------------------------

func (r *InterviewGormRepository) CreateInterview(
	ctx context.Context,
	iv *models.Interview,
) error {
	return r.db.WithContext(ctx).Create(iv).Error
}

func (r *InterviewGormRepository) GetInterview(
	ctx context.Context,
	interviewID uint,
) (*models.Interview, error) {

	var iv models.Interview
	if err := r.db.WithContext(ctx).
		Preload("Trainee").
		Preload("Interviewer").
		First(&iv, interviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("interview_not_found")
		}
		return nil, err
	}

	return &iv, nil
}

func (r *InterviewGormRepository) UpdateInterview(
	ctx context.Context,
	iv *models.Interview,
) error {
	return r.db.WithContext(ctx).Save(iv).Error
}

func (r *InterviewGormRepository) ListInterviewsForTrainee(
	ctx context.Context,
	traineeID uint,
	status string,
) ([]models.Interview, error) {

	q := r.db.WithContext(ctx).
		Preload("Interviewer").
		Where("trainee_id = ?", traineeID)

	if status != "" {
		q = q.Where("status = ?", status)
	}

	var ivs []models.Interview
	if err := q.Order("date ASC, time_label ASC").Find(&ivs).Error; err != nil {
		return nil, err
	}

	return ivs, nil
}

func (r *InterviewGormRepository) ListInterviewsForInterviewer(
	ctx context.Context,
	interviewerID uint,
	fromDate string,
	toDate string,
) ([]models.Interview, error) {

	var ivs []models.Interview
	if err := r.db.WithContext(ctx).
		Preload("Trainee").
		Where(
			"interviewer_id = ? AND date >= ? AND date < ?",
			interviewerID, fromDate, toDate,
		).
		Order("date ASC, time_label ASC").
		Find(&ivs).Error; err != nil {
		return nil, err
	}

	return ivs, nil
}

// --------------------------------------------------
// Participants
// --------------------------------------------------

func (r *InterviewGormRepository) GetParticipant(
	ctx context.Context,
	id uint,
) (*models.Participant, error) {

	var p models.Participant
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("participant_not_found")
		}
		return nil, err
	}

	return &p, nil
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

func (r *InterviewGormRepository) Transact(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&InterviewGormRepository{db: tx})
	})
}

// Compile-time check
var _ domain.Repository = (*InterviewGormRepository)(nil)
