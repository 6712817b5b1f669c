package interview

import (
	"time"

	"github.com/prepslot/interview-scheduler/internal/httperr"
	"github.com/prepslot/interview-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Start(iv *models.Interview, now time.Time) error {
	if err := CanStart(Status(iv.Status)); err != nil {
		return err
	}

	iv.Status = string(StatusInProgress)
	iv.StartedAt = &now
	return nil
}

func Complete(iv *models.Interview, now time.Time) error {
	if err := CanComplete(Status(iv.Status)); err != nil {
		return err
	}

	iv.Status = string(StatusCompleted)
	iv.CompletedAt = &now
	return nil
}

func Cancel(iv *models.Interview, reason string, now time.Time) error {
	if err := CanCancel(Status(iv.Status)); err != nil {
		return err
	}

	iv.Status = string(StatusCancelled)
	iv.CancelReason = reason
	iv.CancelledAt = &now
	return nil
}

// Force applies an administrative override into a terminal status.
func Force(iv *models.Interview, target Status, reason string, now time.Time) error {
	if err := CanForce(Status(iv.Status), target); err != nil {
		return err
	}

	iv.Status = string(target)
	switch target {
	case StatusCompleted:
		iv.CompletedAt = &now
	case StatusCancelled:
		iv.CancelReason = reason
		iv.CancelledAt = &now
	case StatusNoShow:
		iv.CancelReason = reason
	}
	return nil
}

// AnnotateCancelReason is the one mutation terminal records still
// accept.
func AnnotateCancelReason(iv *models.Interview, reason string) error {
	if Status(iv.Status) != StatusCancelled {
		return httperr.ErrBusiness("invalid_transition")
	}

	iv.CancelReason = reason
	return nil
}
