package interview

import "github.com/prepslot/interview-scheduler/internal/httperr"

// ===============================
// Interview Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

func InitialStatus() Status {
	return StatusScheduled
}

func IsTerminal(s Status) bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// ===============================
// Transition Rules
// ===============================

// CanStart: session start, scheduled → in_progress.
func CanStart(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

// CanComplete: session end, in_progress → completed.
func CanComplete(current Status) error {
	if current != StatusInProgress {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

// CanCancel covers participant-initiated cancellation, which is only
// allowed before the session starts. An admin force-transition is the
// only way out of in_progress into cancelled.
func CanCancel(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

// CanForce validates an administrative override: any non-terminal
// status may be forced into a terminal one.
func CanForce(current Status, target Status) error {
	if IsTerminal(current) {
		return httperr.ErrBusiness("invalid_transition")
	}
	if !IsTerminal(target) {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

// CanReschedule: only a not-yet-started session may move.
func CanReschedule(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}
