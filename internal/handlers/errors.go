package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/prepslot/interview-scheduler/internal/httperr"
)

// Business-error code → HTTP status mapping shared by every handler.
// Anything unrecognized is a storage/internal fault.
var errorMessages = map[string]string{
	"invalid_mode":              "Unknown interview mode.",
	"invalid_date":              "Invalid date.",
	"invalid_time_label":        "Time is not on the booking grid.",
	"invalid_duration":          "Duration is not a selectable length.",
	"invalid_difficulty":        "Unknown difficulty.",
	"invalid_status":            "Unknown status.",
	"missing_focus_area":        "Focus area is required.",
	"missing_recording_consent": "Recording consent is required for this mode.",
	"missing_slot":              "A slot reference is required for live interviews.",
	"past_date":                 "Date is in the past.",
	"past_time":                 "Time is too soon to book.",
	"past_schedule":             "Schedule is in the past or too soon.",
	"slot_taken":                "Slot was just booked by someone else.",
	"slot_not_found":            "Slot not found.",
	"slot_in_use":               "Slot is held by an active interview.",
	"duplicate_slot":            "This slot is already published.",
	"already_booked":            "Slot is already booked.",
	"already_free":              "Slot is already free.",
	"same_slot":                 "The interview already occupies this slot.",
	"invalid_transition":        "Status change not allowed.",
	"interview_not_found":       "Interview not found.",
	"participant_not_found":     "Participant not found.",
	"not_allowed":               "You are not a participant of this interview.",
}

func writeBusinessError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)
	msg, known := errorMessages[code]
	if !known {
		httperr.Internal(c, "storage_failure", "Unexpected error.")
		return
	}

	switch code {
	case "interview_not_found", "slot_not_found", "participant_not_found":
		httperr.NotFound(c, code, msg)
	case "slot_taken", "slot_in_use", "duplicate_slot",
		"already_booked", "already_free", "invalid_transition", "same_slot":
		httperr.Conflict(c, code, msg)
	case "not_allowed":
		httperr.Forbidden(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}
}
