package interview

// AvailabilityInput selects the day and mode to query.
type AvailabilityInput struct {
	Date string
	Mode Mode
}

// Offering is one bookable entry on the availability read path. Live
// offerings carry the slot and its owner; slotless modes carry only
// the time label.
type Offering struct {
	Time string `json:"time"`

	SlotID          uint   `json:"slot_id,omitempty"`
	InterviewerID   uint   `json:"interviewer_id,omitempty"`
	InterviewerName string `json:"interviewer_name,omitempty"`
	Headline        string `json:"headline,omitempty"`
}
