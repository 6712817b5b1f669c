package interview

import "github.com/prepslot/interview-scheduler/internal/httperr"

// ===============================
// Interview Modes
// ===============================

type Mode string

const (
	ModeAI     Mode = "ai"
	ModePeer   Mode = "peer"
	ModeFriend Mode = "friend"
	ModeLive   Mode = "live"
)

// Requirements is the per-mode validation table. Focus area is required
// for every mode and is checked separately.
type Requirements struct {
	NeedsSlot             bool
	NeedsInterviewer      bool
	NeedsRecordingConsent bool
}

var modeRequirements = map[Mode]Requirements{
	ModeAI:     {NeedsRecordingConsent: true},
	ModePeer:   {},
	ModeFriend: {},
	ModeLive:   {NeedsSlot: true, NeedsInterviewer: true, NeedsRecordingConsent: true},
}

func RequirementsFor(mode Mode) (Requirements, error) {
	req, ok := modeRequirements[mode]
	if !ok {
		return Requirements{}, httperr.ErrBusiness("invalid_mode")
	}
	return req, nil
}

func IsValidMode(mode Mode) bool {
	_, ok := modeRequirements[mode]
	return ok
}

// ===============================
// Difficulty
// ===============================

var Difficulties = []string{"beginner", "intermediate", "advanced"}

func IsValidDifficulty(d string) bool {
	for _, known := range Difficulties {
		if d == known {
			return true
		}
	}
	return false
}
