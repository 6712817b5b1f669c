package interview

import (
	"github.com/prepslot/interview-scheduler/internal/httperr"
	"github.com/prepslot/interview-scheduler/internal/models"
)

// Actor is the authenticated caller, as supplied by the identity layer.
type Actor struct {
	ID   uint
	Role string
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// mustBeParty gates lifecycle operations to the interview's own
// participants; admins pass everywhere.
func mustBeParty(iv *models.Interview, actor Actor) error {
	if actor.IsAdmin() {
		return nil
	}
	if iv.TraineeID == actor.ID {
		return nil
	}
	if iv.InterviewerID != nil && *iv.InterviewerID == actor.ID {
		return nil
	}
	return httperr.ErrBusiness("not_allowed")
}
