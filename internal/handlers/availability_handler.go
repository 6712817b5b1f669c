package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/prepslot/interview-scheduler/internal/domain/interview"
	"github.com/prepslot/interview-scheduler/internal/httperr"
	"github.com/prepslot/interview-scheduler/internal/httpresp"
	ucInterview "github.com/prepslot/interview-scheduler/internal/usecase/interview"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	getAvailability *ucInterview.GetAvailability
}

func NewAvailabilityHandler(
	getAvailability *ucInterview.GetAvailability,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		getAvailability: getAvailability,
	}
}

// List answers GET /availability?date=2006-01-02&mode=live.
func (h *AvailabilityHandler) List(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	mode := c.DefaultQuery("mode", string(domain.ModeLive))

	offerings, err := h.getAvailability.Execute(c.Request.Context(), domain.AvailabilityInput{
		Date: date,
		Mode: domain.Mode(mode),
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, offerings)
}
