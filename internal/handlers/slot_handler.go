package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/prepslot/interview-scheduler/internal/domain/interview"
	"github.com/prepslot/interview-scheduler/internal/httperr"
	"github.com/prepslot/interview-scheduler/internal/httpresp"
	"github.com/prepslot/interview-scheduler/internal/middleware"
	ucInterview "github.com/prepslot/interview-scheduler/internal/usecase/interview"
)

// ======================================================
// HANDLER
// ======================================================

type SlotHandler struct {
	publishSlot *ucInterview.PublishSlot
	releaseSlot *ucInterview.ReleaseSlot
	repo        domain.Repository
}

func NewSlotHandler(
	publishSlot *ucInterview.PublishSlot,
	releaseSlot *ucInterview.ReleaseSlot,
	repo domain.Repository,
) *SlotHandler {
	return &SlotHandler{
		publishSlot: publishSlot,
		releaseSlot: releaseSlot,
		repo:        repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type PublishSlotRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// ======================================================
// PUBLISH
// ======================================================

func (h *SlotHandler) Publish(c *gin.Context) {
	interviewerID := c.MustGet(middleware.ContextUserID).(uint)

	var req PublishSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	slot, err := h.publishSlot.Execute(c.Request.Context(), ucInterview.PublishSlotInput{
		InterviewerID: interviewerID,
		Date:          req.Date,
		Time:          req.Time,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, slot)
}

// ======================================================
// LIST MINE
// ======================================================

func (h *SlotHandler) ListMine(c *gin.Context) {
	interviewerID := c.MustGet(middleware.ContextUserID).(uint)

	from := c.Query("from")
	if from == "" {
		from = time.Now().Format(domain.DateLayout)
	}

	slots, err := h.repo.ListSlotsForInterviewer(c.Request.Context(), interviewerID, from)
	if err != nil {
		httperr.Internal(c, "slot_list_failed", "Could not list slots.")
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// RELEASE
// ======================================================

func (h *SlotHandler) Release(c *gin.Context) {
	interviewerID := c.MustGet(middleware.ContextUserID).(uint)

	slotID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_slot_id", "Invalid slot id.")
		return
	}

	if err := h.releaseSlot.Execute(c.Request.Context(), interviewerID, uint(slotID)); err != nil {
		writeBusinessError(c, err)
		return
	}

	c.Status(204)
}
