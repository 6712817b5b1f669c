package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/prepslot/interview-scheduler/internal/domain/interview"
	"github.com/prepslot/interview-scheduler/internal/httperr"
	"github.com/prepslot/interview-scheduler/internal/models"
	ucInterview "github.com/prepslot/interview-scheduler/internal/usecase/interview"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	db          *gorm.DB
	forceStatus *ucInterview.ForceStatus
}

func NewAdminHandler(db *gorm.DB, forceStatus *ucInterview.ForceStatus) *AdminHandler {
	return &AdminHandler{
		db:          db,
		forceStatus: forceStatus,
	}
}

// ======================================================
// FORCE STATUS
// ======================================================

type ForceStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

func (h *AdminHandler) ForceStatus(c *gin.Context) {
	id, ok := interviewID(c)
	if !ok {
		return
	}

	var req ForceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	iv, err := h.forceStatus.Execute(
		c.Request.Context(),
		actorFrom(c),
		id,
		domain.Status(req.Status),
		req.Reason,
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(200, iv)
}

// ======================================================
// EVENT FEED
// ======================================================

func (h *AdminHandler) ListEvents(c *gin.Context) {
	entity := c.Query("entity")
	transition := c.Query("transition")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	q := h.db.Model(&models.NotificationEvent{})

	if entity != "" {
		q = q.Where("entity = ?", entity)
	}

	if transition != "" {
		q = q.Where("transition = ?", transition)
	}

	if fromStr != "" {
		if from, err := time.Parse(domain.DateLayout, fromStr); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}

	if toStr != "" {
		if to, err := time.Parse(domain.DateLayout, toStr); err == nil {
			q = q.Where("created_at <= ?", to.Add(24*time.Hour))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "event_count_failed", "Could not count events.")
		return
	}

	var events []models.NotificationEvent
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&events).Error; err != nil {

		httperr.Internal(c, "event_list_failed", "Could not list events.")
		return
	}

	c.JSON(200, gin.H{
		"page":   page,
		"limit":  limit,
		"total":  total,
		"events": events,
	})
}
