package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/prepslot/interview-scheduler/internal/httperr"
	"github.com/prepslot/interview-scheduler/internal/httpresp"
	"github.com/prepslot/interview-scheduler/internal/middleware"
	ucInterview "github.com/prepslot/interview-scheduler/internal/usecase/interview"
)

// ======================================================
// HANDLER
// ======================================================

type InterviewHandler struct {
	book           *ucInterview.BookInterview
	cancel         *ucInterview.CancelInterview
	start          *ucInterview.StartInterview
	complete       *ucInterview.CompleteInterview
	reschedule     *ucInterview.Reschedule
	annotateReason *ucInterview.AnnotateCancelReason
	listTrainee    *ucInterview.ListForTrainee
	listIviewer    *ucInterview.ListForInterviewer
}

func NewInterviewHandler(
	book *ucInterview.BookInterview,
	cancel *ucInterview.CancelInterview,
	start *ucInterview.StartInterview,
	complete *ucInterview.CompleteInterview,
	reschedule *ucInterview.Reschedule,
	annotateReason *ucInterview.AnnotateCancelReason,
	listTrainee *ucInterview.ListForTrainee,
	listIviewer *ucInterview.ListForInterviewer,
) *InterviewHandler {
	return &InterviewHandler{
		book:           book,
		cancel:         cancel,
		start:          start,
		complete:       complete,
		reschedule:     reschedule,
		annotateReason: annotateReason,
		listTrainee:    listTrainee,
		listIviewer:    listIviewer,
	}
}

func actorFrom(c *gin.Context) ucInterview.Actor {
	return ucInterview.Actor{
		ID:   c.MustGet(middleware.ContextUserID).(uint),
		Role: c.MustGet(middleware.ContextUserRole).(string),
	}
}

func interviewID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_interview_id", "Invalid interview id.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// REQUESTS
// ======================================================

type BookInterviewRequest struct {
	Mode string `json:"mode" binding:"required"`

	SlotID        uint   `json:"slot_id"`
	InterviewerID uint   `json:"interviewer_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`

	DurationMin int    `json:"duration_min" binding:"required"`
	Difficulty  string `json:"difficulty"`
	Language    string `json:"language"`
	FocusArea   string `json:"focus_area"`

	RecordingConsent bool `json:"recording_consent"`
	DataUsageConsent bool `json:"data_usage_consent"`
}

type RescheduleRequest struct {
	SlotID        uint   `json:"slot_id"`
	InterviewerID uint   `json:"interviewer_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

// ======================================================
// BOOK
// ======================================================

func (h *InterviewHandler) Book(c *gin.Context) {
	traineeID := c.MustGet(middleware.ContextUserID).(uint)

	var req BookInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	iv, err := h.book.Execute(c.Request.Context(), ucInterview.BookInterviewInput{
		Mode:             req.Mode,
		TraineeID:        traineeID,
		SlotID:           req.SlotID,
		InterviewerID:    req.InterviewerID,
		Date:             req.Date,
		Time:             req.Time,
		DurationMin:      req.DurationMin,
		Difficulty:       req.Difficulty,
		Language:         req.Language,
		FocusArea:        req.FocusArea,
		RecordingConsent: req.RecordingConsent,
		DataUsageConsent: req.DataUsageConsent,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, iv)
}

// ======================================================
// LIST
// ======================================================

func (h *InterviewHandler) ListMine(c *gin.Context) {
	traineeID := c.MustGet(middleware.ContextUserID).(uint)

	ivs, err := h.listTrainee.Execute(c.Request.Context(), traineeID, c.Query("status"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, ivs)
}

func (h *InterviewHandler) Schedule(c *gin.Context) {
	interviewerID := c.MustGet(middleware.ContextUserID).(uint)

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	ivs, err := h.listIviewer.Execute(c.Request.Context(), interviewerID, date, c.Query("to"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, ivs)
}

// ======================================================
// LIFECYCLE
// ======================================================

func (h *InterviewHandler) Cancel(c *gin.Context) {
	id, ok := interviewID(c)
	if !ok {
		return
	}

	var req CancelRequest
	_ = c.ShouldBindJSON(&req)

	iv, err := h.cancel.Execute(c.Request.Context(), actorFrom(c), id, req.Reason)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, iv)
}

func (h *InterviewHandler) Start(c *gin.Context) {
	id, ok := interviewID(c)
	if !ok {
		return
	}

	iv, err := h.start.Execute(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, iv)
}

func (h *InterviewHandler) Complete(c *gin.Context) {
	id, ok := interviewID(c)
	if !ok {
		return
	}

	iv, err := h.complete.Execute(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, iv)
}

func (h *InterviewHandler) Reschedule(c *gin.Context) {
	id, ok := interviewID(c)
	if !ok {
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	iv, err := h.reschedule.Execute(c.Request.Context(), actorFrom(c), ucInterview.RescheduleInput{
		InterviewID:   id,
		SlotID:        req.SlotID,
		InterviewerID: req.InterviewerID,
		Date:          req.Date,
		Time:          req.Time,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, iv)
}

func (h *InterviewHandler) AnnotateReason(c *gin.Context) {
	id, ok := interviewID(c)
	if !ok {
		return
	}

	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	iv, err := h.annotateReason.Execute(c.Request.Context(), actorFrom(c), id, req.Reason)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, iv)
}
