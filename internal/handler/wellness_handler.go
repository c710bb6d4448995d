package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"

	"github.com/aebalz/mindwell-backend/internal/model"
	"github.com/aebalz/mindwell-backend/internal/service"
)

// CheckInRequest is the payload for POST /api/checkins.
type CheckInRequest struct {
	UserID       uint   `json:"user_id"`
	Mood         string `json:"mood"`
	EnergyLevel  *int   `json:"energy_level"`
	AnxietyLevel *int   `json:"anxiety_level"`
	Notes        string `json:"notes"`
}

// JournalEntryRequest is the payload for POST /api/journal.
type JournalEntryRequest struct {
	UserID    uint   `json:"user_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Mood      string `json:"mood"`
	IsPrivate *bool  `json:"is_private"`
}

// FeedbackRequest is the payload for POST /api/feedback.
type FeedbackRequest struct {
	UserID  uint   `json:"user_id"`
	Emotion string `json:"emotion"`
	Text    string `json:"text"`
}

// CheckInResponse wraps a check-in record in the standard envelope.
type CheckInResponse struct {
	Response
	CheckIn *model.CheckIn `json:"checkin,omitempty"`
}

// JournalEntryResponse wraps a single journal entry.
type JournalEntryResponse struct {
	Response
	Entry *model.JournalEntry `json:"entry,omitempty"`
}

// JournalEntriesResponse wraps a user's journal entries.
type JournalEntriesResponse struct {
	Response
	Entries []model.JournalEntry `json:"entries"`
}

// ProgressResponse carries today's mood metric, when one exists for the
// current UTC date, plus the historical series ascending by date.
type ProgressResponse struct {
	Response
	Today      *model.ProgressMetric  `json:"today"`
	Historical []model.ProgressMetric `json:"historical"`
}

// FeedbackResponse wraps a feedback record in the standard envelope.
type FeedbackResponse struct {
	Response
	Feedback *model.Feedback `json:"feedback,omitempty"`
}

// @Summary Submit a mood check-in
// @Description Record a mood check-in. A "mood" progress metric with the mood's intensity is written in the same transaction.
// @Tags Wellness
// @Accept json
// @Produce json
// @Param request body CheckInRequest true "Check-in payload"
// @Success 201 {object} CheckInResponse
// @Failure 400 {object} Response "Missing fields or unknown mood"
// @Router /api/checkins [post]
// CreateCheckInFiber handles POST /api/checkins for Fiber.
func (h *APIHandler) CreateCheckInFiber(c *fiber.Ctx) error {
	var req CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Response{Success: false, Message: "Request must be JSON"})
	}

	checkin, err := h.Wellness.CreateCheckIn(service.CheckInParams{
		UserID:       req.UserID,
		Mood:         req.Mood,
		EnergyLevel:  req.EnergyLevel,
		AnxietyLevel: req.AnxietyLevel,
		Notes:        req.Notes,
	})
	if err != nil {
		return c.Status(statusFor(err)).JSON(Response{Success: false, Message: messageFor(err)})
	}
	return c.Status(fiber.StatusCreated).JSON(CheckInResponse{
		Response: Response{Success: true, Message: "Check-in submitted successfully"},
		CheckIn:  checkin,
	})
}

// CreateCheckInGin handles POST /api/checkins for Gin.
func (h *APIHandler) CreateCheckInGin(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "Request must be JSON"})
		return
	}

	checkin, err := h.Wellness.CreateCheckIn(service.CheckInParams{
		UserID:       req.UserID,
		Mood:         req.Mood,
		EnergyLevel:  req.EnergyLevel,
		AnxietyLevel: req.AnxietyLevel,
		Notes:        req.Notes,
	})
	if err != nil {
		c.JSON(statusFor(err), Response{Success: false, Message: messageFor(err)})
		return
	}
	c.JSON(http.StatusCreated, CheckInResponse{
		Response: Response{Success: true, Message: "Check-in submitted successfully"},
		CheckIn:  checkin,
	})
}

// @Summary Create a journal entry
// @Tags Wellness
// @Accept json
// @Produce json
// @Param request body JournalEntryRequest true "Journal payload"
// @Success 201 {object} JournalEntryResponse
// @Failure 400 {object} Response
// @Router /api/journal [post]
// CreateJournalEntryFiber handles POST /api/journal for Fiber.
func (h *APIHandler) CreateJournalEntryFiber(c *fiber.Ctx) error {
	var req JournalEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Response{Success: false, Message: "Request must be JSON"})
	}

	entry, err := h.Wellness.CreateJournalEntry(service.JournalEntryParams{
		UserID:    req.UserID,
		Title:     req.Title,
		Content:   req.Content,
		Mood:      req.Mood,
		IsPrivate: req.IsPrivate,
	})
	if err != nil {
		return c.Status(statusFor(err)).JSON(Response{Success: false, Message: messageFor(err)})
	}
	return c.Status(fiber.StatusCreated).JSON(JournalEntryResponse{
		Response: Response{Success: true, Message: "Journal entry created successfully"},
		Entry:    entry,
	})
}

// CreateJournalEntryGin handles POST /api/journal for Gin.
func (h *APIHandler) CreateJournalEntryGin(c *gin.Context) {
	var req JournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "Request must be JSON"})
		return
	}

	entry, err := h.Wellness.CreateJournalEntry(service.JournalEntryParams{
		UserID:    req.UserID,
		Title:     req.Title,
		Content:   req.Content,
		Mood:      req.Mood,
		IsPrivate: req.IsPrivate,
	})
	if err != nil {
		c.JSON(statusFor(err), Response{Success: false, Message: messageFor(err)})
		return
	}
	c.JSON(http.StatusCreated, JournalEntryResponse{
		Response: Response{Success: true, Message: "Journal entry created successfully"},
		Entry:    entry,
	})
}

// @Summary List journal entries
// @Description Retrieve a user's journal entries, most recent first.
// @Tags Wellness
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} JournalEntriesResponse
// @Router /api/journal/{user_id} [get]
// ListJournalEntriesFiber handles GET /api/journal/:user_id for Fiber.
func (h *APIHandler) ListJournalEntriesFiber(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("user_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Response{Success: false, Message: "Invalid user id"})
	}

	entries, err := h.Wellness.ListJournalEntries(uint(userID))
	if err != nil {
		return c.Status(statusFor(err)).JSON(Response{Success: false, Message: messageFor(err)})
	}
	return c.Status(fiber.StatusOK).JSON(JournalEntriesResponse{
		Response: Response{Success: true},
		Entries:  entries,
	})
}

// ListJournalEntriesGin handles GET /api/journal/:user_id for Gin.
func (h *APIHandler) ListJournalEntriesGin(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "Invalid user id"})
		return
	}

	entries, err := h.Wellness.ListJournalEntries(uint(userID))
	if err != nil {
		c.JSON(statusFor(err), Response{Success: false, Message: messageFor(err)})
		return
	}
	c.JSON(http.StatusOK, JournalEntriesResponse{
		Response: Response{Success: true},
		Entries:  entries,
	})
}

// @Summary Query progress metrics
// @Description Return today's mood metric, if one exists for the current UTC date, plus the historical series for the requested window (week, month or year; anything else means full history).
// @Tags Wellness
// @Produce json
// @Param user_id path int true "User ID"
// @Param time_range query string false "week, month or year" default(week)
// @Success 200 {object} ProgressResponse
// @Router /api/progress/{user_id} [get]
// GetProgressFiber handles GET /api/progress/:user_id for Fiber.
func (h *APIHandler) GetProgressFiber(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("user_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Response{Success: false, Message: "Invalid user id"})
	}

	progress, err := h.Wellness.GetProgress(uint(userID), c.Query("time_range", "week"))
	if err != nil {
		return c.Status(statusFor(err)).JSON(Response{Success: false, Message: messageFor(err)})
	}
	return c.Status(fiber.StatusOK).JSON(ProgressResponse{
		Response:   Response{Success: true},
		Today:      progress.Today,
		Historical: progress.Historical,
	})
}

// GetProgressGin handles GET /api/progress/:user_id for Gin.
func (h *APIHandler) GetProgressGin(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "Invalid user id"})
		return
	}

	progress, err := h.Wellness.GetProgress(uint(userID), c.DefaultQuery("time_range", "week"))
	if err != nil {
		c.JSON(statusFor(err), Response{Success: false, Message: messageFor(err)})
		return
	}
	c.JSON(http.StatusOK, ProgressResponse{
		Response:   Response{Success: true},
		Today:      progress.Today,
		Historical: progress.Historical,
	})
}

// @Summary Submit feedback
// @Description Record a feedback note. The emotion is matched against the mood taxonomy case-insensitively and stored capitalized.
// @Tags Wellness
// @Accept json
// @Produce json
// @Param request body FeedbackRequest true "Feedback payload"
// @Success 201 {object} FeedbackResponse
// @Failure 400 {object} Response "Missing fields or unknown emotion"
// @Router /api/feedback [post]
// SubmitFeedbackFiber handles POST /api/feedback for Fiber.
func (h *APIHandler) SubmitFeedbackFiber(c *fiber.Ctx) error {
	var req FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Response{Success: false, Message: "Request must be JSON"})
	}

	feedback, err := h.Wellness.SubmitFeedback(req.UserID, req.Emotion, req.Text)
	if err != nil {
		return c.Status(statusFor(err)).JSON(Response{Success: false, Message: messageFor(err)})
	}
	return c.Status(fiber.StatusCreated).JSON(FeedbackResponse{
		Response: Response{Success: true, Message: "Feedback submitted successfully"},
		Feedback: feedback,
	})
}

// SubmitFeedbackGin handles POST /api/feedback for Gin.
func (h *APIHandler) SubmitFeedbackGin(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "Request must be JSON"})
		return
	}

	feedback, err := h.Wellness.SubmitFeedback(req.UserID, req.Emotion, req.Text)
	if err != nil {
		c.JSON(statusFor(err), Response{Success: false, Message: messageFor(err)})
		return
	}
	c.JSON(http.StatusCreated, FeedbackResponse{
		Response: Response{Success: true, Message: "Feedback submitted successfully"},
		Feedback: feedback,
	})
}
