package service

import (
	"errors"
	"time"

	"github.com/aebalz/mindwell-backend/internal/apperr"
	"github.com/aebalz/mindwell-backend/internal/model"
	"github.com/aebalz/mindwell-backend/internal/mood"
	"github.com/aebalz/mindwell-backend/internal/repository"
	"gorm.io/gorm"
)

// CheckInParams carries the fields of a check-in request. Energy and anxiety
// levels are optional and recorded as submitted.
type CheckInParams struct {
	UserID       uint
	Mood         string
	EnergyLevel  *int
	AnxietyLevel *int
	Notes        string
}

// JournalEntryParams carries the fields of a journal entry request.
type JournalEntryParams struct {
	UserID    uint
	Title     string
	Content   string
	Mood      string
	IsPrivate *bool
}

// Progress is the result of a progress query: today's mood metric, if one
// was recorded on the current UTC date, plus the historical series ascending
// by date.
type Progress struct {
	Today      *model.ProgressMetric
	Historical []model.ProgressMetric
}

// WellnessServiceInterface defines the interface for check-in, journal,
// progress and feedback operations.
type WellnessServiceInterface interface {
	CreateCheckIn(params CheckInParams) (*model.CheckIn, error)
	CreateJournalEntry(params JournalEntryParams) (*model.JournalEntry, error)
	ListJournalEntries(userID uint) ([]model.JournalEntry, error)
	GetProgress(userID uint, timeRange string) (*Progress, error)
	SubmitFeedback(userID uint, emotion, text string) (*model.Feedback, error)
}

// WellnessService implements WellnessServiceInterface.
type WellnessService struct {
	WellnessRepo repository.WellnessRepositoryInterface
	now          func() time.Time
}

// NewWellnessService creates a new WellnessService.
func NewWellnessService(wellnessRepo repository.WellnessRepositoryInterface) WellnessServiceInterface {
	return &WellnessService{
		WellnessRepo: wellnessRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// CreateCheckIn records a mood check-in and, in the same transaction, the
// derived "mood" progress metric carrying the mood's intensity and the
// check-in's timestamp.
func (s *WellnessService) CreateCheckIn(params CheckInParams) (*model.CheckIn, error) {
	if params.UserID == 0 || params.Mood == "" {
		return nil, apperr.Validation("User ID and mood are required")
	}

	label, ok := mood.Canonical(params.Mood)
	if !ok {
		return nil, apperr.Validation("Invalid mood: " + params.Mood)
	}
	intensity, ok := mood.Intensity(label)
	if !ok {
		return nil, apperr.Validation("Invalid mood: " + params.Mood)
	}

	now := s.now()
	checkin := &model.CheckIn{
		UserID:       params.UserID,
		Date:         now,
		Mood:         label,
		EnergyLevel:  params.EnergyLevel,
		AnxietyLevel: params.AnxietyLevel,
		Notes:        params.Notes,
	}
	metric := &model.ProgressMetric{
		UserID:     params.UserID,
		Date:       now,
		MetricType: model.MetricTypeMood,
		Value:      float64(intensity),
	}
	if err := s.WellnessRepo.CreateCheckInWithMetric(checkin, metric); err != nil {
		return nil, apperr.Internal("An error occurred. Please try again.", err)
	}
	return checkin, nil
}

// CreateJournalEntry records a journal entry. The mood label is optional but
// must resolve against the taxonomy when given.
func (s *WellnessService) CreateJournalEntry(params JournalEntryParams) (*model.JournalEntry, error) {
	if params.UserID == 0 || params.Title == "" || params.Content == "" {
		return nil, apperr.Validation("User ID, title and content are required")
	}

	label := ""
	if params.Mood != "" {
		var ok bool
		label, ok = mood.Canonical(params.Mood)
		if !ok {
			return nil, apperr.Validation("Invalid mood: " + params.Mood)
		}
	}

	// Entries are private unless the request says otherwise.
	isPrivate := true
	if params.IsPrivate != nil {
		isPrivate = *params.IsPrivate
	}

	entry := &model.JournalEntry{
		UserID:    params.UserID,
		Date:      s.now(),
		Title:     params.Title,
		Content:   params.Content,
		Mood:      label,
		IsPrivate: isPrivate,
	}
	if _, err := s.WellnessRepo.CreateJournalEntry(entry); err != nil {
		return nil, apperr.Internal("Failed to create journal entry", err)
	}
	return entry, nil
}

// ListJournalEntries returns a user's journal entries, most recent first.
func (s *WellnessService) ListJournalEntries(userID uint) ([]model.JournalEntry, error) {
	if userID == 0 {
		return nil, apperr.Validation("User ID is required")
	}
	entries, err := s.WellnessRepo.ListJournalEntries(userID)
	if err != nil {
		return nil, apperr.Internal("Failed to fetch journal entries", err)
	}
	return entries, nil
}

// GetProgress returns today's mood metric, if one exists for the current UTC
// date, plus the historical series for the requested lookback window. The
// recognized time ranges are week, month and year; anything else means the
// full history.
func (s *WellnessService) GetProgress(userID uint, timeRange string) (*Progress, error) {
	if userID == 0 {
		return nil, apperr.Validation("User ID is required")
	}

	now := s.now()

	var since *time.Time
	switch timeRange {
	case "week":
		t := now.AddDate(0, 0, -7)
		since = &t
	case "month":
		t := now.AddDate(0, 0, -30)
		since = &t
	case "year":
		t := now.AddDate(0, 0, -365)
		since = &t
	}

	today, err := s.WellnessRepo.GetMetricForDate(userID, model.MetricTypeMood, now)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal("Failed to fetch progress data", err)
	}

	historical, err := s.WellnessRepo.ListMetrics(userID, since)
	if err != nil {
		return nil, apperr.Internal("Failed to fetch progress data", err)
	}

	return &Progress{Today: today, Historical: historical}, nil
}

// SubmitFeedback records a feedback note. The emotion is matched against the
// taxonomy case-insensitively and stored in its capitalized form.
func (s *WellnessService) SubmitFeedback(userID uint, emotion, text string) (*model.Feedback, error) {
	if userID == 0 || emotion == "" || text == "" {
		return nil, apperr.Validation("User ID, emotion and text are required")
	}

	label, ok := mood.Canonical(emotion)
	if !ok {
		return nil, apperr.Validation("Invalid emotion")
	}

	feedback := &model.Feedback{
		UserID:  userID,
		Emotion: label,
		Text:    text,
	}
	if _, err := s.WellnessRepo.CreateFeedback(feedback); err != nil {
		return nil, apperr.Internal("Failed to submit feedback", err)
	}
	return feedback, nil
}
