package repository

import (
	"time"

	"github.com/aebalz/mindwell-backend/internal/model"
	"gorm.io/gorm"
)

// WellnessRepositoryInterface defines the interface for check-in, journal,
// metric and feedback repository operations.
type WellnessRepositoryInterface interface {
	CreateCheckInWithMetric(checkin *model.CheckIn, metric *model.ProgressMetric) error
	CreateJournalEntry(entry *model.JournalEntry) (*model.JournalEntry, error)
	ListJournalEntries(userID uint) ([]model.JournalEntry, error)
	GetMetricForDate(userID uint, metricType string, day time.Time) (*model.ProgressMetric, error)
	ListMetrics(userID uint, since *time.Time) ([]model.ProgressMetric, error)
	CreateFeedback(feedback *model.Feedback) (*model.Feedback, error)
}

// WellnessRepository implements WellnessRepositoryInterface.
type WellnessRepository struct {
	DB *gorm.DB
}

// NewWellnessRepository creates a new WellnessRepository.
func NewWellnessRepository(db *gorm.DB) WellnessRepositoryInterface {
	return &WellnessRepository{DB: db}
}

// CreateCheckInWithMetric inserts a check-in and its derived mood metric in
// one transaction. Either both rows are committed or neither is.
func (r *WellnessRepository) CreateCheckInWithMetric(checkin *model.CheckIn, metric *model.ProgressMetric) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(checkin).Error; err != nil {
			return err
		}
		if err := tx.Create(metric).Error; err != nil {
			return err
		}
		return nil
	})
}

// CreateJournalEntry adds a new journal entry to the database.
func (r *WellnessRepository) CreateJournalEntry(entry *model.JournalEntry) (*model.JournalEntry, error) {
	if err := r.DB.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// ListJournalEntries retrieves a user's journal entries, most recent first.
func (r *WellnessRepository) ListJournalEntries(userID uint) ([]model.JournalEntry, error) {
	var entries []model.JournalEntry
	err := r.DB.Where("user_id = ?", userID).Order("date DESC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetMetricForDate retrieves the first metric of the given type recorded on
// the UTC calendar day containing day, or gorm.ErrRecordNotFound.
func (r *WellnessRepository) GetMetricForDate(userID uint, metricType string, day time.Time) (*model.ProgressMetric, error) {
	dayStart := day.UTC().Truncate(24 * time.Hour)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var metric model.ProgressMetric
	err := r.DB.
		Where("user_id = ? AND metric_type = ? AND date >= ? AND date < ?", userID, metricType, dayStart, dayEnd).
		Order("date ASC").
		First(&metric).Error
	if err != nil {
		return nil, err
	}
	return &metric, nil
}

// ListMetrics retrieves a user's metrics ordered ascending by date. A nil
// since returns the full history.
func (r *WellnessRepository) ListMetrics(userID uint, since *time.Time) ([]model.ProgressMetric, error) {
	query := r.DB.Where("user_id = ?", userID)
	if since != nil {
		query = query.Where("date >= ?", *since)
	}

	var metrics []model.ProgressMetric
	if err := query.Order("date ASC").Find(&metrics).Error; err != nil {
		return nil, err
	}
	return metrics, nil
}

// CreateFeedback adds a new feedback record to the database.
func (r *WellnessRepository) CreateFeedback(feedback *model.Feedback) (*model.Feedback, error) {
	if err := r.DB.Create(feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}
