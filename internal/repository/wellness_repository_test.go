package repository

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aebalz/mindwell-backend/internal/model"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

func TestCreateCheckInWithMetricCommitsBothRows(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewWellnessRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "checkins"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "progress_metrics"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	now := time.Now().UTC()
	checkin := &model.CheckIn{UserID: 1, Date: now, Mood: "Happy"}
	metric := &model.ProgressMetric{UserID: 1, Date: now, MetricType: model.MetricTypeMood, Value: 4}

	require.NoError(t, repo.CreateCheckInWithMetric(checkin, metric))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCheckInWithMetricRollsBackOnMetricFailure(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewWellnessRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "checkins"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "progress_metrics"`)).
		WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	now := time.Now().UTC()
	checkin := &model.CheckIn{UserID: 1, Date: now, Mood: "Happy"}
	metric := &model.ProgressMetric{UserID: 1, Date: now, MetricType: model.MetricTypeMood, Value: 4}

	require.Error(t, repo.CreateCheckInWithMetric(checkin, metric))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateJournalEntry(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewWellnessRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "journal_entries"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectCommit()

	entry, err := repo.CreateJournalEntry(&model.JournalEntry{
		UserID:    1,
		Date:      time.Now().UTC(),
		Title:     "Tuesday",
		Content:   "slept well",
		IsPrivate: true,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(5), entry.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListJournalEntriesOrdersMostRecentFirst(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewWellnessRepository(gdb)

	newer := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	older := newer.AddDate(0, 0, -1)
	mock.ExpectQuery(`SELECT .* FROM "journal_entries" WHERE user_id = \$1 ORDER BY date DESC`).
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "date", "title", "content", "mood", "is_private"}).
			AddRow(2, 1, newer, "Later", "text", "", true).
			AddRow(1, 1, older, "Earlier", "text", "Calm", true))

	entries, err := repo.ListJournalEntries(1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Later", entries[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMetricForDateBoundsTheDay(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewWellnessRepository(gdb)

	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	dayStart := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	mock.ExpectQuery(`SELECT .* FROM "progress_metrics" WHERE user_id = \$1 AND metric_type = \$2 AND date >= \$3 AND date < \$4`).
		WithArgs(uint(1), model.MetricTypeMood, dayStart, dayEnd, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "date", "metric_type", "value"}).
			AddRow(1, 1, at, model.MetricTypeMood, 4.0))

	metric, err := repo.GetMetricForDate(1, model.MetricTypeMood, at)
	require.NoError(t, err)
	assert.Equal(t, 4.0, metric.Value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMetricForDateNotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewWellnessRepository(gdb)

	mock.ExpectQuery(`SELECT .* FROM "progress_metrics"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "date", "metric_type", "value"}))

	_, err := repo.GetMetricForDate(1, model.MetricTypeMood, time.Now().UTC())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListMetricsAppliesSinceFilter(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewWellnessRepository(gdb)

	since := time.Date(2025, 3, 7, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT .* FROM "progress_metrics" WHERE user_id = \$1 AND date >= \$2 ORDER BY date ASC`).
		WithArgs(uint(1), since).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "date", "metric_type", "value"}).
			AddRow(1, 1, since.AddDate(0, 0, 1), model.MetricTypeMood, 3.0))

	metrics, err := repo.ListMetrics(1, &since)
	require.NoError(t, err)
	assert.Len(t, metrics, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMetricsFullHistory(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewWellnessRepository(gdb)

	mock.ExpectQuery(`SELECT .* FROM "progress_metrics" WHERE user_id = \$1 ORDER BY date ASC`).
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "date", "metric_type", "value"}))

	metrics, err := repo.ListMetrics(1, nil)
	require.NoError(t, err)
	assert.Empty(t, metrics)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFeedback(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewWellnessRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "feedback"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
	mock.ExpectCommit()

	feedback, err := repo.CreateFeedback(&model.Feedback{UserID: 1, Emotion: "Happy", Text: "thanks"})
	require.NoError(t, err)
	assert.Equal(t, uint(9), feedback.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
