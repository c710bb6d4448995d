package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aebalz/mindwell-backend/internal/apperr"
	"github.com/aebalz/mindwell-backend/internal/model"
	"github.com/aebalz/mindwell-backend/internal/repository"
)

// -------- test fakes --------

type fakeWellnessRepo struct {
	repository.WellnessRepositoryInterface

	checkins []*model.CheckIn
	metrics  []*model.ProgressMetric
	entries  []*model.JournalEntry
	feedback []*model.Feedback

	todayMetric *model.ProgressMetric
	historical  []model.ProgressMetric
	lastSince   *time.Time
	sinceSeen   bool

	createErr error
}

func (f *fakeWellnessRepo) CreateCheckInWithMetric(checkin *model.CheckIn, metric *model.ProgressMetric) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.checkins = append(f.checkins, checkin)
	f.metrics = append(f.metrics, metric)
	return nil
}

func (f *fakeWellnessRepo) CreateJournalEntry(entry *model.JournalEntry) (*model.JournalEntry, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeWellnessRepo) ListJournalEntries(userID uint) ([]model.JournalEntry, error) {
	out := make([]model.JournalEntry, 0, len(f.entries))
	for _, entry := range f.entries {
		if entry.UserID == userID {
			out = append(out, *entry)
		}
	}
	return out, nil
}

func (f *fakeWellnessRepo) GetMetricForDate(userID uint, metricType string, day time.Time) (*model.ProgressMetric, error) {
	if f.todayMetric == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.todayMetric, nil
}

func (f *fakeWellnessRepo) ListMetrics(userID uint, since *time.Time) ([]model.ProgressMetric, error) {
	f.lastSince = since
	f.sinceSeen = true
	return f.historical, nil
}

func (f *fakeWellnessRepo) CreateFeedback(feedback *model.Feedback) (*model.Feedback, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.feedback = append(f.feedback, feedback)
	return feedback, nil
}

func newWellnessServiceAt(repo *fakeWellnessRepo, now time.Time) *WellnessService {
	return &WellnessService{
		WellnessRepo: repo,
		now:          func() time.Time { return now },
	}
}

// -------- tests --------

func TestCreateCheckInDerivesMoodMetric(t *testing.T) {
	repo := &fakeWellnessRepo{}
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	svc := newWellnessServiceAt(repo, now)

	energy := 7
	checkin, err := svc.CreateCheckIn(CheckInParams{
		UserID:      1,
		Mood:        "Happy",
		EnergyLevel: &energy,
		Notes:       "good morning",
	})
	require.NoError(t, err)

	require.Len(t, repo.checkins, 1)
	require.Len(t, repo.metrics, 1)

	metric := repo.metrics[0]
	assert.Equal(t, model.MetricTypeMood, metric.MetricType)
	assert.Equal(t, float64(4), metric.Value)
	assert.Equal(t, uint(1), metric.UserID)
	assert.Equal(t, checkin.Date, metric.Date, "check-in and metric share one timestamp")
	assert.Equal(t, now, checkin.Date)
}

func TestCreateCheckInCanonicalizesMood(t *testing.T) {
	repo := &fakeWellnessRepo{}
	svc := newWellnessServiceAt(repo, time.Now().UTC())

	checkin, err := svc.CreateCheckIn(CheckInParams{UserID: 1, Mood: "anxious"})
	require.NoError(t, err)
	assert.Equal(t, "Anxious", checkin.Mood)
	assert.Equal(t, float64(1), repo.metrics[0].Value)
}

func TestCreateCheckInRejectsUnknownMoodWithoutWriting(t *testing.T) {
	repo := &fakeWellnessRepo{}
	svc := newWellnessServiceAt(repo, time.Now().UTC())

	_, err := svc.CreateCheckIn(CheckInParams{UserID: 1, Mood: "Ecstatic"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Empty(t, repo.checkins)
	assert.Empty(t, repo.metrics)
}

func TestCreateCheckInRequiresUserAndMood(t *testing.T) {
	svc := newWellnessServiceAt(&fakeWellnessRepo{}, time.Now().UTC())

	_, err := svc.CreateCheckIn(CheckInParams{UserID: 0, Mood: "Happy"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.CreateCheckIn(CheckInParams{UserID: 1, Mood: ""})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestCreateCheckInSurfacesRepoError(t *testing.T) {
	repo := &fakeWellnessRepo{createErr: errors.New("connection reset")}
	svc := newWellnessServiceAt(repo, time.Now().UTC())

	_, err := svc.CreateCheckIn(CheckInParams{UserID: 1, Mood: "Calm"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
}

func TestCreateJournalEntryDefaultsToPrivate(t *testing.T) {
	repo := &fakeWellnessRepo{}
	svc := newWellnessServiceAt(repo, time.Now().UTC())

	entry, err := svc.CreateJournalEntry(JournalEntryParams{
		UserID:  1,
		Title:   "Tuesday",
		Content: "slept well",
	})
	require.NoError(t, err)
	assert.True(t, entry.IsPrivate)
	assert.Empty(t, entry.Mood)
}

func TestCreateJournalEntryHonorsExplicitVisibility(t *testing.T) {
	repo := &fakeWellnessRepo{}
	svc := newWellnessServiceAt(repo, time.Now().UTC())

	shared := false
	entry, err := svc.CreateJournalEntry(JournalEntryParams{
		UserID:    1,
		Title:     "Tuesday",
		Content:   "slept well",
		Mood:      "grateful",
		IsPrivate: &shared,
	})
	require.NoError(t, err)
	assert.False(t, entry.IsPrivate)
	assert.Equal(t, "Grateful", entry.Mood)
}

func TestCreateJournalEntryRejectsUnknownMood(t *testing.T) {
	repo := &fakeWellnessRepo{}
	svc := newWellnessServiceAt(repo, time.Now().UTC())

	_, err := svc.CreateJournalEntry(JournalEntryParams{
		UserID:  1,
		Title:   "Tuesday",
		Content: "slept well",
		Mood:    "Ecstatic",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Empty(t, repo.entries)
}

func TestCreateJournalEntryRequiresTitleAndContent(t *testing.T) {
	svc := newWellnessServiceAt(&fakeWellnessRepo{}, time.Now().UTC())

	_, err := svc.CreateJournalEntry(JournalEntryParams{UserID: 1, Title: "", Content: "x"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.CreateJournalEntry(JournalEntryParams{UserID: 1, Title: "x", Content: ""})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestGetProgressLookbackWindows(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		timeRange string
		want      *time.Time
	}{
		{"week", ptrTime(now.AddDate(0, 0, -7))},
		{"month", ptrTime(now.AddDate(0, 0, -30))},
		{"year", ptrTime(now.AddDate(0, 0, -365))},
		{"all", nil},
		{"", nil},
		{"fortnight", nil},
	}
	for _, tt := range tests {
		t.Run("range "+tt.timeRange, func(t *testing.T) {
			repo := &fakeWellnessRepo{}
			svc := newWellnessServiceAt(repo, now)

			_, err := svc.GetProgress(1, tt.timeRange)
			require.NoError(t, err)
			require.True(t, repo.sinceSeen)
			if tt.want == nil {
				assert.Nil(t, repo.lastSince)
			} else {
				require.NotNil(t, repo.lastSince)
				assert.Equal(t, *tt.want, *repo.lastSince)
			}
		})
	}
}

func TestGetProgressToleratesNoCheckInToday(t *testing.T) {
	repo := &fakeWellnessRepo{
		historical: []model.ProgressMetric{{UserID: 1, MetricType: model.MetricTypeMood, Value: 3}},
	}
	svc := newWellnessServiceAt(repo, time.Now().UTC())

	progress, err := svc.GetProgress(1, "week")
	require.NoError(t, err)
	assert.Nil(t, progress.Today)
	assert.Len(t, progress.Historical, 1)
}

func TestGetProgressIncludesTodayMetric(t *testing.T) {
	today := &model.ProgressMetric{UserID: 1, MetricType: model.MetricTypeMood, Value: 4}
	repo := &fakeWellnessRepo{todayMetric: today}
	svc := newWellnessServiceAt(repo, time.Now().UTC())

	progress, err := svc.GetProgress(1, "month")
	require.NoError(t, err)
	require.NotNil(t, progress.Today)
	assert.Equal(t, float64(4), progress.Today.Value)
}

func TestSubmitFeedbackCanonicalizesEmotion(t *testing.T) {
	repo := &fakeWellnessRepo{}
	svc := newWellnessServiceAt(repo, time.Now().UTC())

	feedback, err := svc.SubmitFeedback(1, "happy", "the prompts helped")
	require.NoError(t, err)
	assert.Equal(t, "Happy", feedback.Emotion)
	assert.Len(t, repo.feedback, 1)
}

func TestSubmitFeedbackRejectsUnknownEmotion(t *testing.T) {
	repo := &fakeWellnessRepo{}
	svc := newWellnessServiceAt(repo, time.Now().UTC())

	_, err := svc.SubmitFeedback(1, "Ecstatic", "text")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Empty(t, repo.feedback)
}

func TestSubmitFeedbackRequiresAllFields(t *testing.T) {
	svc := newWellnessServiceAt(&fakeWellnessRepo{}, time.Now().UTC())

	_, err := svc.SubmitFeedback(0, "Happy", "text")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.SubmitFeedback(1, "", "text")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.SubmitFeedback(1, "Happy", "")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func ptrTime(t time.Time) *time.Time { return &t }
