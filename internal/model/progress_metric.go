package model

import (
	"time"
)

// MetricTypeMood is the metric type derived from check-ins.
const MetricTypeMood = "mood"

// ProgressMetric is a generic (type, value, timestamp) series entry. The only
// type currently written is "mood", derived from check-ins.
type ProgressMetric struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	UserID     uint      `json:"user_id" gorm:"index;not null"`
	Date       time.Time `json:"date" gorm:"not null"`
	MetricType string    `json:"metric_type" gorm:"size:50;not null"`
	Value      float64   `json:"value" gorm:"not null"`
}

// TableName specifies the table name for the ProgressMetric model.
func (ProgressMetric) TableName() string {
	return "progress_metrics"
}
