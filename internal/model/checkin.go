package model

import (
	"time"
)

// CheckIn is a timestamped self-reported mood snapshot. Energy and anxiety
// levels are optional and stored as submitted.
type CheckIn struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	UserID       uint      `json:"user_id" gorm:"index;not null"`
	Date         time.Time `json:"date" gorm:"not null"`
	Mood         string    `json:"mood" gorm:"size:20;not null"`
	EnergyLevel  *int      `json:"energy_level"`
	AnxietyLevel *int      `json:"anxiety_level"`
	Notes        string    `json:"notes"`
}

// TableName specifies the table name for the CheckIn model.
func (CheckIn) TableName() string {
	return "checkins"
}
