package model

import (
	"time"
)

// Feedback is a user-submitted note tagged with an emotion label. The label
// is matched case-insensitively against the mood taxonomy and stored in its
// canonical capitalized form.
type Feedback struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	Emotion     string    `json:"emotion" gorm:"size:50;not null"`
	Text        string    `json:"text" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at"`
	IsProcessed bool      `json:"is_processed" gorm:"default:false"`
}

// TableName specifies the table name for the Feedback model.
func (Feedback) TableName() string {
	return "feedback"
}
