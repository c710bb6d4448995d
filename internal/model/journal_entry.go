package model

import (
	"time"
)

// JournalEntry is a dated free-form entry. Title and content are required;
// the mood label is optional.
type JournalEntry struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Date      time.Time `json:"date" gorm:"not null"`
	Title     string    `json:"title" gorm:"size:100;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Mood      string    `json:"mood" gorm:"size:20"`
	IsPrivate bool      `json:"is_private" gorm:"default:true"`
}

// TableName specifies the table name for the JournalEntry model.
func (JournalEntry) TableName() string {
	return "journal_entries"
}
