package model

import (
	"time"
)

// User represents a registered account. The password is stored only as a
// bcrypt hash and never serialized in responses.
type User struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	FirstName    string    `json:"first_name" gorm:"size:50;not null"`
	LastName     string    `json:"last_name" gorm:"size:50;not null"`
	Email        string    `json:"email" gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:128;not null"`
	CreatedAt    time.Time `json:"created_at"`

	// Owned records, removed together with the user.
	CheckIns       []CheckIn        `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	JournalEntries []JournalEntry   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Metrics        []ProgressMetric `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Feedback       []Feedback       `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}
