package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an authenticated planner account. The wedding profile
// fields are optional and filled in from the settings page.
type User struct {
	ID             uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Name           string     `json:"name" gorm:"size:255;not null"`
	Email          string     `json:"email" gorm:"uniqueIndex;size:255;not null"` // stored lowercase
	PasswordHash   string     `json:"-" gorm:"size:255;not null"`                 // Never expose in JSON
	WeddingDate    *time.Time `json:"weddingDate,omitempty"`
	Venue          string     `json:"venue,omitempty" gorm:"size:255"`
	ExpectedGuests int        `json:"expectedGuests,omitempty" gorm:"default:0"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
