package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventCategory classifies a timeline event.
type EventCategory string

const (
	CategoryCeremony  EventCategory = "ceremony"
	CategoryReception EventCategory = "reception"
	CategoryRehearsal EventCategory = "rehearsal"
	CategoryOther     EventCategory = "other"
)

// ValidEventCategory reports whether c is one of the recognized categories.
func ValidEventCategory(c EventCategory) bool {
	switch c {
	case CategoryCeremony, CategoryReception, CategoryRehearsal, CategoryOther:
		return true
	}
	return false
}

// UUIDList stores a list of user ids as a JSON column.
type UUIDList []uuid.UUID

// Value implements driver.Valuer.
func (l UUIDList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *UUIDList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("unsupported type for UUIDList: %T", value)
}

// TimelineEvent is a scheduled item on the wedding-day timeline.
type TimelineEvent struct {
	ID          uuid.UUID     `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string        `json:"title" gorm:"size:255;not null"`
	Description string        `json:"description,omitempty" gorm:"size:1024"`
	Date        time.Time     `json:"date" gorm:"not null;index"`
	Time        string        `json:"time,omitempty" gorm:"size:16"`
	Location    string        `json:"location,omitempty" gorm:"size:255"`
	Category    EventCategory `json:"category" gorm:"type:varchar(20);not null;default:'other';index"`
	AssignedTo  UUIDList      `json:"assignedTo,omitempty" gorm:"type:json"`
	Notes       string        `json:"notes,omitempty" gorm:"size:1024"`
	CreatedBy   uuid.UUID     `json:"createdBy" gorm:"type:char(36);not null;index"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// OwnerID returns the user this record belongs to.
func (e *TimelineEvent) OwnerID() uuid.UUID { return e.CreatedBy }

// BeforeCreate sets UUID before creating the record.
func (e *TimelineEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
