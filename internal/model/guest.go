package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RSVPStatus represents a guest's response to the invitation.
type RSVPStatus string

const (
	RSVPPending   RSVPStatus = "pending"
	RSVPConfirmed RSVPStatus = "confirmed"
	RSVPDeclined  RSVPStatus = "declined"
)

// ValidRSVPStatus reports whether s is one of the recognized states.
func ValidRSVPStatus(s RSVPStatus) bool {
	switch s {
	case RSVPPending, RSVPConfirmed, RSVPDeclined:
		return true
	}
	return false
}

// GuestSide identifies which party invited the guest.
type GuestSide string

const (
	SideBride GuestSide = "bride"
	SideGroom GuestSide = "groom"
)

// ValidGuestSide reports whether s is one of the recognized sides.
func ValidGuestSide(s GuestSide) bool {
	return s == SideBride || s == SideGroom
}

// Guest is an invited wedding guest.
type Guest struct {
	ID                  uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Name                string     `json:"name" gorm:"size:255;not null"`
	Email               string     `json:"email,omitempty" gorm:"size:255"` // stored lowercase
	Phone               string     `json:"phone,omitempty" gorm:"size:64"`
	Side                GuestSide  `json:"side" gorm:"type:varchar(10);not null;index"`
	RSVPStatus          RSVPStatus `json:"rsvpStatus" gorm:"type:varchar(20);not null;default:'pending';index"`
	PlusOne             bool       `json:"plusOne" gorm:"default:false"`
	PlusOneName         string     `json:"plusOneName,omitempty" gorm:"size:255"`
	DietaryRestrictions string     `json:"dietaryRestrictions,omitempty" gorm:"size:1024"`
	Table               string     `json:"table,omitempty" gorm:"column:table_assignment;size:64"`
	Notes               string     `json:"notes,omitempty" gorm:"size:1024"`
	CreatedBy           uuid.UUID  `json:"createdBy" gorm:"type:char(36);not null;index"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// OwnerID returns the user this record belongs to.
func (g *Guest) OwnerID() uuid.UUID { return g.CreatedBy }

// Headcount is the number of seats the guest occupies: themselves plus
// one if they bring a plus-one.
func (g *Guest) Headcount() int {
	if g.PlusOne {
		return 2
	}
	return 1
}

// BeforeCreate sets UUID before creating the record.
func (g *Guest) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
