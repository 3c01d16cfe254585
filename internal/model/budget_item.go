package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetStatus represents the payment state of a budget item.
type BudgetStatus string

const (
	BudgetStatusPlanned       BudgetStatus = "planned"
	BudgetStatusPaid          BudgetStatus = "paid"
	BudgetStatusPartiallyPaid BudgetStatus = "partially-paid"
)

// ValidBudgetStatus reports whether s is one of the recognized states.
func ValidBudgetStatus(s BudgetStatus) bool {
	switch s {
	case BudgetStatusPlanned, BudgetStatusPaid, BudgetStatusPartiallyPaid:
		return true
	}
	return false
}

// Vendor holds the optional supplier details attached to a budget item.
type Vendor struct {
	Name    string `json:"name,omitempty" gorm:"size:255"`
	Contact string `json:"contact,omitempty" gorm:"size:255"`
	Notes   string `json:"notes,omitempty" gorm:"size:1024"`
}

// BudgetItem is a single planned expense.
type BudgetItem struct {
	ID            uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Category      string          `json:"category" gorm:"size:255;not null;index"`
	Description   string          `json:"description" gorm:"size:1024;not null"`
	EstimatedCost decimal.Decimal `json:"estimatedCost" gorm:"type:decimal(12,2);not null"`
	ActualCost    decimal.Decimal `json:"actualCost" gorm:"type:decimal(12,2);default:0"`
	Status        BudgetStatus    `json:"status" gorm:"type:varchar(20);not null;default:'planned';index"`
	PaidAmount    decimal.Decimal `json:"paidAmount" gorm:"type:decimal(12,2);default:0"`
	Vendor        Vendor          `json:"vendor" gorm:"embedded;embeddedPrefix:vendor_"`
	DueDate       *time.Time      `json:"dueDate,omitempty"`
	CreatedBy     uuid.UUID       `json:"createdBy" gorm:"type:char(36);not null;index"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// OwnerID returns the user this record belongs to.
func (b *BudgetItem) OwnerID() uuid.UUID { return b.CreatedBy }

// BeforeCreate sets UUID before creating the record.
func (b *BudgetItem) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
