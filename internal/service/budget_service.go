package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"vowplan/internal/errors"
	"vowplan/internal/model"
	"vowplan/internal/repository"
)

// BudgetItemInput carries the fields for a new budget item.
type BudgetItemInput struct {
	Category      string             `json:"category" validate:"required,notblank"`
	Description   string             `json:"description" validate:"required,notblank"`
	EstimatedCost *decimal.Decimal   `json:"estimatedCost" validate:"required"`
	ActualCost    decimal.Decimal    `json:"actualCost"`
	Status        model.BudgetStatus `json:"status"`
	PaidAmount    decimal.Decimal    `json:"paidAmount"`
	Vendor        model.Vendor       `json:"vendor"`
	DueDate       *time.Time         `json:"dueDate,omitempty"`
}

// BudgetItemUpdate carries the fields a PATCH may change.
type BudgetItemUpdate struct {
	Category      *string             `json:"category,omitempty" validate:"omitempty,notblank"`
	Description   *string             `json:"description,omitempty" validate:"omitempty,notblank"`
	EstimatedCost *decimal.Decimal    `json:"estimatedCost,omitempty"`
	ActualCost    *decimal.Decimal    `json:"actualCost,omitempty"`
	Status        *model.BudgetStatus `json:"status,omitempty"`
	PaidAmount    *decimal.Decimal    `json:"paidAmount,omitempty"`
	Vendor        *model.Vendor       `json:"vendor,omitempty"`
	DueDate       *time.Time          `json:"dueDate,omitempty"`
}

// BudgetSummary is the derived aggregate over an owner's budget items.
// It is computed on read and never persisted.
type BudgetSummary struct {
	TotalEstimated decimal.Decimal            `json:"totalEstimated"`
	TotalActual    decimal.Decimal            `json:"totalActual"`
	TotalPaid      decimal.Decimal            `json:"totalPaid"`
	ItemCount      int                        `json:"itemCount"`
	ByStatus       map[model.BudgetStatus]int `json:"byStatus"`
}

// BudgetService handles budget item operations.
type BudgetService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]model.BudgetItem, error)
	Create(ctx context.Context, ownerID uuid.UUID, input BudgetItemInput) (*model.BudgetItem, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, update BudgetItemUpdate) (*model.BudgetItem, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	Summary(ctx context.Context, ownerID uuid.UUID) (*BudgetSummary, error)
}

type budgetService struct {
	repo repository.BudgetRepository
}

// NewBudgetService creates a new budget service.
func NewBudgetService(repo repository.BudgetRepository) BudgetService {
	return &budgetService{repo: repo}
}

// List returns the owner's budget items, newest first.
func (s *budgetService) List(ctx context.Context, ownerID uuid.UUID) ([]model.BudgetItem, error) {
	items, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list budget items: %w", err)
	}
	return items, nil
}

// Create stores a new budget item owned by the caller. The status
// defaults to planned when omitted. An absent estimated cost is a
// validation failure; an explicit zero is fine.
func (s *budgetService) Create(ctx context.Context, ownerID uuid.UUID, input BudgetItemInput) (*model.BudgetItem, error) {
	if input.EstimatedCost == nil {
		return nil, &errors.ValidationError{Fields: []errors.FieldError{
			{Field: "estimatedCost", Message: "estimatedCost is required"},
		}}
	}
	if input.Status == "" {
		input.Status = model.BudgetStatusPlanned
	}
	if !model.ValidBudgetStatus(input.Status) {
		return nil, errors.ErrInvalidBudgetStatus
	}

	item := &model.BudgetItem{
		Category:      strings.TrimSpace(input.Category),
		Description:   strings.TrimSpace(input.Description),
		EstimatedCost: *input.EstimatedCost,
		ActualCost:    input.ActualCost,
		Status:        input.Status,
		PaidAmount:    input.PaidAmount,
		Vendor:        trimVendor(input.Vendor),
		DueDate:       input.DueDate,
		CreatedBy:     ownerID,
	}
	if err := checkAmounts(item); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create budget item: %w", err)
	}
	return item, nil
}

// Update merges the supplied fields into the item after the ownership
// check. Amount invariants are re-checked against the merged record so a
// partial update cannot sneak past them.
func (s *budgetService) Update(ctx context.Context, ownerID, id uuid.UUID, update BudgetItemUpdate) (*model.BudgetItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if gerr := requireOwner(item, err, ownerID); gerr != nil {
		return nil, gerr
	}

	if update.Status != nil {
		if !model.ValidBudgetStatus(*update.Status) {
			return nil, errors.ErrInvalidBudgetStatus
		}
		item.Status = *update.Status
	}
	if update.Category != nil {
		item.Category = strings.TrimSpace(*update.Category)
	}
	if update.Description != nil {
		item.Description = strings.TrimSpace(*update.Description)
	}
	if update.EstimatedCost != nil {
		item.EstimatedCost = *update.EstimatedCost
	}
	if update.ActualCost != nil {
		item.ActualCost = *update.ActualCost
	}
	if update.PaidAmount != nil {
		item.PaidAmount = *update.PaidAmount
	}
	if update.Vendor != nil {
		item.Vendor = trimVendor(*update.Vendor)
	}
	if update.DueDate != nil {
		item.DueDate = update.DueDate
	}
	if err := checkAmounts(item); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update budget item: %w", err)
	}
	return item, nil
}

// Delete removes the item after the ownership check.
func (s *budgetService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	item, err := s.repo.FindByID(ctx, id)
	if gerr := requireOwner(item, err, ownerID); gerr != nil {
		return gerr
	}
	if err := s.repo.Delete(ctx, item); err != nil {
		return fmt.Errorf("delete budget item: %w", err)
	}
	return nil
}

// Summary computes the owner's totals over the full collection.
func (s *budgetService) Summary(ctx context.Context, ownerID uuid.UUID) (*BudgetSummary, error) {
	items, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list budget items: %w", err)
	}
	return computeBudgetSummary(items), nil
}

func computeBudgetSummary(items []model.BudgetItem) *BudgetSummary {
	summary := &BudgetSummary{
		TotalEstimated: decimal.Zero,
		TotalActual:    decimal.Zero,
		TotalPaid:      decimal.Zero,
		ItemCount:      len(items),
		ByStatus:       make(map[model.BudgetStatus]int),
	}
	for _, item := range items {
		summary.TotalEstimated = summary.TotalEstimated.Add(item.EstimatedCost)
		summary.TotalActual = summary.TotalActual.Add(item.ActualCost)
		summary.TotalPaid = summary.TotalPaid.Add(item.PaidAmount)
		summary.ByStatus[item.Status]++
	}
	return summary
}

// checkAmounts enforces the amount invariants: nothing negative, and
// paidAmount never above estimatedCost.
func checkAmounts(item *model.BudgetItem) error {
	if item.EstimatedCost.IsNegative() || item.ActualCost.IsNegative() || item.PaidAmount.IsNegative() {
		return errors.ErrNegativeAmount
	}
	if item.PaidAmount.GreaterThan(item.EstimatedCost) {
		return errors.ErrPaidExceedsEstimate
	}
	return nil
}

func trimVendor(v model.Vendor) model.Vendor {
	return model.Vendor{
		Name:    strings.TrimSpace(v.Name),
		Contact: strings.TrimSpace(v.Contact),
		Notes:   strings.TrimSpace(v.Notes),
	}
}
