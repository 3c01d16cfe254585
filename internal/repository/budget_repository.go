package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vowplan/internal/model"
)

// BudgetRepository defines budget item persistence operations.
type BudgetRepository interface {
	Create(ctx context.Context, item *model.BudgetItem) error
	Update(ctx context.Context, item *model.BudgetItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.BudgetItem, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.BudgetItem, error)
	Delete(ctx context.Context, item *model.BudgetItem) error
}

type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository.
func NewBudgetRepository(db *gorm.DB) BudgetRepository {
	return &budgetRepository{db: db}
}

// Create creates a new budget item.
func (r *budgetRepository) Create(ctx context.Context, item *model.BudgetItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Update updates an existing budget item.
func (r *budgetRepository) Update(ctx context.Context, item *model.BudgetItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// FindByID finds a budget item by ID.
func (r *budgetRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.BudgetItem, error) {
	var item model.BudgetItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByOwner lists the owner's budget items, newest first.
func (r *budgetRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.BudgetItem, error) {
	var items []model.BudgetItem
	if err := r.db.WithContext(ctx).
		Where("created_by = ?", ownerID).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a budget item.
func (r *budgetRepository) Delete(ctx context.Context, item *model.BudgetItem) error {
	return r.db.WithContext(ctx).Delete(item).Error
}
