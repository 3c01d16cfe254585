package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vowplan/internal/model"
)

// GuestRepository defines guest persistence operations.
type GuestRepository interface {
	Create(ctx context.Context, guest *model.Guest) error
	Update(ctx context.Context, guest *model.Guest) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Guest, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Guest, error)
	Delete(ctx context.Context, guest *model.Guest) error
}

type guestRepository struct {
	db *gorm.DB
}

// NewGuestRepository creates a new guest repository.
func NewGuestRepository(db *gorm.DB) GuestRepository {
	return &guestRepository{db: db}
}

// Create creates a new guest.
func (r *guestRepository) Create(ctx context.Context, guest *model.Guest) error {
	return r.db.WithContext(ctx).Create(guest).Error
}

// Update updates an existing guest.
func (r *guestRepository) Update(ctx context.Context, guest *model.Guest) error {
	return r.db.WithContext(ctx).Save(guest).Error
}

// FindByID finds a guest by ID.
func (r *guestRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Guest, error) {
	var guest model.Guest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&guest).Error; err != nil {
		return nil, err
	}
	return &guest, nil
}

// FindByOwner lists the owner's guests, newest first.
func (r *guestRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Guest, error) {
	var guests []model.Guest
	if err := r.db.WithContext(ctx).
		Where("created_by = ?", ownerID).
		Order("created_at DESC").
		Find(&guests).Error; err != nil {
		return nil, err
	}
	return guests, nil
}

// Delete removes a guest.
func (r *guestRepository) Delete(ctx context.Context, guest *model.Guest) error {
	return r.db.WithContext(ctx).Delete(guest).Error
}
