package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vowplan/internal/errors"
	"vowplan/internal/model"
	"vowplan/internal/repository"
)

// ProfileUpdate carries the optional wedding profile fields. Nil fields
// are left untouched.
type ProfileUpdate struct {
	Name           *string    `json:"name,omitempty" validate:"omitempty,notblank"`
	WeddingDate    *time.Time `json:"weddingDate,omitempty"`
	Venue          *string    `json:"venue,omitempty"`
	ExpectedGuests *int       `json:"expectedGuests,omitempty" validate:"omitempty,min=0"`
}

// UserService handles user profile operations.
type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (*model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// GetProfile returns the caller's own account record.
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrRecordNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// UpdateProfile merges the supplied fields into the caller's record.
func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (*model.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		user.Name = strings.TrimSpace(*update.Name)
	}
	if update.WeddingDate != nil {
		user.WeddingDate = update.WeddingDate
	}
	if update.Venue != nil {
		user.Venue = strings.TrimSpace(*update.Venue)
	}
	if update.ExpectedGuests != nil {
		user.ExpectedGuests = *update.ExpectedGuests
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}
