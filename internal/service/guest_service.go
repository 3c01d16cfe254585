package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"vowplan/internal/cache"
	"vowplan/internal/errors"
	"vowplan/internal/model"
	"vowplan/internal/repository"
)

const guestStatsCacheTTL = 5 * time.Minute

// GuestInput carries the fields for a new guest.
type GuestInput struct {
	Name                string           `json:"name" validate:"required,notblank"`
	Email               string           `json:"email,omitempty" validate:"omitempty,email"`
	Phone               string           `json:"phone,omitempty"`
	Side                model.GuestSide  `json:"side" validate:"required"`
	RSVPStatus          model.RSVPStatus `json:"rsvpStatus,omitempty"`
	PlusOne             bool             `json:"plusOne"`
	PlusOneName         string           `json:"plusOneName,omitempty"`
	DietaryRestrictions string           `json:"dietaryRestrictions,omitempty"`
	Table               string           `json:"table,omitempty"`
	Notes               string           `json:"notes,omitempty"`
}

// GuestUpdate carries the fields a PATCH may change.
type GuestUpdate struct {
	Name                *string           `json:"name,omitempty" validate:"omitempty,notblank"`
	Email               *string           `json:"email,omitempty" validate:"omitempty,email"`
	Phone               *string           `json:"phone,omitempty"`
	Side                *model.GuestSide  `json:"side,omitempty"`
	RSVPStatus          *model.RSVPStatus `json:"rsvpStatus,omitempty"`
	PlusOne             *bool             `json:"plusOne,omitempty"`
	PlusOneName         *string           `json:"plusOneName,omitempty"`
	DietaryRestrictions *string           `json:"dietaryRestrictions,omitempty"`
	Table               *string           `json:"table,omitempty"`
	Notes               *string           `json:"notes,omitempty"`
}

// GuestStats is the derived headcount aggregate over an owner's guest
// list. Computed on read, cached briefly, never persisted.
type GuestStats struct {
	TotalGuests        int `json:"totalGuests"`
	TotalHeadcount     int `json:"totalHeadcount"`
	ConfirmedHeadcount int `json:"confirmedHeadcount"`
	Pending            int `json:"pending"`
	Confirmed          int `json:"confirmed"`
	Declined           int `json:"declined"`
}

// GuestService handles guest list operations.
type GuestService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Guest, error)
	Create(ctx context.Context, ownerID uuid.UUID, input GuestInput) (*model.Guest, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, update GuestUpdate) (*model.Guest, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	Stats(ctx context.Context, ownerID uuid.UUID) (*GuestStats, error)
}

type guestService struct {
	repo  repository.GuestRepository
	cache *cache.Client
}

// NewGuestService creates a new guest service.
func NewGuestService(repo repository.GuestRepository, cache *cache.Client) GuestService {
	return &guestService{repo: repo, cache: cache}
}

func (s *guestService) statsKey(ownerID uuid.UUID) string {
	return fmt.Sprintf("guest_stats:%s", ownerID.String())
}

// List returns the owner's guests, newest first.
func (s *guestService) List(ctx context.Context, ownerID uuid.UUID) ([]model.Guest, error) {
	guests, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	return guests, nil
}

// Create stores a new guest owned by the caller. RSVP status defaults to
// pending when omitted.
func (s *guestService) Create(ctx context.Context, ownerID uuid.UUID, input GuestInput) (*model.Guest, error) {
	if !model.ValidGuestSide(input.Side) {
		return nil, errors.ErrInvalidGuestSide
	}
	if input.RSVPStatus == "" {
		input.RSVPStatus = model.RSVPPending
	}
	if !model.ValidRSVPStatus(input.RSVPStatus) {
		return nil, errors.ErrInvalidRSVPStatus
	}

	guest := &model.Guest{
		Name:                strings.TrimSpace(input.Name),
		Email:               strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:               strings.TrimSpace(input.Phone),
		Side:                input.Side,
		RSVPStatus:          input.RSVPStatus,
		PlusOne:             input.PlusOne,
		PlusOneName:         strings.TrimSpace(input.PlusOneName),
		DietaryRestrictions: strings.TrimSpace(input.DietaryRestrictions),
		Table:               strings.TrimSpace(input.Table),
		Notes:               strings.TrimSpace(input.Notes),
		CreatedBy:           ownerID,
	}

	if err := s.repo.Create(ctx, guest); err != nil {
		return nil, fmt.Errorf("create guest: %w", err)
	}
	_ = s.cache.Delete(ctx, s.statsKey(ownerID))
	return guest, nil
}

// Update merges the supplied fields into the guest after the ownership check.
func (s *guestService) Update(ctx context.Context, ownerID, id uuid.UUID, update GuestUpdate) (*model.Guest, error) {
	guest, err := s.repo.FindByID(ctx, id)
	if gerr := requireOwner(guest, err, ownerID); gerr != nil {
		return nil, gerr
	}

	if update.Side != nil {
		if !model.ValidGuestSide(*update.Side) {
			return nil, errors.ErrInvalidGuestSide
		}
		guest.Side = *update.Side
	}
	if update.RSVPStatus != nil {
		if !model.ValidRSVPStatus(*update.RSVPStatus) {
			return nil, errors.ErrInvalidRSVPStatus
		}
		guest.RSVPStatus = *update.RSVPStatus
	}
	if update.Name != nil {
		guest.Name = strings.TrimSpace(*update.Name)
	}
	if update.Email != nil {
		guest.Email = strings.ToLower(strings.TrimSpace(*update.Email))
	}
	if update.Phone != nil {
		guest.Phone = strings.TrimSpace(*update.Phone)
	}
	if update.PlusOne != nil {
		guest.PlusOne = *update.PlusOne
	}
	if update.PlusOneName != nil {
		guest.PlusOneName = strings.TrimSpace(*update.PlusOneName)
	}
	if update.DietaryRestrictions != nil {
		guest.DietaryRestrictions = strings.TrimSpace(*update.DietaryRestrictions)
	}
	if update.Table != nil {
		guest.Table = strings.TrimSpace(*update.Table)
	}
	if update.Notes != nil {
		guest.Notes = strings.TrimSpace(*update.Notes)
	}

	if err := s.repo.Update(ctx, guest); err != nil {
		return nil, fmt.Errorf("update guest: %w", err)
	}
	_ = s.cache.Delete(ctx, s.statsKey(ownerID))
	return guest, nil
}

// Delete removes the guest after the ownership check.
func (s *guestService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	guest, err := s.repo.FindByID(ctx, id)
	if gerr := requireOwner(guest, err, ownerID); gerr != nil {
		return gerr
	}
	if err := s.repo.Delete(ctx, guest); err != nil {
		return fmt.Errorf("delete guest: %w", err)
	}
	_ = s.cache.Delete(ctx, s.statsKey(ownerID))
	return nil
}

// Stats computes the owner's headcount aggregate with short-lived
// caching. Every mutation invalidates the cached value.
func (s *guestService) Stats(ctx context.Context, ownerID uuid.UUID) (*GuestStats, error) {
	var cached GuestStats
	if s.cache.GetJSON(ctx, s.statsKey(ownerID), &cached) {
		return &cached, nil
	}

	guests, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}

	stats := computeGuestStats(guests)
	s.cache.SetJSON(ctx, s.statsKey(ownerID), stats, guestStatsCacheTTL)
	return stats, nil
}

func computeGuestStats(guests []model.Guest) *GuestStats {
	stats := &GuestStats{TotalGuests: len(guests)}
	for i := range guests {
		g := &guests[i]
		stats.TotalHeadcount += g.Headcount()
		switch g.RSVPStatus {
		case model.RSVPConfirmed:
			stats.Confirmed++
			stats.ConfirmedHeadcount += g.Headcount()
		case model.RSVPDeclined:
			stats.Declined++
		default:
			stats.Pending++
		}
	}
	return stats
}
