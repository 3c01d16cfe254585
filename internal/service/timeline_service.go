package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"vowplan/internal/errors"
	"vowplan/internal/model"
	"vowplan/internal/repository"
)

// TimelineEventInput carries the fields for a new timeline event.
type TimelineEventInput struct {
	Title       string              `json:"title" validate:"required,notblank"`
	Description string              `json:"description,omitempty"`
	Date        *time.Time          `json:"date" validate:"required"`
	Time        string              `json:"time,omitempty"`
	Location    string              `json:"location,omitempty"`
	Category    model.EventCategory `json:"category,omitempty"`
	AssignedTo  model.UUIDList      `json:"assignedTo,omitempty"`
	Notes       string              `json:"notes,omitempty"`
}

// TimelineEventUpdate carries the fields a PATCH may change.
type TimelineEventUpdate struct {
	Title       *string              `json:"title,omitempty" validate:"omitempty,notblank"`
	Description *string              `json:"description,omitempty"`
	Date        *time.Time           `json:"date,omitempty"`
	Time        *string              `json:"time,omitempty"`
	Location    *string              `json:"location,omitempty"`
	Category    *model.EventCategory `json:"category,omitempty"`
	AssignedTo  *model.UUIDList      `json:"assignedTo,omitempty"`
	Notes       *string              `json:"notes,omitempty"`
}

// TimelineService handles wedding-day timeline operations.
type TimelineService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]model.TimelineEvent, error)
	Create(ctx context.Context, ownerID uuid.UUID, input TimelineEventInput) (*model.TimelineEvent, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, update TimelineEventUpdate) (*model.TimelineEvent, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type timelineService struct {
	repo repository.TimelineRepository
}

// NewTimelineService creates a new timeline service.
func NewTimelineService(repo repository.TimelineRepository) TimelineService {
	return &timelineService{repo: repo}
}

// List returns the owner's events ascending by date.
func (s *timelineService) List(ctx context.Context, ownerID uuid.UUID) ([]model.TimelineEvent, error) {
	events, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list timeline events: %w", err)
	}
	return events, nil
}

// Create stores a new event owned by the caller. The category defaults
// to other when omitted.
func (s *timelineService) Create(ctx context.Context, ownerID uuid.UUID, input TimelineEventInput) (*model.TimelineEvent, error) {
	if input.Category == "" {
		input.Category = model.CategoryOther
	}
	if !model.ValidEventCategory(input.Category) {
		return nil, errors.ErrInvalidEventCategory
	}

	event := &model.TimelineEvent{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Date:        *input.Date,
		Time:        strings.TrimSpace(input.Time),
		Location:    strings.TrimSpace(input.Location),
		Category:    input.Category,
		AssignedTo:  input.AssignedTo,
		Notes:       strings.TrimSpace(input.Notes),
		CreatedBy:   ownerID,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create timeline event: %w", err)
	}
	return event, nil
}

// Update merges the supplied fields into the event after the ownership check.
func (s *timelineService) Update(ctx context.Context, ownerID, id uuid.UUID, update TimelineEventUpdate) (*model.TimelineEvent, error) {
	event, err := s.repo.FindByID(ctx, id)
	if gerr := requireOwner(event, err, ownerID); gerr != nil {
		return nil, gerr
	}

	if update.Category != nil {
		if !model.ValidEventCategory(*update.Category) {
			return nil, errors.ErrInvalidEventCategory
		}
		event.Category = *update.Category
	}
	if update.Title != nil {
		event.Title = strings.TrimSpace(*update.Title)
	}
	if update.Description != nil {
		event.Description = strings.TrimSpace(*update.Description)
	}
	if update.Date != nil {
		event.Date = *update.Date
	}
	if update.Time != nil {
		event.Time = strings.TrimSpace(*update.Time)
	}
	if update.Location != nil {
		event.Location = strings.TrimSpace(*update.Location)
	}
	if update.AssignedTo != nil {
		event.AssignedTo = *update.AssignedTo
	}
	if update.Notes != nil {
		event.Notes = strings.TrimSpace(*update.Notes)
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update timeline event: %w", err)
	}
	return event, nil
}

// Delete removes the event after the ownership check.
func (s *timelineService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	event, err := s.repo.FindByID(ctx, id)
	if gerr := requireOwner(event, err, ownerID); gerr != nil {
		return gerr
	}
	if err := s.repo.Delete(ctx, event); err != nil {
		return fmt.Errorf("delete timeline event: %w", err)
	}
	return nil
}
