package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vowplan/internal/model"
)

// TimelineRepository defines timeline event persistence operations.
type TimelineRepository interface {
	Create(ctx context.Context, event *model.TimelineEvent) error
	Update(ctx context.Context, event *model.TimelineEvent) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.TimelineEvent, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.TimelineEvent, error)
	Delete(ctx context.Context, event *model.TimelineEvent) error
}

type timelineRepository struct {
	db *gorm.DB
}

// NewTimelineRepository creates a new timeline repository.
func NewTimelineRepository(db *gorm.DB) TimelineRepository {
	return &timelineRepository{db: db}
}

// Create creates a new timeline event.
func (r *timelineRepository) Create(ctx context.Context, event *model.TimelineEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// Update updates an existing timeline event.
func (r *timelineRepository) Update(ctx context.Context, event *model.TimelineEvent) error {
	return r.db.WithContext(ctx).Save(event).Error
}

// FindByID finds a timeline event by ID.
func (r *timelineRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TimelineEvent, error) {
	var event model.TimelineEvent
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// FindByOwner lists the owner's events ascending by date. Equal dates
// keep a deterministic order via created_at and id.
func (r *timelineRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.TimelineEvent, error) {
	var events []model.TimelineEvent
	if err := r.db.WithContext(ctx).
		Where("created_by = ?", ownerID).
		Order("date ASC, created_at ASC, id ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// Delete removes a timeline event.
func (r *timelineRepository) Delete(ctx context.Context, event *model.TimelineEvent) error {
	return r.db.WithContext(ctx).Delete(event).Error
}
