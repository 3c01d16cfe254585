package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"vowplan/internal/model"
	"vowplan/internal/repository"
)

// TaskUpdate carries the fields a PATCH may change. Nil fields are left
// untouched; the owner reference is never part of an update.
type TaskUpdate struct {
	Title     *string `json:"title,omitempty" validate:"omitempty,notblank"`
	Completed *bool   `json:"completed,omitempty"`
}

// TaskService handles checklist operations.
type TaskService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Task, error)
	Create(ctx context.Context, ownerID uuid.UUID, title string) (*model.Task, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, update TaskUpdate) (*model.Task, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type taskService struct {
	repo repository.TaskRepository
}

// NewTaskService creates a new task service.
func NewTaskService(repo repository.TaskRepository) TaskService {
	return &taskService{repo: repo}
}

// List returns the owner's tasks, newest first.
func (s *taskService) List(ctx context.Context, ownerID uuid.UUID) ([]model.Task, error) {
	tasks, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Create stores a new incomplete task owned by the caller.
func (s *taskService) Create(ctx context.Context, ownerID uuid.UUID, title string) (*model.Task, error) {
	task := &model.Task{
		Title:     strings.TrimSpace(title),
		Completed: false,
		CreatedBy: ownerID,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// Update merges the supplied fields into the task after the ownership check.
func (s *taskService) Update(ctx context.Context, ownerID, id uuid.UUID, update TaskUpdate) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if gerr := requireOwner(task, err, ownerID); gerr != nil {
		return nil, gerr
	}

	if update.Title != nil {
		task.Title = strings.TrimSpace(*update.Title)
	}
	if update.Completed != nil {
		task.Completed = *update.Completed
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

// Delete removes the task after the ownership check.
func (s *taskService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	task, err := s.repo.FindByID(ctx, id)
	if gerr := requireOwner(task, err, ownerID); gerr != nil {
		return gerr
	}
	if err := s.repo.Delete(ctx, task); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
