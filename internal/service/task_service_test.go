package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"vowplan/internal/errors"
	"vowplan/internal/model"
)

// MockTaskRepository is a mock implementation of TaskRepository.
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Task, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) Delete(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func boolPtr(b bool) *bool       { return &b }
func strPtr(s string) *string    { return &s }

func TestTaskService_Create(t *testing.T) {
	owner := uuid.New()

	mockRepo := new(MockTaskRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Task")).Return(nil)

	svc := NewTaskService(mockRepo)
	task, err := svc.Create(context.Background(), owner, "  Book florist  ")

	assert.NoError(t, err)
	assert.Equal(t, "Book florist", task.Title)
	assert.False(t, task.Completed)
	assert.Equal(t, owner, task.CreatedBy)
	mockRepo.AssertExpectations(t)
}

func TestTaskService_Update(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	taskID := uuid.New()

	tests := []struct {
		name          string
		caller        uuid.UUID
		update        TaskUpdate
		setupMock     func(*MockTaskRepository)
		expectedError error
		check         func(*testing.T, *model.Task)
	}{
		{
			name:   "owner toggles completion",
			caller: owner,
			update: TaskUpdate{Completed: boolPtr(true)},
			setupMock: func(m *MockTaskRepository) {
				m.On("FindByID", mock.Anything, taskID).Return(&model.Task{
					ID: taskID, Title: "Book florist", CreatedBy: owner,
				}, nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.Task")).Return(nil)
			},
			check: func(t *testing.T, task *model.Task) {
				assert.True(t, task.Completed)
				assert.Equal(t, "Book florist", task.Title)
			},
		},
		{
			name:   "owner renames task",
			caller: owner,
			update: TaskUpdate{Title: strPtr(" Confirm florist ")},
			setupMock: func(m *MockTaskRepository) {
				m.On("FindByID", mock.Anything, taskID).Return(&model.Task{
					ID: taskID, Title: "Book florist", CreatedBy: owner,
				}, nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.Task")).Return(nil)
			},
			check: func(t *testing.T, task *model.Task) {
				assert.Equal(t, "Confirm florist", task.Title)
			},
		},
		{
			name:   "non-owner sees not found, not forbidden",
			caller: stranger,
			update: TaskUpdate{Completed: boolPtr(true)},
			setupMock: func(m *MockTaskRepository) {
				m.On("FindByID", mock.Anything, taskID).Return(&model.Task{
					ID: taskID, Title: "Book florist", CreatedBy: owner,
				}, nil)
			},
			expectedError: errors.ErrRecordNotFound,
		},
		{
			name:   "missing record",
			caller: owner,
			update: TaskUpdate{Completed: boolPtr(true)},
			setupMock: func(m *MockTaskRepository) {
				m.On("FindByID", mock.Anything, taskID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrRecordNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTaskRepository)
			tt.setupMock(mockRepo)

			svc := NewTaskService(mockRepo)
			task, err := svc.Update(context.Background(), tt.caller, taskID, tt.update)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, task)
			} else {
				assert.NoError(t, err)
				tt.check(t, task)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTaskService_Update_WrappedNotFound(t *testing.T) {
	// a repository may wrap the storage sentinel; the guard still has to
	// recognize it as NotFound rather than an internal failure
	owner := uuid.New()
	taskID := uuid.New()

	mockRepo := new(MockTaskRepository)
	mockRepo.On("FindByID", mock.Anything, taskID).
		Return(nil, fmt.Errorf("find task: %w", gorm.ErrRecordNotFound))

	svc := NewTaskService(mockRepo)
	task, err := svc.Update(context.Background(), owner, taskID, TaskUpdate{Completed: boolPtr(true)})

	assert.Equal(t, errors.ErrRecordNotFound, err)
	assert.Nil(t, task)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestTaskService_Delete(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	taskID := uuid.New()

	t.Run("owner deletes", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		task := &model.Task{ID: taskID, CreatedBy: owner}
		mockRepo.On("FindByID", mock.Anything, taskID).Return(task, nil)
		mockRepo.On("Delete", mock.Anything, task).Return(nil)

		svc := NewTaskService(mockRepo)
		assert.NoError(t, svc.Delete(context.Background(), owner, taskID))
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-owner cannot delete and cannot learn the record exists", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("FindByID", mock.Anything, taskID).Return(&model.Task{ID: taskID, CreatedBy: owner}, nil)

		svc := NewTaskService(mockRepo)
		err := svc.Delete(context.Background(), stranger, taskID)
		assert.Equal(t, errors.ErrRecordNotFound, err)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestTaskService_List(t *testing.T) {
	owner := uuid.New()

	mockRepo := new(MockTaskRepository)
	mockRepo.On("FindByOwner", mock.Anything, owner).Return([]model.Task{
		{Title: "Send invitations", CreatedBy: owner},
		{Title: "Book florist", CreatedBy: owner, Completed: true},
	}, nil)

	svc := NewTaskService(mockRepo)
	tasks, err := svc.List(context.Background(), owner)

	assert.NoError(t, err)
	assert.Len(t, tasks, 2)
	mockRepo.AssertExpectations(t)
}
