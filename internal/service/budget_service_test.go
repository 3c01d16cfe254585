package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vowplan/internal/errors"
	"vowplan/internal/model"
	"vowplan/internal/validation"
)

// MockBudgetRepository is a mock implementation of BudgetRepository.
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) Create(ctx context.Context, item *model.BudgetItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockBudgetRepository) Update(ctx context.Context, item *model.BudgetItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockBudgetRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.BudgetItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BudgetItem), args.Error(1)
}

func (m *MockBudgetRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.BudgetItem, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BudgetItem), args.Error(1)
}

func (m *MockBudgetRepository) Delete(ctx context.Context, item *model.BudgetItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func TestBudgetService_Create(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		name          string
		input         BudgetItemInput
		expectedError error
		check         func(*testing.T, *model.BudgetItem)
	}{
		{
			name: "status defaults to planned",
			input: BudgetItemInput{
				Category:      "Venue",
				Description:   "  Reception hall deposit  ",
				EstimatedCost: decPtr(decimal.NewFromInt(5000)),
			},
			check: func(t *testing.T, item *model.BudgetItem) {
				assert.Equal(t, model.BudgetStatusPlanned, item.Status)
				assert.Equal(t, "Reception hall deposit", item.Description)
				assert.Equal(t, owner, item.CreatedBy)
			},
		},
		{
			name: "unknown status rejected",
			input: BudgetItemInput{
				Category:      "Venue",
				Description:   "Deposit",
				EstimatedCost: decPtr(decimal.NewFromInt(5000)),
				Status:        "refunded",
			},
			expectedError: errors.ErrInvalidBudgetStatus,
		},
		{
			name: "negative estimate rejected",
			input: BudgetItemInput{
				Category:      "Venue",
				Description:   "Deposit",
				EstimatedCost: decPtr(decimal.NewFromInt(-1)),
			},
			expectedError: errors.ErrNegativeAmount,
		},
		{
			name: "paid amount above estimate rejected",
			input: BudgetItemInput{
				Category:      "Venue",
				Description:   "Deposit",
				EstimatedCost: decPtr(decimal.NewFromInt(100)),
				PaidAmount:    decimal.NewFromInt(150),
			},
			expectedError: errors.ErrPaidExceedsEstimate,
		},
		{
			name: "missing estimated cost rejected",
			input: BudgetItemInput{
				Category:    "Venue",
				Description: "Deposit",
			},
			expectedError: &errors.ValidationError{Fields: []errors.FieldError{
				{Field: "estimatedCost", Message: "estimatedCost is required"},
			}},
		},
		{
			name: "explicit zero estimate accepted",
			input: BudgetItemInput{
				Category:      "Favors",
				Description:   "Handmade, no cost",
				EstimatedCost: decPtr(decimal.Zero),
			},
			check: func(t *testing.T, item *model.BudgetItem) {
				assert.True(t, item.EstimatedCost.IsZero())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockBudgetRepository)
			if tt.expectedError == nil {
				mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.BudgetItem")).Return(nil)
			}

			svc := NewBudgetService(mockRepo)
			item, err := svc.Create(context.Background(), owner, tt.input)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, item)
				// no write may happen on a rejected payload
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				tt.check(t, item)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestBudgetItemInput_EstimatedCostRequired(t *testing.T) {
	v := validation.New()

	// a payload that never mentions estimatedCost fails field validation
	// with the field named in the message list
	err := v.Validate(BudgetItemInput{Category: "Venue", Description: "Deposit"})
	verr, ok := err.(*errors.ValidationError)
	assert.True(t, ok)
	found := false
	for _, f := range verr.Fields {
		if f.Field == "estimatedCost" {
			found = true
			assert.Equal(t, "estimatedCost is required", f.Message)
		}
	}
	assert.True(t, found, "estimatedCost missing from %v", verr.Fields)

	// an explicit zero is a present value, not an absent one
	err = v.Validate(BudgetItemInput{
		Category:      "Favors",
		Description:   "Handmade, no cost",
		EstimatedCost: decPtr(decimal.NewFromInt(0)),
	})
	assert.NoError(t, err)
}

func TestBudgetService_Update_Ownership(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	itemID := uuid.New()
	status := model.BudgetStatusPaid

	mockRepo := new(MockBudgetRepository)
	mockRepo.On("FindByID", mock.Anything, itemID).Return(&model.BudgetItem{
		ID:            itemID,
		CreatedBy:     owner,
		EstimatedCost: decimal.NewFromInt(100),
	}, nil)

	svc := NewBudgetService(mockRepo)
	item, err := svc.Update(context.Background(), stranger, itemID, BudgetItemUpdate{Status: &status})

	assert.Equal(t, errors.ErrRecordNotFound, err)
	assert.Nil(t, item)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestBudgetService_Update_MergedAmountInvariant(t *testing.T) {
	owner := uuid.New()
	itemID := uuid.New()

	// The item already carries a paid amount; shrinking the estimate
	// below it must fail even though the update alone looks harmless.
	mockRepo := new(MockBudgetRepository)
	mockRepo.On("FindByID", mock.Anything, itemID).Return(&model.BudgetItem{
		ID:            itemID,
		CreatedBy:     owner,
		EstimatedCost: decimal.NewFromInt(1000),
		PaidAmount:    decimal.NewFromInt(800),
	}, nil)

	newEstimate := decimal.NewFromInt(500)
	svc := NewBudgetService(mockRepo)
	_, err := svc.Update(context.Background(), owner, itemID, BudgetItemUpdate{EstimatedCost: &newEstimate})

	assert.Equal(t, errors.ErrPaidExceedsEstimate, err)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestBudgetService_Summary(t *testing.T) {
	owner := uuid.New()

	items := []model.BudgetItem{
		{
			EstimatedCost: decimal.NewFromInt(5000),
			PaidAmount:    decimal.NewFromInt(1500),
			ActualCost:    decimal.NewFromInt(0),
			Status:        model.BudgetStatusPartiallyPaid,
		},
		{
			EstimatedCost: decimal.NewFromFloat(3200.50),
			Status:        model.BudgetStatusPlanned,
		},
		{
			EstimatedCost: decimal.NewFromInt(800),
			PaidAmount:    decimal.NewFromInt(800),
			ActualCost:    decimal.NewFromInt(800),
			Status:        model.BudgetStatusPaid,
		},
	}

	mockRepo := new(MockBudgetRepository)
	mockRepo.On("FindByOwner", mock.Anything, owner).Return(items, nil)

	svc := NewBudgetService(mockRepo)
	summary, err := svc.Summary(context.Background(), owner)

	assert.NoError(t, err)
	assert.Equal(t, 3, summary.ItemCount)
	assert.True(t, summary.TotalEstimated.Equal(decimal.NewFromFloat(9000.50)), "total estimated %s", summary.TotalEstimated)
	assert.True(t, summary.TotalPaid.Equal(decimal.NewFromInt(2300)), "total paid %s", summary.TotalPaid)
	assert.True(t, summary.TotalActual.Equal(decimal.NewFromInt(800)), "total actual %s", summary.TotalActual)
	assert.Equal(t, 1, summary.ByStatus[model.BudgetStatusPlanned])
	assert.Equal(t, 1, summary.ByStatus[model.BudgetStatusPaid])
	assert.Equal(t, 1, summary.ByStatus[model.BudgetStatusPartiallyPaid])
}

func TestBudgetService_SummaryTracksAddAndRemove(t *testing.T) {
	owner := uuid.New()
	base := []model.BudgetItem{
		{EstimatedCost: decimal.NewFromInt(1000), Status: model.BudgetStatusPlanned},
	}
	added := append([]model.BudgetItem{
		{EstimatedCost: decimal.NewFromInt(250), Status: model.BudgetStatusPlanned},
	}, base...)

	svcFor := func(items []model.BudgetItem) BudgetService {
		m := new(MockBudgetRepository)
		m.On("FindByOwner", mock.Anything, owner).Return(items, nil)
		return NewBudgetService(m)
	}

	before, err := svcFor(base).Summary(context.Background(), owner)
	assert.NoError(t, err)
	after, err := svcFor(added).Summary(context.Background(), owner)
	assert.NoError(t, err)

	// adding an item of cost C moves the total by exactly C
	diff := after.TotalEstimated.Sub(before.TotalEstimated)
	assert.True(t, diff.Equal(decimal.NewFromInt(250)), "diff %s", diff)
}
