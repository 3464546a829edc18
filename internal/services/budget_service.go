package services

import (
	"context"

	"wealthwatch/internal/dto"
	"wealthwatch/internal/models"
	"wealthwatch/internal/storage"
)

// BudgetService provides ownership-scoped budget CRUD over the storage
// contract. Multiple budgets for the same (category, month) are permitted;
// the data model does not enforce uniqueness there.
type BudgetService struct {
	store   storage.Storage
	metrics MetricsRecorderInterface
}

// NewBudgetService creates a new budget service
func NewBudgetService(store storage.Storage, metrics MetricsRecorderInterface) BudgetServiceInterface {
	return &BudgetService{
		store:   store,
		metrics: metrics,
	}
}

// List returns the user's budgets, most recent month first.
func (s *BudgetService) List(ctx context.Context, userID string) ([]models.Budget, error) {
	return s.store.GetBudgets(ctx, userID)
}

// Get returns a single owned budget.
func (s *BudgetService) Get(ctx context.Context, id, userID string) (*models.Budget, error) {
	return s.store.GetBudget(ctx, id, userID)
}

// Create stores a new budget for the user.
func (s *BudgetService) Create(ctx context.Context, userID string, req *dto.CreateBudgetRequest) (*models.Budget, error) {
	budget := &models.Budget{
		UserID:   userID,
		Category: req.Category,
		Amount:   *req.Amount,
		Month:    req.Month,
	}

	if err := s.store.CreateBudget(ctx, budget); err != nil {
		return nil, err
	}

	s.metrics.RecordBudgetCreated(budget.Category)
	return budget, nil
}

// Update applies a partial update to an owned budget. An empty update is a
// read; ownership is still checked.
func (s *BudgetService) Update(ctx context.Context, id, userID string, req *dto.UpdateBudgetRequest) (*models.Budget, error) {
	update := req.ToUpdate()
	if update.IsEmpty() {
		return s.store.GetBudget(ctx, id, userID)
	}
	return s.store.UpdateBudget(ctx, id, userID, update)
}

// Delete removes an owned budget, reporting whether anything was removed.
func (s *BudgetService) Delete(ctx context.Context, id, userID string) (bool, error) {
	return s.store.DeleteBudget(ctx, id, userID)
}
