package services

import (
	"context"
	"time"

	"wealthwatch/internal/dto"
	"wealthwatch/internal/models"
	"wealthwatch/internal/storage"
)

// ExpenseService provides ownership-scoped expense CRUD over the storage
// contract. All not-found and not-owned outcomes surface identically as
// storage.ErrNotFound.
type ExpenseService struct {
	store   storage.Storage
	metrics MetricsRecorderInterface
}

// NewExpenseService creates a new expense service
func NewExpenseService(store storage.Storage, metrics MetricsRecorderInterface) ExpenseServiceInterface {
	return &ExpenseService{
		store:   store,
		metrics: metrics,
	}
}

// List returns the user's expenses, most recent date first.
func (s *ExpenseService) List(ctx context.Context, userID string) ([]models.Expense, error) {
	return s.store.GetExpenses(ctx, userID)
}

// Get returns a single owned expense.
func (s *ExpenseService) Get(ctx context.Context, id, userID string) (*models.Expense, error) {
	return s.store.GetExpense(ctx, id, userID)
}

// Create stores a new expense for the user. A missing date defaults to the
// creation time.
func (s *ExpenseService) Create(ctx context.Context, userID string, req *dto.CreateExpenseRequest) (*models.Expense, error) {
	date := req.Date.Time()
	if req.Date.IsZero() {
		date = time.Now().UTC()
	}

	expense := &models.Expense{
		UserID:      userID,
		Title:       req.Title,
		Amount:      *req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Tags:        req.Tags,
		Date:        date,
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, err
	}

	s.metrics.RecordExpenseCreated(expense.Category)
	return expense, nil
}

// Update applies a partial update to an owned expense. An empty update is a
// read; ownership is still checked.
func (s *ExpenseService) Update(ctx context.Context, id, userID string, req *dto.UpdateExpenseRequest) (*models.Expense, error) {
	update := req.ToUpdate()
	if update.IsEmpty() {
		return s.store.GetExpense(ctx, id, userID)
	}
	return s.store.UpdateExpense(ctx, id, userID, update)
}

// Delete removes an owned expense, reporting whether anything was removed.
func (s *ExpenseService) Delete(ctx context.Context, id, userID string) (bool, error) {
	return s.store.DeleteExpense(ctx, id, userID)
}
