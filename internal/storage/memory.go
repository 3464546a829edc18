package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"wealthwatch/internal/models"
)

// MemoryStorage keeps all records in process-lifetime maps. Instances are
// explicitly constructed and injected, never package-level, so tests can run
// against isolated stores. Safe for concurrent use.
type MemoryStorage struct {
	mu        sync.RWMutex
	connected bool
	users     map[string]models.User
	expenses  map[string]models.Expense
	budgets   map[string]models.Budget
}

// NewMemoryStorage creates an empty in-memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users:    make(map[string]models.User),
		expenses: make(map[string]models.Expense),
		budgets:  make(map[string]models.Budget),
	}
}

// Connect marks the store ready. There is no transport to establish, but the
// lifecycle mirrors the document-store backend so the two are interchangeable.
func (s *MemoryStorage) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = true
	return nil
}

// Disconnect releases the store. Data is intentionally retained; the store
// lives and dies with the process.
func (s *MemoryStorage) Disconnect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = false
	return nil
}

// Ping reports whether the store is usable.
func (s *MemoryStorage) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.connected {
		return ErrNotConnected
	}
	return nil
}

func (s *MemoryStorage) guard() error {
	if !s.connected {
		return ErrNotConnected
	}
	return nil
}

// GetUser returns the user with the given id.
func (s *MemoryStorage) GetUser(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard(); err != nil {
		return nil, err
	}

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

// GetUserByEmail returns the user with the given email.
func (s *MemoryStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard(); err != nil {
		return nil, err
	}

	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// CreateUser assigns a fresh id and creation timestamp and stores the user.
// Email uniqueness is enforced here, under the same lock as the insert, so
// concurrent registrations cannot both succeed.
func (s *MemoryStorage) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return err
	}

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return ErrDuplicateEmail
		}
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()
	s.users[user.ID] = *user
	return nil
}

// GetExpenses returns the user's expenses sorted by date descending.
func (s *MemoryStorage) GetExpenses(ctx context.Context, userID string) ([]models.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard(); err != nil {
		return nil, err
	}

	expenses := make([]models.Expense, 0)
	for _, expense := range s.expenses {
		if expense.UserID == userID {
			expenses = append(expenses, expense)
		}
	}

	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date.After(expenses[j].Date)
	})
	return expenses, nil
}

// GetExpense returns the expense only when it exists and is owned by userID.
func (s *MemoryStorage) GetExpense(ctx context.Context, id, userID string) (*models.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard(); err != nil {
		return nil, err
	}
	return s.getOwnedExpense(id, userID)
}

func (s *MemoryStorage) getOwnedExpense(id, userID string) (*models.Expense, error) {
	expense, ok := s.expenses[id]
	if !ok || expense.UserID != userID {
		return nil, ErrNotFound
	}
	e := expense
	return &e, nil
}

// CreateExpense assigns a fresh id and creation timestamp and stores the expense.
func (s *MemoryStorage) CreateExpense(ctx context.Context, expense *models.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return err
	}

	expense.ID = uuid.NewString()
	expense.CreatedAt = time.Now().UTC()
	s.expenses[expense.ID] = *expense
	return nil
}

// UpdateExpense merges the non-nil update fields onto the owned record.
func (s *MemoryStorage) UpdateExpense(ctx context.Context, id, userID string, update models.ExpenseUpdate) (*models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return nil, err
	}

	existing, err := s.getOwnedExpense(id, userID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		existing.Title = *update.Title
	}
	if update.Amount != nil {
		existing.Amount = *update.Amount
	}
	if update.Category != nil {
		existing.Category = *update.Category
	}
	if update.Description != nil {
		existing.Description = *update.Description
	}
	if update.Tags != nil {
		existing.Tags = *update.Tags
	}
	if update.Date != nil {
		existing.Date = *update.Date
	}

	s.expenses[id] = *existing
	return existing, nil
}

// DeleteExpense removes the owned record, reporting whether anything was removed.
func (s *MemoryStorage) DeleteExpense(ctx context.Context, id, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return false, err
	}

	if _, err := s.getOwnedExpense(id, userID); err != nil {
		return false, nil
	}
	delete(s.expenses, id)
	return true, nil
}

// GetBudgets returns the user's budgets sorted by month descending.
func (s *MemoryStorage) GetBudgets(ctx context.Context, userID string) ([]models.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard(); err != nil {
		return nil, err
	}

	budgets := make([]models.Budget, 0)
	for _, budget := range s.budgets {
		if budget.UserID == userID {
			budgets = append(budgets, budget)
		}
	}

	sort.SliceStable(budgets, func(i, j int) bool {
		return budgets[j].Month.Before(budgets[i].Month)
	})
	return budgets, nil
}

// GetBudget returns the budget only when it exists and is owned by userID.
func (s *MemoryStorage) GetBudget(ctx context.Context, id, userID string) (*models.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.guard(); err != nil {
		return nil, err
	}
	return s.getOwnedBudget(id, userID)
}

func (s *MemoryStorage) getOwnedBudget(id, userID string) (*models.Budget, error) {
	budget, ok := s.budgets[id]
	if !ok || budget.UserID != userID {
		return nil, ErrNotFound
	}
	b := budget
	return &b, nil
}

// CreateBudget assigns a fresh id and creation timestamp and stores the budget.
func (s *MemoryStorage) CreateBudget(ctx context.Context, budget *models.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return err
	}

	budget.ID = uuid.NewString()
	budget.CreatedAt = time.Now().UTC()
	s.budgets[budget.ID] = *budget
	return nil
}

// UpdateBudget merges the non-nil update fields onto the owned record.
func (s *MemoryStorage) UpdateBudget(ctx context.Context, id, userID string, update models.BudgetUpdate) (*models.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return nil, err
	}

	existing, err := s.getOwnedBudget(id, userID)
	if err != nil {
		return nil, err
	}

	if update.Category != nil {
		existing.Category = *update.Category
	}
	if update.Amount != nil {
		existing.Amount = *update.Amount
	}
	if update.Month != nil {
		existing.Month = *update.Month
	}

	s.budgets[id] = *existing
	return existing, nil
}

// DeleteBudget removes the owned record, reporting whether anything was removed.
func (s *MemoryStorage) DeleteBudget(ctx context.Context, id, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.guard(); err != nil {
		return false, err
	}

	if _, err := s.getOwnedBudget(id, userID); err != nil {
		return false, nil
	}
	delete(s.budgets, id)
	return true, nil
}
