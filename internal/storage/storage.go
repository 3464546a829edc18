// Package storage defines the persistence contract for WealthWatch and its
// two interchangeable backends: an in-memory store for tests and development,
// and a MongoDB document store for durable deployments.
package storage

import (
	"context"
	"errors"
	"fmt"

	"wealthwatch/internal/config"
	"wealthwatch/internal/models"
)

var (
	// ErrNotFound is returned when a record is absent or owned by a
	// different user. The two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned by CreateUser when the email is taken.
	ErrDuplicateEmail = errors.New("email already in use")

	// ErrNotConnected is returned when an operation is attempted before
	// Connect has completed.
	ErrNotConnected = errors.New("storage not connected, call Connect first")
)

// Storage is the persistence contract. Both backends must produce identical
// observable behavior for every operation.
//
// Create operations assign a fresh opaque identifier and creation timestamp
// to the passed record. List operations return expenses sorted by date
// descending and budgets sorted by month descending; tie order is undefined.
// Update operations merge only the non-nil fields of the update onto the
// existing record. Delete operations report false, not an error, when
// nothing was removed, so a second delete of the same id is a no-op.
type Storage interface {
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	Ping(ctx context.Context) error

	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error

	GetExpenses(ctx context.Context, userID string) ([]models.Expense, error)
	GetExpense(ctx context.Context, id, userID string) (*models.Expense, error)
	CreateExpense(ctx context.Context, expense *models.Expense) error
	UpdateExpense(ctx context.Context, id, userID string, update models.ExpenseUpdate) (*models.Expense, error)
	DeleteExpense(ctx context.Context, id, userID string) (bool, error)

	GetBudgets(ctx context.Context, userID string) ([]models.Budget, error)
	GetBudget(ctx context.Context, id, userID string) (*models.Budget, error)
	CreateBudget(ctx context.Context, budget *models.Budget) error
	UpdateBudget(ctx context.Context, id, userID string, update models.BudgetUpdate) (*models.Budget, error)
	DeleteBudget(ctx context.Context, id, userID string) (bool, error)
}

// New selects a backend from configuration. The returned Storage is not yet
// connected; the caller owns the Connect/Disconnect lifecycle.
func New(cfg *config.StorageConfig) (Storage, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return NewMemoryStorage(), nil
	case config.DriverMongo:
		return NewMongoStorage(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver: %q", cfg.Driver)
	}
}
