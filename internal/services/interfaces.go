package services

import (
	"context"
	"time"

	"wealthwatch/internal/dto"
	"wealthwatch/internal/models"
)

// TokenServiceInterface defines the contract for session token operations
type TokenServiceInterface interface {
	GenerateToken(userID string) (string, time.Time, error)
	ValidateToken(tokenString string) (*models.TokenClaims, error)
}

// PasswordServiceInterface defines the contract for password operations
type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// AuthServiceInterface defines the contract for authentication business logic
type AuthServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error)
	CurrentUser(ctx context.Context, userID string) (*models.User, error)
}

// ExpenseServiceInterface defines the contract for expense operations,
// all scoped to the owning user
type ExpenseServiceInterface interface {
	List(ctx context.Context, userID string) ([]models.Expense, error)
	Get(ctx context.Context, id, userID string) (*models.Expense, error)
	Create(ctx context.Context, userID string, req *dto.CreateExpenseRequest) (*models.Expense, error)
	Update(ctx context.Context, id, userID string, req *dto.UpdateExpenseRequest) (*models.Expense, error)
	Delete(ctx context.Context, id, userID string) (bool, error)
}

// BudgetServiceInterface defines the contract for budget operations,
// all scoped to the owning user
type BudgetServiceInterface interface {
	List(ctx context.Context, userID string) ([]models.Budget, error)
	Get(ctx context.Context, id, userID string) (*models.Budget, error)
	Create(ctx context.Context, userID string, req *dto.CreateBudgetRequest) (*models.Budget, error)
	Update(ctx context.Context, id, userID string, req *dto.UpdateBudgetRequest) (*models.Budget, error)
	Delete(ctx context.Context, id, userID string) (bool, error)
}

// AnalyticsServiceInterface defines the contract for the aggregation endpoints
type AnalyticsServiceInterface interface {
	SummaryStats(ctx context.Context, userID string) (*dto.SummaryStats, error)
	AnalyticsSummary(ctx context.Context, userID string) (*dto.AnalyticsSummary, error)
	BudgetComparisons(ctx context.Context, userID string) ([]dto.BudgetComparison, error)
}
