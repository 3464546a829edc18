package storage

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"wealthwatch/internal/models"
	"wealthwatch/internal/types"
)

func TestMemoryStorage(t *testing.T) {
	suite.Run(t, new(MemoryStorageSuite))
}

type MemoryStorageSuite struct {
	suite.Suite
	ctx   context.Context
	store *MemoryStorage
}

func (s *MemoryStorageSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewMemoryStorage()
	s.Require().NoError(s.store.Connect(s.ctx))
}

func (s *MemoryStorageSuite) newUser() *models.User {
	user := &models.User{
		Email:    gofakeit.Email(),
		Password: "$2a$10$" + gofakeit.LetterN(53),
		Name:     gofakeit.Name(),
	}
	s.Require().NoError(s.store.CreateUser(s.ctx, user))
	return user
}

func (s *MemoryStorageSuite) newExpense(userID string, amount float64, date time.Time) *models.Expense {
	expense := &models.Expense{
		UserID:   userID,
		Title:    gofakeit.ProductName(),
		Amount:   decimal.NewFromFloat(amount),
		Category: models.CategoryFood,
		Date:     date,
	}
	s.Require().NoError(s.store.CreateExpense(s.ctx, expense))
	return expense
}

func (s *MemoryStorageSuite) TestNotConnected() {
	store := NewMemoryStorage()

	s.ErrorIs(store.Ping(s.ctx), ErrNotConnected)

	_, err := store.GetExpenses(s.ctx, "someone")
	s.ErrorIs(err, ErrNotConnected)

	err = store.CreateUser(s.ctx, &models.User{Email: gofakeit.Email()})
	s.ErrorIs(err, ErrNotConnected)
}

func (s *MemoryStorageSuite) TestCreateUserAssignsIdentity() {
	user := s.newUser()

	s.NotEmpty(user.ID)
	s.False(user.CreatedAt.IsZero())

	fetched, err := s.store.GetUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal(user.Email, fetched.Email)

	byEmail, err := s.store.GetUserByEmail(s.ctx, user.Email)
	s.Require().NoError(err)
	s.Equal(user.ID, byEmail.ID)
}

func (s *MemoryStorageSuite) TestCreateUserRejectsDuplicateEmail() {
	user := s.newUser()

	err := s.store.CreateUser(s.ctx, &models.User{
		Email: user.Email,
		Name:  gofakeit.Name(),
	})
	s.ErrorIs(err, ErrDuplicateEmail)
}

func (s *MemoryStorageSuite) TestGetExpensesSortedByDateDescending() {
	user := s.newUser()

	middle := s.newExpense(user.ID, 10, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC))
	oldest := s.newExpense(user.ID, 20, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	newest := s.newExpense(user.ID, 30, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC))

	expenses, err := s.store.GetExpenses(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Require().Len(expenses, 3)
	s.Equal(newest.ID, expenses[0].ID)
	s.Equal(middle.ID, expenses[1].ID)
	s.Equal(oldest.ID, expenses[2].ID)
}

func (s *MemoryStorageSuite) TestExpensesScopedToOwner() {
	owner := s.newUser()
	other := s.newUser()
	expense := s.newExpense(owner.ID, 42, time.Now().UTC())

	// Another user's id never reaches someone else's records.
	_, err := s.store.GetExpense(s.ctx, expense.ID, other.ID)
	s.ErrorIs(err, ErrNotFound)

	_, err = s.store.UpdateExpense(s.ctx, expense.ID, other.ID, models.ExpenseUpdate{})
	s.ErrorIs(err, ErrNotFound)

	deleted, err := s.store.DeleteExpense(s.ctx, expense.ID, other.ID)
	s.Require().NoError(err)
	s.False(deleted)

	expenses, err := s.store.GetExpenses(s.ctx, other.ID)
	s.Require().NoError(err)
	s.Empty(expenses)

	// The owner still sees the untouched record.
	kept, err := s.store.GetExpense(s.ctx, expense.ID, owner.ID)
	s.Require().NoError(err)
	s.Equal(expense.Title, kept.Title)
}

func (s *MemoryStorageSuite) TestUpdateExpensePreservesOmittedFields() {
	user := s.newUser()
	expense := &models.Expense{
		UserID:      user.ID,
		Title:       "Groceries",
		Amount:      decimal.NewFromInt(55),
		Category:    models.CategoryFood,
		Description: "weekly shop",
		Tags:        []string{"supermarket"},
		Date:        time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.store.CreateExpense(s.ctx, expense))

	newAmount := decimal.NewFromInt(60)
	updated, err := s.store.UpdateExpense(s.ctx, expense.ID, user.ID, models.ExpenseUpdate{
		Amount: &newAmount,
	})
	s.Require().NoError(err)

	s.True(updated.Amount.Equal(newAmount))
	s.Equal("Groceries", updated.Title)
	s.Equal("weekly shop", updated.Description)
	s.Equal([]string{"supermarket"}, updated.Tags)
	s.Equal(models.CategoryFood, updated.Category)
	s.True(updated.Date.Equal(expense.Date))
}

func (s *MemoryStorageSuite) TestDeleteExpenseIdempotent() {
	user := s.newUser()
	expense := s.newExpense(user.ID, 10, time.Now().UTC())

	deleted, err := s.store.DeleteExpense(s.ctx, expense.ID, user.ID)
	s.Require().NoError(err)
	s.True(deleted)

	deleted, err = s.store.DeleteExpense(s.ctx, expense.ID, user.ID)
	s.Require().NoError(err)
	s.False(deleted)
}

func (s *MemoryStorageSuite) TestGetBudgetsSortedByMonthDescending() {
	user := s.newUser()

	create := func(month types.Month) *models.Budget {
		budget := &models.Budget{
			UserID:   user.ID,
			Category: models.CategoryUtilities,
			Amount:   decimal.NewFromInt(100),
			Month:    month,
		}
		s.Require().NoError(s.store.CreateBudget(s.ctx, budget))
		return budget
	}

	february := create(types.NewMonth(2024, time.February))
	april := create(types.NewMonth(2024, time.April))
	january := create(types.NewMonth(2024, time.January))

	budgets, err := s.store.GetBudgets(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Require().Len(budgets, 3)
	s.Equal(april.ID, budgets[0].ID)
	s.Equal(february.ID, budgets[1].ID)
	s.Equal(january.ID, budgets[2].ID)
}

func (s *MemoryStorageSuite) TestBudgetUpdateAndScopedDelete() {
	owner := s.newUser()
	other := s.newUser()

	budget := &models.Budget{
		UserID:   owner.ID,
		Category: models.CategoryTransport,
		Amount:   decimal.NewFromInt(80),
		Month:    types.NewMonth(2024, time.March),
	}
	s.Require().NoError(s.store.CreateBudget(s.ctx, budget))

	newMonth := types.NewMonth(2024, time.May)
	updated, err := s.store.UpdateBudget(s.ctx, budget.ID, owner.ID, models.BudgetUpdate{
		Month: &newMonth,
	})
	s.Require().NoError(err)
	s.True(updated.Month.Equal(newMonth))
	s.Equal(models.CategoryTransport, updated.Category)
	s.True(updated.Amount.Equal(decimal.NewFromInt(80)))

	deleted, err := s.store.DeleteBudget(s.ctx, budget.ID, other.ID)
	s.Require().NoError(err)
	s.False(deleted)

	deleted, err = s.store.DeleteBudget(s.ctx, budget.ID, owner.ID)
	s.Require().NoError(err)
	s.True(deleted)
}
