package models

import (
	"time"

	"github.com/shopspring/decimal"

	"wealthwatch/internal/types"
)

// Budget is a monthly allocation for one category, owned by exactly one user.
// Budgets and expenses are correlated only at read time, by category plus
// calendar month; there is no foreign key between them. Multiple budgets for
// the same (category, month) are permitted.
type Budget struct {
	ID        string          `json:"id" bson:"id"`
	UserID    string          `json:"userId" bson:"userId"`
	Category  string          `json:"category" bson:"category"`
	Amount    decimal.Decimal `json:"amount" bson:"amount"`
	Month     types.Month     `json:"month" bson:"month"`
	CreatedAt time.Time       `json:"createdAt" bson:"createdAt"`
}

// BudgetUpdate carries a partial update; nil fields are preserved unchanged.
type BudgetUpdate struct {
	Category *string
	Amount   *decimal.Decimal
	Month    *types.Month
}

// IsEmpty reports whether the update would change nothing.
func (u BudgetUpdate) IsEmpty() bool {
	return u.Category == nil && u.Amount == nil && u.Month == nil
}
