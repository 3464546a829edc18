package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single spending record owned by exactly one user.
// Ownership never transfers; every storage operation filters by UserID.
type Expense struct {
	ID          string          `json:"id" bson:"id"`
	UserID      string          `json:"userId" bson:"userId"`
	Title       string          `json:"title" bson:"title"`
	Amount      decimal.Decimal `json:"amount" bson:"amount"`
	Category    string          `json:"category" bson:"category"`
	Description string          `json:"description,omitempty" bson:"description,omitempty"`
	Tags        []string        `json:"tags,omitempty" bson:"tags,omitempty"`
	Date        time.Time       `json:"date" bson:"date"`
	CreatedAt   time.Time       `json:"createdAt" bson:"createdAt"`
}

// ExpenseUpdate carries a partial update. Nil fields are preserved unchanged;
// the storage layer merges the remainder onto the existing record.
type ExpenseUpdate struct {
	Title       *string
	Amount      *decimal.Decimal
	Category    *string
	Description *string
	Tags        *[]string
	Date        *time.Time
}

// IsEmpty reports whether the update would change nothing.
func (u ExpenseUpdate) IsEmpty() bool {
	return u.Title == nil && u.Amount == nil && u.Category == nil &&
		u.Description == nil && u.Tags == nil && u.Date == nil
}
