package dto

import (
	"github.com/shopspring/decimal"

	"wealthwatch/internal/models"
	"wealthwatch/internal/types"
)

// CreateBudgetRequest contains the fields for a new monthly budget.
// Month accepts a full date or timestamp; only year and month are kept.
// Amount is a pointer so an omitted amount fails required while an explicit
// 0 is accepted.
type CreateBudgetRequest struct {
	Category string           `json:"category" validate:"required,expense_category"`
	Amount   *decimal.Decimal `json:"amount" validate:"required,gte=0"`
	Month    types.Month      `json:"month" validate:"required"`
}

// UpdateBudgetRequest contains a partial update; absent fields leave the
// stored record untouched.
type UpdateBudgetRequest struct {
	Category *string          `json:"category" validate:"omitempty,expense_category"`
	Amount   *decimal.Decimal `json:"amount" validate:"omitempty,gte=0"`
	Month    *types.Month     `json:"month"`
}

// ToUpdate converts the request into the storage layer's update shape.
func (r *UpdateBudgetRequest) ToUpdate() models.BudgetUpdate {
	return models.BudgetUpdate{
		Category: r.Category,
		Amount:   r.Amount,
		Month:    r.Month,
	}
}
