package dto

import (
	"github.com/shopspring/decimal"

	"wealthwatch/internal/models"
	"wealthwatch/internal/types"
)

// CreateExpenseRequest contains the fields for a new expense.
// Date is optional and defaults to the creation time. Amount is a pointer so
// an omitted amount fails required while an explicit 0 is accepted.
type CreateExpenseRequest struct {
	Title       string           `json:"title" validate:"required,min=1,max=200"`
	Amount      *decimal.Decimal `json:"amount" validate:"required,gte=0"`
	Category    string           `json:"category" validate:"required,expense_category"`
	Description string           `json:"description" validate:"omitempty,max=1000"`
	Tags        []string         `json:"tags" validate:"omitempty,dive,min=1,max=50"`
	Date        types.Date       `json:"date"`
}

// UpdateExpenseRequest contains a partial update; absent fields leave the
// stored record untouched.
type UpdateExpenseRequest struct {
	Title       *string          `json:"title" validate:"omitempty,min=1,max=200"`
	Amount      *decimal.Decimal `json:"amount" validate:"omitempty,gte=0"`
	Category    *string          `json:"category" validate:"omitempty,expense_category"`
	Description *string          `json:"description" validate:"omitempty,max=1000"`
	Tags        *[]string        `json:"tags" validate:"omitempty,dive,min=1,max=50"`
	Date        *types.Date      `json:"date"`
}

// ToUpdate converts the request into the storage layer's update shape.
func (r *UpdateExpenseRequest) ToUpdate() models.ExpenseUpdate {
	update := models.ExpenseUpdate{
		Title:       r.Title,
		Amount:      r.Amount,
		Category:    r.Category,
		Description: r.Description,
		Tags:        r.Tags,
	}
	if r.Date != nil {
		date := r.Date.Time()
		update.Date = &date
	}
	return update
}
