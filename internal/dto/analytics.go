package dto

import (
	"github.com/shopspring/decimal"

	"wealthwatch/internal/models"
	"wealthwatch/internal/types"
)

// CategoryAmount is one entry of the category breakdown.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// SummaryStats is the dashboard aggregate over a user's full expense set.
type SummaryStats struct {
	TotalSpent        decimal.Decimal  `json:"totalSpent"`
	MonthlySpent      decimal.Decimal  `json:"monthlySpent"`
	TotalExpenses     int              `json:"totalExpenses"`
	AverageDaily      decimal.Decimal  `json:"averageDaily"`
	CategoryBreakdown []CategoryAmount `json:"categoryBreakdown"`
}

// AnalyticsSummary is the analytics-page aggregate.
type AnalyticsSummary struct {
	TotalSpent     decimal.Decimal `json:"totalSpent"`
	AverageExpense decimal.Decimal `json:"averageExpense"`
	TopCategory    string          `json:"topCategory"`
}

// BudgetComparison reports actual spend against one budget's allocation for
// its month. Spent sums expenses matching the budget's category whose date
// falls in the same calendar month and year; the day of month is ignored.
type BudgetComparison struct {
	BudgetID   string          `json:"budgetId"`
	Category   string          `json:"category"`
	Month      types.Month     `json:"month"`
	Budgeted   decimal.Decimal `json:"budgeted"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	OverBudget bool            `json:"overBudget"`
}

// NewBudgetComparison builds a comparison from a budget and its computed spend.
func NewBudgetComparison(budget models.Budget, spent decimal.Decimal) BudgetComparison {
	return BudgetComparison{
		BudgetID:   budget.ID,
		Category:   budget.Category,
		Month:      budget.Month,
		Budgeted:   budget.Amount,
		Spent:      spent,
		Remaining:  budget.Amount.Sub(spent),
		OverBudget: spent.GreaterThan(budget.Amount),
	}
}
