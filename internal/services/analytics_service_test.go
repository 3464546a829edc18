package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wealthwatch/internal/models"
	"wealthwatch/internal/types"
)

func expense(category string, amount int64, date time.Time) models.Expense {
	return models.Expense{
		UserID:   "user-1",
		Category: category,
		Amount:   decimal.NewFromInt(amount),
		Date:     date,
	}
}

func TestComputeSummaryStats(t *testing.T) {
	// "now" pinned inside January 2024 so the 100 and 50 count as the
	// current month and the February expense does not.
	now := time.Date(2024, 1, 25, 12, 0, 0, 0, time.UTC)
	expenses := []models.Expense{
		expense(models.CategoryFood, 100, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)),
		expense(models.CategoryFood, 50, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)),
		expense(models.CategoryTransport, 30, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
	}

	stats := ComputeSummaryStats(expenses, now)

	assert.True(t, stats.TotalSpent.Equal(decimal.NewFromInt(180)), "totalSpent=%s", stats.TotalSpent)
	assert.True(t, stats.MonthlySpent.Equal(decimal.NewFromInt(150)), "monthlySpent=%s", stats.MonthlySpent)
	assert.Equal(t, 3, stats.TotalExpenses)

	// 150 over the 31 days of January.
	expectedDaily := decimal.NewFromInt(150).Div(decimal.NewFromInt(31))
	assert.True(t, stats.AverageDaily.Equal(expectedDaily), "averageDaily=%s", stats.AverageDaily)

	require.Len(t, stats.CategoryBreakdown, 2)
	assert.Equal(t, models.CategoryFood, stats.CategoryBreakdown[0].Category)
	assert.True(t, stats.CategoryBreakdown[0].Amount.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, models.CategoryTransport, stats.CategoryBreakdown[1].Category)
	assert.True(t, stats.CategoryBreakdown[1].Amount.Equal(decimal.NewFromInt(30)))
}

func TestComputeSummaryStatsEmpty(t *testing.T) {
	stats := ComputeSummaryStats(nil, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))

	assert.True(t, stats.TotalSpent.IsZero())
	assert.True(t, stats.MonthlySpent.IsZero())
	assert.True(t, stats.AverageDaily.IsZero())
	assert.Equal(t, 0, stats.TotalExpenses)
	assert.Empty(t, stats.CategoryBreakdown)
}

func TestComputeAnalyticsSummary(t *testing.T) {
	expenses := []models.Expense{
		expense(models.CategoryFood, 100, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)),
		expense(models.CategoryFood, 50, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)),
		expense(models.CategoryTransport, 30, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
	}

	summary := ComputeAnalyticsSummary(expenses)

	assert.True(t, summary.TotalSpent.Equal(decimal.NewFromInt(180)))
	assert.True(t, summary.AverageExpense.Equal(decimal.NewFromInt(60)), "averageExpense=%s", summary.AverageExpense)
	assert.Equal(t, models.CategoryFood, summary.TopCategory)
}

func TestComputeAnalyticsSummaryEmpty(t *testing.T) {
	summary := ComputeAnalyticsSummary(nil)

	assert.True(t, summary.TotalSpent.IsZero())
	assert.True(t, summary.AverageExpense.IsZero())
	assert.Equal(t, "N/A", summary.TopCategory)
}

func TestComputeAnalyticsSummaryTieGoesToFirstSeen(t *testing.T) {
	expenses := []models.Expense{
		expense(models.CategoryTransport, 75, time.Now()),
		expense(models.CategoryFood, 75, time.Now()),
	}

	summary := ComputeAnalyticsSummary(expenses)
	assert.Equal(t, models.CategoryTransport, summary.TopCategory)
}

func TestCompareBudgets(t *testing.T) {
	budget := models.Budget{
		ID:       "budget-1",
		UserID:   "user-1",
		Category: models.CategoryFood,
		Amount:   decimal.NewFromInt(120),
		Month:    types.NewMonth(2024, time.January),
	}
	expenses := []models.Expense{
		expense(models.CategoryFood, 100, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)),
		expense(models.CategoryFood, 50, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)),
		// Wrong month and wrong category never count.
		expense(models.CategoryFood, 40, time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)),
		expense(models.CategoryTransport, 30, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)),
	}

	comparisons := CompareBudgets([]models.Budget{budget}, expenses)
	require.Len(t, comparisons, 1)

	c := comparisons[0]
	assert.Equal(t, "budget-1", c.BudgetID)
	assert.True(t, c.Spent.Equal(decimal.NewFromInt(150)), "spent=%s", c.Spent)
	assert.True(t, c.Remaining.Equal(decimal.NewFromInt(-30)), "remaining=%s", c.Remaining)
	assert.True(t, c.OverBudget)
}

func TestCompareBudgetsExactlyAtLimitIsNotOver(t *testing.T) {
	budget := models.Budget{
		ID:       "budget-1",
		Category: models.CategoryUtilities,
		Amount:   decimal.NewFromInt(100),
		Month:    types.NewMonth(2024, time.March),
	}
	expenses := []models.Expense{
		expense(models.CategoryUtilities, 100, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)),
	}

	comparisons := CompareBudgets([]models.Budget{budget}, expenses)
	require.Len(t, comparisons, 1)
	assert.True(t, comparisons[0].Remaining.IsZero())
	assert.False(t, comparisons[0].OverBudget)
}
