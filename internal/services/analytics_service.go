package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"wealthwatch/internal/dto"
	"wealthwatch/internal/models"
	"wealthwatch/internal/storage"
	"wealthwatch/internal/types"
)

// AnalyticsService computes the dashboard and analytics aggregates. Every
// request recomputes from the user's full expense set; nothing is persisted
// or incrementally maintained, so correctness depends only on the scan.
type AnalyticsService struct {
	store storage.Storage
	now   func() time.Time
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(store storage.Storage) AnalyticsServiceInterface {
	return &AnalyticsService{
		store: store,
		now:   time.Now,
	}
}

// SummaryStats loads the user's expenses and computes the dashboard aggregate.
func (s *AnalyticsService) SummaryStats(ctx context.Context, userID string) (*dto.SummaryStats, error) {
	expenses, err := s.store.GetExpenses(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats := ComputeSummaryStats(expenses, s.now())
	return &stats, nil
}

// AnalyticsSummary loads the user's expenses and computes the analytics aggregate.
func (s *AnalyticsService) AnalyticsSummary(ctx context.Context, userID string) (*dto.AnalyticsSummary, error) {
	expenses, err := s.store.GetExpenses(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := ComputeAnalyticsSummary(expenses)
	return &summary, nil
}

// BudgetComparisons loads the user's budgets and expenses and computes the
// per-budget actual spend.
func (s *AnalyticsService) BudgetComparisons(ctx context.Context, userID string) ([]dto.BudgetComparison, error) {
	budgets, err := s.store.GetBudgets(ctx, userID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.store.GetExpenses(ctx, userID)
	if err != nil {
		return nil, err
	}
	return CompareBudgets(budgets, expenses), nil
}

// ComputeSummaryStats reduces an expense slice into the dashboard aggregate.
//
// averageDaily divides the current month's spend by the number of days in
// that calendar month, not by the days elapsed so far, which under-reports
// the daily pace mid-month. Kept as the product defines it.
func ComputeSummaryStats(expenses []models.Expense, now time.Time) dto.SummaryStats {
	totalSpent := decimal.Zero
	monthlySpent := decimal.Zero
	currentMonth := types.MonthOf(now)

	breakdownOrder := make([]string, 0)
	breakdown := make(map[string]decimal.Decimal)

	for _, expense := range expenses {
		totalSpent = totalSpent.Add(expense.Amount)

		if currentMonth.Contains(expense.Date.UTC()) {
			monthlySpent = monthlySpent.Add(expense.Amount)
		}

		if _, seen := breakdown[expense.Category]; !seen {
			breakdownOrder = append(breakdownOrder, expense.Category)
		}
		breakdown[expense.Category] = breakdown[expense.Category].Add(expense.Amount)
	}

	daysInMonth := decimal.NewFromInt(int64(daysIn(now)))
	averageDaily := monthlySpent.Div(daysInMonth)

	categoryBreakdown := make([]dto.CategoryAmount, 0, len(breakdownOrder))
	for _, category := range breakdownOrder {
		categoryBreakdown = append(categoryBreakdown, dto.CategoryAmount{
			Category: category,
			Amount:   breakdown[category],
		})
	}

	return dto.SummaryStats{
		TotalSpent:        totalSpent,
		MonthlySpent:      monthlySpent,
		TotalExpenses:     len(expenses),
		AverageDaily:      averageDaily,
		CategoryBreakdown: categoryBreakdown,
	}
}

// ComputeAnalyticsSummary reduces an expense slice into the analytics-page
// aggregate. The top category is the one with the largest total; ties go to
// the category encountered first. An empty set yields zero values and "N/A".
func ComputeAnalyticsSummary(expenses []models.Expense) dto.AnalyticsSummary {
	totalSpent := decimal.Zero
	totalsOrder := make([]string, 0)
	totals := make(map[string]decimal.Decimal)

	for _, expense := range expenses {
		totalSpent = totalSpent.Add(expense.Amount)
		if _, seen := totals[expense.Category]; !seen {
			totalsOrder = append(totalsOrder, expense.Category)
		}
		totals[expense.Category] = totals[expense.Category].Add(expense.Amount)
	}

	averageExpense := decimal.Zero
	if len(expenses) > 0 {
		averageExpense = totalSpent.Div(decimal.NewFromInt(int64(len(expenses))))
	}

	topCategory := "N/A"
	topAmount := decimal.Zero
	for _, category := range totalsOrder {
		if totals[category].GreaterThan(topAmount) || topCategory == "N/A" {
			topCategory = category
			topAmount = totals[category]
		}
	}

	return dto.AnalyticsSummary{
		TotalSpent:     totalSpent,
		AverageExpense: averageExpense,
		TopCategory:    topCategory,
	}
}

// CompareBudgets computes, for each budget, the sum of expense amounts whose
// category matches and whose date falls in the budget's calendar month and
// year. The day of month on either side is ignored.
func CompareBudgets(budgets []models.Budget, expenses []models.Expense) []dto.BudgetComparison {
	comparisons := make([]dto.BudgetComparison, 0, len(budgets))
	for _, budget := range budgets {
		spent := decimal.Zero
		for _, expense := range expenses {
			if expense.Category == budget.Category && budget.Month.Contains(expense.Date.UTC()) {
				spent = spent.Add(expense.Amount)
			}
		}
		comparisons = append(comparisons, dto.NewBudgetComparison(budget, spent))
	}
	return comparisons
}

// daysIn returns the number of days in t's calendar month.
func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
