package storage

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected decimal.Decimal
	}{
		{"canonical string survives exactly", "54.30", decimal.RequireFromString("54.30")},
		{"legacy float document", float64(19.99), decimal.NewFromFloat(19.99)},
		{"int32 document", int32(7), decimal.NewFromInt(7)},
		{"int64 document", int64(120), decimal.NewFromInt(120)},
		{"garbage normalizes to zero", "not-a-number", decimal.Zero},
		{"nil normalizes to zero", nil, decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeAmount(tt.input)
			assert.True(t, got.Equal(tt.expected), "got %s, want %s", got, tt.expected)
		})
	}
}

func TestNormalizeAmountRoundTripKeepsScale(t *testing.T) {
	// 0.1 is the classic float casualty; the string form must come back
	// bit-for-bit.
	amount := decimal.RequireFromString("0.1")
	assert.Equal(t, "0.1", normalizeAmount(amount.String()).String())
}

func TestNormalizeTime(t *testing.T) {
	instant := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	assert.True(t, normalizeTime(instant).Equal(instant))
	assert.True(t, normalizeTime(bson.NewDateTimeFromTime(instant)).Equal(instant))
	assert.True(t, normalizeTime("2024-01-15T10:30:00Z").Equal(instant))
	assert.True(t, normalizeTime("2024-01-15").Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, normalizeTime(42).IsZero())
	assert.True(t, normalizeTime(nil).IsZero())
}

func TestExpenseDocConversion(t *testing.T) {
	doc := expenseDoc{
		ID:       "e1",
		UserID:   "u1",
		Title:    "Groceries",
		Amount:   "54.30",
		Category: "Food",
		Date:     "2024-01-15",
	}

	expense := doc.toExpense()
	assert.Equal(t, "e1", expense.ID)
	assert.Equal(t, "54.30", expense.Amount.String())
	assert.Equal(t, 2024, expense.Date.Year())
}

func TestBudgetDocConversion(t *testing.T) {
	doc := budgetDoc{
		ID:       "b1",
		UserID:   "u1",
		Category: "Utilities",
		Amount:   float64(80),
		Month:    "2024-03-01",
	}

	budget := doc.toBudget()
	assert.True(t, budget.Amount.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, "2024-03", budget.Month.String())
}
