package types_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wealthwatch/internal/types"
)

func TestMonthString(t *testing.T) {
	assert.Equal(t, "2024-01", types.NewMonth(2024, time.January).String())
	assert.Equal(t, "1996-11", types.NewMonth(1996, time.November).String())
}

func TestMonthOf(t *testing.T) {
	instant := time.Date(2024, 3, 17, 22, 14, 5, 0, time.UTC)
	assert.True(t, types.MonthOf(instant).Equal(types.NewMonth(2024, time.March)))
}

func TestParseMonth(t *testing.T) {
	month, err := types.ParseMonth("2024-06")
	require.NoError(t, err)
	assert.True(t, month.Equal(types.NewMonth(2024, time.June)))

	_, err = types.ParseMonth("June 2024")
	assert.Error(t, err)
}

func TestMonthUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected types.Month
	}{
		{"RFC 3339 timestamp", `"2024-01-15T10:30:00Z"`, types.NewMonth(2024, time.January)},
		{"short date", `"2024-02-29"`, types.NewMonth(2024, time.February)},
		{"day and time discarded", `"2023-12-31T23:59:59Z"`, types.NewMonth(2023, time.December)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var month types.Month
			err := json.Unmarshal([]byte(tt.input), &month)
			require.NoError(t, err)
			assert.True(t, month.Equal(tt.expected), "got %s, want %s", month, tt.expected)
		})
	}

	var month types.Month
	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &month))

	assert.NoError(t, json.Unmarshal([]byte(`null`), &month))
	assert.True(t, month.IsZero())
}

func TestMonthContains(t *testing.T) {
	month := types.NewMonth(2024, time.January)

	assert.True(t, month.Contains(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, month.Contains(time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, month.Contains(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, month.Contains(time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)))
}

func TestMonthBeforeAndAddDate(t *testing.T) {
	january := types.NewMonth(2024, time.January)
	march := types.NewMonth(2024, time.March)

	assert.True(t, january.Before(march))
	assert.False(t, march.Before(january))
	assert.True(t, january.AddDate(0, 2).Equal(march))
	assert.True(t, march.AddDate(-1, 0).Equal(types.NewMonth(2023, time.March)))
}

func TestDateUnmarshalJSON(t *testing.T) {
	var date types.Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-01-15"`), &date))
	assert.True(t, date.Time().Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))

	require.NoError(t, json.Unmarshal([]byte(`"2024-01-15T08:45:00Z"`), &date))
	assert.True(t, date.Time().Equal(time.Date(2024, 1, 15, 8, 45, 0, 0, time.UTC)))

	assert.Error(t, json.Unmarshal([]byte(`"15/01/2024"`), &date))
}
