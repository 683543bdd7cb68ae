package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tally-finance/backend/internal/schedule"
	"github.com/tally-finance/backend/internal/types"
)

func TestNextOccurrence(t *testing.T) {
	tests := []struct {
		name      string
		date      types.Date
		frequency types.Frequency
		want      types.Date
	}{
		{"Daily", types.NewDate(2024, 2, 28), types.Daily, types.NewDate(2024, 2, 29)},
		{"Daily year end", types.NewDate(2023, 12, 31), types.Daily, types.NewDate(2024, 1, 1)},
		{"Weekly keeps weekday", types.NewDate(2024, 2, 26), types.Weekly, types.NewDate(2024, 3, 4)},
		{"Monthly", types.NewDate(2024, 1, 15), types.Monthly, types.NewDate(2024, 2, 15)},
		{"Monthly Jan 31 leap year", types.NewDate(2024, 1, 31), types.Monthly, types.NewDate(2024, 2, 29)},
		{"Monthly Jan 31 non-leap year", types.NewDate(2023, 1, 31), types.Monthly, types.NewDate(2023, 2, 28)},
		{"Monthly to 30 day month", types.NewDate(2024, 3, 31), types.Monthly, types.NewDate(2024, 4, 30)},
		{"Monthly December", types.NewDate(2024, 12, 31), types.Monthly, types.NewDate(2025, 1, 31)},
		{"Yearly", types.NewDate(2024, 6, 1), types.Yearly, types.NewDate(2025, 6, 1)},
		{"Yearly Feb 29", types.NewDate(2024, 2, 29), types.Yearly, types.NewDate(2025, 2, 28)},
		{"Yearly Feb 28 to leap year", types.NewDate(2023, 2, 28), types.Yearly, types.NewDate(2024, 2, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, schedule.NextOccurrence(tt.date, tt.frequency))
		})
	}
}

// Applying NextOccurrence twice equals advancing by two periods, except
// across clamping boundaries where the result is still strictly later.
func TestNextOccurrenceComposes(t *testing.T) {
	start := types.NewDate(2023, 1, 1)

	for day := 0; day < 3*366; day++ {
		date := start.AddDays(day)

		for _, f := range types.Frequencies {
			once := schedule.NextOccurrence(date, f)
			twice := schedule.NextOccurrence(once, f)

			assert.True(t, once.After(date), "%s %s: %s is not after %s", f, date, once, date)
			assert.True(t, twice.After(once), "%s %s: %s is not after %s", f, date, twice, once)

			var two types.Date
			switch f {
			case types.Daily:
				two = date.AddDays(2)
			case types.Weekly:
				two = date.AddDays(14)
			case types.Monthly:
				two = date.AddMonthsClamped(2)
			case types.Yearly:
				two = date.AddYearsClamped(2)
			}

			if date.Day() <= 28 {
				assert.Equal(t, two, twice, "%s %s", f, date)
			}
		}
	}
}

func TestOccurrences(t *testing.T) {
	dates := schedule.Occurrences(types.NewDate(2024, 1, 31), types.NewDate(2024, 5, 1), types.Monthly, 0)

	assert.Equal(t, []types.Date{
		types.NewDate(2024, 1, 31),
		types.NewDate(2024, 2, 29),
		types.NewDate(2024, 3, 29),
		types.NewDate(2024, 4, 29),
	}, dates)

	assert.Empty(t, schedule.Occurrences(types.NewDate(2024, 2, 1), types.NewDate(2024, 1, 1), types.Daily, 0))
}

func TestOccurrencesLimit(t *testing.T) {
	dates := schedule.Occurrences(types.NewDate(2024, 1, 1), types.NewDate(2024, 12, 31), types.Weekly, 3)

	assert.Equal(t, []types.Date{
		types.NewDate(2024, 1, 1),
		types.NewDate(2024, 1, 8),
		types.NewDate(2024, 1, 15),
	}, dates)

	assert.Len(t, schedule.Occurrences(types.NewDate(2024, 1, 1), types.NewDate(2024, 1, 1), types.Daily, 1), 1)
}
