// Package schedule computes the occurrence dates of recurring schedules.
package schedule

import (
	"github.com/tally-finance/backend/internal/types"
)

// NextOccurrence returns the occurrence following date for the frequency.
//
// Monthly and yearly steps keep the day of month where it exists and clamp
// to the last day of the target month otherwise, so Jan 31 is followed by
// Feb 29 in leap years and Feb 28 in others.
func NextOccurrence(date types.Date, f types.Frequency) types.Date {
	switch f {
	case types.Daily:
		return date.AddDays(1)
	case types.Weekly:
		return date.AddDays(7)
	case types.Monthly:
		return date.AddMonthsClamped(1)
	case types.Yearly:
		return date.AddYearsClamped(1)
	}

	// Unknown frequencies are rejected when schedules are saved. Advancing
	// by a day keeps the result strictly later.
	return date.AddDays(1)
}

// Occurrences returns the consecutive occurrences starting at from that are
// not after until, at most limit of them. A limit of 0 or less does not
// bound the result. The result is empty if from is after until.
func Occurrences(from, until types.Date, f types.Frequency, limit int) []types.Date {
	var dates []types.Date
	for d := from; !d.After(until) && (limit <= 0 || len(dates) < limit); d = NextOccurrence(d, f) {
		dates = append(dates, d)
	}
	return dates
}
