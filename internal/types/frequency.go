package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrFrequencyInvalid = errors.New("frequency must be one of daily, weekly, monthly, yearly")
	ErrEntryKindInvalid = errors.New("kind must be one of income, expense")
)

// Frequency is how often a recurring schedule is due.
type Frequency string

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
	Yearly  Frequency = "yearly"
)

// Frequencies lists all supported frequencies.
var Frequencies = []Frequency{Daily, Weekly, Monthly, Yearly}

// Valid reports whether f is a supported frequency.
func (f Frequency) Valid() bool {
	switch f {
	case Daily, Weekly, Monthly, Yearly:
		return true
	}
	return false
}

// ParseFrequency normalizes and validates a frequency string.
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("%w, got %q", ErrFrequencyInvalid, s)
	}
	return f, nil
}

// EntryKind is the direction of a ledger entry.
type EntryKind string

const (
	Income  EntryKind = "income"
	Expense EntryKind = "expense"
)

// Valid reports whether k is a supported entry kind.
func (k EntryKind) Valid() bool {
	return k == Income || k == Expense
}
