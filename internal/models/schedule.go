package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tally-finance/backend/internal/types"
	"gorm.io/gorm"
)

// RecurringSchedule defines a ledger entry that repeats with a frequency.
//
// NextDueDate is the anchor for the next materialization. It starts at
// StartDate and only ever moves forward.
type RecurringSchedule struct {
	DefaultModel
	UserID      uuid.UUID       `gorm:"index"`
	Name        string          // Display name, e.g. "Rent"
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Kind        types.EntryKind // Kind of the materialized ledger entries
	CategoryID  uuid.UUID
	SubCategory string
	Tags        []string `gorm:"serializer:json"`
	AccountID   *uuid.UUID
	Note        string
	Frequency   types.Frequency
	StartDate   types.Date
	NextDueDate types.Date `gorm:"index"`
	Active      bool
}

func (s RecurringSchedule) Self() string {
	return "Recurring Schedule"
}

// BeforeSave
//   - trims whitespace from string fields
//   - validates amount, kind and frequency
//   - sets NextDueDate to StartDate for new schedules and keeps it on or after StartDate
func (s *RecurringSchedule) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	s.Note = strings.TrimSpace(s.Note)
	s.SubCategory = strings.TrimSpace(s.SubCategory)
	s.AccountID = nilIfZero(s.AccountID)

	if s.UserID == uuid.Nil {
		return ErrUserIDMissing
	}

	if s.Name == "" {
		return ErrScheduleNameEmpty
	}

	if !s.Amount.IsPositive() {
		return ErrScheduleAmountNotPositive
	}

	if !s.Kind.Valid() {
		return fmt.Errorf("%w, got %q", types.ErrEntryKindInvalid, s.Kind)
	}

	if !s.Frequency.Valid() {
		return fmt.Errorf("%w, got %q", types.ErrFrequencyInvalid, s.Frequency)
	}

	if s.StartDate.IsZero() {
		return ErrScheduleStartDateMissing
	}

	if s.NextDueDate.IsZero() || s.NextDueDate.Before(s.StartDate) {
		s.NextDueDate = s.StartDate
	}

	return nil
}

// IsDue reports whether the schedule has an occurrence to materialize on or before today.
func (s RecurringSchedule) IsDue(today types.Date) bool {
	return s.Active && !s.NextDueDate.After(today)
}
