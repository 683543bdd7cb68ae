package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tally-finance/backend/internal/types"
	"gorm.io/gorm"
)

// Transaction is a ledger entry.
//
// Entries materialized from a recurring schedule have ScheduleID set and an
// ID derived from the schedule and the due date.
type Transaction struct {
	DefaultModel
	UserID      uuid.UUID       `gorm:"index"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Kind        types.EntryKind
	CategoryID  uuid.UUID
	SubCategory string
	Tags        []string   `gorm:"serializer:json"`
	AccountID   *uuid.UUID `gorm:"index"`
	Date        types.Date `gorm:"index"`
	Note        string
	ScheduleID  *uuid.UUID `gorm:"index"` // The schedule this entry was materialized from
	TransferID  *uuid.UUID                // Shared by both entries of an account transfer
	GoalID      *uuid.UUID                // The goal this entry funds
}

func (t Transaction) Self() string {
	return "Transaction"
}

// BeforeSave
//   - trims whitespace from string fields
//   - normalizes optional references
//   - defaults the date to today
//   - validates amount and kind
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Note = strings.TrimSpace(t.Note)
	t.SubCategory = strings.TrimSpace(t.SubCategory)
	t.AccountID = nilIfZero(t.AccountID)
	t.ScheduleID = nilIfZero(t.ScheduleID)
	t.TransferID = nilIfZero(t.TransferID)
	t.GoalID = nilIfZero(t.GoalID)

	if t.UserID == uuid.Nil {
		return ErrUserIDMissing
	}

	if t.Date.IsZero() {
		t.Date = types.DateOf(time.Now().In(time.UTC))
	}

	if !t.Amount.IsPositive() {
		return ErrTransactionAmountNotPositive
	}

	if !t.Kind.Valid() {
		return fmt.Errorf("%w, got %q", types.ErrEntryKindInvalid, t.Kind)
	}

	return nil
}

// Signed returns the amount with the sign of its direction:
// positive for income, negative for expenses.
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind == types.Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}
