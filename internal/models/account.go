package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account is a place money is held in, e.g. a bank account or cash.
type Account struct {
	DefaultModel
	UserID         uuid.UUID `gorm:"uniqueIndex:account_name_user"`
	Name           string    `gorm:"uniqueIndex:account_name_user"`
	Note           string
	InitialBalance decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Archived       bool
}

func (a Account) Self() string {
	return "Account"
}

func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Note = strings.TrimSpace(a.Note)

	if a.UserID == uuid.Nil {
		return ErrUserIDMissing
	}

	if a.Name == "" {
		return ErrNameEmpty
	}

	return nil
}

// Balance returns the balance of the account after the given entries.
// Entries for other accounts are ignored.
func (a Account) Balance(entries []Transaction) decimal.Decimal {
	balance := a.InitialBalance
	for _, t := range entries {
		if t.AccountID == nil || *t.AccountID != a.ID {
			continue
		}
		balance = balance.Add(t.Signed())
	}
	return balance
}
