package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tally-finance/backend/internal/types"
	ez_uuid "github.com/tally-finance/backend/internal/uuid"
	"gorm.io/gorm"
)

// Budget is a monthly spending limit.
//
// A budget without a category covers the expenses of all categories.
type Budget struct {
	DefaultModel
	UserID     uuid.UUID `gorm:"index"`
	Name       string
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CategoryID *uuid.UUID
}

func (b Budget) Self() string {
	return "Budget"
}

// AllCategories reports whether the budget covers all categories.
func (b Budget) AllCategories() bool {
	return b.CategoryID == nil
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.CategoryID = nilIfZero(b.CategoryID)

	if b.UserID == uuid.Nil {
		return ErrUserIDMissing
	}

	if !b.Amount.IsPositive() {
		return ErrBudgetAmountNotPositive
	}

	return nil
}

// AlertLevel is the severity of a budget alert.
type AlertLevel string

const (
	AlertNone     AlertLevel = ""
	AlertWarning  AlertLevel = "warning"
	AlertExceeded AlertLevel = "exceeded"
)

// BudgetAlert records that an alert of a level was sent for a budget in a period.
type BudgetAlert struct {
	DefaultModel
	UserID     uuid.UUID       `gorm:"index"`
	BudgetID   uuid.UUID       `gorm:"uniqueIndex:budget_alert_period"`
	Level      AlertLevel      `gorm:"uniqueIndex:budget_alert_period"`
	Period     types.Month     `gorm:"uniqueIndex:budget_alert_period"`
	Percentage decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Spending ratio when the alert was sent
}

func (a BudgetAlert) Self() string {
	return "Budget Alert"
}

func (a *BudgetAlert) BeforeSave(_ *gorm.DB) error {
	if a.Level != AlertWarning && a.Level != AlertExceeded {
		return ErrAlertLevelInvalid
	}
	return nil
}

// BudgetAlertID is the id of the alert record for the budget, level and period.
func BudgetAlertID(budgetID uuid.UUID, level AlertLevel, period types.Month) uuid.UUID {
	return ez_uuid.Derive("budget-alert", budgetID.String(), string(level), period.String())
}

// BudgetAlertKey identifies one alert: a level of a budget in a period.
type BudgetAlertKey struct {
	BudgetID uuid.UUID
	Level    AlertLevel
	Period   types.Month
}

func (k BudgetAlertKey) ID() uuid.UUID {
	return BudgetAlertID(k.BudgetID, k.Level, k.Period)
}
