package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tally-finance/backend/internal/types"
	"gorm.io/gorm"
)

// Goal is a savings target. SavedAmount grows with every funding.
type Goal struct {
	DefaultModel
	UserID       uuid.UUID `gorm:"index"`
	Name         string
	Note         string
	TargetAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	SavedAmount  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	TargetDate   types.Date
	Archived     bool
}

func (g Goal) Self() string {
	return "Goal"
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Note = strings.TrimSpace(g.Note)

	if g.UserID == uuid.Nil {
		return ErrUserIDMissing
	}

	if g.Name == "" {
		return ErrNameEmpty
	}

	if !g.TargetAmount.IsPositive() {
		return ErrGoalAmountNotPositive
	}

	return nil
}

// Reached reports whether the saved amount covers the target.
func (g Goal) Reached() bool {
	return g.SavedAmount.GreaterThanOrEqual(g.TargetAmount)
}
