// Package budgetalert evaluates the spending of budgets and sends each
// alert level at most once per budget and period.
package budgetalert

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tally-finance/backend/internal/models"
	"github.com/tally-finance/backend/internal/types"
)

var (
	WarningPercentage  = decimal.NewFromInt(80)
	ExceededPercentage = decimal.NewFromInt(100)
	hundred            = decimal.NewFromInt(100)
)

// Status is the spending of a budget in a period.
type Status struct {
	Budget     models.Budget
	Period     types.Month
	Spent      decimal.Decimal
	Percentage decimal.Decimal // Spent as a percentage of the budget amount
	Level      models.AlertLevel
}

// LevelFor returns the alert level for the percentage of the budget spent.
func LevelFor(percentage decimal.Decimal) models.AlertLevel {
	switch {
	case percentage.GreaterThanOrEqual(ExceededPercentage):
		return models.AlertExceeded
	case percentage.GreaterThanOrEqual(WarningPercentage):
		return models.AlertWarning
	}
	return models.AlertNone
}

// Spent returns the expenses that count against the budget. A budget without
// a category counts the expenses of all categories.
func Spent(b models.Budget, expensesByCategory map[uuid.UUID]decimal.Decimal) decimal.Decimal {
	if b.AllCategories() {
		total := decimal.Zero
		for _, amount := range expensesByCategory {
			total = total.Add(amount)
		}
		return total
	}

	return expensesByCategory[*b.CategoryID]
}

// Evaluate returns the status of every budget for the period.
func Evaluate(budgets []models.Budget, expensesByCategory map[uuid.UUID]decimal.Decimal, period types.Month) []Status {
	statuses := make([]Status, 0, len(budgets))

	for _, b := range budgets {
		spent := Spent(b, expensesByCategory)

		percentage := decimal.Zero
		if b.Amount.IsPositive() {
			percentage = spent.Div(b.Amount).Mul(hundred)
		}

		statuses = append(statuses, Status{
			Budget:     b,
			Period:     period,
			Spent:      spent,
			Percentage: percentage,
			Level:      LevelFor(percentage),
		})
	}

	return statuses
}

// Alerting returns the statuses with an alert level.
func Alerting(statuses []Status) []Status {
	alerting := []Status{}
	for _, s := range statuses {
		if s.Level != models.AlertNone {
			alerting = append(alerting, s)
		}
	}
	return alerting
}
