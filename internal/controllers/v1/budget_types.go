package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tally-finance/backend/internal/budgetalert"
	"github.com/tally-finance/backend/internal/models"
	"github.com/tally-finance/backend/internal/types"
)

type BudgetEditable struct {
	Name       string          `json:"name" example:"Groceries" default:""`                                                               // Name of the budget
	Amount     decimal.Decimal `json:"amount" example:"400" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Monthly limit
	CategoryID *uuid.UUID      `json:"categoryId" example:"0b5f7a4c-6b55-4a3e-8e0a-2f1c0d9e7b21"`                                         // Category the budget limits. Empty for all categories
}

// model returns the database resource for the editable fields
func (editable BudgetEditable) model(userID uuid.UUID) models.Budget {
	return models.Budget{
		UserID:     userID,
		Name:       editable.Name,
		Amount:     editable.Amount,
		CategoryID: editable.CategoryID,
	}
}

func budgetEditable(model models.Budget) BudgetEditable {
	return BudgetEditable{
		Name:       model.Name,
		Amount:     model.Amount,
		CategoryID: model.CategoryID,
	}
}

type BudgetLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/users/1e777d24-3f5b-4c43-8000-04f65f895578/budgets/5b7c1b9e-13c4-4d1f-9d46-0c2f5b5c2a11"` // The budget itself
	Status string `json:"status" example:"https://example.com/api/v1/users/1e777d24-3f5b-4c43-8000-04f65f895578/budget-status"`                              // Spending of all budgets in the current month
}

// Budget is the API v1 representation of a Budget.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := userURL(c)

	return Budget{
		DefaultModel:   model.DefaultModel,
		BudgetEditable: budgetEditable(model),
		Links: BudgetLinks{
			Self:   fmt.Sprintf("%s/budgets/%s", url, model.ID),
			Status: fmt.Sprintf("%s/budget-status", url),
		},
	}
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                               // List of budgets
	Error *string  `json:"error" example:"the budget amount must be positive"` // The error, if any occurred
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                               // Data for the budget
	Error *string `json:"error" example:"the budget amount must be positive"` // The error, if any occurred
}

// BudgetStatus is the spending of a budget in a month.
type BudgetStatus struct {
	Budget     Budget            `json:"budget"`                                            // The budget
	Month      types.Month       `json:"month" example:"2024-03"`                           // The month the spending is for
	Spent      decimal.Decimal   `json:"spent" example:"352.17"`                            // Expenses that count against the budget
	Percentage decimal.Decimal   `json:"percentage" example:"88.04"`                        // Spent as a percentage of the budget amount
	Level      models.AlertLevel `json:"level" example:"warning" enums:",warning,exceeded"` // Alert level of the spending, empty below 80 percent
}

func newBudgetStatuses(c *gin.Context, statuses []budgetalert.Status) []BudgetStatus {
	data := make([]BudgetStatus, 0, len(statuses))
	for _, s := range statuses {
		data = append(data, BudgetStatus{
			Budget:     newBudget(c, s.Budget),
			Month:      s.Period,
			Spent:      s.Spent,
			Percentage: s.Percentage.Round(2),
			Level:      s.Level,
		})
	}
	return data
}

type BudgetStatusListResponse struct {
	Data  []BudgetStatus `json:"data"`                                 // Status of every budget
	Error *string        `json:"error" example:"invalid month format"` // The error, if any occurred
}

// BudgetAlert is an alert that was sent for a budget.
type BudgetAlert struct {
	models.DefaultModel
	BudgetID   uuid.UUID         `json:"budgetId" example:"5b7c1b9e-13c4-4d1f-9d46-0c2f5b5c2a11"` // The budget the alert was sent for
	Level      models.AlertLevel `json:"level" example:"exceeded" enums:"warning,exceeded"`       // Level of the alert
	Month      types.Month       `json:"month" example:"2024-03"`                                 // The month the alert was sent for
	Percentage decimal.Decimal   `json:"percentage" example:"104.5"`                              // Spending ratio when the alert was sent
	Links      struct {
		Budget string `json:"budget" example:"https://example.com/api/v1/users/1e777d24-3f5b-4c43-8000-04f65f895578/budgets/5b7c1b9e-13c4-4d1f-9d46-0c2f5b5c2a11"` // The budget
	} `json:"links"`
}

func newBudgetAlerts(c *gin.Context, alerts []models.BudgetAlert) []BudgetAlert {
	url := userURL(c)

	data := make([]BudgetAlert, 0, len(alerts))
	for _, a := range alerts {
		alert := BudgetAlert{
			DefaultModel: a.DefaultModel,
			BudgetID:     a.BudgetID,
			Level:        a.Level,
			Month:        a.Period,
			Percentage:   a.Percentage.Round(2),
		}
		alert.Links.Budget = fmt.Sprintf("%s/budgets/%s", url, a.BudgetID)
		data = append(data, alert)
	}
	return data
}

type BudgetAlertListResponse struct {
	Data  []BudgetAlert `json:"data"`                                 // List of alerts
	Error *string       `json:"error" example:"invalid month format"` // The error, if any occurred
}

type MonthQuery struct {
	Month string `form:"month"` // Month in YYYY-MM format, the current month if empty
}
