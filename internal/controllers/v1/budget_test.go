package v1_test

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	v1 "github.com/tally-finance/backend/internal/controllers/v1"
	"github.com/tally-finance/backend/internal/models"
	"github.com/tally-finance/backend/internal/types"
)

func (suite *TestSuiteStandard) createTestBudget(b v1.BudgetEditable, expectedStatus ...int) v1.BudgetResponse {
	if b.Amount.IsZero() {
		b.Amount = decimal.NewFromInt(100)
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	var response v1.BudgetResponse
	suite.do(http.MethodPost, suite.url("/budgets"), b, &response, expectedStatus...)
	return response
}

func (suite *TestSuiteStandard) TestBudgetsCRUD() {
	food := uuid.New()
	b := suite.createTestBudget(v1.BudgetEditable{Name: "Food", CategoryID: &food})
	suite.Require().NotNil(b.Data)
	suite.Assert().Equal(food, *b.Data.CategoryID)

	var list v1.BudgetListResponse
	suite.do(http.MethodGet, suite.url("/budgets"), nil, &list)
	suite.Assert().Len(list.Data, 1)

	var response v1.BudgetResponse
	suite.do(http.MethodPatch, suite.url("/budgets/%s", b.Data.ID), map[string]any{"amount": "250"}, &response)
	suite.Assert().True(response.Data.Amount.Equal(decimal.NewFromInt(250)))
	suite.Assert().Equal("Food", response.Data.Name)
	suite.Assert().Equal(food, *response.Data.CategoryID)

	suite.do(http.MethodPatch, suite.url("/budgets/%s", b.Data.ID), map[string]any{"categoryId": nil}, &response)
	suite.Assert().Nil(response.Data.CategoryID, "a budget without category covers all categories")

	suite.do(http.MethodPatch, suite.url("/budgets/%s", b.Data.ID), map[string]any{"amount": "0"}, &response, http.StatusBadRequest)
	suite.Assert().Contains(*response.Error, models.ErrBudgetAmountNotPositive.Error())

	suite.do(http.MethodDelete, suite.url("/budgets/%s", b.Data.ID), nil, nil, http.StatusNoContent)
	suite.do(http.MethodGet, suite.url("/budgets/%s", b.Data.ID), nil, nil, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetStatus() {
	food := uuid.New()
	b := suite.createTestBudget(v1.BudgetEditable{Name: "Food", CategoryID: &food})
	all := suite.createTestBudget(v1.BudgetEditable{Name: "Everything", Amount: decimal.NewFromInt(1000)})

	suite.createTestTransaction(v1.TransactionEditable{CategoryID: food, Amount: decimal.NewFromInt(85), Date: types.NewDate(2024, 3, 5)})
	suite.createTestTransaction(v1.TransactionEditable{CategoryID: uuid.New(), Amount: decimal.NewFromInt(15), Date: types.NewDate(2024, 3, 6)})
	suite.createTestTransaction(v1.TransactionEditable{CategoryID: food, Amount: decimal.NewFromInt(120), Date: types.NewDate(2024, 2, 6)})
	suite.createTestTransaction(v1.TransactionEditable{CategoryID: food, Kind: types.Income, Amount: decimal.NewFromInt(500), Date: types.NewDate(2024, 3, 7)})

	var response v1.BudgetStatusListResponse
	suite.do(http.MethodGet, suite.url("/budget-status"), nil, &response)
	suite.Require().Len(response.Data, 2)

	statuses := make(map[uuid.UUID]v1.BudgetStatus)
	for _, s := range response.Data {
		statuses[s.Budget.ID] = s
	}

	suite.Assert().True(statuses[b.Data.ID].Spent.Equal(decimal.NewFromInt(85)))
	suite.Assert().Equal(models.AlertWarning, statuses[b.Data.ID].Level)
	suite.Assert().True(statuses[b.Data.ID].Month.Equal(types.NewMonth(2024, 3)))
	suite.Assert().True(statuses[all.Data.ID].Spent.Equal(decimal.NewFromInt(100)))
	suite.Assert().Equal(models.AlertNone, statuses[all.Data.ID].Level)

	suite.do(http.MethodGet, suite.url("/budget-status?month=2024-02"), nil, &response)
	for _, s := range response.Data {
		if s.Budget.ID == b.Data.ID {
			suite.Assert().Equal(models.AlertExceeded, s.Level)
			suite.Assert().True(s.Percentage.Equal(decimal.NewFromInt(120)))
		}
	}

	suite.do(http.MethodGet, suite.url("/budget-status?month=03-2024"), nil, &response, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCheckBudgetAlerts() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})
	b := suite.createTestBudget(v1.BudgetEditable{CategoryID: &category.Data.ID})
	suite.createTestTransaction(v1.TransactionEditable{CategoryID: category.Data.ID, Amount: decimal.NewFromInt(90), Date: types.NewDate(2024, 3, 5)})

	var alerts v1.BudgetAlertListResponse
	suite.do(http.MethodPost, suite.url("/budget-alerts/check"), nil, &alerts)
	suite.Require().Len(alerts.Data, 1)
	suite.Assert().Equal(b.Data.ID, alerts.Data[0].BudgetID)
	suite.Assert().Equal(models.AlertWarning, alerts.Data[0].Level)

	// The warning is not sent twice
	suite.do(http.MethodPost, suite.url("/budget-alerts/check"), nil, &alerts)
	suite.Assert().Len(alerts.Data, 0)

	// Exceeding the budget sends the next level
	suite.createTestTransaction(v1.TransactionEditable{CategoryID: category.Data.ID, Amount: decimal.NewFromInt(20), Date: types.NewDate(2024, 3, 6)})
	suite.do(http.MethodPost, suite.url("/budget-alerts/check"), nil, &alerts)
	suite.Require().Len(alerts.Data, 1)
	suite.Assert().Equal(models.AlertExceeded, alerts.Data[0].Level)

	suite.do(http.MethodGet, suite.url("/budget-alerts"), nil, &alerts)
	suite.Assert().Len(alerts.Data, 2)

	suite.do(http.MethodGet, suite.url("/budget-alerts?month=2024-02"), nil, &alerts)
	suite.Assert().Len(alerts.Data, 0)

	var notifications v1.NotificationListResponse
	suite.do(http.MethodGet, suite.url("/notifications"), nil, &notifications)
	suite.Require().Len(notifications.Data, 2)
	suite.Assert().Equal(models.NotificationBudgetExceeded, notifications.Data[0].Kind)
	suite.Assert().Equal("Budget exceeded: Groceries", notifications.Data[0].Title)
}

func (suite *TestSuiteStandard) TestBudgetStatusIgnoresTransfers() {
	all := suite.createTestBudget(v1.BudgetEditable{Name: "Everything", Amount: decimal.NewFromInt(1000)})
	checking := suite.createTestAccount(v1.AccountEditable{Name: "Checking", InitialBalance: decimal.NewFromInt(2000)})
	savings := suite.createTestAccount(v1.AccountEditable{Name: "Savings"})

	suite.do(http.MethodPost, suite.url("/transfers"), v1.TransferEditable{
		FromAccountID: checking.Data.ID,
		ToAccountID:   savings.Data.ID,
		Amount:        decimal.NewFromInt(1050),
	}, nil, http.StatusCreated)

	var response v1.BudgetStatusListResponse
	suite.do(http.MethodGet, suite.url("/budget-status"), nil, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(all.Data.ID, response.Data[0].Budget.ID)
	suite.Assert().True(response.Data[0].Spent.IsZero(), "moving money between accounts is not spending")
	suite.Assert().Equal(models.AlertNone, response.Data[0].Level)

	var alerts v1.BudgetAlertListResponse
	suite.do(http.MethodPost, suite.url("/budget-alerts/check"), nil, &alerts)
	suite.Assert().Len(alerts.Data, 0)
}
