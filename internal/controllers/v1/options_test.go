package v1_test

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	v1 "github.com/tally-finance/backend/internal/controllers/v1"
	"github.com/tally-finance/backend/internal/types"
)

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com/v1", "OPTIONS, GET"},
		{suite.url(""), "OPTIONS, GET, DELETE"},
		{suite.url("/schedules"), "OPTIONS, GET, POST"},
		{suite.url("/transactions"), "OPTIONS, GET, POST"},
		{suite.url("/upcoming-bills"), "OPTIONS, GET"},
		{suite.url("/reminders/check"), "OPTIONS, POST"},
		{suite.url("/budgets"), "OPTIONS, GET, POST"},
		{suite.url("/budget-status"), "OPTIONS, GET"},
		{suite.url("/budget-alerts"), "OPTIONS, GET"},
		{suite.url("/budget-alerts/check"), "OPTIONS, POST"},
		{suite.url("/settings"), "OPTIONS, GET, PATCH"},
		{suite.url("/notifications"), "OPTIONS, GET"},
		{suite.url("/notifications/%s", uuid.New()), "OPTIONS, PATCH"},
		{suite.url("/accounts"), "OPTIONS, GET, POST"},
		{suite.url("/categories"), "OPTIONS, GET, POST"},
		{suite.url("/goals"), "OPTIONS, GET, POST"},
		{suite.url("/transfers"), "OPTIONS, POST"},
	}

	for _, tt := range optionsHeaderTests {
		suite.Run(tt.path, func() {
			recorder := suite.request(http.MethodOptions, tt.path, "")

			suite.Assert().Equal(http.StatusNoContent, recorder.Code)
			suite.Assert().Equal(tt.response, recorder.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestOptionsHeaderDetail() {
	schedule := suite.createTestSchedule(v1.ScheduleEditable{StartDate: types.NewDate(2024, 4, 1)})
	transaction := suite.createTestTransaction(v1.TransactionEditable{})
	budget := suite.createTestBudget(v1.BudgetEditable{})
	account := suite.createTestAccount(v1.AccountEditable{})

	var goal v1.GoalResponse
	suite.do(http.MethodPost, suite.url("/goals"), v1.GoalEditable{Name: "Bike", TargetAmount: decimal.NewFromInt(800)}, &goal, http.StatusCreated)

	tests := []struct {
		path     string
		response string
	}{
		{suite.url("/schedules/%s", schedule.Data.ID), "OPTIONS, GET, PATCH, DELETE"},
		{suite.url("/transactions/%s", transaction.Data.ID), "OPTIONS, GET, PATCH, DELETE"},
		{suite.url("/budgets/%s", budget.Data.ID), "OPTIONS, GET, PATCH, DELETE"},
		{suite.url("/accounts/%s", account.Data.ID), "OPTIONS, GET"},
		{suite.url("/goals/%s", goal.Data.ID), "OPTIONS, GET"},
		{suite.url("/goals/%s/contributions", goal.Data.ID), "OPTIONS, POST"},
	}

	for _, tt := range tests {
		suite.Run(tt.path, func() {
			recorder := suite.request(http.MethodOptions, tt.path, "")

			suite.Assert().Equal(http.StatusNoContent, recorder.Code)
			suite.Assert().Equal(tt.response, recorder.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestOptionsDetailNotFound() {
	for _, resource := range []string{"schedules", "transactions", "budgets", "accounts", "goals"} {
		suite.Run(resource, func() {
			recorder := suite.request(http.MethodOptions, suite.url("/%s/%s", resource, uuid.New()), "")
			suite.Assert().Equal(http.StatusNotFound, recorder.Code)

			recorder = suite.request(http.MethodOptions, suite.url("/%s/not-a-uuid", resource), "")
			suite.Assert().Equal(http.StatusBadRequest, recorder.Code)
		})
	}
}
