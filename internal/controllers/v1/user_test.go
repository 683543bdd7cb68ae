package v1_test

import (
	"net/http"

	"github.com/shopspring/decimal"
	v1 "github.com/tally-finance/backend/internal/controllers/v1"
	"github.com/tally-finance/backend/internal/httputil"
	"github.com/tally-finance/backend/internal/types"
)

func (suite *TestSuiteStandard) TestGetV1() {
	var response v1.V1Response
	suite.do(http.MethodGet, "http://example.com/v1", nil, &response)
	suite.Assert().Equal("http://example.com/v1/users/{userId}", response.Links.User)
}

func (suite *TestSuiteStandard) TestGetUser() {
	var response v1.UserResponse
	suite.do(http.MethodGet, suite.url(""), nil, &response)

	suite.Assert().Equal(suite.url("/schedules"), response.Links.Schedules)
	suite.Assert().Equal(suite.url("/upcoming-bills"), response.Links.UpcomingBills)
	suite.Assert().Equal(suite.url("/settings"), response.Links.Settings)
}

func (suite *TestSuiteStandard) TestInvalidUser() {
	for _, path := range []string{
		"http://example.com/v1/users/not-a-uuid",
		"http://example.com/v1/users/not-a-uuid/schedules",
		"http://example.com/v1/users/00000000-0000-0000-0000-000000000000/budgets",
	} {
		suite.Run(path, func() {
			recorder := suite.request(http.MethodGet, path, nil)
			suite.Assert().Equal(http.StatusBadRequest, recorder.Code)
			suite.Assert().Contains(recorder.Body.String(), httputil.ErrInvalidUUID.Error())
		})
	}
}

func (suite *TestSuiteStandard) TestDeleteUser() {
	suite.createTestSchedule(v1.ScheduleEditable{StartDate: types.NewDate(2024, 3, 1)})
	suite.createTestBudget(v1.BudgetEditable{Amount: decimal.NewFromInt(10)})
	suite.createTestAccount(v1.AccountEditable{})

	// Materializes the schedule
	suite.do(http.MethodGet, suite.url("/upcoming-bills"), nil, nil)

	suite.do(http.MethodDelete, suite.url(""), nil, nil, http.StatusNoContent)

	var schedules v1.ScheduleListResponse
	suite.do(http.MethodGet, suite.url("/schedules"), nil, &schedules)
	suite.Assert().Len(schedules.Data, 0)

	var transactions v1.TransactionListResponse
	suite.do(http.MethodGet, suite.url("/transactions"), nil, &transactions)
	suite.Assert().Len(transactions.Data, 0)

	var accounts v1.AccountListResponse
	suite.do(http.MethodGet, suite.url("/accounts"), nil, &accounts)
	suite.Assert().Len(accounts.Data, 0)
}
