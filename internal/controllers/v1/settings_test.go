package v1_test

import (
	"net/http"

	v1 "github.com/tally-finance/backend/internal/controllers/v1"
	"github.com/tally-finance/backend/internal/models"
)

func (suite *TestSuiteStandard) TestSettingsDefaults() {
	var response v1.SettingsResponse
	suite.do(http.MethodGet, suite.url("/settings"), nil, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal([]int{1, 3, 7}, response.Data.BillReminderDays)
	suite.Assert().Equal("en", response.Data.Locale)
	suite.Assert().Equal("USD", response.Data.Currency)
	suite.Assert().Nil(response.Data.UpdatedAt)
}

func (suite *TestSuiteStandard) TestSettingsUpdate() {
	var response v1.SettingsResponse
	suite.do(http.MethodPatch, suite.url("/settings"), map[string]any{"billReminderDays": []int{7, 2, 2}, "currency": " eur "}, &response)

	suite.Assert().Equal([]int{2, 7}, response.Data.BillReminderDays)
	suite.Assert().Equal("EUR", response.Data.Currency)
	suite.Assert().Equal("en", response.Data.Locale, "fields not in the body keep their value")

	suite.do(http.MethodGet, suite.url("/settings"), nil, &response)
	suite.Assert().Equal([]int{2, 7}, response.Data.BillReminderDays)
	suite.Assert().NotNil(response.Data.UpdatedAt)

	suite.do(http.MethodPatch, suite.url("/settings"), map[string]any{"billReminderDays": []int{3, 0}}, &response, http.StatusBadRequest)
	suite.Assert().Contains(*response.Error, models.ErrReminderDaysNotPositive.Error())

	suite.do(http.MethodPatch, suite.url("/settings"), map[string]any{"billReminderDays": "soon"}, &response, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestSettingsChangeUpcomingBills() {
	suite.createTestSchedule(v1.ScheduleEditable{StartDate: suite.today().AddDays(10)})

	var bills v1.UpcomingBillListResponse
	suite.do(http.MethodGet, suite.url("/upcoming-bills"), nil, &bills)
	suite.Assert().Len(bills.Data, 0)

	suite.do(http.MethodPatch, suite.url("/settings"), map[string]any{"billReminderDays": []int{14}}, nil)

	suite.do(http.MethodGet, suite.url("/upcoming-bills"), nil, &bills)
	suite.Assert().Len(bills.Data, 1, "the snapshot must reflect the new lead times")
}
