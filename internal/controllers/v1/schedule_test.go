package v1_test

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	v1 "github.com/tally-finance/backend/internal/controllers/v1"
	"github.com/tally-finance/backend/internal/httputil"
	"github.com/tally-finance/backend/internal/models"
	"github.com/tally-finance/backend/internal/types"
)

func (suite *TestSuiteStandard) createTestSchedule(s v1.ScheduleEditable, expectedStatus ...int) v1.ScheduleResponse {
	if s.Name == "" {
		s.Name = uuid.NewString()
	}
	if s.Amount.IsZero() {
		s.Amount = decimal.NewFromInt(100)
	}
	if s.Kind == "" {
		s.Kind = types.Expense
	}
	if s.Frequency == "" {
		s.Frequency = types.Monthly
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	var response v1.ScheduleResponse
	suite.do(http.MethodPost, suite.url("/schedules"), s, &response, expectedStatus...)
	return response
}

func (suite *TestSuiteStandard) TestSchedulesCreate() {
	start := types.NewDate(2024, 4, 15)
	r := suite.createTestSchedule(v1.ScheduleEditable{Name: "Rent", StartDate: start, Amount: decimal.NewFromInt(1200)})

	suite.Require().NotNil(r.Data)
	suite.Assert().Equal("Rent", r.Data.Name)
	suite.Assert().True(r.Data.Amount.Equal(decimal.NewFromInt(1200)))
	suite.Assert().True(r.Data.NextDueDate.Equal(start), "next due date must start at the start date")
	suite.Require().NotNil(r.Data.Active)
	suite.Assert().True(*r.Data.Active, "schedules are active by default")
	suite.Assert().Equal(suite.url("/schedules/%s", r.Data.ID), r.Data.Links.Self)
}

func (suite *TestSuiteStandard) TestSchedulesCreateInvalid() {
	tests := []struct {
		name     string
		body     any
		errorMsg string
	}{
		{"Empty body", "", httputil.ErrRequestBodyEmpty.Error()},
		{"Broken JSON", `{ "name": 2`, httputil.ErrInvalidBody.Error()},
		{"No name", map[string]any{"name": " ", "amount": "10", "kind": "expense", "frequency": "monthly", "startDate": "2024-04-01"}, models.ErrScheduleNameEmpty.Error()},
		{"Negative amount", map[string]any{"name": "Rent", "amount": "-10", "kind": "expense", "frequency": "monthly", "startDate": "2024-04-01"}, models.ErrScheduleAmountNotPositive.Error()},
		{"No start date", map[string]any{"name": "Rent", "amount": "10", "kind": "expense", "frequency": "monthly"}, models.ErrScheduleStartDateMissing.Error()},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			var response v1.ScheduleResponse
			suite.do(http.MethodPost, suite.url("/schedules"), tt.body, &response, http.StatusBadRequest)

			suite.Require().NotNil(response.Error)
			suite.Assert().Contains(*response.Error, tt.errorMsg)
		})
	}
}

func (suite *TestSuiteStandard) TestSchedulesGetFilter() {
	suite.createTestSchedule(v1.ScheduleEditable{Name: "Rent", StartDate: types.NewDate(2024, 4, 1)})
	suite.createTestSchedule(v1.ScheduleEditable{Name: "Gym membership", StartDate: types.NewDate(2024, 4, 1), Frequency: types.Weekly})

	inactive := false
	suite.createTestSchedule(v1.ScheduleEditable{Name: "Old rent", StartDate: types.NewDate(2024, 4, 1), Active: &inactive})

	tests := []struct {
		query string
		len   int
	}{
		{"", 3},
		{"name=*rent", 2},
		{"name=RENT", 1},
		{"active=false", 1},
		{"active=true&frequency=weekly", 1},
		{"frequency=yearly", 0},
	}

	for _, tt := range tests {
		suite.Run(tt.query, func() {
			var response v1.ScheduleListResponse
			suite.do(http.MethodGet, suite.url("/schedules?%s", tt.query), nil, &response)
			suite.Assert().Len(response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestSchedulesGetSingle() {
	s := suite.createTestSchedule(v1.ScheduleEditable{StartDate: types.NewDate(2024, 4, 1)})

	var response v1.ScheduleResponse
	suite.do(http.MethodGet, suite.url("/schedules/%s", s.Data.ID), nil, &response)
	suite.Assert().Equal(s.Data.ID, response.Data.ID)

	suite.do(http.MethodGet, suite.url("/schedules/%s", uuid.New()), nil, nil, http.StatusNotFound)
	suite.do(http.MethodGet, suite.url("/schedules/not-a-uuid"), nil, nil, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestSchedulesUpdate() {
	s := suite.createTestSchedule(v1.ScheduleEditable{Name: "Rent", StartDate: types.NewDate(2024, 4, 1), Note: "Landlord"})

	var response v1.ScheduleResponse
	suite.do(http.MethodPatch, suite.url("/schedules/%s", s.Data.ID), map[string]any{"name": "Apartment", "active": false}, &response)

	suite.Assert().Equal("Apartment", response.Data.Name)
	suite.Assert().Equal("Landlord", response.Data.Note, "fields not in the body must keep their value")
	suite.Assert().False(*response.Data.Active)
	suite.Assert().Equal(s.Data.CreatedAt.Unix(), response.Data.CreatedAt.Unix())

	suite.do(http.MethodPatch, suite.url("/schedules/%s", s.Data.ID), map[string]any{"amount": "0"}, nil, http.StatusBadRequest)
	suite.do(http.MethodPatch, suite.url("/schedules/%s", uuid.New()), map[string]any{"name": "x"}, nil, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestSchedulesDelete() {
	s := suite.createTestSchedule(v1.ScheduleEditable{StartDate: types.NewDate(2024, 4, 1)})

	suite.do(http.MethodDelete, suite.url("/schedules/%s", s.Data.ID), nil, nil, http.StatusNoContent)
	suite.do(http.MethodGet, suite.url("/schedules/%s", s.Data.ID), nil, nil, http.StatusNotFound)
	suite.do(http.MethodDelete, suite.url("/schedules/%s", s.Data.ID), nil, nil, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestSchedulesDBClosed() {
	suite.CloseDB()

	var response v1.ScheduleListResponse
	suite.do(http.MethodGet, suite.url("/schedules"), nil, &response, http.StatusInternalServerError)
	suite.Assert().Contains(*response.Error, models.ErrGeneral.Error())
}
