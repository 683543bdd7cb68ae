package v1_test

import (
	"net/http"

	"github.com/shopspring/decimal"
	v1 "github.com/tally-finance/backend/internal/controllers/v1"
	"github.com/tally-finance/backend/internal/models"
	"github.com/tally-finance/backend/internal/reminder"
	"github.com/tally-finance/backend/internal/types"
)

func (suite *TestSuiteStandard) TestUpcomingBills() {
	rent := suite.createTestSchedule(v1.ScheduleEditable{Name: "Rent", StartDate: types.NewDate(2024, 3, 1), Amount: decimal.NewFromInt(1200)})
	phone := suite.createTestSchedule(v1.ScheduleEditable{Name: "Phone", StartDate: types.NewDate(2024, 3, 31)})
	suite.createTestSchedule(v1.ScheduleEditable{Name: "Insurance", StartDate: types.NewDate(2024, 5, 1), Frequency: types.Yearly})

	var response v1.UpcomingBillListResponse
	suite.do(http.MethodGet, suite.url("/upcoming-bills"), nil, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal(phone.Data.ID, response.Data[0].Schedule.ID)
	suite.Assert().Equal(3, response.Data[0].DaysUntilDue)
	suite.Assert().Equal(reminder.StatusPending, response.Data[0].Status)

	// Rent was due on the first and has been materialized
	suite.Assert().Equal(rent.Data.ID, response.Data[1].Schedule.ID)
	suite.Assert().True(response.Data[1].DueDate.Equal(types.NewDate(2024, 4, 1)))
	suite.Assert().Equal(4, response.Data[1].DaysUntilDue)

	var transactions v1.TransactionListResponse
	suite.do(http.MethodGet, suite.url("/transactions?schedule=%s", rent.Data.ID), nil, &transactions)
	suite.Require().Len(transactions.Data, 1)
	suite.Assert().True(transactions.Data[0].Date.Equal(types.NewDate(2024, 3, 1)))
	suite.Assert().True(transactions.Data[0].Amount.Equal(decimal.NewFromInt(1200)))
	suite.Require().NotNil(transactions.Data[0].ScheduleID)
	suite.Assert().Equal(rent.Data.ID, *transactions.Data[0].ScheduleID)
}

func (suite *TestSuiteStandard) TestUpcomingBillsNoLeadTimes() {
	suite.createTestSchedule(v1.ScheduleEditable{StartDate: types.NewDate(2024, 3, 29)})

	var response v1.UpcomingBillListResponse
	suite.do(http.MethodGet, suite.url("/upcoming-bills"), nil, &response)
	suite.Assert().Len(response.Data, 1)

	suite.do(http.MethodPatch, suite.url("/settings"), map[string]any{"billReminderDays": []int{}}, nil)

	suite.do(http.MethodGet, suite.url("/upcoming-bills"), nil, &response)
	suite.Assert().Len(response.Data, 0, "without lead times, no bill is upcoming")

	var sent v1.SentReminderListResponse
	suite.do(http.MethodPost, suite.url("/reminders/check"), nil, &sent)
	suite.Assert().Len(sent.Data, 0)
}

func (suite *TestSuiteStandard) TestCheckReminders() {
	phone := suite.createTestSchedule(v1.ScheduleEditable{Name: "Phone", StartDate: types.NewDate(2024, 3, 31)})
	suite.createTestSchedule(v1.ScheduleEditable{Name: "Rent", StartDate: types.NewDate(2024, 4, 2)})

	var sent v1.SentReminderListResponse
	suite.do(http.MethodPost, suite.url("/reminders/check"), nil, &sent)

	suite.Require().Len(sent.Data, 1)
	suite.Assert().Equal(phone.Data.ID, sent.Data[0].ScheduleID)
	suite.Assert().Equal(3, sent.Data[0].LeadDays)
	suite.Assert().Equal(suite.url("/schedules/%s", phone.Data.ID), sent.Data[0].Links.Schedule)

	// Every reminder is sent at most once
	suite.do(http.MethodPost, suite.url("/reminders/check"), nil, &sent)
	suite.Assert().Len(sent.Data, 0)

	var bills v1.UpcomingBillListResponse
	suite.do(http.MethodGet, suite.url("/upcoming-bills"), nil, &bills)
	suite.Require().Len(bills.Data, 2)
	suite.Assert().Equal(reminder.StatusReminded, bills.Data[0].Status)
	suite.Assert().Equal(reminder.StatusPending, bills.Data[1].Status)

	var notifications v1.NotificationListResponse
	suite.do(http.MethodGet, suite.url("/notifications"), nil, &notifications)
	suite.Require().Len(notifications.Data, 1)
	suite.Assert().Equal(models.NotificationBillReminder, notifications.Data[0].Kind)
	suite.Assert().Equal(phone.Data.ID, notifications.Data[0].ReferenceID)
	suite.Assert().Contains(notifications.Data[0].Message, "in 3 days")
}

func (suite *TestSuiteStandard) TestCheckRemindersDBClosed() {
	suite.CloseDB()

	var sent v1.SentReminderListResponse
	suite.do(http.MethodPost, suite.url("/reminders/check"), nil, &sent, http.StatusInternalServerError)
	suite.Require().NotNil(sent.Error)
}
