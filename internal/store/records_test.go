package store_test

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tally-finance/backend/internal/models"
	"github.com/tally-finance/backend/internal/types"
)

func (suite *TestSuiteStandard) TestRecordReminderOnce() {
	key := models.ReminderKey{ScheduleID: uuid.New(), DueDate: types.NewDate(2024, 3, 10), LeadDays: 3}

	sent, err := suite.store.HasSentReminder(suite.ctx, key)
	suite.Require().NoError(err)
	suite.Assert().False(sent)

	created, err := suite.store.RecordReminder(suite.ctx, suite.userID, key)
	suite.Require().NoError(err)
	suite.Assert().True(created)

	created, err = suite.store.RecordReminder(suite.ctx, suite.userID, key)
	suite.Require().NoError(err)
	suite.Assert().False(created, "a reminder is recorded at most once")

	sent, err = suite.store.HasSentReminder(suite.ctx, key)
	suite.Require().NoError(err)
	suite.Assert().True(sent)

	// Other lead times of the same occurrence are independent
	key.LeadDays = 1
	sent, err = suite.store.HasSentReminder(suite.ctx, key)
	suite.Require().NoError(err)
	suite.Assert().False(sent)
}

func (suite *TestSuiteStandard) TestForgetReminder() {
	key := models.ReminderKey{ScheduleID: uuid.New(), DueDate: types.NewDate(2024, 3, 10), LeadDays: 3}

	created, err := suite.store.RecordReminder(suite.ctx, suite.userID, key)
	suite.Require().NoError(err)
	suite.Require().True(created)

	suite.Assert().NoError(suite.store.ForgetReminder(suite.ctx, uuid.New(), key))
	sent, err := suite.store.HasSentReminder(suite.ctx, key)
	suite.Require().NoError(err)
	suite.Assert().True(sent, "records of other users are kept")

	suite.Require().NoError(suite.store.ForgetReminder(suite.ctx, suite.userID, key))
	sent, err = suite.store.HasSentReminder(suite.ctx, key)
	suite.Require().NoError(err)
	suite.Assert().False(sent)

	created, err = suite.store.RecordReminder(suite.ctx, suite.userID, key)
	suite.Require().NoError(err)
	suite.Assert().True(created, "a released reminder can be claimed again")
}

func (suite *TestSuiteStandard) TestRecordBudgetAlertOnce() {
	budget := models.Budget{UserID: suite.userID, Name: "Food", Amount: decimal.NewFromInt(1000)}
	suite.Require().NoError(suite.store.CreateBudget(suite.ctx, &budget))

	period := types.NewMonth(2024, 5)
	alert := models.BudgetAlert{UserID: suite.userID, BudgetID: budget.ID, Level: models.AlertWarning, Period: period}

	created, err := suite.store.RecordBudgetAlert(suite.ctx, &alert)
	suite.Require().NoError(err)
	suite.Assert().True(created)

	duplicate := models.BudgetAlert{UserID: suite.userID, BudgetID: budget.ID, Level: models.AlertWarning, Period: period}
	created, err = suite.store.RecordBudgetAlert(suite.ctx, &duplicate)
	suite.Require().NoError(err)
	suite.Assert().False(created)

	sent, err := suite.store.HasSentBudgetAlert(suite.ctx, models.BudgetAlertKey{BudgetID: budget.ID, Level: models.AlertWarning, Period: period})
	suite.Require().NoError(err)
	suite.Assert().True(sent)

	sent, err = suite.store.HasSentBudgetAlert(suite.ctx, models.BudgetAlertKey{BudgetID: budget.ID, Level: models.AlertWarning, Period: period.AddDate(0, 1)})
	suite.Require().NoError(err)
	suite.Assert().False(sent, "alerts reset in every period")

	alerts, err := suite.store.BudgetAlerts(suite.ctx, suite.userID, period)
	suite.Require().NoError(err)
	suite.Assert().Len(alerts, 1)

	suite.Require().NoError(suite.store.DeleteBudget(suite.ctx, suite.userID, budget.ID))
	alerts, err = suite.store.BudgetAlerts(suite.ctx, suite.userID, period)
	suite.Require().NoError(err)
	suite.Assert().Len(alerts, 0)
}

func (suite *TestSuiteStandard) TestSettingsDefaults() {
	defaults := models.Settings{BillReminderDays: []int{1, 3, 7}, Locale: "en", Currency: "USD"}

	settings, err := suite.store.Settings(suite.ctx, suite.userID, defaults)
	suite.Require().NoError(err)
	suite.Assert().Equal([]int{1, 3, 7}, settings.BillReminderDays)
	suite.Assert().Equal(suite.userID, settings.UserID)

	settings.BillReminderDays = []int{2}
	settings.Currency = "eur"
	suite.Require().NoError(suite.store.SaveSettings(suite.ctx, &settings))

	settings.BillReminderDays = []int{5, 2}
	suite.Require().NoError(suite.store.SaveSettings(suite.ctx, &settings))

	stored, err := suite.store.Settings(suite.ctx, suite.userID, defaults)
	suite.Require().NoError(err)
	suite.Assert().Equal([]int{2, 5}, stored.BillReminderDays)
	suite.Assert().Equal("EUR", stored.Currency)
	suite.Assert().Equal("en", stored.Locale)

	stored.BillReminderDays = []int{}
	suite.Require().NoError(suite.store.SaveSettings(suite.ctx, &stored))

	stored, err = suite.store.Settings(suite.ctx, suite.userID, defaults)
	suite.Require().NoError(err)
	suite.Assert().NotNil(stored.BillReminderDays)
	suite.Assert().Empty(stored.BillReminderDays, "an empty list must not fall back to the defaults")
}

func (suite *TestSuiteStandard) TestNotifications() {
	n := models.Notification{UserID: suite.userID, Kind: models.NotificationBillReminder, Title: "Rent", Message: "Rent is due in 3 days"}
	suite.Require().NoError(suite.store.AddNotification(suite.ctx, &n))

	unread, err := suite.store.Notifications(suite.ctx, suite.userID, true)
	suite.Require().NoError(err)
	suite.Assert().Len(unread, 1)

	updated, err := suite.store.MarkNotificationRead(suite.ctx, suite.userID, n.ID, true)
	suite.Require().NoError(err)
	suite.Assert().True(updated.Read)

	unread, err = suite.store.Notifications(suite.ctx, suite.userID, true)
	suite.Require().NoError(err)
	suite.Assert().Len(unread, 0)

	_, err = suite.store.MarkNotificationRead(suite.ctx, uuid.New(), n.ID, true)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestUsersAndDeleteUserData() {
	suite.createTestSchedule(models.RecurringSchedule{})
	budgetOwner := uuid.New()
	suite.Require().NoError(suite.store.CreateBudget(suite.ctx, &models.Budget{UserID: budgetOwner, Amount: decimal.NewFromInt(10)}))

	users, err := suite.store.Users(suite.ctx)
	suite.Require().NoError(err)
	suite.Assert().ElementsMatch(users, []uuid.UUID{suite.userID, budgetOwner})

	suite.Require().NoError(suite.store.DeleteUserData(suite.ctx, suite.userID))

	users, err = suite.store.Users(suite.ctx)
	suite.Require().NoError(err)
	suite.Assert().Equal([]uuid.UUID{budgetOwner}, users)
}
