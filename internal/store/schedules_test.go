package store_test

import (
	"github.com/google/uuid"
	"github.com/tally-finance/backend/internal/models"
	"github.com/tally-finance/backend/internal/store"
	"github.com/tally-finance/backend/internal/types"
)

func (suite *TestSuiteStandard) TestCreateSchedulePublishesChange() {
	changes, cancel := suite.store.Hub().Subscribe(suite.userID, store.Schedules)
	defer cancel()

	s := suite.createTestSchedule(models.RecurringSchedule{Active: true})

	suite.Assert().Equal(s.StartDate, s.NextDueDate)
	suite.Assert().Equal(store.Change{UserID: suite.userID, Collection: store.Schedules}, <-changes)
}

func (suite *TestSuiteStandard) TestSchedulesAreUserScoped() {
	suite.createTestSchedule(models.RecurringSchedule{Name: "Mine"})
	other := suite.createTestSchedule(models.RecurringSchedule{UserID: uuid.New(), Name: "Theirs"})

	schedules, err := suite.store.Schedules(suite.ctx, suite.userID)
	suite.Require().NoError(err)
	suite.Require().Len(schedules, 1)
	suite.Assert().Equal("Mine", schedules[0].Name)

	_, err = suite.store.Schedule(suite.ctx, suite.userID, other.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDueSchedules() {
	suite.createTestSchedule(models.RecurringSchedule{Name: "Due", Active: true, StartDate: types.NewDate(2024, 3, 1)})
	suite.createTestSchedule(models.RecurringSchedule{Name: "Later", Active: true, StartDate: types.NewDate(2024, 3, 2)})
	suite.createTestSchedule(models.RecurringSchedule{Name: "Paused", Active: false, StartDate: types.NewDate(2024, 2, 1)})

	due, err := suite.store.DueSchedules(suite.ctx, suite.userID, types.NewDate(2024, 3, 1))
	suite.Require().NoError(err)
	suite.Require().Len(due, 1)
	suite.Assert().Equal("Due", due[0].Name)
}

func (suite *TestSuiteStandard) TestAdvanceScheduleIsConditional() {
	s := suite.createTestSchedule(models.RecurringSchedule{Active: true, StartDate: types.NewDate(2024, 1, 15)})

	ok, err := suite.store.AdvanceSchedule(suite.ctx, suite.userID, s.ID, types.NewDate(2024, 1, 15), types.NewDate(2024, 2, 15))
	suite.Require().NoError(err)
	suite.Assert().True(ok)

	// A second advance from the stale anchor has no effect
	ok, err = suite.store.AdvanceSchedule(suite.ctx, suite.userID, s.ID, types.NewDate(2024, 1, 15), types.NewDate(2024, 2, 15))
	suite.Require().NoError(err)
	suite.Assert().False(ok)

	stored, err := suite.store.Schedule(suite.ctx, suite.userID, s.ID)
	suite.Require().NoError(err)
	suite.Assert().Equal(types.NewDate(2024, 2, 15), stored.NextDueDate)
}

func (suite *TestSuiteStandard) TestUpdateScheduleKeepsAnchor() {
	s := suite.createTestSchedule(models.RecurringSchedule{Active: true, StartDate: types.NewDate(2024, 1, 15)})
	_, err := suite.store.AdvanceSchedule(suite.ctx, suite.userID, s.ID, s.NextDueDate, types.NewDate(2024, 2, 15))
	suite.Require().NoError(err)

	// Edits never move the anchor back
	s.Name = "New rent"
	s.NextDueDate = types.NewDate(2023, 1, 1)
	suite.Require().NoError(suite.store.UpdateSchedule(suite.ctx, &s))

	stored, err := suite.store.Schedule(suite.ctx, suite.userID, s.ID)
	suite.Require().NoError(err)
	suite.Assert().Equal("New rent", stored.Name)
	suite.Assert().Equal(types.NewDate(2024, 2, 15), stored.NextDueDate)

	// Moving the start date past the anchor moves the anchor with it
	s.StartDate = types.NewDate(2024, 6, 1)
	suite.Require().NoError(suite.store.UpdateSchedule(suite.ctx, &s))

	stored, err = suite.store.Schedule(suite.ctx, suite.userID, s.ID)
	suite.Require().NoError(err)
	suite.Assert().Equal(types.NewDate(2024, 6, 1), stored.NextDueDate)
}

func (suite *TestSuiteStandard) TestDeleteScheduleKeepsEntries() {
	s := suite.createTestSchedule(models.RecurringSchedule{Active: true})
	suite.createTestTransaction(models.Transaction{Amount: s.Amount, Date: s.StartDate, ScheduleID: &s.ID})

	created, err := suite.store.RecordReminder(suite.ctx, suite.userID, models.ReminderKey{ScheduleID: s.ID, DueDate: s.StartDate, LeadDays: 3})
	suite.Require().NoError(err)
	suite.Require().True(created)

	suite.Require().NoError(suite.store.DeleteSchedule(suite.ctx, suite.userID, s.ID))

	entries, err := suite.store.Transactions(suite.ctx, suite.userID, store.TransactionFilter{ScheduleID: s.ID})
	suite.Require().NoError(err)
	suite.Assert().Len(entries, 1, "materialized entries survive the schedule")

	reminders, err := suite.store.Reminders(suite.ctx, suite.userID)
	suite.Require().NoError(err)
	suite.Assert().Len(reminders, 0)

	err = suite.store.DeleteSchedule(suite.ctx, suite.userID, s.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
