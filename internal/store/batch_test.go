package store_test

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/tally-finance/backend/internal/models"
	"github.com/tally-finance/backend/internal/store"
	"github.com/tally-finance/backend/internal/types"
)

func (suite *TestSuiteStandard) TestBatchRollsBack() {
	goal := models.Goal{UserID: suite.userID, Name: "Bike", TargetAmount: decimal.NewFromInt(500)}
	suite.Require().NoError(suite.store.CreateGoal(suite.ctx, &goal))

	errAbort := errors.New("abort")
	err := suite.store.Batch(suite.ctx, suite.userID, func(b *store.Batch) error {
		if err := b.CreateTransaction(&models.Transaction{Amount: decimal.NewFromInt(100), Kind: types.Expense}); err != nil {
			return err
		}
		if _, err := b.AddToGoal(goal.ID, decimal.NewFromInt(100)); err != nil {
			return err
		}
		return errAbort
	})
	suite.Assert().ErrorIs(err, errAbort)

	entries, err := suite.store.Transactions(suite.ctx, suite.userID, store.TransactionFilter{})
	suite.Require().NoError(err)
	suite.Assert().Len(entries, 0)

	stored, err := suite.store.Goal(suite.ctx, suite.userID, goal.ID)
	suite.Require().NoError(err)
	suite.Assert().True(stored.SavedAmount.IsZero())
}

func (suite *TestSuiteStandard) TestBatchCommitsAndPublishes() {
	goal := models.Goal{UserID: suite.userID, Name: "Bike", TargetAmount: decimal.NewFromInt(500)}
	suite.Require().NoError(suite.store.CreateGoal(suite.ctx, &goal))

	changes, cancel := suite.store.Hub().Subscribe(suite.userID, store.Goals)
	defer cancel()

	err := suite.store.Batch(suite.ctx, suite.userID, func(b *store.Batch) error {
		_, err := b.AddToGoal(goal.ID, decimal.NewFromFloat(120.5))
		return err
	})
	suite.Require().NoError(err)

	stored, err := suite.store.Goal(suite.ctx, suite.userID, goal.ID)
	suite.Require().NoError(err)
	suite.Assert().True(stored.SavedAmount.Equal(decimal.NewFromFloat(120.5)))
	suite.Assert().Equal(store.Goals, (<-changes).Collection)
}
