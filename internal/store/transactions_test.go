package store_test

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tally-finance/backend/internal/models"
	"github.com/tally-finance/backend/internal/store"
	"github.com/tally-finance/backend/internal/types"
)

func (suite *TestSuiteStandard) TestPutTransactionIsIdempotent() {
	id := uuid.New()
	entry := models.Transaction{
		DefaultModel: models.DefaultModel{ID: id},
		UserID:       suite.userID,
		Amount:       decimal.NewFromInt(50),
		Kind:         types.Expense,
		Date:         types.NewDate(2024, 4, 1),
		Note:         "first",
	}
	suite.Require().NoError(suite.store.PutTransaction(suite.ctx, &entry))

	again := entry
	again.Note = "second"
	suite.Require().NoError(suite.store.PutTransaction(suite.ctx, &again))

	entries, err := suite.store.Transactions(suite.ctx, suite.userID, store.TransactionFilter{})
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Assert().Equal(id, entries[0].ID)
	suite.Assert().Equal("second", entries[0].Note)
}

func (suite *TestSuiteStandard) TestTransactionFilters() {
	food := uuid.New()
	suite.createTestTransaction(models.Transaction{Amount: decimal.NewFromInt(10), CategoryID: food, Date: types.NewDate(2024, 4, 30)})
	suite.createTestTransaction(models.Transaction{Amount: decimal.NewFromInt(20), CategoryID: food, Date: types.NewDate(2024, 5, 1)})
	suite.createTestTransaction(models.Transaction{Amount: decimal.NewFromInt(30), Date: types.NewDate(2024, 5, 31)})
	suite.createTestTransaction(models.Transaction{Amount: decimal.NewFromInt(40), Kind: types.Income, Date: types.NewDate(2024, 5, 15)})

	may, err := suite.store.Transactions(suite.ctx, suite.userID, store.TransactionFilter{Month: types.NewMonth(2024, 5)})
	suite.Require().NoError(err)
	suite.Assert().Len(may, 3)
	suite.Assert().Equal(types.NewDate(2024, 5, 31), may[0].Date, "newest first")

	foodOnly, err := suite.store.Transactions(suite.ctx, suite.userID, store.TransactionFilter{CategoryID: food})
	suite.Require().NoError(err)
	suite.Assert().Len(foodOnly, 2)

	sums, err := suite.store.ExpensesByCategory(suite.ctx, suite.userID, types.NewMonth(2024, 5))
	suite.Require().NoError(err)
	suite.Assert().True(sums[food].Equal(decimal.NewFromInt(20)))
	suite.Assert().True(sums[uuid.Nil].Equal(decimal.NewFromInt(30)))
	suite.Assert().Len(sums, 2, "income is not an expense")
}

func (suite *TestSuiteStandard) TestExpensesByCategoryWithoutTransfers() {
	transferID := uuid.New()
	suite.createTestTransaction(models.Transaction{Amount: decimal.NewFromInt(1050), Date: types.NewDate(2024, 5, 3), TransferID: &transferID})
	suite.createTestTransaction(models.Transaction{Amount: decimal.NewFromInt(1050), Kind: types.Income, Date: types.NewDate(2024, 5, 3), TransferID: &transferID})
	suite.createTestTransaction(models.Transaction{Amount: decimal.NewFromInt(25), Date: types.NewDate(2024, 5, 4)})

	sums, err := suite.store.ExpensesByCategory(suite.ctx, suite.userID, types.NewMonth(2024, 5))
	suite.Require().NoError(err)
	suite.Assert().True(sums[uuid.Nil].Equal(decimal.NewFromInt(25)), "transfers are not spending, got %s", sums[uuid.Nil])
}

func (suite *TestSuiteStandard) TestUpdateAndDeleteTransaction() {
	t := suite.createTestTransaction(models.Transaction{Amount: decimal.NewFromInt(10), Date: types.NewDate(2024, 1, 1)})

	t.Amount = decimal.NewFromInt(15)
	suite.Require().NoError(suite.store.UpdateTransaction(suite.ctx, &t))

	stored, err := suite.store.Transaction(suite.ctx, suite.userID, t.ID)
	suite.Require().NoError(err)
	suite.Assert().True(stored.Amount.Equal(decimal.NewFromInt(15)))

	other := t
	other.UserID = uuid.New()
	suite.Assert().ErrorIs(suite.store.UpdateTransaction(suite.ctx, &other), models.ErrResourceNotFound)

	suite.Require().NoError(suite.store.DeleteTransaction(suite.ctx, suite.userID, t.ID))
	suite.Assert().ErrorIs(suite.store.DeleteTransaction(suite.ctx, suite.userID, t.ID), models.ErrResourceNotFound)
}
