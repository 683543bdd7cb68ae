package v1_test

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	v1 "github.com/tally-finance/backend/internal/controllers/v1"
	"github.com/tally-finance/backend/internal/ledger"
	"github.com/tally-finance/backend/internal/models"
	"github.com/tally-finance/backend/internal/types"
)

func (suite *TestSuiteStandard) createTestAccount(a v1.AccountEditable, expectedStatus ...int) v1.AccountResponse {
	if a.Name == "" {
		a.Name = uuid.NewString()
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	var response v1.AccountResponse
	suite.do(http.MethodPost, suite.url("/accounts"), a, &response, expectedStatus...)
	return response
}

func (suite *TestSuiteStandard) createTestCategory(c v1.CategoryEditable, expectedStatus ...int) v1.CategoryResponse {
	if c.Name == "" {
		c.Name = uuid.NewString()
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	var response v1.CategoryResponse
	suite.do(http.MethodPost, suite.url("/categories"), c, &response, expectedStatus...)
	return response
}

func (suite *TestSuiteStandard) TestAccountsBalance() {
	a := suite.createTestAccount(v1.AccountEditable{Name: "Checking", InitialBalance: decimal.NewFromInt(100)})
	suite.Assert().True(a.Data.Balance.Equal(decimal.NewFromInt(100)))

	suite.createTestTransaction(v1.TransactionEditable{AccountID: &a.Data.ID, Amount: decimal.NewFromInt(30)})
	suite.createTestTransaction(v1.TransactionEditable{AccountID: &a.Data.ID, Amount: decimal.NewFromInt(50), Kind: types.Income})
	suite.createTestTransaction(v1.TransactionEditable{Amount: decimal.NewFromInt(1000)})

	var response v1.AccountResponse
	suite.do(http.MethodGet, suite.url("/accounts/%s", a.Data.ID), nil, &response)
	suite.Assert().True(response.Data.Balance.Equal(decimal.NewFromInt(120)), "balance is %s", response.Data.Balance)

	var list v1.AccountListResponse
	suite.do(http.MethodGet, suite.url("/accounts"), nil, &list)
	suite.Require().Len(list.Data, 1)
	suite.Assert().True(list.Data[0].Balance.Equal(decimal.NewFromInt(120)))

	suite.do(http.MethodGet, suite.url("/accounts/%s", uuid.New()), nil, nil, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAccountsNameUnique() {
	suite.createTestAccount(v1.AccountEditable{Name: "Savings"})

	r := suite.createTestAccount(v1.AccountEditable{Name: "Savings"}, http.StatusBadRequest)
	suite.Assert().Contains(*r.Error, models.ErrAccountNameNotUnique.Error())
}

func (suite *TestSuiteStandard) TestCategories() {
	suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})
	suite.createTestCategory(v1.CategoryEditable{Name: "Rent"})

	r := suite.createTestCategory(v1.CategoryEditable{Name: "Rent"}, http.StatusBadRequest)
	suite.Assert().Contains(*r.Error, models.ErrCategoryNameNotUnique.Error())

	var list v1.CategoryListResponse
	suite.do(http.MethodGet, suite.url("/categories"), nil, &list)
	suite.Assert().Len(list.Data, 2)
}

func (suite *TestSuiteStandard) TestTransfers() {
	checking := suite.createTestAccount(v1.AccountEditable{Name: "Checking", InitialBalance: decimal.NewFromInt(500)})
	savings := suite.createTestAccount(v1.AccountEditable{Name: "Savings"})

	var response v1.TransferResponse
	suite.do(http.MethodPost, suite.url("/transfers"), v1.TransferEditable{
		FromAccountID: checking.Data.ID,
		ToAccountID:   savings.Data.ID,
		Amount:        decimal.NewFromInt(200),
	}, &response, http.StatusCreated)

	suite.Require().Len(response.Data, 2)
	suite.Require().NotNil(response.Data[0].TransferID)
	suite.Assert().Equal(*response.Data[0].TransferID, *response.Data[1].TransferID)
	suite.Assert().True(response.Data[0].Date.Equal(suite.today()), "transfers default to today")
	suite.Assert().Equal("Transfer from Checking to Savings", response.Data[0].Note)

	var account v1.AccountResponse
	suite.do(http.MethodGet, suite.url("/accounts/%s", checking.Data.ID), nil, &account)
	suite.Assert().True(account.Data.Balance.Equal(decimal.NewFromInt(300)))

	suite.do(http.MethodGet, suite.url("/accounts/%s", savings.Data.ID), nil, &account)
	suite.Assert().True(account.Data.Balance.Equal(decimal.NewFromInt(200)))
}

func (suite *TestSuiteStandard) TestTransfersInvalid() {
	checking := suite.createTestAccount(v1.AccountEditable{Name: "Checking"})
	archived := suite.createTestAccount(v1.AccountEditable{Name: "Old", Archived: true})

	tests := []struct {
		name     string
		transfer v1.TransferEditable
		status   int
		err      string
	}{
		{"Same account", v1.TransferEditable{FromAccountID: checking.Data.ID, ToAccountID: checking.Data.ID, Amount: decimal.NewFromInt(1)}, http.StatusBadRequest, ledger.ErrSameAccount.Error()},
		{"Archived", v1.TransferEditable{FromAccountID: checking.Data.ID, ToAccountID: archived.Data.ID, Amount: decimal.NewFromInt(1)}, http.StatusBadRequest, ledger.ErrAccountArchived.Error()},
		{"No amount", v1.TransferEditable{FromAccountID: checking.Data.ID, ToAccountID: archived.Data.ID}, http.StatusBadRequest, ledger.ErrAmountNotPositive.Error()},
		{"Unknown account", v1.TransferEditable{FromAccountID: checking.Data.ID, ToAccountID: uuid.New(), Amount: decimal.NewFromInt(1)}, http.StatusNotFound, "there is no account"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			var response v1.TransferResponse
			suite.do(http.MethodPost, suite.url("/transfers"), tt.transfer, &response, tt.status)
			suite.Require().NotNil(response.Error)
			suite.Assert().Contains(*response.Error, tt.err)
		})
	}

	// Failed transfers write nothing
	var transactions v1.TransactionListResponse
	suite.do(http.MethodGet, suite.url("/transactions"), nil, &transactions)
	suite.Assert().Len(transactions.Data, 0)
}

func (suite *TestSuiteStandard) TestGoals() {
	var goal v1.GoalResponse
	suite.do(http.MethodPost, suite.url("/goals"), v1.GoalEditable{Name: "Vacation", TargetAmount: decimal.NewFromInt(300)}, &goal, http.StatusCreated)
	suite.Assert().False(goal.Data.Reached)
	suite.Assert().Equal(suite.url("/goals/%s/contributions", goal.Data.ID), goal.Data.Links.Contributions)

	suite.do(http.MethodPost, suite.url("/goals"), v1.GoalEditable{Name: "Nothing"}, nil, http.StatusBadRequest)

	var contribution v1.ContributionResponse
	suite.do(http.MethodPost, suite.url("/goals/%s/contributions", goal.Data.ID), v1.ContributionEditable{Amount: decimal.NewFromInt(300)}, &contribution, http.StatusCreated)
	suite.Assert().True(contribution.Data.Goal.SavedAmount.Equal(decimal.NewFromInt(300)))
	suite.Assert().True(contribution.Data.Goal.Reached)
	suite.Require().NotNil(contribution.Data.Transaction.GoalID)
	suite.Assert().Equal(goal.Data.ID, *contribution.Data.Transaction.GoalID)
	suite.Assert().Equal(types.Expense, contribution.Data.Transaction.Kind)

	suite.do(http.MethodGet, suite.url("/goals/%s", goal.Data.ID), nil, &goal)
	suite.Assert().True(goal.Data.SavedAmount.Equal(decimal.NewFromInt(300)))

	var list v1.GoalListResponse
	suite.do(http.MethodGet, suite.url("/goals"), nil, &list)
	suite.Assert().Len(list.Data, 1)

	suite.do(http.MethodPost, suite.url("/goals/%s/contributions", goal.Data.ID), v1.ContributionEditable{Amount: decimal.NewFromInt(-5)}, &contribution, http.StatusBadRequest)
	suite.do(http.MethodPost, suite.url("/goals/%s/contributions", uuid.New()), v1.ContributionEditable{Amount: decimal.NewFromInt(5)}, &contribution, http.StatusNotFound)
}
