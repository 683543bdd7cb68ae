package v1_test

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	v1 "github.com/tally-finance/backend/internal/controllers/v1"
	"github.com/tally-finance/backend/internal/models"
	"github.com/tally-finance/backend/internal/types"
)

func (suite *TestSuiteStandard) createTestTransaction(t v1.TransactionEditable, expectedStatus ...int) v1.TransactionResponse {
	if t.Amount.IsZero() {
		t.Amount = decimal.NewFromInt(25)
	}
	if t.Kind == "" {
		t.Kind = types.Expense
	}
	if t.Date.IsZero() {
		t.Date = types.NewDate(2024, 3, 20)
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	var response v1.TransactionResponse
	suite.do(http.MethodPost, suite.url("/transactions"), t, &response, expectedStatus...)
	return response
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	category := uuid.New()
	r := suite.createTestTransaction(v1.TransactionEditable{
		Amount:     decimal.NewFromFloat(12.5),
		CategoryID: category,
		Tags:       []string{"food"},
		Note:       "Lunch",
	})

	suite.Require().NotNil(r.Data)
	suite.Assert().True(r.Data.Amount.Equal(decimal.NewFromFloat(12.5)))
	suite.Assert().Equal(category, r.Data.CategoryID)
	suite.Assert().Equal([]string{"food"}, r.Data.Tags)
	suite.Assert().Nil(r.Data.ScheduleID)
	suite.Assert().Equal(suite.url("/transactions/%s", r.Data.ID), r.Data.Links.Self)

	r = suite.createTestTransaction(v1.TransactionEditable{Amount: decimal.NewFromInt(-1)}, http.StatusBadRequest)
	suite.Assert().Contains(*r.Error, models.ErrTransactionAmountNotPositive.Error())
}

func (suite *TestSuiteStandard) TestTransactionsGetFilter() {
	groceries := uuid.New()
	rent := uuid.New()

	suite.createTestTransaction(v1.TransactionEditable{CategoryID: groceries, Date: types.NewDate(2024, 2, 28)})
	suite.createTestTransaction(v1.TransactionEditable{CategoryID: groceries, Date: types.NewDate(2024, 3, 2)})
	suite.createTestTransaction(v1.TransactionEditable{CategoryID: rent, Date: types.NewDate(2024, 3, 1)})
	suite.createTestTransaction(v1.TransactionEditable{Kind: types.Income, Date: types.NewDate(2024, 3, 15)})

	tests := []struct {
		query string
		len   int
	}{
		{"", 4},
		{"month=2024-03", 3},
		{"month=2024-02", 1},
		{"from=2024-03-02", 2},
		{"until=2024-03-01", 2},
		{"from=2024-03-01&until=2024-03-02", 2},
		{"kind=income", 1},
		{"category=" + groceries.String(), 2},
		{"category=" + rent.String() + "&month=2024-02", 0},
		{"schedule=" + uuid.NewString(), 0},
	}

	for _, tt := range tests {
		suite.Run(tt.query, func() {
			var response v1.TransactionListResponse
			suite.do(http.MethodGet, suite.url("/transactions?%s", tt.query), nil, &response)
			suite.Assert().Len(response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetOrder() {
	suite.createTestTransaction(v1.TransactionEditable{Date: types.NewDate(2024, 3, 1)})
	suite.createTestTransaction(v1.TransactionEditable{Date: types.NewDate(2024, 3, 10)})

	var response v1.TransactionListResponse
	suite.do(http.MethodGet, suite.url("/transactions"), nil, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().True(response.Data[0].Date.Equal(types.NewDate(2024, 3, 10)), "newest entries come first")
}

func (suite *TestSuiteStandard) TestTransactionsGetFilterInvalid() {
	for _, query := range []string{"month=March", "from=yesterday", "until=2024-13-01", "kind=refund", "category=nope", "account=1", "schedule=x"} {
		suite.Run(query, func() {
			var response v1.TransactionListResponse
			suite.do(http.MethodGet, suite.url("/transactions?%s", query), nil, &response, http.StatusBadRequest)
			suite.Require().NotNil(response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	t := suite.createTestTransaction(v1.TransactionEditable{Note: "Lunch", Amount: decimal.NewFromInt(10)})

	var response v1.TransactionResponse
	suite.do(http.MethodPatch, suite.url("/transactions/%s", t.Data.ID), map[string]any{"amount": "12.30"}, &response)

	suite.Assert().True(response.Data.Amount.Equal(decimal.NewFromFloat(12.3)))
	suite.Assert().Equal("Lunch", response.Data.Note)
	suite.Assert().True(response.Data.Date.Equal(t.Data.Date))

	suite.do(http.MethodPatch, suite.url("/transactions/%s", t.Data.ID), map[string]any{"kind": "refund"}, nil, http.StatusBadRequest)
	suite.do(http.MethodPatch, suite.url("/transactions/%s", uuid.New()), map[string]any{"note": "x"}, nil, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	t := suite.createTestTransaction(v1.TransactionEditable{})

	suite.do(http.MethodDelete, suite.url("/transactions/%s", t.Data.ID), nil, nil, http.StatusNoContent)
	suite.do(http.MethodGet, suite.url("/transactions/%s", t.Data.ID), nil, nil, http.StatusNotFound)
}
