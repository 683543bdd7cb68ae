package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tally-finance/backend/internal/httputil"
	"github.com/tally-finance/backend/internal/models"
	"github.com/tally-finance/backend/internal/store"
)

type AccountEditable struct {
	Name           string          `json:"name" example:"Checking"`                                                                                               // Name of the account, unique per user
	Note           string          `json:"note" example:"Main account" default:""`                                                                                // A note about the account
	InitialBalance decimal.Decimal `json:"initialBalance" example:"250" minimum:"-999999999999.99999999" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Balance before the first ledger entry
	Archived       bool            `json:"archived" example:"false" default:"false"`                                                                              // Archived accounts cannot be used for transfers
}

func (editable AccountEditable) model(userID uuid.UUID) models.Account {
	return models.Account{
		UserID:         userID,
		Name:           editable.Name,
		Note:           editable.Note,
		InitialBalance: editable.InitialBalance,
		Archived:       editable.Archived,
	}
}

// Account is the API v1 representation of an Account.
type Account struct {
	models.DefaultModel
	AccountEditable
	Balance decimal.Decimal `json:"balance" example:"1830.42"` // Initial balance plus the signed amounts of all entries of the account
	Links   struct {
		Self         string `json:"self" example:"https://example.com/api/v1/users/1e777d24-3f5b-4c43-8000-04f65f895578/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                     // The account itself
		Transactions string `json:"transactions" example:"https://example.com/api/v1/users/1e777d24-3f5b-4c43-8000-04f65f895578/transactions?account=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Entries of the account
	} `json:"links"`
}

func newAccount(c *gin.Context, model models.Account, entries []models.Transaction) Account {
	url := userURL(c)

	a := Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			Name:           model.Name,
			Note:           model.Note,
			InitialBalance: model.InitialBalance,
			Archived:       model.Archived,
		},
		Balance: model.Balance(entries),
	}
	a.Links.Self = fmt.Sprintf("%s/accounts/%s", url, model.ID)
	a.Links.Transactions = fmt.Sprintf("%s/transactions?account=%s", url, model.ID)
	return a
}

type AccountListResponse struct {
	Data  []Account `json:"data"`                                                         // List of accounts
	Error *string   `json:"error" example:"the account name must be unique for the user"` // The error, if any occurred
}

type AccountResponse struct {
	Data  *Account `json:"data"`                                                         // Data for the account
	Error *string  `json:"error" example:"the account name must be unique for the user"` // The error, if any occurred
}

// RegisterAccountRoutes registers the routes for accounts with
// the RouterGroup that is passed.
func (co Controller) RegisterAccountRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsAccountList)
	r.GET("", co.GetAccounts)
	r.POST("", co.CreateAccount)

	r.OPTIONS("/:id", co.OptionsAccountDetail)
	r.GET("/:id", co.GetAccount)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Param			userId	path	string	true	"ID of the user"
// @Router			/v1/users/{userId}/accounts [options]
func OptionsAccountList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Param			userId	path		string	true	"ID of the user"
// @Param			id		path		string	true	"ID of the account"
// @Router			/v1/users/{userId}/accounts/{id} [options]
func (co Controller) OptionsAccountDetail(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if _, err := co.Store.Account(c.Request.Context(), userID(c), id); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create account
// @Description	Creates a new account
// @Tags			Accounts
// @Produce		json
// @Success		201		{object}	AccountResponse
// @Failure		400		{object}	AccountResponse
// @Failure		500		{object}	AccountResponse
// @Param			userId	path		string			true	"ID of the user"
// @Param			account	body		AccountEditable	true	"Account"
// @Router			/v1/users/{userId}/accounts [post]
func (co Controller) CreateAccount(c *gin.Context) {
	var editable AccountEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), AccountResponse{Error: &s})
		return
	}

	account := editable.model(userID(c))
	if err := co.Store.CreateAccount(c.Request.Context(), &account); err != nil {
		s := err.Error()
		c.JSON(status(err), AccountResponse{Error: &s})
		return
	}

	data := newAccount(c, account, nil)
	c.JSON(http.StatusCreated, AccountResponse{Data: &data})
}

// @Summary		List accounts
// @Description	Returns the accounts of the user with their balances
// @Tags			Accounts
// @Produce		json
// @Success		200		{object}	AccountListResponse
// @Failure		400		{object}	AccountListResponse
// @Failure		500		{object}	AccountListResponse
// @Param			userId	path		string	true	"ID of the user"
// @Router			/v1/users/{userId}/accounts [get]
func (co Controller) GetAccounts(c *gin.Context) {
	accounts, err := co.Store.Accounts(c.Request.Context(), userID(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountListResponse{Error: &s})
		return
	}

	entries, err := co.Store.Transactions(c.Request.Context(), userID(c), store.TransactionFilter{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountListResponse{Error: &s})
		return
	}

	data := make([]Account, 0, len(accounts))
	for _, a := range accounts {
		data = append(data, newAccount(c, a, entries))
	}

	c.JSON(http.StatusOK, AccountListResponse{Data: data})
}

// @Summary		Get account
// @Description	Returns a specific account with its balance
// @Tags			Accounts
// @Produce		json
// @Success		200		{object}	AccountResponse
// @Failure		400		{object}	AccountResponse
// @Failure		404		{object}	AccountResponse
// @Failure		500		{object}	AccountResponse
// @Param			userId	path		string	true	"ID of the user"
// @Param			id		path		string	true	"ID of the account"
// @Router			/v1/users/{userId}/accounts/{id} [get]
func (co Controller) GetAccount(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountResponse{Error: &s})
		return
	}

	account, err := co.Store.Account(c.Request.Context(), userID(c), id)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountResponse{Error: &s})
		return
	}

	entries, err := co.Store.Transactions(c.Request.Context(), userID(c), store.TransactionFilter{AccountID: id})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountResponse{Error: &s})
		return
	}

	data := newAccount(c, account, entries)
	c.JSON(http.StatusOK, AccountResponse{Data: &data})
}
