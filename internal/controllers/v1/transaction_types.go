package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tally-finance/backend/internal/httputil"
	"github.com/tally-finance/backend/internal/models"
	"github.com/tally-finance/backend/internal/store"
	"github.com/tally-finance/backend/internal/types"
)

type TransactionEditable struct {
	Amount      decimal.Decimal `json:"amount" example:"14.03" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount of the entry
	Kind        types.EntryKind `json:"kind" example:"expense" enums:"income,expense"`                                                       // Direction of the entry
	CategoryID  uuid.UUID       `json:"categoryId" example:"0b5f7a4c-6b55-4a3e-8e0a-2f1c0d9e7b21"`                                           // Category of the entry
	SubCategory string          `json:"subCategory" example:"Groceries" default:""`                                                          // Sub category of the entry
	Tags        []string        `json:"tags" example:"weekly"`                                                                               // Tags of the entry
	AccountID   *uuid.UUID      `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                                            // Account of the entry
	Date        types.Date      `json:"date" example:"2024-03-10"`                                                                           // Date of the entry, defaults to today
	Note        string          `json:"note" example:"Farmers market" default:""`                                                            // A note for the entry
}

// model returns the database resource for the editable fields
func (editable TransactionEditable) model(userID uuid.UUID) models.Transaction {
	return models.Transaction{
		UserID:      userID,
		Amount:      editable.Amount,
		Kind:        editable.Kind,
		CategoryID:  editable.CategoryID,
		SubCategory: editable.SubCategory,
		Tags:        editable.Tags,
		AccountID:   editable.AccountID,
		Date:        editable.Date,
		Note:        editable.Note,
	}
}

func transactionEditable(model models.Transaction) TransactionEditable {
	return TransactionEditable{
		Amount:      model.Amount,
		Kind:        model.Kind,
		CategoryID:  model.CategoryID,
		SubCategory: model.SubCategory,
		Tags:        model.Tags,
		AccountID:   model.AccountID,
		Date:        model.Date,
		Note:        model.Note,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/users/1e777d24-3f5b-4c43-8000-04f65f895578/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the API v1 representation of a ledger entry.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	ScheduleID *uuid.UUID       `json:"scheduleId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // The schedule the entry was materialized from
	TransferID *uuid.UUID       `json:"transferId" example:"e1b5d2a8-2b51-4a0e-92e1-7f3a2cb6b8a1"` // Shared by both entries of a transfer
	GoalID     *uuid.UUID       `json:"goalId" example:"c3b5d2a8-2b51-4a0e-92e1-7f3a2cb6b8a1"`     // The goal the entry funds
	Links      TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	return Transaction{
		DefaultModel:        model.DefaultModel,
		TransactionEditable: transactionEditable(model),
		ScheduleID:          model.ScheduleID,
		TransferID:          model.TransferID,
		GoalID:              model.GoalID,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/transactions/%s", userURL(c), model.ID),
		},
	}
}

func newTransactions(c *gin.Context, entries []models.Transaction) []Transaction {
	data := make([]Transaction, 0, len(entries))
	for _, t := range entries {
		data = append(data, newTransaction(c, t))
	}
	return data
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`                                                    // List of transactions
	Error *string       `json:"error" example:"the transaction amount must be positive"` // The error, if any occurred
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                    // Data for the transaction
	Error *string      `json:"error" example:"the transaction amount must be positive"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	Month      string `form:"month" example:"2024-03"`                                 // Entries in the month
	From       string `form:"from" example:"2024-03-01"`                               // Entries on or after the date
	Until      string `form:"until" example:"2024-03-31"`                              // Entries on or before the date
	Kind       string `form:"kind" example:"expense"`                                  // Kind of the entries
	CategoryID string `form:"category" example:"0b5f7a4c-6b55-4a3e-8e0a-2f1c0d9e7b21"` // Category of the entries
	AccountID  string `form:"account" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`  // Account of the entries
	ScheduleID string `form:"schedule" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Schedule the entries were materialized from
}

// model parses the query parameters into a store filter
func (f TransactionQueryFilter) model() (store.TransactionFilter, error) {
	var filter store.TransactionFilter
	var err error

	if f.Month != "" {
		if filter.Month, err = types.ParseMonth(f.Month); err != nil {
			return filter, fmt.Errorf("month: %w", err)
		}
	}

	if f.From != "" {
		if filter.From, err = types.ParseDate(f.From); err != nil {
			return filter, fmt.Errorf("from: %w", err)
		}
	}

	if f.Until != "" {
		if filter.Until, err = types.ParseDate(f.Until); err != nil {
			return filter, fmt.Errorf("until: %w", err)
		}
	}

	if f.Kind != "" {
		filter.Kind = types.EntryKind(f.Kind)
		if !filter.Kind.Valid() {
			return filter, fmt.Errorf("%w, got %q", types.ErrEntryKindInvalid, f.Kind)
		}
	}

	if filter.CategoryID, err = httputil.UUIDFromString(f.CategoryID); err != nil {
		return filter, err
	}

	if filter.AccountID, err = httputil.UUIDFromString(f.AccountID); err != nil {
		return filter, err
	}

	if filter.ScheduleID, err = httputil.UUIDFromString(f.ScheduleID); err != nil {
		return filter, err
	}

	return filter, nil
}
