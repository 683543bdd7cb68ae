package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tally-finance/backend/internal/httputil"
	"github.com/tally-finance/backend/internal/ledger"
	"github.com/tally-finance/backend/internal/types"
)

type TransferEditable struct {
	FromAccountID uuid.UUID       `json:"fromAccountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                                      // Account the money leaves
	ToAccountID   uuid.UUID       `json:"toAccountId" example:"2d7e8d41-98f1-4a5c-9b17-2c9d4e0b3f60"`                                        // Account the money arrives at
	Amount        decimal.Decimal `json:"amount" example:"300" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Amount to move
	Date          types.Date      `json:"date" example:"2024-03-01"`                                                                         // Date of the transfer, today if empty
	Note          string          `json:"note" example:"Monthly savings" default:""`                                                         // Note of both entries
}

type TransferResponse struct {
	Data  []Transaction `json:"data"`                                                                           // The outgoing and the incoming entry
	Error *string       `json:"error" example:"source and destination account of a transfer must be different"` // The error, if any occurred
}

// RegisterTransferRoutes registers the routes for transfers with
// the RouterGroup that is passed.
func (co Controller) RegisterTransferRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsTransfers)
	r.POST("", co.CreateTransfer)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transfers
// @Success		204
// @Param			userId	path	string	true	"ID of the user"
// @Router			/v1/users/{userId}/transfers [options]
func OptionsTransfers(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create transfer
// @Description	Moves money between two accounts of the user. Both entries share a transfer ID and are saved together or not at all.
// @Tags			Transfers
// @Produce		json
// @Success		201			{object}	TransferResponse
// @Failure		400			{object}	TransferResponse
// @Failure		404			{object}	TransferResponse
// @Failure		500			{object}	TransferResponse
// @Param			userId		path		string				true	"ID of the user"
// @Param			transfer	body		TransferEditable	true	"Transfer"
// @Router			/v1/users/{userId}/transfers [post]
func (co Controller) CreateTransfer(c *gin.Context) {
	var editable TransferEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), TransferResponse{Error: &s})
		return
	}

	if editable.Date.IsZero() {
		editable.Date = co.Manager.Engine().Today()
	}

	entries, err := co.Ledger.Transfer(c.Request.Context(), userID(c), ledger.Transfer{
		FromAccountID: editable.FromAccountID,
		ToAccountID:   editable.ToAccountID,
		Amount:        editable.Amount,
		Date:          editable.Date,
		Note:          editable.Note,
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransferResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, TransferResponse{Data: newTransactions(c, entries)})
}
