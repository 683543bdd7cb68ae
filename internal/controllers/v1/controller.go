// Package v1 implements the v1 REST API. All resources belong to the user
// identified in the path.
package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tally-finance/backend/internal/httputil"
	"github.com/tally-finance/backend/internal/ledger"
	"github.com/tally-finance/backend/internal/live"
	"github.com/tally-finance/backend/internal/models"
	"github.com/tally-finance/backend/internal/store"
	ez_uuid "github.com/tally-finance/backend/internal/uuid"
)

type Controller struct {
	Store   *store.Store
	Manager *live.Manager
	Ledger  *ledger.Ledger
}

const contextUserID = "tally-user-id"

// URIUser binds the user of a request.
type URIUser struct {
	UserID ez_uuid.UUID `uri:"userId"`
}

// URIID binds the resource of a request.
type URIID struct {
	ID ez_uuid.UUID `uri:"id"`
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", GetV1)
	r.OPTIONS("", OptionsV1)

	u := r.Group("/users/:userId", bindUser)
	{
		u.OPTIONS("", OptionsUser)
		u.GET("", co.GetUser)
		u.DELETE("", co.DeleteUser)
	}

	co.RegisterScheduleRoutes(u.Group("/schedules"))
	co.RegisterTransactionRoutes(u.Group("/transactions"))
	co.RegisterBillRoutes(u)
	co.RegisterBudgetRoutes(u)
	co.RegisterSettingsRoutes(u.Group("/settings"))
	co.RegisterNotificationRoutes(u.Group("/notifications"))
	co.RegisterAccountRoutes(u.Group("/accounts"))
	co.RegisterCategoryRoutes(u.Group("/categories"))
	co.RegisterGoalRoutes(u.Group("/goals"))
	co.RegisterTransferRoutes(u.Group("/transfers"))
}

// bindUser parses the user ID of the path and aborts the request if
// it is invalid.
func bindUser(c *gin.Context) {
	var uri URIUser
	if err := c.ShouldBindUri(&uri); err != nil || uri.UserID.UUID == uuid.Nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidUUID.Error(),
		})
		return
	}

	c.Set(contextUserID, uri.UserID.UUID)
	c.Next()
}

// userID returns the user of the request.
func userID(c *gin.Context) uuid.UUID {
	return c.MustGet(contextUserID).(uuid.UUID)
}

// bindID returns the resource ID from the path.
func bindID(c *gin.Context) (uuid.UUID, error) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		return uuid.Nil, httputil.ErrInvalidUUID
	}
	return uri.ID.UUID, nil
}

// userURL returns the URL of the user's resources.
func userURL(c *gin.Context) string {
	return c.GetString(string(models.DBContextURL)) + "/v1/users/" + userID(c).String()
}

// snapshot returns the live snapshot of the user of the request.
//
// Failed materializations are logged, the rest of the snapshot is
// still complete and returned.
func (co Controller) snapshot(c *gin.Context) (live.Snapshot, error) {
	session, err := co.Manager.Session(userID(c))
	if err != nil {
		return live.Snapshot{}, err
	}

	snapshot, err := session.Snapshot(c.Request.Context())
	if live.Partial(err) {
		log.Warn().Err(err).Str("user", userID(c).String()).Msg("Serving snapshot with failed materializations")
		return snapshot, nil
	}

	return snapshot, err
}

type V1Response struct {
	Links V1Links `json:"links"` // Links for the v1 API
}

type V1Links struct {
	User string `json:"user" example:"https://example.com/api/v1/users/{userId}"` // Template for the endpoint of a user
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			User: c.GetString(string(models.DBContextURL)) + "/v1/users/{userId}",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
