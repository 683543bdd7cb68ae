package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tally-finance/backend/internal/httputil"
	"github.com/tally-finance/backend/internal/models"
)

type SettingsEditable struct {
	BillReminderDays []int  `json:"billReminderDays" example:"1,3,7"` // Days before a due date at which a bill reminder is sent
	Locale           string `json:"locale" example:"de-DE"`           // BCP 47 language tag used to format amounts in notifications
	Currency         string `json:"currency" example:"EUR"`           // ISO 4217 currency code used to format amounts in notifications
}

// Settings is the API v1 representation of the settings of a user.
type Settings struct {
	SettingsEditable
	UpdatedAt *time.Time `json:"updatedAt" example:"2022-04-17T20:14:01.048145Z"` // Last time the settings were saved, null if they never were
	Links     struct {
		Self string `json:"self" example:"https://example.com/api/v1/users/1e777d24-3f5b-4c43-8000-04f65f895578/settings"` // The settings themselves
	} `json:"links"`
}

func newSettings(c *gin.Context, model models.Settings) Settings {
	s := Settings{
		SettingsEditable: SettingsEditable{
			BillReminderDays: model.BillReminderDays,
			Locale:           model.Locale,
			Currency:         model.Currency,
		},
	}

	if !model.UpdatedAt.IsZero() {
		updated := model.UpdatedAt
		s.UpdatedAt = &updated
	}

	s.Links.Self = userURL(c) + "/settings"
	return s
}

type SettingsResponse struct {
	Data  *Settings `json:"data"`                                                        // The settings
	Error *string   `json:"error" example:"bill reminder days must be positive numbers"` // The error, if any occurred
}

// RegisterSettingsRoutes registers the routes for the settings of a user
// with the RouterGroup that is passed.
func (co Controller) RegisterSettingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSettings)
	r.GET("", co.GetSettings)
	r.PATCH("", co.UpdateSettings)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Param			userId	path	string	true	"ID of the user"
// @Router			/v1/users/{userId}/settings [options]
func OptionsSettings(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get settings
// @Description	Returns the settings of the user. Settings that were never saved have their default value.
// @Tags			Settings
// @Produce		json
// @Success		200		{object}	SettingsResponse
// @Failure		400		{object}	SettingsResponse
// @Failure		500		{object}	SettingsResponse
// @Param			userId	path		string	true	"ID of the user"
// @Router			/v1/users/{userId}/settings [get]
func (co Controller) GetSettings(c *gin.Context) {
	settings, err := co.Store.Settings(c.Request.Context(), userID(c), co.Manager.Engine().Defaults())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingsResponse{Error: &s})
		return
	}

	data := newSettings(c, settings)
	c.JSON(http.StatusOK, SettingsResponse{Data: &data})
}

// @Summary		Update settings
// @Description	Updates the settings of the user. Only values to be updated need to be specified.
// @Description	Bill reminder days are sorted and deduplicated.
// @Tags			Settings
// @Produce		json
// @Success		200			{object}	SettingsResponse
// @Failure		400			{object}	SettingsResponse
// @Failure		500			{object}	SettingsResponse
// @Param			userId		path		string				true	"ID of the user"
// @Param			settings	body		SettingsEditable	true	"Settings"
// @Router			/v1/users/{userId}/settings [patch]
func (co Controller) UpdateSettings(c *gin.Context) {
	current, err := co.Store.Settings(c.Request.Context(), userID(c), co.Manager.Engine().Defaults())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingsResponse{Error: &s})
		return
	}

	editable := SettingsEditable{
		BillReminderDays: current.BillReminderDays,
		Locale:           current.Locale,
		Currency:         current.Currency,
	}
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), SettingsResponse{Error: &s})
		return
	}

	settings := models.Settings{
		UserID:           userID(c),
		CreatedAt:        current.CreatedAt,
		BillReminderDays: editable.BillReminderDays,
		Locale:           editable.Locale,
		Currency:         editable.Currency,
	}
	if err := co.Store.SaveSettings(c.Request.Context(), &settings); err != nil {
		s := err.Error()
		c.JSON(status(err), SettingsResponse{Error: &s})
		return
	}

	data := newSettings(c, settings)
	c.JSON(http.StatusOK, SettingsResponse{Data: &data})
}
