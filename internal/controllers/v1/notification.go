package v1

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tally-finance/backend/internal/httputil"
	"github.com/tally-finance/backend/internal/models"
)

// Notification is the API v1 representation of a Notification.
type Notification struct {
	models.DefaultModel
	Kind        models.NotificationKind `json:"kind" example:"bill_reminder" enums:"bill_reminder,budget_warning,budget_exceeded"` // What the notification is about
	Title       string                  `json:"title" example:"Upcoming bill: Rent"`                                               // Short summary
	Message     string                  `json:"message" example:"Rent ($ 1,200.00) is due in 3 days, on 2024-03-31."`              // Formatted message
	ReferenceID uuid.UUID               `json:"referenceId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                        // The schedule or budget the notification is about
	Read        bool                    `json:"read" example:"false"`                                                              // Has the notification been read?
	Links       struct {
		Self string `json:"self" example:"https://example.com/api/v1/users/1e777d24-3f5b-4c43-8000-04f65f895578/notifications/3f0dc59e-7f17-4bb9-9d12-59b7c0ff5a1e"` // The notification itself
	} `json:"links"`
}

func newNotification(c *gin.Context, model models.Notification) Notification {
	n := Notification{
		DefaultModel: model.DefaultModel,
		Kind:         model.Kind,
		Title:        model.Title,
		Message:      model.Message,
		ReferenceID:  model.ReferenceID,
		Read:         model.Read,
	}
	n.Links.Self = fmt.Sprintf("%s/notifications/%s", userURL(c), model.ID)
	return n
}

// NotificationEditable is the body for updating a notification.
type NotificationEditable struct {
	Read bool `json:"read" example:"true"` // Has the notification been read?
}

type NotificationListResponse struct {
	Data  []Notification `json:"data"`                                                                // List of notifications, newest first
	Error *string        `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

type NotificationResponse struct {
	Data  *Notification `json:"data"`                                       // The notification
	Error *string       `json:"error" example:"the read field must be set"` // The error, if any occurred
}

type NotificationQueryFilter struct {
	Unread bool `form:"unread"` // Only return unread notifications
}

// RegisterNotificationRoutes registers the routes for notifications with
// the RouterGroup that is passed.
func (co Controller) RegisterNotificationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsNotificationList)
	r.GET("", co.GetNotifications)

	r.OPTIONS("/:id", OptionsNotificationDetail)
	r.PATCH("/:id", co.UpdateNotification)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notifications
// @Success		204
// @Param			userId	path	string	true	"ID of the user"
// @Router			/v1/users/{userId}/notifications [options]
func OptionsNotificationList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Notifications
// @Success		204
// @Param			userId	path	string	true	"ID of the user"
// @Param			id		path	string	true	"ID of the notification"
// @Router			/v1/users/{userId}/notifications/{id} [options]
func OptionsNotificationDetail(c *gin.Context) {
	httputil.OptionsPatch(c)
}

// @Summary		List notifications
// @Description	Returns the notifications of the user, newest first
// @Tags			Notifications
// @Produce		json
// @Success		200		{object}	NotificationListResponse
// @Failure		400		{object}	NotificationListResponse
// @Failure		500		{object}	NotificationListResponse
// @Param			userId	path		string	true	"ID of the user"
// @Param			unread	query		bool	false	"Only return unread notifications"
// @Router			/v1/users/{userId}/notifications [get]
func (co Controller) GetNotifications(c *gin.Context) {
	var filter NotificationQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, NotificationListResponse{Error: &s})
		return
	}

	notifications, err := co.Store.Notifications(c.Request.Context(), userID(c), filter.Unread)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NotificationListResponse{Error: &s})
		return
	}

	data := make([]Notification, 0, len(notifications))
	for _, n := range notifications {
		data = append(data, newNotification(c, n))
	}

	c.JSON(http.StatusOK, NotificationListResponse{Data: data})
}

// @Summary		Update notification
// @Description	Marks a notification as read or unread
// @Tags			Notifications
// @Produce		json
// @Success		200				{object}	NotificationResponse
// @Failure		400				{object}	NotificationResponse
// @Failure		404				{object}	NotificationResponse
// @Failure		500				{object}	NotificationResponse
// @Param			userId			path		string					true	"ID of the user"
// @Param			id				path		string					true	"ID of the notification"
// @Param			notification	body		NotificationEditable	true	"Notification"
// @Router			/v1/users/{userId}/notifications/{id} [patch]
func (co Controller) UpdateNotification(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NotificationResponse{Error: &s})
		return
	}

	fields, err := httputil.GetBodyFields(c, NotificationEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NotificationResponse{Error: &s})
		return
	}

	if !slices.Contains(fields, "read") {
		s := errReadNotSet.Error()
		c.JSON(http.StatusBadRequest, NotificationResponse{Error: &s})
		return
	}

	var editable NotificationEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), NotificationResponse{Error: &s})
		return
	}

	notification, err := co.Store.MarkNotificationRead(c.Request.Context(), userID(c), id, editable.Read)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), NotificationResponse{Error: &s})
		return
	}

	data := newNotification(c, notification)
	c.JSON(http.StatusOK, NotificationResponse{Data: &data})
}
