package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tally-finance/backend/internal/httputil"
	"github.com/tally-finance/backend/internal/reminder"
	"github.com/tally-finance/backend/internal/types"
)

// UpcomingBill is an occurrence of a schedule that is due within the
// reminder window of the user.
type UpcomingBill struct {
	Schedule     Schedule        `json:"schedule"`                                          // The schedule the bill belongs to
	DueDate      types.Date      `json:"dueDate" example:"2024-03-31"`                      // Due date of the occurrence
	DaysUntilDue int             `json:"daysUntilDue" example:"3"`                          // Days between today and the due date
	Status       reminder.Status `json:"status" example:"pending" enums:"pending,reminded"` // Whether a reminder was already sent for the occurrence
}

type UpcomingBillListResponse struct {
	Data  []UpcomingBill `json:"data"`                                                                // Upcoming bills, soonest first
	Error *string        `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

// SentReminder is a bill reminder that was sent by a check.
type SentReminder struct {
	ScheduleID uuid.UUID  `json:"scheduleId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Schedule of the bill
	DueDate    types.Date `json:"dueDate" example:"2024-03-31"`                              // Due date of the bill
	LeadDays   int        `json:"leadDays" example:"3"`                                      // Lead time the reminder was sent for
	Links      struct {
		Schedule string `json:"schedule" example:"https://example.com/api/v1/users/1e777d24-3f5b-4c43-8000-04f65f895578/schedules/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // The schedule of the bill
	} `json:"links"`
}

type SentReminderListResponse struct {
	Data  []SentReminder `json:"data"`                                                                // Reminders sent by the check
	Error *string        `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

func newUpcomingBills(c *gin.Context, bills []reminder.UpcomingBill) []UpcomingBill {
	data := make([]UpcomingBill, 0, len(bills))
	for _, b := range bills {
		data = append(data, UpcomingBill{
			Schedule:     newSchedule(c, b.Schedule),
			DueDate:      b.DueDate,
			DaysUntilDue: b.DaysUntilDue,
			Status:       b.Status,
		})
	}
	return data
}

// RegisterBillRoutes registers the routes for upcoming bills and bill
// reminders with the RouterGroup of the user.
func (co Controller) RegisterBillRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/upcoming-bills", OptionsUpcomingBills)
	r.GET("/upcoming-bills", co.GetUpcomingBills)

	r.OPTIONS("/reminders/check", OptionsReminderCheck)
	r.POST("/reminders/check", co.CheckReminders)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bills
// @Success		204
// @Param			userId	path	string	true	"ID of the user"
// @Router			/v1/users/{userId}/upcoming-bills [options]
func OptionsUpcomingBills(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Upcoming bills
// @Description	Returns the next occurrences of the active schedules that are due within the largest reminder lead time.
// @Description	Due schedules are materialized before the bills are computed.
// @Tags			Bills
// @Produce		json
// @Success		200		{object}	UpcomingBillListResponse
// @Failure		400		{object}	UpcomingBillListResponse
// @Failure		500		{object}	UpcomingBillListResponse
// @Param			userId	path		string	true	"ID of the user"
// @Router			/v1/users/{userId}/upcoming-bills [get]
func (co Controller) GetUpcomingBills(c *gin.Context) {
	snapshot, err := co.snapshot(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UpcomingBillListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, UpcomingBillListResponse{Data: newUpcomingBills(c, snapshot.Upcoming)})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bills
// @Success		204
// @Param			userId	path	string	true	"ID of the user"
// @Router			/v1/users/{userId}/reminders/check [options]
func OptionsReminderCheck(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Send bill reminders
// @Description	Sends the bill reminders that fire today and were not sent yet. Every reminder is sent at most once.
// @Tags			Bills
// @Produce		json
// @Success		200		{object}	SentReminderListResponse
// @Failure		400		{object}	SentReminderListResponse
// @Failure		500		{object}	SentReminderListResponse
// @Param			userId	path		string	true	"ID of the user"
// @Router			/v1/users/{userId}/reminders/check [post]
func (co Controller) CheckReminders(c *gin.Context) {
	session, err := co.Manager.Session(userID(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SentReminderListResponse{Error: &s})
		return
	}

	sent, err := session.CheckAndSendReminders(c.Request.Context())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SentReminderListResponse{Error: &s})
		return
	}

	url := userURL(c)
	data := make([]SentReminder, 0, len(sent))
	for _, k := range sent {
		r := SentReminder{
			ScheduleID: k.ScheduleID,
			DueDate:    k.DueDate,
			LeadDays:   k.LeadDays,
		}
		r.Links.Schedule = fmt.Sprintf("%s/schedules/%s", url, k.ScheduleID)
		data = append(data, r)
	}

	c.JSON(http.StatusOK, SentReminderListResponse{Data: data})
}
