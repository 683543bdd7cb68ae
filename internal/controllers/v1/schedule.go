package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"github.com/tally-finance/backend/internal/httputil"
	"github.com/tally-finance/backend/internal/types"
)

// RegisterScheduleRoutes registers the routes for recurring schedules with
// the RouterGroup that is passed.
func (co Controller) RegisterScheduleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsScheduleList)
		r.GET("", co.GetSchedules)
		r.POST("", co.CreateSchedule)
	}

	// Schedule with ID
	{
		r.OPTIONS("/:id", co.OptionsScheduleDetail)
		r.GET("/:id", co.GetSchedule)
		r.PATCH("/:id", co.UpdateSchedule)
		r.DELETE("/:id", co.DeleteSchedule)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Schedules
// @Success		204
// @Param			userId	path	string	true	"ID of the user"
// @Router			/v1/users/{userId}/schedules [options]
func OptionsScheduleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Schedules
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Param			userId	path		string	true	"ID of the user"
// @Param			id		path		string	true	"ID of the schedule"
// @Router			/v1/users/{userId}/schedules/{id} [options]
func (co Controller) OptionsScheduleDetail(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	_, err = co.Store.Schedule(c.Request.Context(), userID(c), id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create schedule
// @Description	Creates a new recurring schedule. Its next due date is the start date.
// @Tags			Schedules
// @Produce		json
// @Success		201			{object}	ScheduleResponse
// @Failure		400			{object}	ScheduleResponse
// @Failure		500			{object}	ScheduleResponse
// @Param			userId		path		string				true	"ID of the user"
// @Param			schedule	body		ScheduleEditable	true	"Schedule"
// @Router			/v1/users/{userId}/schedules [post]
func (co Controller) CreateSchedule(c *gin.Context) {
	var editable ScheduleEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), ScheduleResponse{Error: &s})
		return
	}

	schedule := editable.model(userID(c))
	if err := co.Store.CreateSchedule(c.Request.Context(), &schedule); err != nil {
		s := err.Error()
		c.JSON(status(err), ScheduleResponse{Error: &s})
		return
	}

	data := newSchedule(c, schedule)
	c.JSON(http.StatusCreated, ScheduleResponse{Data: &data})
}

// @Summary		List schedules
// @Description	Returns the recurring schedules of the user ordered by next due date
// @Tags			Schedules
// @Produce		json
// @Success		200			{object}	ScheduleListResponse
// @Failure		400			{object}	ScheduleListResponse
// @Failure		500			{object}	ScheduleListResponse
// @Param			userId		path		string	true	"ID of the user"
// @Param			name		query		string	false	"Filter by name, supports * as wildcard"
// @Param			active		query		bool	false	"Is the schedule active?"
// @Param			frequency	query		string	false	"Filter by frequency"
// @Router			/v1/users/{userId}/schedules [get]
func (co Controller) GetSchedules(c *gin.Context) {
	var filter ScheduleQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ScheduleListResponse{Error: &s})
		return
	}

	var frequency types.Frequency
	if filter.Frequency != "" {
		f, err := types.ParseFrequency(filter.Frequency)
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, ScheduleListResponse{Error: &s})
			return
		}
		frequency = f
	}

	schedules, err := co.Store.Schedules(c.Request.Context(), userID(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ScheduleListResponse{Error: &s})
		return
	}

	pattern := strings.ToLower(filter.Name)

	// When there are no resources, we want an empty list, not null
	data := make([]Schedule, 0)
	for _, schedule := range schedules {
		if filter.Name != "" && !glob.Glob(pattern, strings.ToLower(schedule.Name)) {
			continue
		}

		if filter.Active != nil && schedule.Active != *filter.Active {
			continue
		}

		if frequency != "" && schedule.Frequency != frequency {
			continue
		}

		data = append(data, newSchedule(c, schedule))
	}

	c.JSON(http.StatusOK, ScheduleListResponse{Data: data})
}

// @Summary		Get schedule
// @Description	Returns a specific recurring schedule
// @Tags			Schedules
// @Produce		json
// @Success		200		{object}	ScheduleResponse
// @Failure		400		{object}	ScheduleResponse
// @Failure		404		{object}	ScheduleResponse
// @Failure		500		{object}	ScheduleResponse
// @Param			userId	path		string	true	"ID of the user"
// @Param			id		path		string	true	"ID of the schedule"
// @Router			/v1/users/{userId}/schedules/{id} [get]
func (co Controller) GetSchedule(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ScheduleResponse{Error: &s})
		return
	}

	schedule, err := co.Store.Schedule(c.Request.Context(), userID(c), id)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ScheduleResponse{Error: &s})
		return
	}

	data := newSchedule(c, schedule)
	c.JSON(http.StatusOK, ScheduleResponse{Data: &data})
}

// @Summary		Update schedule
// @Description	Updates a recurring schedule. Only values to be updated need to be specified.
// @Description	The next due date is kept unless the start date is moved past it.
// @Tags			Schedules
// @Produce		json
// @Success		200			{object}	ScheduleResponse
// @Failure		400			{object}	ScheduleResponse
// @Failure		404			{object}	ScheduleResponse
// @Failure		500			{object}	ScheduleResponse
// @Param			userId		path		string				true	"ID of the user"
// @Param			id			path		string				true	"ID of the schedule"
// @Param			schedule	body		ScheduleEditable	true	"Schedule"
// @Router			/v1/users/{userId}/schedules/{id} [patch]
func (co Controller) UpdateSchedule(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ScheduleResponse{Error: &s})
		return
	}

	current, err := co.Store.Schedule(c.Request.Context(), userID(c), id)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ScheduleResponse{Error: &s})
		return
	}

	// Fields not in the body keep their current value
	editable := scheduleEditable(current)
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), ScheduleResponse{Error: &s})
		return
	}

	schedule := editable.model(userID(c))
	schedule.DefaultModel = current.DefaultModel

	if err := co.Store.UpdateSchedule(c.Request.Context(), &schedule); err != nil {
		s := err.Error()
		c.JSON(status(err), ScheduleResponse{Error: &s})
		return
	}

	data := newSchedule(c, schedule)
	c.JSON(http.StatusOK, ScheduleResponse{Data: &data})
}

// @Summary		Delete schedule
// @Description	Deletes a recurring schedule and its reminder records. Materialized entries are kept.
// @Tags			Schedules
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			userId	path		string	true	"ID of the user"
// @Param			id		path		string	true	"ID of the schedule"
// @Router			/v1/users/{userId}/schedules/{id} [delete]
func (co Controller) DeleteSchedule(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = co.Store.DeleteSchedule(c.Request.Context(), userID(c), id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
