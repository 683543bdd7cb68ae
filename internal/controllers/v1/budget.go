package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tally-finance/backend/internal/budgetalert"
	"github.com/tally-finance/backend/internal/httputil"
	"github.com/tally-finance/backend/internal/types"
)

// RegisterBudgetRoutes registers the routes for budgets, their status and
// their alerts with the RouterGroup of the user.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	b := r.Group("/budgets")
	{
		b.OPTIONS("", OptionsBudgetList)
		b.GET("", co.GetBudgets)
		b.POST("", co.CreateBudget)

		b.OPTIONS("/:id", co.OptionsBudgetDetail)
		b.GET("/:id", co.GetBudget)
		b.PATCH("/:id", co.UpdateBudget)
		b.DELETE("/:id", co.DeleteBudget)
	}

	r.OPTIONS("/budget-status", OptionsBudgetStatus)
	r.GET("/budget-status", co.GetBudgetStatus)

	r.OPTIONS("/budget-alerts", OptionsBudgetAlerts)
	r.GET("/budget-alerts", co.GetBudgetAlerts)

	r.OPTIONS("/budget-alerts/check", OptionsBudgetAlertCheck)
	r.POST("/budget-alerts/check", co.CheckBudgetAlerts)
}

// month returns the month of the query, or the current month if the query
// does not specify one.
func (co Controller) month(c *gin.Context) (types.Month, error) {
	var query MonthQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		return types.Month{}, err
	}

	if query.Month == "" {
		return co.Manager.Engine().Today().Month(), nil
	}

	m, err := types.ParseMonth(query.Month)
	if err != nil {
		return types.Month{}, fmt.Errorf("month must be in YYYY-MM format, got %q", query.Month)
	}
	return m, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Param			userId	path	string	true	"ID of the user"
// @Router			/v1/users/{userId}/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Param			userId	path		string	true	"ID of the user"
// @Param			id		path		string	true	"ID of the budget"
// @Router			/v1/users/{userId}/budgets/{id} [options]
func (co Controller) OptionsBudgetDetail(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	_, err = co.Store.Budget(c.Request.Context(), userID(c), id)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create budget
// @Description	Creates a new monthly budget
// @Tags			Budgets
// @Produce		json
// @Success		201		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			userId	path		string			true	"ID of the user"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/users/{userId}/budgets [post]
func (co Controller) CreateBudget(c *gin.Context) {
	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	budget := editable.model(userID(c))
	if err := co.Store.CreateBudget(c.Request.Context(), &budget); err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusCreated, BudgetResponse{Data: &data})
}

// @Summary		List budgets
// @Description	Returns the budgets of the user
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetListResponse
// @Failure		400		{object}	BudgetListResponse
// @Failure		500		{object}	BudgetListResponse
// @Param			userId	path		string	true	"ID of the user"
// @Router			/v1/users/{userId}/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	budgets, err := co.Store.Budgets(c.Request.Context(), userID(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{Error: &s})
		return
	}

	data := make([]Budget, 0, len(budgets))
	for _, b := range budgets {
		data = append(data, newBudget(c, b))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			userId	path		string	true	"ID of the user"
// @Param			id		path		string	true	"ID of the budget"
// @Router			/v1/users/{userId}/budgets/{id} [get]
func (co Controller) GetBudget(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	budget, err := co.Store.Budget(c.Request.Context(), userID(c), id)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Update budget
// @Description	Updates a budget. Only values to be updated need to be specified.
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			userId	path		string			true	"ID of the user"
// @Param			id		path		string			true	"ID of the budget"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/users/{userId}/budgets/{id} [patch]
func (co Controller) UpdateBudget(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	current, err := co.Store.Budget(c.Request.Context(), userID(c), id)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	editable := budgetEditable(current)
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	budget := editable.model(userID(c))
	budget.DefaultModel = current.DefaultModel

	if err := co.Store.UpdateBudget(c.Request.Context(), &budget); err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Delete budget
// @Description	Deletes a budget and its alert records
// @Tags			Budgets
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			userId	path		string	true	"ID of the user"
// @Param			id		path		string	true	"ID of the budget"
// @Router			/v1/users/{userId}/budgets/{id} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := co.Store.DeleteBudget(c.Request.Context(), userID(c), id); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Param			userId	path	string	true	"ID of the user"
// @Router			/v1/users/{userId}/budget-status [options]
func OptionsBudgetStatus(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Budget status
// @Description	Returns the spending of every budget in a month
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetStatusListResponse
// @Failure		400		{object}	BudgetStatusListResponse
// @Failure		500		{object}	BudgetStatusListResponse
// @Param			userId	path		string	true	"ID of the user"
// @Param			month	query		string	false	"Month in YYYY-MM format, defaults to the current month"
// @Router			/v1/users/{userId}/budget-status [get]
func (co Controller) GetBudgetStatus(c *gin.Context) {
	month, err := co.month(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetStatusListResponse{Error: &s})
		return
	}

	// The current month is served from the live snapshot
	if month.Equal(co.Manager.Engine().Today().Month()) {
		snapshot, err := co.snapshot(c)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), BudgetStatusListResponse{Error: &s})
			return
		}

		if snapshot.Period.Equal(month) {
			c.JSON(http.StatusOK, BudgetStatusListResponse{Data: newBudgetStatuses(c, snapshot.Budgets)})
			return
		}
	}

	budgets, err := co.Store.Budgets(c.Request.Context(), userID(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetStatusListResponse{Error: &s})
		return
	}

	expenses, err := co.Store.ExpensesByCategory(c.Request.Context(), userID(c), month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetStatusListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, BudgetStatusListResponse{Data: newBudgetStatuses(c, budgetalert.Evaluate(budgets, expenses, month))})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Param			userId	path	string	true	"ID of the user"
// @Router			/v1/users/{userId}/budget-alerts [options]
func OptionsBudgetAlerts(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		List budget alerts
// @Description	Returns the budget alerts that were sent in a month
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetAlertListResponse
// @Failure		400		{object}	BudgetAlertListResponse
// @Failure		500		{object}	BudgetAlertListResponse
// @Param			userId	path		string	true	"ID of the user"
// @Param			month	query		string	false	"Month in YYYY-MM format, defaults to the current month"
// @Router			/v1/users/{userId}/budget-alerts [get]
func (co Controller) GetBudgetAlerts(c *gin.Context) {
	month, err := co.month(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetAlertListResponse{Error: &s})
		return
	}

	alerts, err := co.Store.BudgetAlerts(c.Request.Context(), userID(c), month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetAlertListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, BudgetAlertListResponse{Data: newBudgetAlerts(c, alerts)})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Param			userId	path	string	true	"ID of the user"
// @Router			/v1/users/{userId}/budget-alerts/check [options]
func OptionsBudgetAlertCheck(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Send budget alerts
// @Description	Sends the budget alerts of the current month that were not sent yet. Every level is sent at most once per budget and month.
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetAlertListResponse
// @Failure		400		{object}	BudgetAlertListResponse
// @Failure		500		{object}	BudgetAlertListResponse
// @Param			userId	path		string	true	"ID of the user"
// @Router			/v1/users/{userId}/budget-alerts/check [post]
func (co Controller) CheckBudgetAlerts(c *gin.Context) {
	session, err := co.Manager.Session(userID(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetAlertListResponse{Error: &s})
		return
	}

	names, err := co.Store.CategoryNames(c.Request.Context(), userID(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetAlertListResponse{Error: &s})
		return
	}

	sent, err := session.CheckAndSendAlerts(c.Request.Context(), names)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetAlertListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, BudgetAlertListResponse{Data: newBudgetAlerts(c, sent)})
}
