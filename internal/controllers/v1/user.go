package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tally-finance/backend/internal/httputil"
)

type UserResponse struct {
	Links UserLinks `json:"links"`
}

type UserLinks struct {
	Schedules     string `json:"schedules" example:"https://example.com/api/v1/users/1e777d24-3f5b-4c43-8000-04f65f895578/schedules"`
	Transactions  string `json:"transactions" example:"https://example.com/api/v1/users/1e777d24-3f5b-4c43-8000-04f65f895578/transactions"`
	UpcomingBills string `json:"upcomingBills" example:"https://example.com/api/v1/users/1e777d24-3f5b-4c43-8000-04f65f895578/upcoming-bills"`
	Budgets       string `json:"budgets" example:"https://example.com/api/v1/users/1e777d24-3f5b-4c43-8000-04f65f895578/budgets"`
	BudgetStatus  string `json:"budgetStatus" example:"https://example.com/api/v1/users/1e777d24-3f5b-4c43-8000-04f65f895578/budget-status"`
	Settings      string `json:"settings" example:"https://example.com/api/v1/users/1e777d24-3f5b-4c43-8000-04f65f895578/settings"`
	Notifications string `json:"notifications" example:"https://example.com/api/v1/users/1e777d24-3f5b-4c43-8000-04f65f895578/notifications"`
	Accounts      string `json:"accounts" example:"https://example.com/api/v1/users/1e777d24-3f5b-4c43-8000-04f65f895578/accounts"`
	Categories    string `json:"categories" example:"https://example.com/api/v1/users/1e777d24-3f5b-4c43-8000-04f65f895578/categories"`
	Goals         string `json:"goals" example:"https://example.com/api/v1/users/1e777d24-3f5b-4c43-8000-04f65f895578/goals"`
	Transfers     string `json:"transfers" example:"https://example.com/api/v1/users/1e777d24-3f5b-4c43-8000-04f65f895578/transfers"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Param			userId	path	string	true	"ID of the user"
// @Router			/v1/users/{userId} [options]
func OptionsUser(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		User resources
// @Description	Returns links to all resources of the user
// @Tags			Users
// @Success		200		{object}	UserResponse
// @Failure		400		{object}	httpError
// @Param			userId	path		string	true	"ID of the user"
// @Router			/v1/users/{userId} [get]
func (co Controller) GetUser(c *gin.Context) {
	url := userURL(c)

	c.JSON(http.StatusOK, UserResponse{
		Links: UserLinks{
			Schedules:     url + "/schedules",
			Transactions:  url + "/transactions",
			UpcomingBills: url + "/upcoming-bills",
			Budgets:       url + "/budgets",
			BudgetStatus:  url + "/budget-status",
			Settings:      url + "/settings",
			Notifications: url + "/notifications",
			Accounts:      url + "/accounts",
			Categories:    url + "/categories",
			Goals:         url + "/goals",
			Transfers:     url + "/transfers",
		},
	})
}

// @Summary		Delete user data
// @Description	Permanently deletes all data of the user
// @Tags			Users
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			userId	path		string	true	"ID of the user"
// @Router			/v1/users/{userId} [delete]
func (co Controller) DeleteUser(c *gin.Context) {
	err := co.Store.DeleteUserData(c.Request.Context(), userID(c))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
