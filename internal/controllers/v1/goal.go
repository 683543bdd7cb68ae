package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tally-finance/backend/internal/httputil"
	"github.com/tally-finance/backend/internal/ledger"
	"github.com/tally-finance/backend/internal/models"
	"github.com/tally-finance/backend/internal/types"
)

type GoalEditable struct {
	Name         string          `json:"name" example:"Vacation"`                                                                                  // Name of the goal
	Note         string          `json:"note" example:"Two weeks in Portugal" default:""`                                                          // A note about the goal
	TargetAmount decimal.Decimal `json:"targetAmount" example:"2500" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Amount to save
	TargetDate   types.Date      `json:"targetDate" example:"2024-08-01"`                                                                          // Date the amount should be saved by
	Archived     bool            `json:"archived" example:"false" default:"false"`                                                                 // Archived goals cannot be funded
}

// Goal is the API v1 representation of a Goal.
type Goal struct {
	models.DefaultModel
	GoalEditable
	SavedAmount decimal.Decimal `json:"savedAmount" example:"750"` // Sum of all contributions
	Reached     bool            `json:"reached" example:"false"`   // Does the saved amount cover the target?
	Links       struct {
		Self          string `json:"self" example:"https://example.com/api/v1/users/1e777d24-3f5b-4c43-8000-04f65f895578/goals/7d1e5c0b-3b0e-4f6a-9d0c-1c2e3f4a5b6c"`                        // The goal itself
		Contributions string `json:"contributions" example:"https://example.com/api/v1/users/1e777d24-3f5b-4c43-8000-04f65f895578/goals/7d1e5c0b-3b0e-4f6a-9d0c-1c2e3f4a5b6c/contributions"` // Endpoint to fund the goal
	} `json:"links"`
}

func newGoal(c *gin.Context, model models.Goal) Goal {
	g := Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Name:         model.Name,
			Note:         model.Note,
			TargetAmount: model.TargetAmount,
			TargetDate:   model.TargetDate,
			Archived:     model.Archived,
		},
		SavedAmount: model.SavedAmount,
		Reached:     model.Reached(),
	}

	g.Links.Self = fmt.Sprintf("%s/goals/%s", userURL(c), model.ID)
	g.Links.Contributions = g.Links.Self + "/contributions"
	return g
}

type GoalListResponse struct {
	Data  []Goal  `json:"data"`                                                         // List of goals
	Error *string `json:"error" example:"goal target amounts must be larger than zero"` // The error, if any occurred
}

type GoalResponse struct {
	Data  *Goal   `json:"data"`                                                         // Data for the goal
	Error *string `json:"error" example:"goal target amounts must be larger than zero"` // The error, if any occurred
}

// ContributionEditable is the body for funding a goal.
type ContributionEditable struct {
	Amount    decimal.Decimal `json:"amount" example:"100" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Amount to add to the goal
	AccountID *uuid.UUID      `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                                          // Account the money is taken from, if any
	Date      types.Date      `json:"date" example:"2024-03-01"`                                                                         // Date of the contribution, today if empty
	Note      string          `json:"note" example:"March savings" default:""`                                                           // Note of the ledger entry
}

// Contribution is the result of funding a goal.
type Contribution struct {
	Goal        Goal        `json:"goal"`        // The goal with its new saved amount
	Transaction Transaction `json:"transaction"` // The ledger entry of the contribution
}

type ContributionResponse struct {
	Data  *Contribution `json:"data"`                                            // The contribution
	Error *string       `json:"error" example:"archived goals cannot be funded"` // The error, if any occurred
}

// RegisterGoalRoutes registers the routes for goals with
// the RouterGroup that is passed.
func (co Controller) RegisterGoalRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsGoalList)
	r.GET("", co.GetGoals)
	r.POST("", co.CreateGoal)

	r.OPTIONS("/:id", co.OptionsGoalDetail)
	r.GET("/:id", co.GetGoal)

	r.OPTIONS("/:id/contributions", co.OptionsGoalContributions)
	r.POST("/:id/contributions", co.FundGoal)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Param			userId	path	string	true	"ID of the user"
// @Router			/v1/users/{userId}/goals [options]
func OptionsGoalList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Param			userId	path		string	true	"ID of the user"
// @Param			id		path		string	true	"ID of the goal"
// @Router			/v1/users/{userId}/goals/{id} [options]
func (co Controller) OptionsGoalDetail(c *gin.Context) {
	if _, err := co.goal(c); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Param			userId	path		string	true	"ID of the user"
// @Param			id		path		string	true	"ID of the goal"
// @Router			/v1/users/{userId}/goals/{id}/contributions [options]
func (co Controller) OptionsGoalContributions(c *gin.Context) {
	if _, err := co.goal(c); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsPost(c)
}

func (co Controller) goal(c *gin.Context) (models.Goal, error) {
	id, err := bindID(c)
	if err != nil {
		return models.Goal{}, err
	}

	return co.Store.Goal(c.Request.Context(), userID(c), id)
}

// @Summary		Create goal
// @Description	Creates a new savings goal
// @Tags			Goals
// @Produce		json
// @Success		201		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			userId	path		string			true	"ID of the user"
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/v1/users/{userId}/goals [post]
func (co Controller) CreateGoal(c *gin.Context) {
	var editable GoalEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	goal := models.Goal{
		UserID:       userID(c),
		Name:         editable.Name,
		Note:         editable.Note,
		TargetAmount: editable.TargetAmount,
		TargetDate:   editable.TargetDate,
		Archived:     editable.Archived,
	}
	if err := co.Store.CreateGoal(c.Request.Context(), &goal); err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	data := newGoal(c, goal)
	c.JSON(http.StatusCreated, GoalResponse{Data: &data})
}

// @Summary		List goals
// @Description	Returns the savings goals of the user
// @Tags			Goals
// @Produce		json
// @Success		200		{object}	GoalListResponse
// @Failure		400		{object}	GoalListResponse
// @Failure		500		{object}	GoalListResponse
// @Param			userId	path		string	true	"ID of the user"
// @Router			/v1/users/{userId}/goals [get]
func (co Controller) GetGoals(c *gin.Context) {
	goals, err := co.Store.Goals(c.Request.Context(), userID(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalListResponse{Error: &s})
		return
	}

	data := make([]Goal, 0, len(goals))
	for _, g := range goals {
		data = append(data, newGoal(c, g))
	}

	c.JSON(http.StatusOK, GoalListResponse{Data: data})
}

// @Summary		Get goal
// @Description	Returns a specific savings goal
// @Tags			Goals
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		404		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			userId	path		string	true	"ID of the user"
// @Param			id		path		string	true	"ID of the goal"
// @Router			/v1/users/{userId}/goals/{id} [get]
func (co Controller) GetGoal(c *gin.Context) {
	goal, err := co.goal(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{Error: &s})
		return
	}

	data := newGoal(c, goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &data})
}

// @Summary		Fund goal
// @Description	Adds a contribution to a goal. The contribution is written as an expense entry, both are saved together or not at all.
// @Tags			Goals
// @Produce		json
// @Success		201				{object}	ContributionResponse
// @Failure		400				{object}	ContributionResponse
// @Failure		404				{object}	ContributionResponse
// @Failure		500				{object}	ContributionResponse
// @Param			userId			path		string					true	"ID of the user"
// @Param			id				path		string					true	"ID of the goal"
// @Param			contribution	body		ContributionEditable	true	"Contribution"
// @Router			/v1/users/{userId}/goals/{id}/contributions [post]
func (co Controller) FundGoal(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContributionResponse{Error: &s})
		return
	}

	var editable ContributionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), ContributionResponse{Error: &s})
		return
	}

	if editable.Date.IsZero() {
		editable.Date = co.Manager.Engine().Today()
	}

	goal, transaction, err := co.Ledger.FundGoal(c.Request.Context(), userID(c), id, ledger.Contribution{
		Amount:    editable.Amount,
		AccountID: editable.AccountID,
		Date:      editable.Date,
		Note:      editable.Note,
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContributionResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, ContributionResponse{Data: &Contribution{
		Goal:        newGoal(c, goal),
		Transaction: newTransaction(c, transaction),
	}})
}
