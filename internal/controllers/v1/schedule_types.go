package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tally-finance/backend/internal/models"
	"github.com/tally-finance/backend/internal/types"
)

type ScheduleEditable struct {
	Name        string          `json:"name" example:"Rent"`                                                                                // Display name of the schedule
	Amount      decimal.Decimal `json:"amount" example:"1200" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Amount of every materialized entry
	Kind        types.EntryKind `json:"kind" example:"expense" enums:"income,expense"`                                                      // Kind of the materialized entries
	CategoryID  uuid.UUID       `json:"categoryId" example:"0b5f7a4c-6b55-4a3e-8e0a-2f1c0d9e7b21"`                                          // Category of the materialized entries
	SubCategory string          `json:"subCategory" example:"Apartment" default:""`                                                         // Sub category of the materialized entries
	Tags        []string        `json:"tags" example:"home,fixed"`                                                                          // Tags of the materialized entries
	AccountID   *uuid.UUID      `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                                           // Account of the materialized entries
	Note        string          `json:"note" example:"Paid by standing order" default:""`                                                   // Note of the materialized entries, prefixed with [Recurring]
	Frequency   types.Frequency `json:"frequency" example:"monthly" enums:"daily,weekly,monthly,yearly"`                                    // How often the schedule is due
	StartDate   types.Date      `json:"startDate" example:"2024-01-31"`                                                                     // First due date
	Active      *bool           `json:"active" example:"true" default:"true"`                                                               // Inactive schedules are neither materialized nor reminded
}

// model returns the database resource for the editable fields
func (editable ScheduleEditable) model(userID uuid.UUID) models.RecurringSchedule {
	active := true
	if editable.Active != nil {
		active = *editable.Active
	}

	return models.RecurringSchedule{
		UserID:      userID,
		Name:        editable.Name,
		Amount:      editable.Amount,
		Kind:        editable.Kind,
		CategoryID:  editable.CategoryID,
		SubCategory: editable.SubCategory,
		Tags:        editable.Tags,
		AccountID:   editable.AccountID,
		Note:        editable.Note,
		Frequency:   editable.Frequency,
		StartDate:   editable.StartDate,
		Active:      active,
	}
}

func scheduleEditable(model models.RecurringSchedule) ScheduleEditable {
	active := model.Active

	return ScheduleEditable{
		Name:        model.Name,
		Amount:      model.Amount,
		Kind:        model.Kind,
		CategoryID:  model.CategoryID,
		SubCategory: model.SubCategory,
		Tags:        model.Tags,
		AccountID:   model.AccountID,
		Note:        model.Note,
		Frequency:   model.Frequency,
		StartDate:   model.StartDate,
		Active:      &active,
	}
}

type ScheduleLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/users/1e777d24-3f5b-4c43-8000-04f65f895578/schedules/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                     // The schedule itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/users/1e777d24-3f5b-4c43-8000-04f65f895578/transactions?schedule=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Entries materialized from the schedule
}

// Schedule is the API v1 representation of a RecurringSchedule.
type Schedule struct {
	models.DefaultModel
	ScheduleEditable
	NextDueDate types.Date    `json:"nextDueDate" example:"2024-03-31"` // Due date of the next occurrence that is not materialized yet
	Links       ScheduleLinks `json:"links"`
}

func newSchedule(c *gin.Context, model models.RecurringSchedule) Schedule {
	url := userURL(c)

	return Schedule{
		DefaultModel:     model.DefaultModel,
		ScheduleEditable: scheduleEditable(model),
		NextDueDate:      model.NextDueDate,
		Links: ScheduleLinks{
			Self:         fmt.Sprintf("%s/schedules/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/transactions?schedule=%s", url, model.ID),
		},
	}
}

type ScheduleListResponse struct {
	Data  []Schedule `json:"data"`                                                               // List of schedules
	Error *string    `json:"error" example:"the name of a recurring schedule must not be empty"` // The error, if any occurred
}

type ScheduleResponse struct {
	Data  *Schedule `json:"data"`                                                               // Data for the schedule
	Error *string   `json:"error" example:"the name of a recurring schedule must not be empty"` // The error, if any occurred
}

type ScheduleQueryFilter struct {
	Name      string `form:"name"`      // Glob pattern for the name, case insensitive
	Active    *bool  `form:"active"`    // Is the schedule active?
	Frequency string `form:"frequency"` // Frequency of the schedule
}
