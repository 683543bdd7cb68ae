package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tally-finance/backend/internal/httputil"
	"github.com/tally-finance/backend/internal/models"
)

type CategoryEditable struct {
	Name string `json:"name" example:"Groceries"`                     // Name of the category, unique per user
	Note string `json:"note" example:"Food and household" default:""` // A note about the category
}

// Category is the API v1 representation of a Category.
type Category struct {
	models.DefaultModel
	CategoryEditable
	Links struct {
		Transactions string `json:"transactions" example:"https://example.com/api/v1/users/1e777d24-3f5b-4c43-8000-04f65f895578/transactions?category=0b5f7a4c-6b55-4a3e-8e0a-2f1c0d9e7b21"` // Entries of the category
	} `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	category := Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name: model.Name,
			Note: model.Note,
		},
	}
	category.Links.Transactions = fmt.Sprintf("%s/transactions?category=%s", userURL(c), model.ID)
	return category
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                                          // List of categories
	Error *string    `json:"error" example:"the category name must be unique for the user"` // The error, if any occurred
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the category
	Error *string   `json:"error" example:"the category name must be unique for the user"` // The error, if any occurred
}

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCategoryList)
	r.GET("", co.GetCategories)
	r.POST("", co.CreateCategory)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Param			userId	path	string	true	"ID of the user"
// @Router			/v1/users/{userId}/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Create category
// @Description	Creates a new category. Budget alerts and bill reminders are named after it.
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		500			{object}	CategoryResponse
// @Param			userId		path		string				true	"ID of the user"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/users/{userId}/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	category := models.Category{
		UserID: userID(c),
		Name:   editable.Name,
		Note:   editable.Note,
	}
	if err := co.Store.CreateCategory(c.Request.Context(), &category); err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &s})
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusCreated, CategoryResponse{Data: &data})
}

// @Summary		List categories
// @Description	Returns the categories of the user
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	CategoryListResponse
// @Failure		400		{object}	CategoryListResponse
// @Failure		500		{object}	CategoryListResponse
// @Param			userId	path		string	true	"ID of the user"
// @Router			/v1/users/{userId}/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	categories, err := co.Store.Categories(c.Request.Context(), userID(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{Error: &s})
		return
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		data = append(data, newCategory(c, category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}
