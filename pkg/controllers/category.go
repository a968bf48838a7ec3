package controllers

import (
	"net/http"

	"github.com/envelope-zero/expenses/pkg/httperrors"
	"github.com/envelope-zero/expenses/pkg/httputil"
	"github.com/envelope-zero/expenses/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsCategoryList)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", co.OptionsCategoryDetail)
		r.GET("/:id", co.GetCategory)
		r.PUT("/:id", co.UpdateCategory)
		r.DELETE("/:id", co.DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/categories [options]
func (co Controller) OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		404	{object}	httperrors.HTTPError
// @Param			id	path		string	true	"ID of the category"
// @Router			/categories/{id} [options]
func (co Controller) OptionsCategoryDetail(c *gin.Context) {
	_, err := co.Categories.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		Get categories
// @Description	Returns all categories. If there are none, the default categories are created first.
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	categories, err := co.allCategories(c.Request.Context())
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	respond(c, http.StatusOK, CategoryListResponse{Success: true, Data: categories})
}

// @Summary		Create category
// @Description	Creates a new category
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	httperrors.HTTPError
// @Failure		500			{object}	httperrors.HTTPError
// @Param			category	body		models.CategoryEditable	true	"Category"
// @Router			/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var editable models.CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		httperrors.Handler(c, err)
		return
	}

	category, err := editable.Model()
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	category, err = co.Categories.Create(c.Request.Context(), category)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	respond(c, http.StatusCreated, CategoryResponse{Success: true, Data: category})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		404	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Param			id	path		string	true	"ID of the category"
// @Router			/categories/{id} [get]
func (co Controller) GetCategory(c *gin.Context) {
	category, err := co.Categories.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	respond(c, http.StatusOK, CategoryResponse{Success: true, Data: category})
}

// @Summary		Update category
// @Description	Replaces a category. The ID in the body must match the ID in the path.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	httperrors.HTTPError
// @Failure		404			{object}	httperrors.HTTPError
// @Failure		500			{object}	httperrors.HTTPError
// @Param			id			path		string			true	"ID of the category"
// @Param			category	body		models.Category	true	"Category"
// @Router			/categories/{id} [put]
func (co Controller) UpdateCategory(c *gin.Context) {
	var category models.Category
	if err := httputil.BindData(c, &category); err != nil {
		httperrors.Handler(c, err)
		return
	}

	if category.ID != c.Param("id") {
		httperrors.Handler(c, models.ErrIDMismatch)
		return
	}

	category, err := category.Validate()
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	category, err = co.Categories.Update(c.Request.Context(), category)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	respond(c, http.StatusOK, CategoryResponse{Success: true, Data: category})
}

// @Summary		Delete category
// @Description	Deletes a category. Expenses of the category are kept.
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	DeleteResponse
// @Failure		404	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Param			id	path		string	true	"ID of the category"
// @Router			/categories/{id} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	id := c.Param("id")

	deleted, err := co.Categories.Delete(c.Request.Context(), id)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	if !deleted {
		httperrors.NotFound(c)
		return
	}

	respond(c, http.StatusOK, DeleteResponse{Success: true, Data: DeleteObject{ID: id}})
}
