package controllers_test

import (
	"context"
	"net/http"

	"github.com/envelope-zero/expenses/pkg/controllers"
	"github.com/envelope-zero/expenses/pkg/httputil"
	"github.com/envelope-zero/expenses/pkg/models"
	"github.com/envelope-zero/expenses/test"
)

func (suite *TestSuiteStandard) TestGetCategoriesSeeds() {
	r := suite.request(http.MethodGet, "/categories", nil)
	suite.assertHTTPStatus(&r, http.StatusOK)
	suite.Equal("categories", r.Header().Get("X-Invalidate"))

	var response controllers.CategoryListResponse
	suite.decodeResponse(&r, &response)
	suite.True(response.Success)
	suite.Equal(models.SeedCategories(), response.Data)

	// Seeding happens only once
	r = suite.request(http.MethodGet, "/categories", nil)
	suite.assertHTTPStatus(&r, http.StatusOK)
	suite.Empty(r.Header().Get("X-Invalidate"))
}

func (suite *TestSuiteStandard) TestCreateCategory() {
	r := suite.request(http.MethodPost, "/categories", map[string]any{"name": "Travel"})
	suite.assertHTTPStatus(&r, http.StatusCreated)
	suite.Equal("categories", r.Header().Get("X-Invalidate"))

	var response controllers.CategoryResponse
	suite.decodeResponse(&r, &response)
	suite.True(response.Success)
	suite.NotEmpty(response.Data.ID)
	suite.Equal("Travel", response.Data.Name)
	suite.Equal(models.DefaultColor, response.Data.Color)

	// The index is not empty anymore, so no seeds are added
	r = suite.request(http.MethodGet, "/categories", nil)
	var list controllers.CategoryListResponse
	suite.decodeResponse(&r, &list)
	suite.Equal([]models.Category{response.Data}, list.Data)
}

func (suite *TestSuiteStandard) TestCreateCategoryWithColor() {
	r := suite.request(http.MethodPost, "/categories", map[string]any{"name": "Travel", "color": "#123456"})
	suite.assertHTTPStatus(&r, http.StatusCreated)

	var response controllers.CategoryResponse
	suite.decodeResponse(&r, &response)
	suite.Equal("#123456", response.Data.Color)
}

func (suite *TestSuiteStandard) TestCreateCategoryInvalid() {
	tests := []struct {
		name    string
		body    any
		message string
	}{
		{"Empty name", map[string]any{"name": ""}, models.ErrCategoryNameEmpty.Error()},
		{"Whitespace name", map[string]any{"name": "   "}, models.ErrCategoryNameEmpty.Error()},
		{"Missing name", map[string]any{"color": "#123456"}, "Name is required"},
		{"Name is a number", `{"name": 5}`, "the field name must be of type string"},
		{"Empty body", "", httputil.ErrRequestBodyEmpty.Error()},
		{"Broken JSON", `{"name": "Travel"`, httputil.ErrInvalidBody.Error()},
		{"Color is not hex", map[string]any{"name": "Travel", "color": "blue"}, "Color must be a hex color"},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := suite.request(http.MethodPost, "/categories", tt.body)
			suite.assertHTTPStatus(&r, http.StatusBadRequest)
			suite.Equal(tt.message, test.DecodeError(suite.T(), r.Body.Bytes()))
			suite.Empty(r.Header().Get("X-Invalidate"))

			ids, err := suite.controller.Categories.IDs(context.Background())
			suite.Require().Nil(err)
			suite.Empty(ids, "no category must be stored for an invalid request")
		})
	}
}

func (suite *TestSuiteStandard) TestGetCategory() {
	r := suite.request(http.MethodGet, "/categories", nil)
	suite.assertHTTPStatus(&r, http.StatusOK)

	r = suite.request(http.MethodGet, "/categories/cat_2", nil)
	suite.assertHTTPStatus(&r, http.StatusOK)

	var response controllers.CategoryResponse
	suite.decodeResponse(&r, &response)
	suite.Equal(models.Category{ID: "cat_2", Name: "Transportation", Color: "#36A2EB"}, response.Data)
}

func (suite *TestSuiteStandard) TestGetCategoryNotFound() {
	r := suite.request(http.MethodGet, "/categories/does-not-exist", nil)
	suite.assertHTTPStatus(&r, http.StatusNotFound)
	suite.Equal("not found", test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestUpdateCategory() {
	r := suite.request(http.MethodGet, "/categories", nil)
	suite.assertHTTPStatus(&r, http.StatusOK)

	r = suite.request(http.MethodPut, "/categories/cat_1", models.Category{ID: "cat_1", Name: "Groceries", Color: "#000000"})
	suite.assertHTTPStatus(&r, http.StatusOK)
	suite.Equal("categories", r.Header().Get("X-Invalidate"))

	var response controllers.CategoryResponse
	suite.decodeResponse(&r, &response)
	suite.Equal(models.Category{ID: "cat_1", Name: "Groceries", Color: "#000000"}, response.Data)

	r = suite.request(http.MethodGet, "/categories/cat_1", nil)
	suite.decodeResponse(&r, &response)
	suite.Equal("Groceries", response.Data.Name)
}

func (suite *TestSuiteStandard) TestUpdateCategoryDefaultsColor() {
	r := suite.request(http.MethodGet, "/categories", nil)
	suite.assertHTTPStatus(&r, http.StatusOK)

	r = suite.request(http.MethodPut, "/categories/cat_1", map[string]any{"id": "cat_1", "name": "Groceries"})
	suite.assertHTTPStatus(&r, http.StatusOK)

	var response controllers.CategoryResponse
	suite.decodeResponse(&r, &response)
	suite.Equal(models.DefaultColor, response.Data.Color)
}

func (suite *TestSuiteStandard) TestUpdateCategoryIDMismatch() {
	r := suite.request(http.MethodGet, "/categories", nil)
	suite.assertHTTPStatus(&r, http.StatusOK)

	for _, body := range []any{
		map[string]any{"id": "cat_2", "name": "Groceries"},
		map[string]any{"name": "Groceries"},
	} {
		r = suite.request(http.MethodPut, "/categories/cat_1", body)
		suite.assertHTTPStatus(&r, http.StatusBadRequest)
		suite.Equal(models.ErrIDMismatch.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
	}

	// Neither category was changed
	for _, want := range models.SeedCategories()[:2] {
		got, err := suite.controller.Categories.Get(context.Background(), want.ID)
		suite.Require().Nil(err)
		suite.Equal(want, got)
	}
}

func (suite *TestSuiteStandard) TestUpdateCategoryInvalid() {
	r := suite.request(http.MethodGet, "/categories", nil)
	suite.assertHTTPStatus(&r, http.StatusOK)

	r = suite.request(http.MethodPut, "/categories/cat_1", map[string]any{"id": "cat_1", "name": ""})
	suite.assertHTTPStatus(&r, http.StatusBadRequest)
	suite.Equal(models.ErrCategoryNameEmpty.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))

	r = suite.request(http.MethodPut, "/categories/cat_1", `{"id": "cat_1", "name": ["Groceries"]}`)
	suite.assertHTTPStatus(&r, http.StatusBadRequest)

	r = suite.request(http.MethodPut, "/categories/cat_1", map[string]any{"id": "cat_1", "name": "Groceries", "color": "#12345g"})
	suite.assertHTTPStatus(&r, http.StatusBadRequest)
	suite.Equal("Color must be a hex color", test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestUpdateCategoryNotFound() {
	r := suite.request(http.MethodPut, "/categories/does-not-exist", models.Category{ID: "does-not-exist", Name: "Groceries"})
	suite.assertHTTPStatus(&r, http.StatusNotFound)

	exists, err := suite.controller.Categories.Exists(context.Background(), "does-not-exist")
	suite.Require().Nil(err)
	suite.False(exists, "updating must not create a category")
}

func (suite *TestSuiteStandard) TestDeleteCategory() {
	r := suite.request(http.MethodGet, "/categories", nil)
	suite.assertHTTPStatus(&r, http.StatusOK)

	r = suite.request(http.MethodDelete, "/categories/cat_3", nil)
	suite.assertHTTPStatus(&r, http.StatusOK)
	suite.Equal("categories", r.Header().Get("X-Invalidate"))

	var response controllers.DeleteResponse
	suite.decodeResponse(&r, &response)
	suite.True(response.Success)
	suite.Equal("cat_3", response.Data.ID)

	r = suite.request(http.MethodGet, "/categories/cat_3", nil)
	suite.assertHTTPStatus(&r, http.StatusNotFound)

	r = suite.request(http.MethodDelete, "/categories/cat_3", nil)
	suite.assertHTTPStatus(&r, http.StatusNotFound)

	r = suite.request(http.MethodGet, "/categories", nil)
	var list controllers.CategoryListResponse
	suite.decodeResponse(&r, &list)
	suite.Len(list.Data, 5)
}

func (suite *TestSuiteStandard) TestOptionsCategories() {
	r := suite.request(http.MethodOptions, "/categories", nil)
	suite.assertHTTPStatus(&r, http.StatusNoContent)
	suite.Equal("OPTIONS, GET, POST", r.Header().Get("allow"))

	r = suite.request(http.MethodOptions, "/categories/cat_1", nil)
	suite.assertHTTPStatus(&r, http.StatusNotFound)

	r = suite.request(http.MethodGet, "/categories", nil)
	suite.assertHTTPStatus(&r, http.StatusOK)

	r = suite.request(http.MethodOptions, "/categories/cat_1", nil)
	suite.assertHTTPStatus(&r, http.StatusNoContent)
	suite.Equal("OPTIONS, GET, PUT, DELETE", r.Header().Get("allow"))
}
