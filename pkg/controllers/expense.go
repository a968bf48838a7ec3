package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/envelope-zero/expenses/pkg/httperrors"
	"github.com/envelope-zero/expenses/pkg/httputil"
	"github.com/envelope-zero/expenses/pkg/models"
	"github.com/envelope-zero/expenses/pkg/types"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsExpenseList)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpense)
	}

	// Export. Registered before the ID routes so that it is not
	// shadowed by them
	{
		r.OPTIONS("/export", co.OptionsExpenseExport)
		r.GET("/export", co.ExportExpenses)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", co.OptionsExpenseDetail)
		r.GET("/:id", co.GetExpense)
		r.PUT("/:id", co.UpdateExpense)
		r.DELETE("/:id", co.DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/expenses [options]
func (co Controller) OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		404	{object}	httperrors.HTTPError
// @Param			id	path		string	true	"ID of the expense"
// @Router			/expenses/{id} [options]
func (co Controller) OptionsExpenseDetail(c *gin.Context) {
	_, err := co.Expenses.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		Get expenses
// @Description	Returns all expenses, newest first. If there are none, the default expenses are created first.
// @Tags			Expenses
// @Produce		json
// @Success		200			{object}	ExpenseListResponse
// @Failure		400			{object}	httperrors.HTTPError
// @Failure		500			{object}	httperrors.HTTPError
// @Param			categoryId	query		string	false	"Filter by category ID"
// @Param			month		query		string	false	"Filter by month, formatted as YYYY-MM"
// @Param			search		query		string	false	"Glob pattern matched against the description"
// @Router			/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.ShouldBindQuery(&filter)

	// Get the fields that we are filtering for
	setFields := httputil.GetURLFields(c.Request.URL, filter)

	var month types.Month
	if slices.Contains(setFields, "Month") {
		m, err := types.ParseMonth(filter.Month, co.Now().Location())
		if err != nil {
			httperrors.InvalidMonth(c)
			return
		}
		month = m
	}

	expenses, err := co.allExpenses(c.Request.Context())
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	pattern := searchPattern(filter.Search)
	expenses = slices.DeleteFunc(expenses, func(e models.Expense) bool {
		if slices.Contains(setFields, "CategoryID") && e.CategoryID != filter.CategoryID {
			return true
		}

		if !month.IsZero() {
			t, err := e.TimeIn(co.Now().Location())
			if err != nil || !month.Contains(t) {
				return true
			}
		}

		if slices.Contains(setFields, "Search") && !glob.Glob(pattern, strings.ToLower(e.Description)) {
			return true
		}

		return false
	})

	sortByDate(expenses, co.Now().Location())
	respond(c, http.StatusOK, ExpenseListResponse{Success: true, Data: expenses})
}

// @Summary		Create expense
// @Description	Creates a new expense
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			expense	body		models.ExpenseEditable	true	"Expense"
// @Router			/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var editable models.ExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		httperrors.Handler(c, err)
		return
	}

	expense, err := editable.Model()
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	expense, err = co.Expenses.Create(c.Request.Context(), expense)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	respond(c, http.StatusCreated, ExpenseResponse{Success: true, Data: expense})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		404	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Param			id	path		string	true	"ID of the expense"
// @Router			/expenses/{id} [get]
func (co Controller) GetExpense(c *gin.Context) {
	expense, err := co.Expenses.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	respond(c, http.StatusOK, ExpenseResponse{Success: true, Data: expense})
}

// @Summary		Update expense
// @Description	Replaces an expense. The ID in the body must match the ID in the path.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		404		{object}	httperrors.HTTPError
// @Failure		500		{object}	httperrors.HTTPError
// @Param			id		path		string			true	"ID of the expense"
// @Param			expense	body		models.Expense	true	"Expense"
// @Router			/expenses/{id} [put]
func (co Controller) UpdateExpense(c *gin.Context) {
	var expense models.Expense
	if err := httputil.BindData(c, &expense); err != nil {
		httperrors.Handler(c, err)
		return
	}

	if expense.ID != c.Param("id") {
		httperrors.Handler(c, models.ErrIDMismatch)
		return
	}

	expense, err := expense.Validate()
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	expense, err = co.Expenses.Update(c.Request.Context(), expense)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	respond(c, http.StatusOK, ExpenseResponse{Success: true, Data: expense})
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	DeleteResponse
// @Failure		404	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Param			id	path		string	true	"ID of the expense"
// @Router			/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	id := c.Param("id")

	deleted, err := co.Expenses.Delete(c.Request.Context(), id)
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

// searchPattern returns the glob pattern for a search term. Terms without
// a wildcard match anywhere in the description.
func searchPattern(search string) string {
	search = strings.ToLower(search)
	if !strings.Contains(search, glob.GLOB) {
		return glob.GLOB + search + glob.GLOB
	}

	return search
}

// sortByDate sorts expenses newest first. Bare dates are midnight in loc.
// Expenses with unparseable dates are sorted last, keeping their order.
func sortByDate(expenses []models.Expense, loc *time.Location) {
	slices.SortStableFunc(expenses, func(a, b models.Expense) int {
		ta, errA := a.TimeIn(loc)
		tb, errB := b.TimeIn(loc)

		switch {
		case errA != nil && errB != nil:
			return 0
		case errA != nil:
			return 1
		case errB != nil:
			return -1
		}

		return tb.Compare(ta)
	})
}

// dateIn formats the date of an expense as YYYY-MM-DD in loc. Unparseable
// dates are returned unchanged.
func dateIn(e models.Expense, loc *time.Location) string {
	t, err := e.TimeIn(loc)
	if err != nil {
		return e.Date
	}

	return t.In(loc).Format(time.DateOnly)
}
