package controllers_test

import (
	"context"
	"net/http"
	"time"

	"github.com/envelope-zero/expenses/pkg/controllers"
	"github.com/envelope-zero/expenses/pkg/kv/memory"
	"github.com/envelope-zero/expenses/pkg/models"
	"github.com/envelope-zero/expenses/test"
	"golang.org/x/text/currency"
)

func expenseIDs(expenses []models.Expense) []string {
	ids := make([]string, 0, len(expenses))
	for _, e := range expenses {
		ids = append(ids, e.ID)
	}
	return ids
}

func (suite *TestSuiteStandard) listExpenses(query string) []models.Expense {
	r := suite.request(http.MethodGet, "/expenses"+query, nil)
	suite.assertHTTPStatus(&r, http.StatusOK)

	var response controllers.ExpenseListResponse
	suite.decodeResponse(&r, &response)
	suite.True(response.Success)
	return response.Data
}

func (suite *TestSuiteStandard) TestGetExpensesSeeds() {
	r := suite.request(http.MethodGet, "/expenses", nil)
	suite.assertHTTPStatus(&r, http.StatusOK)
	suite.Equal("expenses", r.Header().Get("X-Invalidate"))

	var response controllers.ExpenseListResponse
	suite.decodeResponse(&r, &response)
	suite.Equal([]string{"exp_1", "exp_2", "exp_3", "exp_4", "exp_5"}, expenseIDs(response.Data))
	suite.Equal("2024-05-14T12:00:00.000Z", response.Data[0].Date)
}

func (suite *TestSuiteStandard) TestGetExpensesSortedByDate() {
	for _, e := range []models.Expense{
		{ID: "old", Amount: 100, Description: "Old", CategoryID: "cat_1", Date: "2024-01-01T10:00:00.000Z"},
		{ID: "new", Amount: 100, Description: "New", CategoryID: "cat_1", Date: "2024-05-15T10:00:00.000Z"},
		{ID: "middle", Amount: 100, Description: "Middle", CategoryID: "cat_1", Date: "2024-03-01"},
		{ID: "offset", Amount: 100, Description: "Offset", CategoryID: "cat_1", Date: "2024-05-15T11:00:00+02:00"},
	} {
		_, err := suite.controller.Expenses.Create(context.Background(), e)
		suite.Require().Nil(err)
	}

	// 11:00+02:00 is 09:00 UTC, which is before 10:00 UTC
	suite.Equal([]string{"new", "offset", "middle", "old"}, expenseIDs(suite.listExpenses("")))
}

func (suite *TestSuiteStandard) TestGetExpensesSortedInLocation() {
	suite.controller.Store.Close()
	zone := time.FixedZone("UTC-4", -4*60*60)
	suite.controller = controllers.New(memory.New(), func() time.Time { return now.In(zone) }, currency.EUR)

	for _, e := range []models.Expense{
		{ID: "timestamp", Amount: 100, Description: "Timestamp", CategoryID: "cat_1", Date: "2024-05-10T02:00:00.000Z"},
		{ID: "date", Amount: 100, Description: "Date", CategoryID: "cat_1", Date: "2024-05-10"},
		{ID: "april", Amount: 100, Description: "April", CategoryID: "cat_1", Date: "2024-05-01T02:00:00.000Z"},
	} {
		_, err := suite.controller.Expenses.Create(context.Background(), e)
		suite.Require().Nil(err)
	}

	// 02:00 UTC is May 9th in UTC-4, the bare date is midnight of May 10th there
	suite.Equal([]string{"date", "timestamp", "april"}, expenseIDs(suite.listExpenses("")))
	suite.Equal([]string{"date", "timestamp"}, expenseIDs(suite.listExpenses("?month=2024-05")))
}

func (suite *TestSuiteStandard) TestGetExpensesFilter() {
	tests := []struct {
		name  string
		query string
		ids   []string
	}{
		{"Category", "?categoryId=cat_1", []string{"exp_1", "exp_2"}},
		{"Unknown category", "?categoryId=cat_9", []string{}},
		{"Month", "?month=2024-05", []string{"exp_1", "exp_2", "exp_3", "exp_4", "exp_5"}},
		{"Other month", "?month=2024-04", []string{}},
		{"Search", "?search=train", []string{"exp_3"}},
		{"Search is case insensitive", "?search=MOVIE", []string{"exp_5"}},
		{"Search with glob", "?search=*for*", []string{"exp_5"}},
		{"Search anchored at the start", "?search=dinner*", []string{"exp_2"}},
		{"Combined", "?categoryId=cat_1&search=whole", []string{"exp_1"}},
	}

	// Seed the expenses
	suite.listExpenses("")

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.Equal(tt.ids, expenseIDs(suite.listExpenses(tt.query)))
		})
	}
}

func (suite *TestSuiteStandard) TestGetExpensesInvalidMonth() {
	for _, month := range []string{"2024-13", "2024-5", ""} {
		r := suite.request(http.MethodGet, "/expenses?month="+month, nil)
		suite.assertHTTPStatus(&r, http.StatusBadRequest)
		suite.Equal("Could not parse the specified month, did you use YYYY-MM format?", test.DecodeError(suite.T(), r.Body.Bytes()))
	}
}

func (suite *TestSuiteStandard) TestCreateExpense() {
	r := suite.request(http.MethodPost, "/expenses", map[string]any{
		"description": "Coffee",
		"amount":      350,
		"categoryId":  "cat_1",
		"date":        "2024-05-15T08:00:00.000Z",
	})
	suite.assertHTTPStatus(&r, http.StatusCreated)
	suite.Equal("expenses", r.Header().Get("X-Invalidate"))

	var response controllers.ExpenseResponse
	suite.decodeResponse(&r, &response)
	suite.NotEmpty(response.Data.ID)
	suite.Equal(int64(350), response.Data.Amount)
	suite.Equal("Coffee", response.Data.Description)
	suite.Equal("cat_1", response.Data.CategoryID)
	suite.Equal("2024-05-15T08:00:00.000Z", response.Data.Date)

	suite.Equal([]models.Expense{response.Data}, suite.listExpenses(""))
}

func (suite *TestSuiteStandard) TestCreateExpenseDateOnly() {
	r := suite.request(http.MethodPost, "/expenses", map[string]any{
		"description": "Coffee",
		"amount":      0,
		"categoryId":  "cat_1",
		"date":        "2024-05-01",
	})
	suite.assertHTTPStatus(&r, http.StatusCreated)

	var response controllers.ExpenseResponse
	suite.decodeResponse(&r, &response)
	suite.Equal(int64(0), response.Data.Amount)
	suite.Equal("2024-05-01", response.Data.Date)
}

func (suite *TestSuiteStandard) TestCreateExpenseInvalid() {
	valid := func() map[string]any {
		return map[string]any{
			"description": "Coffee",
			"amount":      350,
			"categoryId":  "cat_1",
			"date":        "2024-05-15T08:00:00.000Z",
		}
	}

	tests := []struct {
		name    string
		modify  func(map[string]any)
		message string
	}{
		{"Missing description", func(m map[string]any) { delete(m, "description") }, "Description is required"},
		{"Empty description", func(m map[string]any) { m["description"] = "" }, models.ErrExpenseDescriptionEmpty.Error()},
		{"Missing amount", func(m map[string]any) { delete(m, "amount") }, models.ErrExpenseAmountMissing.Error()},
		{"Amount is a string", func(m map[string]any) { m["amount"] = "3.50" }, "the field amount must be of type int64"},
		{"Missing category", func(m map[string]any) { delete(m, "categoryId") }, "CategoryID is required"},
		{"Empty category", func(m map[string]any) { m["categoryId"] = " " }, models.ErrExpenseCategoryEmpty.Error()},
		{"Missing date", func(m map[string]any) { delete(m, "date") }, "Date is required"},
		{"Invalid date", func(m map[string]any) { m["date"] = "yesterday" }, models.ErrExpenseDateInvalid.Error()},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			body := valid()
			tt.modify(body)

			r := suite.request(http.MethodPost, "/expenses", body)
			suite.assertHTTPStatus(&r, http.StatusBadRequest)
			suite.Equal(tt.message, test.DecodeError(suite.T(), r.Body.Bytes()))

			ids, err := suite.controller.Expenses.IDs(context.Background())
			suite.Require().Nil(err)
			suite.Empty(ids, "no expense must be stored for an invalid request")
		})
	}
}

func (suite *TestSuiteStandard) TestGetExpense() {
	suite.listExpenses("")

	r := suite.request(http.MethodGet, "/expenses/exp_4", nil)
	suite.assertHTTPStatus(&r, http.StatusOK)

	var response controllers.ExpenseResponse
	suite.decodeResponse(&r, &response)
	suite.Equal(int64(150000), response.Data.Amount)
	suite.Equal("Rent payment", response.Data.Description)

	r = suite.request(http.MethodGet, "/expenses/exp_9", nil)
	suite.assertHTTPStatus(&r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUpdateExpense() {
	suite.listExpenses("")

	updated := models.Expense{ID: "exp_1", Amount: 2600, Description: "Groceries", CategoryID: "cat_1", Date: "2024-05-14T09:00:00.000Z"}
	r := suite.request(http.MethodPut, "/expenses/exp_1", updated)
	suite.assertHTTPStatus(&r, http.StatusOK)
	suite.Equal("expenses", r.Header().Get("X-Invalidate"))

	var response controllers.ExpenseResponse
	suite.decodeResponse(&r, &response)
	suite.Equal(updated, response.Data)

	got, err := suite.controller.Expenses.Get(context.Background(), "exp_1")
	suite.Require().Nil(err)
	suite.Equal(updated, got)
}

func (suite *TestSuiteStandard) TestUpdateExpenseIDMismatch() {
	suite.listExpenses("")
	before, err := suite.controller.Expenses.Get(context.Background(), "exp_1")
	suite.Require().Nil(err)

	r := suite.request(http.MethodPut, "/expenses/exp_1", models.Expense{ID: "exp_2", Amount: 1, Description: "Changed", CategoryID: "cat_1", Date: "2024-05-14"})
	suite.assertHTTPStatus(&r, http.StatusBadRequest)
	suite.Equal(models.ErrIDMismatch.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))

	after, err := suite.controller.Expenses.Get(context.Background(), "exp_1")
	suite.Require().Nil(err)
	suite.Equal(before, after)
}

func (suite *TestSuiteStandard) TestUpdateExpenseInvalid() {
	suite.listExpenses("")

	r := suite.request(http.MethodPut, "/expenses/exp_1", models.Expense{ID: "exp_1", Amount: 1, Description: "Changed", CategoryID: "cat_1", Date: "not a date"})
	suite.assertHTTPStatus(&r, http.StatusBadRequest)
	suite.Equal(models.ErrExpenseDateInvalid.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestUpdateExpenseNotFound() {
	r := suite.request(http.MethodPut, "/expenses/exp_9", models.Expense{ID: "exp_9", Amount: 1, Description: "Changed", CategoryID: "cat_1", Date: "2024-05-14"})
	suite.assertHTTPStatus(&r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	suite.listExpenses("")

	r := suite.request(http.MethodDelete, "/expenses/exp_2", nil)
	suite.assertHTTPStatus(&r, http.StatusOK)
	suite.Equal("expenses", r.Header().Get("X-Invalidate"))

	var response controllers.DeleteResponse
	suite.decodeResponse(&r, &response)
	suite.Equal("exp_2", response.Data.ID)

	suite.Equal([]string{"exp_1", "exp_3", "exp_4", "exp_5"}, expenseIDs(suite.listExpenses("")))

	r = suite.request(http.MethodDelete, "/expenses/exp_2", nil)
	suite.assertHTTPStatus(&r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteCategoryKeepsExpenses() {
	suite.listExpenses("")

	r := suite.request(http.MethodGet, "/categories", nil)
	suite.assertHTTPStatus(&r, http.StatusOK)

	r = suite.request(http.MethodDelete, "/categories/cat_1", nil)
	suite.assertHTTPStatus(&r, http.StatusOK)

	suite.Equal([]string{"exp_1", "exp_2"}, expenseIDs(suite.listExpenses("?categoryId=cat_1")))
}

func (suite *TestSuiteStandard) TestOptionsExpenses() {
	r := suite.request(http.MethodOptions, "/expenses", nil)
	suite.assertHTTPStatus(&r, http.StatusNoContent)
	suite.Equal("OPTIONS, GET, POST", r.Header().Get("allow"))

	r = suite.request(http.MethodOptions, "/expenses/export", nil)
	suite.assertHTTPStatus(&r, http.StatusNoContent)
	suite.Equal("OPTIONS, GET", r.Header().Get("allow"))

	r = suite.request(http.MethodOptions, "/expenses/exp_1", nil)
	suite.assertHTTPStatus(&r, http.StatusNotFound)

	suite.listExpenses("")
	r = suite.request(http.MethodOptions, "/expenses/exp_1", nil)
	suite.assertHTTPStatus(&r, http.StatusNoContent)
	suite.Equal("OPTIONS, GET, PUT, DELETE", r.Header().Get("allow"))
}
