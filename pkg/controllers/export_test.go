package controllers_test

import (
	"context"
	"encoding/csv"
	"net/http"
	"strings"

	"github.com/envelope-zero/expenses/pkg/models"
)

func (suite *TestSuiteStandard) export() [][]string {
	r := suite.request(http.MethodGet, "/expenses/export", nil)
	suite.assertHTTPStatus(&r, http.StatusOK)
	suite.Equal("text/csv; charset=utf-8", r.Header().Get("Content-Type"))
	suite.Contains(r.Header().Get("Content-Disposition"), "expenses.csv")

	records, err := csv.NewReader(strings.NewReader(r.Body.String())).ReadAll()
	suite.Require().Nil(err)
	return records
}

func (suite *TestSuiteStandard) TestExportExpenses() {
	records := suite.export()

	suite.Require().Len(records, 6)
	suite.Equal([]string{"id", "date", "description", "category", "amount", "display"}, records[0])
	suite.Equal([]string{"exp_1", "2024-05-14", "Groceries from Whole Foods", "Food & Dining", "25.50", "€ 25.50"}, records[1])
	suite.Equal([]string{"exp_4", "2024-05-10", "Rent payment", "Housing", "1500.00", "€ 1500.00"}, records[4])
}

func (suite *TestSuiteStandard) TestExportExpensesUnknownCategory() {
	_, err := suite.controller.Expenses.Create(context.Background(), models.Expense{
		ID:          "exp_x",
		Amount:      -5,
		Description: `Refund, "partial"`,
		CategoryID:  "cat_gone",
		Date:        "2024-05-15T10:00:00.000Z",
	})
	suite.Require().Nil(err)

	records := suite.export()

	suite.Require().Len(records, 2)
	suite.Equal([]string{"exp_x", "2024-05-15", `Refund, "partial"`, "cat_gone", "-0.05", "€ -0.05"}, records[1])
}
