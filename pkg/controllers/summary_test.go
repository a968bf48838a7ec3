package controllers_test

import (
	"context"
	"net/http"

	"github.com/envelope-zero/expenses/pkg/analytics"
	"github.com/envelope-zero/expenses/pkg/controllers"
	"github.com/envelope-zero/expenses/pkg/models"
)

func (suite *TestSuiteStandard) TestGetMonthlySummary() {
	r := suite.request(http.MethodGet, "/summary/monthly", nil)
	suite.assertHTTPStatus(&r, http.StatusOK)

	var response controllers.MonthlySummaryResponse
	suite.decodeResponse(&r, &response)
	suite.True(response.Success)
	suite.Equal(analytics.MonthlySummary{
		TotalSpending: 161250,
		ExpensesByCategory: []analytics.CategoryTotal{
			{CategoryID: "cat_3", Total: 150000},
			{CategoryID: "cat_4", Total: 4500},
			{CategoryID: "cat_1", Total: 3750},
			{CategoryID: "cat_2", Total: 3000},
		},
	}, response.Data)
}

func (suite *TestSuiteStandard) TestGetMonthlySummaryOnlyCurrentMonth() {
	for _, e := range []models.Expense{
		{Amount: 1000, Description: "Last day of April", CategoryID: "cat_1", Date: "2024-04-30T23:59:59.999Z"},
		{Amount: 2000, Description: "First day of May", CategoryID: "cat_1", Date: "2024-05-01T00:00:00.000Z"},
		{Amount: 4000, Description: "First day of June", CategoryID: "cat_1", Date: "2024-06-01T00:00:00.000Z"},
	} {
		_, err := suite.controller.Expenses.Create(context.Background(), e)
		suite.Require().Nil(err)
	}

	r := suite.request(http.MethodGet, "/summary/monthly", nil)
	suite.assertHTTPStatus(&r, http.StatusOK)

	var response controllers.MonthlySummaryResponse
	suite.decodeResponse(&r, &response)
	suite.Equal(int64(2000), response.Data.TotalSpending)
	suite.Equal([]analytics.CategoryTotal{{CategoryID: "cat_1", Total: 2000}}, response.Data.ExpensesByCategory)
}

func (suite *TestSuiteStandard) TestGetMonthlySummaryEmpty() {
	_, err := suite.controller.Expenses.Create(context.Background(), models.Expense{
		Amount: 1000, Description: "Old", CategoryID: "cat_1", Date: "2023-01-01",
	})
	suite.Require().Nil(err)

	r := suite.request(http.MethodGet, "/summary/monthly", nil)
	suite.assertHTTPStatus(&r, http.StatusOK)
	suite.JSONEq(`{"success": true, "data": {"totalSpending": 0, "expensesByCategory": []}}`, r.Body.String())
}

func (suite *TestSuiteStandard) TestGetHistoricalData() {
	r := suite.request(http.MethodGet, "/analytics/historical", nil)
	suite.assertHTTPStatus(&r, http.StatusOK)

	var response controllers.HistoricalDataResponse
	suite.decodeResponse(&r, &response)
	suite.True(response.Success)
	suite.Equal([]analytics.HistoricalData{
		{Month: "Dec 2023", Total: 0},
		{Month: "Jan 2024", Total: 0},
		{Month: "Feb 2024", Total: 0},
		{Month: "Mar 2024", Total: 0},
		{Month: "Apr 2024", Total: 0},
		{Month: "May 2024", Total: 161250},
	}, response.Data)
}

func (suite *TestSuiteStandard) TestGetHistoricalDataSpreadOverMonths() {
	for _, e := range []models.Expense{
		{Amount: 100, Description: "Too old", CategoryID: "cat_1", Date: "2023-11-30T12:00:00.000Z"},
		{Amount: 200, Description: "December", CategoryID: "cat_1", Date: "2023-12-01T00:00:00.000Z"},
		{Amount: 300, Description: "March", CategoryID: "cat_2", Date: "2024-03-15"},
		{Amount: 400, Description: "March again", CategoryID: "cat_3", Date: "2024-03-31T23:00:00.000Z"},
	} {
		_, err := suite.controller.Expenses.Create(context.Background(), e)
		suite.Require().Nil(err)
	}

	r := suite.request(http.MethodGet, "/analytics/historical", nil)
	suite.assertHTTPStatus(&r, http.StatusOK)

	var response controllers.HistoricalDataResponse
	suite.decodeResponse(&r, &response)
	suite.Equal([]analytics.HistoricalData{
		{Month: "Dec 2023", Total: 200},
		{Month: "Jan 2024", Total: 0},
		{Month: "Feb 2024", Total: 0},
		{Month: "Mar 2024", Total: 700},
		{Month: "Apr 2024", Total: 0},
		{Month: "May 2024", Total: 0},
	}, response.Data)
}

func (suite *TestSuiteStandard) TestOptionsSummaries() {
	for _, path := range []string{"/summary/monthly", "/analytics/historical"} {
		r := suite.request(http.MethodOptions, path, nil)
		suite.assertHTTPStatus(&r, http.StatusNoContent)
		suite.Equal("OPTIONS, GET", r.Header().Get("allow"))
	}
}
