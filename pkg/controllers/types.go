package controllers

import (
	"github.com/envelope-zero/expenses/pkg/analytics"
	"github.com/envelope-zero/expenses/pkg/models"
)

// The response types are not generic since swag cannot document generics.

type CategoryResponse struct {
	Success bool            `json:"success" example:"true"` // Always true for successful requests
	Data    models.Category `json:"data"`                   // Data for the category
}

type CategoryListResponse struct {
	Success bool              `json:"success" example:"true"` // Always true for successful requests
	Data    []models.Category `json:"data"`                   // List of categories
}

type ExpenseResponse struct {
	Success bool           `json:"success" example:"true"` // Always true for successful requests
	Data    models.Expense `json:"data"`                   // Data for the expense
}

type ExpenseListResponse struct {
	Success bool             `json:"success" example:"true"` // Always true for successful requests
	Data    []models.Expense `json:"data"`                   // List of expenses
}

type DeleteResponse struct {
	Success bool         `json:"success" example:"true"` // Always true for successful requests
	Data    DeleteObject `json:"data"`                   // The deleted resource
}

type DeleteObject struct {
	ID string `json:"id" example:"exp_1"` // ID of the deleted resource
}

type MonthlySummaryResponse struct {
	Success bool                     `json:"success" example:"true"` // Always true for successful requests
	Data    analytics.MonthlySummary `json:"data"`                   // Summary of the current month
}

type HistoricalDataResponse struct {
	Success bool                       `json:"success" example:"true"` // Always true for successful requests
	Data    []analytics.HistoricalData `json:"data"`                   // Totals of the last months, oldest first
}

type ExpenseQueryFilter struct {
	CategoryID string `form:"categoryId"` // Only expenses of this category
	Month      string `form:"month"`      // Only expenses in this month, formatted as YYYY-MM
	Search     string `form:"search"`     // Glob pattern matched against the description, case insensitive
}
