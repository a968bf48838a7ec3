package models

import (
	"strings"
	"time"

	"github.com/envelope-zero/expenses/pkg/entity"
)

// DateFormat is the format used for dates written by the server.
const DateFormat = "2006-01-02T15:04:05.000Z07:00"

// Expense is a single expense.
type Expense struct {
	ID          string `json:"id" example:"exp_1"`                               // ID of the expense
	Amount      int64  `json:"amount" example:"2550"`                            // Amount in cents
	Description string `json:"description" example:"Groceries from Whole Foods"` // What the money was spent on
	CategoryID  string `json:"categoryId" example:"cat_1"`                       // ID of the category of the expense
	Date        string `json:"date" example:"2024-05-12T10:11:12.000Z"`          // ISO 8601 timestamp of the expense
}

func (e Expense) GetID() string {
	return e.ID
}

func (e Expense) WithID(id string) Expense {
	e.ID = id
	return e
}

// Time returns the parsed date of the expense. Dates without a time are
// interpreted in UTC.
func (e Expense) Time() (time.Time, error) {
	return ParseDate(e.Date, time.UTC)
}

// TimeIn returns the parsed date of the expense. Dates without a time are
// interpreted in loc.
func (e Expense) TimeIn(loc *time.Location) (time.Time, error) {
	return ParseDate(e.Date, loc)
}

// Validate checks the expense.
func (e Expense) Validate() (Expense, error) {
	if strings.TrimSpace(e.Description) == "" {
		return e, ErrExpenseDescriptionEmpty
	}

	if strings.TrimSpace(e.CategoryID) == "" {
		return e, ErrExpenseCategoryEmpty
	}

	if _, err := e.Time(); err != nil {
		return e, err
	}

	return e, nil
}

// ParseDate parses an RFC 3339 timestamp or a YYYY-MM-DD date in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}

	t, err := time.ParseInLocation(time.DateOnly, s, loc)
	if err != nil {
		return time.Time{}, ErrExpenseDateInvalid
	}

	return t, nil
}

// ExpenseEditable is the request body for creating an expense.
type ExpenseEditable struct {
	Description *string `json:"description" binding:"required" example:"Groceries from Whole Foods"` // What the money was spent on
	Amount      *int64  `json:"amount" example:"2550"`                                               // Amount in cents
	CategoryID  *string `json:"categoryId" binding:"required" example:"cat_1"`                       // ID of the category of the expense
	Date        *string `json:"date" binding:"required" example:"2024-05-12T10:11:12.000Z"`          // ISO 8601 timestamp of the expense
}

// Model returns a validated expense for the editable fields.
func (e ExpenseEditable) Model() (Expense, error) {
	if e.Description == nil {
		return Expense{}, ErrExpenseDescriptionEmpty
	}

	if e.Amount == nil {
		return Expense{}, ErrExpenseAmountMissing
	}

	if e.CategoryID == nil {
		return Expense{}, ErrExpenseCategoryEmpty
	}

	if e.Date == nil {
		return Expense{}, ErrExpenseDateInvalid
	}

	return Expense{
		Description: *e.Description,
		Amount:      *e.Amount,
		CategoryID:  *e.CategoryID,
		Date:        *e.Date,
	}.Validate()
}

// ExpenseConfig returns the entity configuration for expenses. Seed
// expenses are dated relative to now.
func ExpenseConfig(now func() time.Time) entity.Config[Expense] {
	return entity.Config[Expense]{
		Name:      "expense",
		IndexName: "expenses",
		Default:   Expense{},
		Seed: func() []Expense {
			return SeedExpenses(now())
		},
	}
}

// SeedExpenses returns the expenses a new store starts with.
func SeedExpenses(now time.Time) []Expense {
	daysAgo := func(n int) string {
		return now.AddDate(0, 0, -n).UTC().Format(DateFormat)
	}

	return []Expense{
		{ID: "exp_1", Amount: 2550, Description: "Groceries from Whole Foods", CategoryID: "cat_1", Date: daysAgo(1)},
		{ID: "exp_2", Amount: 1200, Description: "Dinner at Italian restaurant", CategoryID: "cat_1", Date: daysAgo(2)},
		{ID: "exp_3", Amount: 3000, Description: "Monthly train pass", CategoryID: "cat_2", Date: daysAgo(3)},
		{ID: "exp_4", Amount: 150000, Description: "Rent payment", CategoryID: "cat_3", Date: daysAgo(5)},
		{ID: "exp_5", Amount: 4500, Description: "Movie tickets for two", CategoryID: "cat_4", Date: daysAgo(6)},
	}
}
