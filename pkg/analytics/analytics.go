// Package analytics aggregates expenses into monthly summaries.
package analytics

import (
	"strings"
	"time"

	"github.com/envelope-zero/expenses/pkg/models"
	"github.com/envelope-zero/expenses/pkg/types"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// HistoryMonths is the number of months returned by the historical endpoint.
const HistoryMonths = 6

type CategoryTotal struct {
	CategoryID string `json:"categoryId" example:"cat_1"` // ID of the category
	Total      int64  `json:"total" example:"3750"`       // Sum of the amounts in cents
}

type MonthlySummary struct {
	TotalSpending      int64           `json:"totalSpending" example:"3750"` // Sum of all amounts of the month in cents
	ExpensesByCategory []CategoryTotal `json:"expensesByCategory"`           // Totals per category, highest first
}

type HistoricalData struct {
	Month string `json:"month" example:"Jan 2024"` // Label of the month
	Total int64  `json:"total" example:"161250"`   // Sum of all amounts of the month in cents
}

// Monthly sums up the expenses in the calendar month of now, in now's location.
// Expenses with unparseable dates are skipped.
func Monthly(expenses []models.Expense, now time.Time) MonthlySummary {
	month := types.MonthOf(now)
	summary := MonthlySummary{ExpensesByCategory: []CategoryTotal{}}

	totals := make(map[string]int64)
	for _, e := range expenses {
		t, err := e.TimeIn(now.Location())
		if err != nil {
			log.Debug().Str("expense", e.ID).Str("date", e.Date).Msg("skipping expense with invalid date")
			continue
		}

		if !month.Contains(t) {
			continue
		}

		summary.TotalSpending += e.Amount
		totals[e.CategoryID] += e.Amount
	}

	for id, total := range totals {
		summary.ExpensesByCategory = append(summary.ExpensesByCategory, CategoryTotal{CategoryID: id, Total: total})
	}

	slices.SortFunc(summary.ExpensesByCategory, func(a, b CategoryTotal) int {
		if a.Total != b.Total {
			if a.Total > b.Total {
				return -1
			}
			return 1
		}
		return strings.Compare(a.CategoryID, b.CategoryID)
	})

	return summary
}

// History returns the totals of the last months calendar months, oldest
// first, ending with the month of now. Months without expenses have a zero
// total.
func History(expenses []models.Expense, now time.Time, months int) []HistoricalData {
	if months <= 0 {
		return []HistoricalData{}
	}

	current := types.MonthOf(now)
	first := current.AddDate(0, -(months - 1))

	data := make([]HistoricalData, months)
	for i := range data {
		data[i].Month = first.AddDate(0, i).Label()
	}

	for _, e := range expenses {
		t, err := e.TimeIn(now.Location())
		if err != nil {
			log.Debug().Str("expense", e.ID).Str("date", e.Date).Msg("skipping expense with invalid date")
			continue
		}

		m := types.MonthOf(t.In(now.Location()))
		if m.Before(first) || m.After(current) {
			continue
		}

		i := monthsBetween(first, m)
		data[i].Total += e.Amount
	}

	return data
}

func monthsBetween(from, to types.Month) int {
	f, t := time.Time(from), time.Time(to)
	return (t.Year()-f.Year())*12 + int(t.Month()) - int(f.Month())
}
