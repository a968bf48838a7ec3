package controllers

import (
	"encoding/csv"
	"net/http"

	"github.com/envelope-zero/expenses/pkg/httperrors"
	"github.com/envelope-zero/expenses/pkg/httputil"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var exportHeader = []string{"id", "date", "description", "category", "amount", "display"}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/expenses/export [options]
func (co Controller) OptionsExpenseExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export expenses
// @Description	Returns all expenses as CSV, newest first. Amounts are decimals, the display column formats them with the symbol of the configured currency.
// @Tags			Expenses
// @Produce		text/csv
// @Success		200
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/expenses/export [get]
func (co Controller) ExportExpenses(c *gin.Context) {
	expenses, err := co.allExpenses(c.Request.Context())
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	categories, err := co.allCategories(c.Request.Context())
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	names := make(map[string]string, len(categories))
	for _, category := range categories {
		names[category.ID] = category.Name
	}

	loc := co.Now().Location()
	sortByDate(expenses, loc)
	printer := message.NewPrinter(language.English)

	c.Header("Content-Disposition", `attachment; filename="expenses.csv"`)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	records := make([][]string, 0, len(expenses)+1)
	records = append(records, exportHeader)

	for _, e := range expenses {
		category, ok := names[e.CategoryID]
		if !ok {
			category = e.CategoryID
		}

		amount := decimal.New(e.Amount, -2)
		records = append(records, []string{
			e.ID,
			dateIn(e, loc),
			e.Description,
			category,
			amount.StringFixed(2),
			printer.Sprint(currency.Symbol(co.Currency.Amount(amount.InexactFloat64()))),
		})
	}

	// The status is already sent, so errors can only be logged
	if err := w.WriteAll(records); err != nil {
		log.Error().Err(err).Msg("writing CSV export")
	}
}
