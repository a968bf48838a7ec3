package controllers

import (
	"net/http"

	"github.com/envelope-zero/expenses/pkg/analytics"
	"github.com/envelope-zero/expenses/pkg/httperrors"
	"github.com/envelope-zero/expenses/pkg/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterSummaryRoutes registers the routes for summaries with
// the RouterGroup that is passed.
func (co Controller) RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/monthly", co.OptionsMonthlySummary)
	r.GET("/monthly", co.GetMonthlySummary)
}

// RegisterAnalyticsRoutes registers the routes for analytics with
// the RouterGroup that is passed.
func (co Controller) RegisterAnalyticsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/historical", co.OptionsHistoricalData)
	r.GET("/historical", co.GetHistoricalData)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Router			/summary/monthly [options]
func (co Controller) OptionsMonthlySummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Monthly summary
// @Description	Returns the total spending of the current month and the totals per category, highest first
// @Tags			Summary
// @Produce		json
// @Success		200	{object}	MonthlySummaryResponse
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/summary/monthly [get]
func (co Controller) GetMonthlySummary(c *gin.Context) {
	expenses, err := co.allExpenses(c.Request.Context())
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	respond(c, http.StatusOK, MonthlySummaryResponse{
		Success: true,
		Data:    analytics.Monthly(expenses, co.Now()),
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analytics
// @Success		204
// @Router			/analytics/historical [options]
func (co Controller) OptionsHistoricalData(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Historical data
// @Description	Returns the total spending of the last six months, oldest first
// @Tags			Analytics
// @Produce		json
// @Success		200	{object}	HistoricalDataResponse
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/analytics/historical [get]
func (co Controller) GetHistoricalData(c *gin.Context) {
	expenses, err := co.allExpenses(c.Request.Context())
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	respond(c, http.StatusOK, HistoricalDataResponse{
		Success: true,
		Data:    analytics.History(expenses, co.Now(), analytics.HistoryMonths),
	})
}
