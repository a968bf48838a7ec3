package root

import (
	"net/http"

	"github.com/envelope-zero/expenses/pkg/httputil"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"`
}

type Links struct {
	Docs       string `json:"docs" example:"https://example.com/api/docs/index.html"`            // Swagger API documentation
	Healthz    string `json:"healthz" example:"https://example.com/api/healthz"`                 // Healthz endpoint
	Version    string `json:"version" example:"https://example.com/api/version"`                 // Endpoint returning the version of the backend
	Metrics    string `json:"metrics" example:"https://example.com/api/metrics"`                 // Endpoint returning Prometheus metrics
	Categories string `json:"categories" example:"https://example.com/api/categories"`           // Category list endpoint
	Expenses   string `json:"expenses" example:"https://example.com/api/expenses"`               // Expense list endpoint
	Export     string `json:"export" example:"https://example.com/api/expenses/export"`          // CSV export of all expenses
	Summary    string `json:"summary" example:"https://example.com/api/summary/monthly"`         // Summary of the current month
	Historical string `json:"historical" example:"https://example.com/api/analytics/historical"` // Totals of the last months
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	url := c.GetString(string(httputil.ContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Docs:       url + "/docs/index.html",
			Healthz:    url + "/healthz",
			Version:    url + "/version",
			Metrics:    url + "/metrics",
			Categories: url + "/categories",
			Expenses:   url + "/expenses",
			Export:     url + "/expenses/export",
			Summary:    url + "/summary/monthly",
			Historical: url + "/analytics/historical",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
