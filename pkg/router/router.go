package router

import (
	"net/http"
	"net/url"

	docs "github.com/envelope-zero/expenses/api"
	"github.com/envelope-zero/expenses/pkg/controllers"
	"github.com/envelope-zero/expenses/pkg/controllers/healthz"
	"github.com/envelope-zero/expenses/pkg/controllers/root"
	"github.com/envelope-zero/expenses/pkg/controllers/version"
	"github.com/envelope-zero/expenses/pkg/httperrors"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Options configures the optional parts of the router.
type Options struct {
	// Version is reported by the version endpoint and the API docs.
	Version string

	// CORSAllowOrigins enables CORS for the listed origins if not empty.
	CORSAllowOrigins []string

	// EnablePprof registers the pprof endpoints under /debug/pprof.
	EnablePprof bool
}

// Config sets up the engine with all middlewares. The returned teardown
// function unregisters the Prometheus metrics and must be called before
// Config is called again.
func Config(url *url.URL, opts Options) (*gin.Engine, func(), error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(url))
	r.NoMethod(func(c *gin.Context) {
		httperrors.New(c, http.StatusMethodNotAllowed, "This HTTP method is not allowed for the endpoint you called")
	})
	r.NoRoute(func(c *gin.Context) {
		httperrors.New(c, http.StatusNotFound, "There is no endpoint at this path")
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	if len(opts.CORSAllowOrigins) > 0 {
		log.Debug().Strs("allowOrigins", opts.CORSAllowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     opts.CORSAllowOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			ExposeHeaders:    []string{"X-Invalidate"},
			AllowCredentials: true,
		}))
	}

	err := registerPrometheusMetrics()
	if err != nil {
		return nil, func() {}, err
	}
	r.Use(MetricsMiddleware())
	r.Use(ChangeSetMiddleware())

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", opts.Version).Msg("Router")

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "Expenses"
	docs.SwaggerInfo.Version = opts.Version
	docs.SwaggerInfo.Description = "The backend of the expense tracker. It stores categories and expenses and aggregates them into monthly summaries."

	return r, func() { unregisterPrometheusMetrics() }, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in
// Separating this from Config() allows us to attach it to different
// paths for different use cases, e.g. the standalone version.
func AttachRoutes(co controllers.Controller, group *gin.RouterGroup, opts Options) {
	root.RegisterRoutes(group.Group(""))
	version.RegisterRoutes(group.Group("/version"), opts.Version)
	healthz.RegisterRoutes(group.Group("/healthz"), co.Store)

	// pprof performance profiles
	if opts.EnablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	co.RegisterCategoryRoutes(group.Group("/categories"))
	co.RegisterExpenseRoutes(group.Group("/expenses"))
	co.RegisterSummaryRoutes(group.Group("/summary"))
	co.RegisterAnalyticsRoutes(group.Group("/analytics"))
}
