package healthz

import (
	"errors"
	"net/http"

	"github.com/envelope-zero/expenses/pkg/httperrors"
	"github.com/envelope-zero/expenses/pkg/httputil"
	"github.com/envelope-zero/expenses/pkg/kv"
	"github.com/gin-gonic/gin"
)

// probeKey is read to check that the store answers. It is never written.
const probeKey = "healthz:probe"

func RegisterRoutes(r *gin.RouterGroup, store kv.Store) {
	r.OPTIONS("", Options)
	r.GET("", Get(store))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Get returns the handler checking that store can be read.
//
//	@Summary		Get health
//	@Description	Returns the application health and, if not healthy, an error
//	@Tags			General
//	@Produce		json
//	@Success		204
//	@Failure		503	{object}	httperrors.HTTPError
//	@Failure		500	{object}	httperrors.HTTPError
//	@Router			/healthz [get]
func Get(store kv.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, err := store.Get(c.Request.Context(), probeKey)
		if err != nil && !errors.Is(err, kv.ErrNotFound) {
			httperrors.Handler(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}
