package healthz_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/envelope-zero/expenses/pkg/controllers/healthz"
	"github.com/envelope-zero/expenses/pkg/kv/memory"
	"github.com/envelope-zero/expenses/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	t.Parallel()
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	healthz.RegisterRoutes(r.Group("/healthz"), memory.New())

	req, _ := http.NewRequest(http.MethodOptions, "http://example.com/healthz", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "OPTIONS, GET", w.Header().Get("allow"))
}

func TestGet(t *testing.T) {
	t.Parallel()
	recorder := httptest.NewRecorder()
	_, r := gin.CreateTestContext(recorder)
	healthz.RegisterRoutes(r.Group("/healthz"), memory.New())

	req, _ := http.NewRequest(http.MethodGet, "https://example.com/healthz", nil)
	r.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestGetClosedStore(t *testing.T) {
	t.Parallel()
	store := memory.New()
	require.Nil(t, store.Close())

	recorder := httptest.NewRecorder()
	_, r := gin.CreateTestContext(recorder)
	healthz.RegisterRoutes(r.Group("/healthz"), store)

	req, _ := http.NewRequest(http.MethodGet, "https://example.com/healthz", nil)
	r.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Equal(t, "The data store is currently unavailable, please try again later.", test.DecodeError(t, recorder.Body.Bytes()))
}
