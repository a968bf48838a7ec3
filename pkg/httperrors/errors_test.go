package httperrors_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/envelope-zero/expenses/pkg/entity"
	"github.com/envelope-zero/expenses/pkg/httperrors"
	"github.com/envelope-zero/expenses/pkg/kv"
	"github.com/envelope-zero/expenses/pkg/models"
	"github.com/envelope-zero/expenses/test"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func serve(handler func(c *gin.Context)) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)

	r.GET("/", func(ctx *gin.Context) {
		handler(ctx)
	})

	c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, c.Request)
	return w
}

func TestHandlerNotFound(t *testing.T) {
	w := serve(func(c *gin.Context) {
		httperrors.Handler(c, fmt.Errorf("category cat_9: %w", entity.ErrNotFound))
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not found", test.DecodeError(t, w.Body.Bytes()))
}

func TestHandlerEnvelope(t *testing.T) {
	w := serve(func(c *gin.Context) {
		httperrors.Handler(c, models.ErrCategoryNameEmpty)
	})

	var body map[string]any
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, models.ErrCategoryNameEmpty.Error(), body["error"])
	assert.NotContains(t, body, "data")
}

func TestHandlerStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"Validation", models.ErrExpenseDateInvalid, http.StatusBadRequest, "ISO 8601"},
		{"IDMismatch", models.ErrIDMismatch, http.StatusBadRequest, "does not match"},
		{"Cursor", fmt.Errorf("%w: x", entity.ErrInvalidCursor), http.StatusBadRequest, "cursor is invalid"},
		{"EOF", io.EOF, http.StatusBadRequest, "The request body must not be empty"},
		{"Type", &json.UnmarshalTypeError{Value: "string", Field: "amount", Type: reflect.TypeOf(int64(0))}, http.StatusBadRequest, "The field amount"},
		{"Unavailable", fmt.Errorf("saving: %w", kv.ErrUnavailable), http.StatusServiceUnavailable, "currently unavailable"},
		{"Closed", kv.ErrClosed, http.StatusServiceUnavailable, "currently unavailable"},
		{"Explicit", httperrors.Error{Err: errors.New("I'm a teapot"), Status: http.StatusTeapot}, http.StatusTeapot, "teapot"},
		{"Unknown", errors.New("Some random error"), http.StatusInternalServerError, "An error occurred on the server during your request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(func(c *gin.Context) {
				httperrors.Handler(c, tt.err)
			})

			assert.Equal(t, tt.code, w.Code)
			assert.Contains(t, test.DecodeError(t, w.Body.Bytes()), tt.msg)
		})
	}
}

func TestErrorNotFound(t *testing.T) {
	w := serve(httperrors.NotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not found", test.DecodeError(t, w.Body.Bytes()))
}

func TestErrorUnparseableData(t *testing.T) {
	w := serve(httperrors.InvalidQueryString)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, test.DecodeError(t, w.Body.Bytes()), "unparseable data")
}

func TestErrorInvalidMonth(t *testing.T) {
	w := serve(httperrors.InvalidMonth)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, test.DecodeError(t, w.Body.Bytes()), "did you use YYYY-MM format?")
}

func TestNewPlainString(t *testing.T) {
	w := serve(func(c *gin.Context) {
		httperrors.New(c, http.StatusBadRequest, "Non-formatted test message")
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Non-formatted test message", test.DecodeError(t, w.Body.Bytes()))
}

func TestNewFormatString(t *testing.T) {
	w := serve(func(c *gin.Context) {
		httperrors.New(c, http.StatusBadRequest, "This is a formatting string with parameters that contain %#v and %s", "a string", decimal.NewFromFloat(3.141))
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "This is a formatting string with parameters that contain \"a string\" and 3.141", test.DecodeError(t, w.Body.Bytes()))
}
