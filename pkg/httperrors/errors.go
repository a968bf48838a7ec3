package httperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/envelope-zero/expenses/pkg/entity"
	"github.com/envelope-zero/expenses/pkg/kv"
	"github.com/envelope-zero/expenses/pkg/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HTTPError is the body of every error response.
type HTTPError struct {
	Success bool   `json:"success" example:"false"`               // Always false for errors
	Error   string `json:"error" example:"Invalid category data"` // The error message
}

// Generate a struct containing the HTTP error on the fly.
func New(c *gin.Context, status int, msgAndArgs ...any) {
	// Format msgAndArgs in a final string.
	// This is taken almost exactly from https://github.com/stretchr/testify/blob/181cea6eab8b2de7071383eca4be32a424db38dd/assert/assertions.go#L181
	msg := ""
	if len(msgAndArgs) == 1 {
		if msgAsStr, ok := msgAndArgs[0].(string); ok {
			msg = msgAsStr
		}
		msg = fmt.Sprintf("%+v", msg)
	}

	if len(msgAndArgs) > 1 {
		msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
	}

	c.AbortWithStatusJSON(status, HTTPError{
		Error: msg,
	})
}

func NotFound(c *gin.Context) {
	New(c, http.StatusNotFound, "not found")
}

func InvalidQueryString(c *gin.Context) {
	New(c, http.StatusBadRequest, "The query string contains unparseable data. Please check the values")
}

func InvalidMonth(c *gin.Context) {
	New(c, http.StatusBadRequest, "Could not parse the specified month, did you use YYYY-MM format?")
}

// Status returns the HTTP status code and message for an error.
func Status(err error) (int, string) {
	var httpErr Error
	if errors.As(err, &httpErr) {
		return httpErr.Status, httpErr.Error()
	}

	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound, "not found"

	case errors.Is(err, entity.ErrInvalidCursor):
		return http.StatusBadRequest, entity.ErrInvalidCursor.Error()

	case models.IsValidationError(err):
		return http.StatusBadRequest, err.Error()

	// End of file reached when reading
	case errors.Is(err, io.EOF):
		return http.StatusBadRequest, "The request body must not be empty"

	case errors.As(err, &typeErr):
		return http.StatusBadRequest, fmt.Sprintf("The field %s must be of type %s", typeErr.Field, typeErr.Type)

	case errors.Is(err, kv.ErrUnavailable), errors.Is(err, kv.ErrClosed):
		return http.StatusServiceUnavailable, "The data store is currently unavailable, please try again later."
	}

	return http.StatusInternalServerError, ""
}

// Handler writes the error response for err.
func Handler(c *gin.Context, err error) {
	status, msg := Status(err)

	if status >= http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	}

	if status == http.StatusInternalServerError {
		msg = fmt.Sprintf("An error occurred on the server during your request, please contact your server administrator. The request id is '%v', send this to your server administrator to help them finding the problem", requestid.Get(c))
	}

	New(c, status, msg)
}
