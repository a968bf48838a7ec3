package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/envelope-zero/expenses/pkg/httperrors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// BindData binds the data from the request to the struct passed in the interface.
//
// Binding tags are validated with go-playground/validator. All errors are
// returned as httperrors.Error with status 400.
func BindData(c *gin.Context, data any) error {
	err := c.ShouldBindJSON(data)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return httperrors.Error{Status: http.StatusBadRequest, Err: ErrRequestBodyEmpty}
	}

	var jsonUnmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &jsonUnmarshalTypeError) {
		return httperrors.Error{
			Status: http.StatusBadRequest,
			Err:    fmt.Errorf("the field %s must be of type %s", jsonUnmarshalTypeError.Field, jsonUnmarshalTypeError.Type),
		}
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			messages = append(messages, ValidationErrorToText(e))
		}

		return httperrors.Error{Status: http.StatusBadRequest, Err: errors.New(strings.Join(messages, ", "))}
	}

	log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	return httperrors.Error{Status: http.StatusBadRequest, Err: ErrInvalidBody}
}

// ValidationErrorToText returns a message for a failed validation.
func ValidationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		return fmt.Sprintf("%s cannot be longer than %s", e.Field(), e.Param())
	case "min":
		return fmt.Sprintf("%s must be longer than %s", e.Field(), e.Param())
	case "len":
		return fmt.Sprintf("%s must be %s characters long", e.Field(), e.Param())
	case "hexcolor":
		return fmt.Sprintf("%s must be a hex color", e.Field())
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}
