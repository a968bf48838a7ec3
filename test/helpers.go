package test

import (
	"encoding/json"
	"testing"

	"github.com/envelope-zero/expenses/pkg/httperrors"
	"github.com/stretchr/testify/assert"
)

// DecodeError returns the error message of an error response body.
func DecodeError(t *testing.T, s []byte) string {
	var r httperrors.HTTPError
	if err := json.Unmarshal(s, &r); err != nil {
		assert.Fail(t, "Not valid JSON!", "%s", s)
	}

	return r.Error
}
