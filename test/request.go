package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"testing"

	"github.com/envelope-zero/expenses/pkg/controllers"
	"github.com/envelope-zero/expenses/pkg/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// BaseURL is the external URL of the API in tests.
const BaseURL = "http://example.com/api"

// Request is a helper method to simplify making a HTTP request for tests.
//
// body can be a string, a *bytes.Buffer or anything that can be marshalled
// to JSON. A nil body sends an empty request body.
func Request(t *testing.T, co controllers.Controller, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	var byteBuffer *bytes.Buffer

	switch b := body.(type) {
	case nil:
		byteBuffer = bytes.NewBuffer(nil)
	case string:
		byteBuffer = bytes.NewBufferString(b)
	case *bytes.Buffer:
		byteBuffer = b
	default:
		byteStr, err := json.Marshal(body)
		if err != nil {
			assert.FailNow(t, "Request body could not be marshalled from struct input", err)
		}
		byteBuffer = bytes.NewBuffer(byteStr)
	}

	baseURL, err := url.Parse(BaseURL)
	require.Nil(t, err)

	r, teardown, err := router.Config(baseURL, router.Options{Version: "0.0.0"})
	defer teardown()

	if err != nil {
		assert.FailNow(t, "Router could not be initialized", err)
	}
	router.AttachRoutes(co, r.Group(baseURL.Path), router.Options{Version: "0.0.0"})

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, reqURL, byteBuffer)

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), &target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v', Request ID: %s", r.Body, reflect.TypeOf(target), err, r.Result().Header.Get("x-request-id"))
	}
}

// AssertHTTPStatus verifies that the HTTP response status is correct
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}
