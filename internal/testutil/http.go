package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPRequest represents a test HTTP request
type HTTPRequest struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
}

// HTTPResponse wraps the HTTP response for testing
type HTTPResponse struct {
	*httptest.ResponseRecorder
	t *testing.T
}

// DoRequest performs an HTTP request against the test server
func DoRequest(t *testing.T, e *echo.Echo, req HTTPRequest) *HTTPResponse {
	t.Helper()

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	target := req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	httpReq := httptest.NewRequest(method, target, nil)
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httpReq)

	return &HTTPResponse{ResponseRecorder: rec, t: t}
}

// Get performs a GET request with the given query parameters
func Get(t *testing.T, e *echo.Echo, path string, query url.Values) *HTTPResponse {
	t.Helper()
	return DoRequest(t, e, HTTPRequest{Method: http.MethodGet, Path: path, Query: query})
}

// AssertStatus asserts the response status code
func (r *HTTPResponse) AssertStatus(expected int) *HTTPResponse {
	assert.Equal(r.t, expected, r.Code, "unexpected status code, body: %s", r.Body.String())
	return r
}

// AssertHeader asserts a response header value
func (r *HTTPResponse) AssertHeader(key, expected string) *HTTPResponse {
	assert.Equal(r.t, expected, r.Header().Get(key), "header %s mismatch", key)
	return r
}

// AssertJSONPath asserts a specific path in the JSON response
func (r *HTTPResponse) AssertJSONPath(path string, expected interface{}) *HTTPResponse {
	value := getJSONPath(r.GetJSON(), path)
	assert.Equal(r.t, expected, value, "JSON path %s mismatch", path)
	return r
}

// AssertJSONPathExists asserts a path exists in the JSON response
func (r *HTTPResponse) AssertJSONPathExists(path string) *HTTPResponse {
	value := getJSONPath(r.GetJSON(), path)
	assert.NotNil(r.t, value, "JSON path %s does not exist", path)
	return r
}

// AssertJSONError asserts the response contains an error with expected code
func (r *HTTPResponse) AssertJSONError(code string, message string) *HTTPResponse {
	errorObj, ok := r.GetJSON()["error"].(map[string]interface{})
	require.True(r.t, ok, "response does not contain error object: %s", r.Body.String())

	assert.Equal(r.t, code, errorObj["code"], "error code mismatch")
	if message != "" {
		assert.Equal(r.t, message, errorObj["message"], "error message mismatch")
	}
	return r
}

// GetJSON parses the response body as JSON
func (r *HTTPResponse) GetJSON() map[string]interface{} {
	var result map[string]interface{}
	err := json.Unmarshal(r.Body.Bytes(), &result)
	require.NoError(r.t, err, "body: %s", r.Body.String())
	return result
}

// Decode unmarshals the response body into v
func (r *HTTPResponse) Decode(v interface{}) {
	require.NoError(r.t, json.Unmarshal(r.Body.Bytes(), v), "body: %s", r.Body.String())
}

// getJSONPath gets a value from nested JSON using dot notation (e.g., "error.code")
func getJSONPath(data map[string]interface{}, path string) interface{} {
	current := interface{}(data)

	for _, key := range splitPath(path) {
		switch v := current.(type) {
		case map[string]interface{}:
			current = v[key]
		default:
			return nil
		}
	}

	return current
}

// splitPath splits a dot-notation path into keys
func splitPath(path string) []string {
	var keys []string
	var current string

	for _, c := range path {
		if c == '.' {
			if current != "" {
				keys = append(keys, current)
				current = ""
			}
		} else {
			current += string(c)
		}
	}

	if current != "" {
		keys = append(keys, current)
	}

	return keys
}
