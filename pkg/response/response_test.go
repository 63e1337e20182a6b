package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()

	Success(rec, http.StatusCreated, "Created", map[string]string{"id": "1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decode(t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, "Created", body.Message)
	assert.NotNil(t, body.Data)
	assert.Nil(t, body.Error)
}

func TestValidationError(t *testing.T) {
	rec := httptest.NewRecorder()

	ValidationError(rec, map[string]string{"Email": "Email is required"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode(t, rec)
	assert.False(t, body.Success)
	assert.Equal(t, "Validation failed", body.Message)
	assert.NotNil(t, body.Error)
}

func TestErrorHelpersUseDefaultsWhenEmpty(t *testing.T) {
	cases := []struct {
		name    string
		write   func(http.ResponseWriter, string)
		code    int
		message string
	}{
		{"unauthorized", Unauthorized, http.StatusUnauthorized, "Unauthorized"},
		{"not found", NotFound, http.StatusNotFound, "Resource not found"},
		{"conflict", Conflict, http.StatusConflict, "Resource conflict"},
		{"internal", InternalServerError, http.StatusInternalServerError, "Internal server error"},
		{"forbidden", Forbidden, http.StatusForbidden, "Forbidden"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			tc.write(rec, "")

			assert.Equal(t, tc.code, rec.Code)
			body := decode(t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, tc.message, body.Message)
		})
	}
}
