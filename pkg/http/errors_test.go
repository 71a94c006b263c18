package http_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	pkghttp "github.com/mahin-rahman/greenbasket/pkg/http"
	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	pkghttp.WriteError(w, 400, "test_error", "Test message")

	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp pkghttp.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "test_error", resp.Error)
	assert.Equal(t, "Test message", resp.Message)
	assert.Empty(t, resp.Fields)
}

func TestWriteToast(t *testing.T) {
	w := httptest.NewRecorder()
	pkghttp.WriteToast(w, "create", "Apple")

	assert.Equal(t, 200, w.Code)

	var resp pkghttp.Toast
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "create Apple", resp.Message)
}

func TestWriteNotFound(t *testing.T) {
	w := httptest.NewRecorder()
	pkghttp.WriteNotFound(w)

	assert.Equal(t, 404, w.Code)

	var resp pkghttp.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "not_found", resp.Error)
	assert.Equal(t, "Data not found", resp.Message)
}

func TestWriteUnauthorized(t *testing.T) {
	w := httptest.NewRecorder()
	pkghttp.WriteUnauthorized(w, "Account is disabled")

	assert.Equal(t, 401, w.Code)

	var resp pkghttp.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "unauthorized", resp.Error)
	assert.Equal(t, "Account is disabled", resp.Message)
}

func TestWriteValidationFailed(t *testing.T) {
	w := httptest.NewRecorder()
	pkghttp.WriteValidationFailed(w, []pkghttp.FieldError{
		{Field: "email", Message: "must be a valid email address"},
		{Field: "created_at", Message: `must be in the format "YYYY-MM-DD HH:MM:SS"`},
	})

	assert.Equal(t, 422, w.Code)

	var resp pkghttp.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "validation_failed", resp.Error)
	assert.Len(t, resp.Fields, 2)
	assert.Equal(t, "email", resp.Fields[0].Field)
}
