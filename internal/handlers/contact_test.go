package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mahin-rahman/greenbasket/internal/models"
	"github.com/stretchr/testify/assert"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func contactBody() map[string]interface{} {
	return map[string]interface{}{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"phone":   "+8801700000000",
		"message": "Where can I buy your jam?",
	}
}

func TestCreateContact_NotifiesInbox(t *testing.T) {
	store := &mockContactStore{
		createFn: func(ctx context.Context, m *models.ContactMessage) error {
			m.ID = 7
			return nil
		},
	}
	notifier := &mockNotifier{}
	handler := NewContactHandler(store, notifier, discardLogger())

	req := newTestRequest(t, "POST", "/v1/contact-us", contactBody())
	w := httptest.NewRecorder()
	handler.Create(w, req)

	assertToast(t, w, "create contact message")
	assert.Len(t, notifier.notified, 1)
	assert.Equal(t, "visitor@example.com", notifier.notified[0].Email)
}

func TestCreateContact_NotificationFailureStillSucceeds(t *testing.T) {
	notifier := &mockNotifier{err: errors.New("ses unavailable")}
	handler := NewContactHandler(&mockContactStore{}, notifier, discardLogger())

	req := newTestRequest(t, "POST", "/v1/contact-us", contactBody())
	w := httptest.NewRecorder()
	handler.Create(w, req)

	assertToast(t, w, "create contact message")
}

func TestCreateContact_Validation(t *testing.T) {
	handler := NewContactHandler(&mockContactStore{}, &mockNotifier{}, discardLogger())

	req := newTestRequest(t, "POST", "/v1/contact-us", map[string]interface{}{
		"email": "bad-address",
	})
	w := httptest.NewRecorder()
	handler.Create(w, req)

	resp := assertErrorResponse(t, w, http.StatusUnprocessableEntity, "validation_failed")
	// name, email, phone and message all fail
	assert.Len(t, resp.Fields, 4)
}

func TestGetContact_InvalidID(t *testing.T) {
	handler := NewContactHandler(&mockContactStore{}, &mockNotifier{}, discardLogger())

	req := httptest.NewRequest("GET", "/v1/contact-us/abc", nil)
	req = withChiParams(req, map[string]string{"id": "abc"})
	w := httptest.NewRecorder()
	handler.Get(w, req)

	resp := assertErrorResponse(t, w, http.StatusBadRequest, "bad_request")
	assert.Equal(t, "Invalid id", resp.Message)
}

func TestGetContact_Success(t *testing.T) {
	store := &mockContactStore{
		getFn: func(ctx context.Context, id int64) (*models.ContactMessage, error) {
			assert.Equal(t, int64(7), id)
			return &models.ContactMessage{ID: 7, Name: "Visitor", Email: "visitor@example.com"}, nil
		},
	}
	handler := NewContactHandler(store, &mockNotifier{}, discardLogger())

	req := httptest.NewRequest("GET", "/v1/contact-us/7", nil)
	req = withChiParams(req, map[string]string{"id": "7"})
	w := httptest.NewRecorder()
	handler.Get(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "visitor@example.com")
}

func TestDeleteContact_Success(t *testing.T) {
	store := &mockContactStore{
		deleteFn: func(ctx context.Context, id int64) error {
			return nil
		},
	}
	handler := NewContactHandler(store, &mockNotifier{}, discardLogger())

	req := httptest.NewRequest("DELETE", "/v1/contact-us/7", nil)
	req = withChiParams(req, map[string]string{"id": "7"})
	w := httptest.NewRecorder()
	handler.Delete(w, req)

	assertToast(t, w, "delete contact message")
}
