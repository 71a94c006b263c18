package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mahin-rahman/greenbasket/internal/models"
	"github.com/mahin-rahman/greenbasket/internal/services"
	"github.com/stretchr/testify/assert"
)

func signInResponse() *services.SignInResponse {
	return &services.SignInResponse{
		Token: "signed.jwt.token",
		User: &services.UserProjection{
			UUID:  "V1StGXR8_Z5jdHi6B-myT",
			Name:  "Test User",
			Email: "user@example.com",
			Type:  "client",
		},
	}
}

func TestSignIn_Success(t *testing.T) {
	flow := &mockAuthFlow{
		signInFn: func(ctx context.Context, email, password string) (*services.SignInResponse, error) {
			assert.Equal(t, "user@example.com", email)
			assert.Equal(t, "correct-horse", password)
			return signInResponse(), nil
		},
	}
	handler := NewAuthHandler(flow, &mockGoogleFlow{})

	req := newTestRequest(t, "POST", "/v1/user-signin", map[string]string{
		"email":    "user@example.com",
		"password": "correct-horse",
	})
	w := httptest.NewRecorder()
	handler.SignIn(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "signed.jwt.token")
}

func TestSignIn_UnknownEmail(t *testing.T) {
	flow := &mockAuthFlow{
		signInFn: func(ctx context.Context, email, password string) (*services.SignInResponse, error) {
			return nil, models.ErrNotFound
		},
	}
	handler := NewAuthHandler(flow, &mockGoogleFlow{})

	req := newTestRequest(t, "POST", "/v1/user-signin", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever",
	})
	w := httptest.NewRecorder()
	handler.SignIn(w, req)

	resp := assertErrorResponse(t, w, http.StatusNotFound, "not_found")
	assert.Equal(t, "Data not found", resp.Message)
}

func TestSignIn_DisabledAccount(t *testing.T) {
	flow := &mockAuthFlow{
		signInFn: func(ctx context.Context, email, password string) (*services.SignInResponse, error) {
			return nil, models.ErrAccountDisabled
		},
	}
	handler := NewAuthHandler(flow, &mockGoogleFlow{})

	req := newTestRequest(t, "POST", "/v1/user-signin", map[string]string{
		"email":    "user@example.com",
		"password": "correct-horse",
	})
	w := httptest.NewRecorder()
	handler.SignIn(w, req)

	resp := assertErrorResponse(t, w, http.StatusUnauthorized, "unauthorized")
	assert.Equal(t, "Account is disabled", resp.Message)
}

func TestSignIn_WrongPassword(t *testing.T) {
	handler := NewAuthHandler(&mockAuthFlow{}, &mockGoogleFlow{})

	req := newTestRequest(t, "POST", "/v1/user-signin", map[string]string{
		"email":    "user@example.com",
		"password": "wrong",
	})
	w := httptest.NewRecorder()
	handler.SignIn(w, req)

	resp := assertErrorResponse(t, w, http.StatusUnauthorized, "unauthorized")
	assert.Equal(t, "Email/Password does not match", resp.Message)
}

func TestSignIn_ValidationCollectsAllFields(t *testing.T) {
	handler := NewAuthHandler(&mockAuthFlow{}, &mockGoogleFlow{})

	req := newTestRequest(t, "POST", "/v1/user-signin", map[string]string{
		"email": "not-an-email",
	})
	w := httptest.NewRecorder()
	handler.SignIn(w, req)

	resp := assertErrorResponse(t, w, http.StatusUnprocessableEntity, "validation_failed")
	assert.Len(t, resp.Fields, 2)
}

func TestGoogleLogin_RedirectsToConsentScreen(t *testing.T) {
	google := &mockGoogleFlow{authURL: "https://accounts.google.com/o/oauth2/v2/auth?client_id=abc"}
	handler := NewAuthHandler(&mockAuthFlow{}, google)

	req := httptest.NewRequest("GET", "/v1/auth/login/google", nil)
	w := httptest.NewRecorder()
	handler.GoogleLogin(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, google.authURL, w.Header().Get("Location"))
}

func TestGoogleCallback_ProviderError(t *testing.T) {
	handler := NewAuthHandler(&mockAuthFlow{}, &mockGoogleFlow{})

	req := httptest.NewRequest("GET", "/v1/auth/google/callback?error=access_denied", nil)
	w := httptest.NewRecorder()
	handler.GoogleCallback(w, req)

	resp := assertErrorResponse(t, w, http.StatusUnauthorized, "unauthorized")
	assert.Equal(t, "Google sign-in failed: access_denied", resp.Message)
}

func TestGoogleCallback_MissingCode(t *testing.T) {
	handler := NewAuthHandler(&mockAuthFlow{}, &mockGoogleFlow{})

	req := httptest.NewRequest("GET", "/v1/auth/google/callback", nil)
	w := httptest.NewRecorder()
	handler.GoogleCallback(w, req)

	resp := assertErrorResponse(t, w, http.StatusBadRequest, "bad_request")
	assert.Equal(t, "Missing authorization code", resp.Message)
}

func TestGoogleCallback_UnverifiedEmail(t *testing.T) {
	google := &mockGoogleFlow{
		callbackFn: func(ctx context.Context, code string) (*services.SignInResponse, error) {
			return nil, models.ErrEmailNotVerified
		},
	}
	handler := NewAuthHandler(&mockAuthFlow{}, google)

	req := httptest.NewRequest("GET", "/v1/auth/google/callback?code=4/abc", nil)
	w := httptest.NewRecorder()
	handler.GoogleCallback(w, req)

	resp := assertErrorResponse(t, w, http.StatusUnauthorized, "unauthorized")
	assert.Equal(t, "Email is not verified", resp.Message)
}

func TestGoogleCallback_Success(t *testing.T) {
	google := &mockGoogleFlow{
		callbackFn: func(ctx context.Context, code string) (*services.SignInResponse, error) {
			assert.Equal(t, "4/abc", code)
			return signInResponse(), nil
		},
	}
	handler := NewAuthHandler(&mockAuthFlow{}, google)

	req := httptest.NewRequest("GET", "/v1/auth/google/callback?code=4/abc", nil)
	w := httptest.NewRecorder()
	handler.GoogleCallback(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "signed.jwt.token")
}

func TestChangePassword_Success(t *testing.T) {
	var gotUUID, gotPassword string
	flow := &mockAuthFlow{
		changePasswordFn: func(ctx context.Context, uuid, newPassword string) error {
			gotUUID = uuid
			gotPassword = newPassword
			return nil
		},
	}
	handler := NewAuthHandler(flow, &mockGoogleFlow{})

	req := newTestRequest(t, "PATCH", "/v1/hr/users/password/abc", map[string]string{
		"password": "a-new-password",
	})
	req = withChiParams(req, map[string]string{"uuid": "V1StGXR8_Z5jdHi6B-myT"})
	w := httptest.NewRecorder()
	handler.ChangePassword(w, req)

	assertToast(t, w, "update password")
	assert.Equal(t, "V1StGXR8_Z5jdHi6B-myT", gotUUID)
	assert.Equal(t, "a-new-password", gotPassword)
}

func TestChangePassword_TooShort(t *testing.T) {
	handler := NewAuthHandler(&mockAuthFlow{}, &mockGoogleFlow{})

	req := newTestRequest(t, "PATCH", "/v1/hr/users/password/abc", map[string]string{
		"password": "short",
	})
	req = withChiParams(req, map[string]string{"uuid": "V1StGXR8_Z5jdHi6B-myT"})
	w := httptest.NewRecorder()
	handler.ChangePassword(w, req)

	assertErrorResponse(t, w, http.StatusUnprocessableEntity, "validation_failed")
}

func TestChangePassword_UnknownUser(t *testing.T) {
	handler := NewAuthHandler(&mockAuthFlow{}, &mockGoogleFlow{})

	req := newTestRequest(t, "PATCH", "/v1/hr/users/password/abc", map[string]string{
		"password": "a-new-password",
	})
	req = withChiParams(req, map[string]string{"uuid": "missing-user-uuid-0000"})
	w := httptest.NewRecorder()
	handler.ChangePassword(w, req)

	assertErrorResponse(t, w, http.StatusNotFound, "not_found")
}
