package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mahin-rahman/greenbasket/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedHandler(t *testing.T, wantUUID string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserFromContext(r)
		require.NotNil(t, claims)
		assert.Equal(t, wantUUID, claims.UUID)
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddleware_ValidToken(t *testing.T) {
	tm := auth.NewTokenManager("a-sufficiently-long-secret", time.Hour)
	token, err := tm.Generate(testUser())
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/v1/hr/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	auth.Middleware(tm)(protectedHandler(t, "V1StGXR8_Z5jdHi6B-myT")).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMiddleware_MissingHeader(t *testing.T) {
	tm := auth.NewTokenManager("a-sufficiently-long-secret", time.Hour)

	req := httptest.NewRequest("GET", "/v1/hr/users", nil)
	w := httptest.NewRecorder()

	auth.Middleware(tm)(protectedHandler(t, "")).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_MalformedHeader(t *testing.T) {
	tm := auth.NewTokenManager("a-sufficiently-long-secret", time.Hour)

	req := httptest.NewRequest("GET", "/v1/hr/users", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()

	auth.Middleware(tm)(protectedHandler(t, "")).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	tm := auth.NewTokenManager("a-sufficiently-long-secret", -time.Minute)
	token, err := tm.Generate(testUser())
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/v1/hr/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	auth.Middleware(auth.NewTokenManager("a-sufficiently-long-secret", time.Hour))(protectedHandler(t, "")).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetUserFromContext_Unauthenticated(t *testing.T) {
	req := httptest.NewRequest("GET", "/v1/hr/users", nil)
	assert.Nil(t, auth.GetUserFromContext(req))
}
