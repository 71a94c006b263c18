package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mahin-rahman/greenbasket/internal/models"
	"github.com/mahin-rahman/greenbasket/internal/services"
	pkghttp "github.com/mahin-rahman/greenbasket/pkg/http"
)

// AuthFlow is the local email/password authentication surface.
type AuthFlow interface {
	SignIn(ctx context.Context, email, password string) (*services.SignInResponse, error)
	Register(ctx context.Context, user *models.User, password string) error
	ChangePassword(ctx context.Context, uuid, newPassword string) error
}

// GoogleFlow is the OAuth authorization-code surface.
type GoogleFlow interface {
	AuthURL() string
	Callback(ctx context.Context, code string) (*services.SignInResponse, error)
}

type AuthHandler struct {
	auth   AuthFlow
	google GoogleFlow
}

func NewAuthHandler(auth AuthFlow, google GoogleFlow) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		google: google,
	}
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignIn handles POST /user-signin.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if fields := ValidateRequest(req); fields != nil {
		pkghttp.WriteValidationFailed(w, fields)
		return
	}

	resp, err := h.auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			pkghttp.WriteNotFound(w)
		case errors.Is(err, models.ErrAccountDisabled):
			pkghttp.WriteUnauthorized(w, "Account is disabled")
		case errors.Is(err, models.ErrUnauthorized):
			pkghttp.WriteUnauthorized(w, "Email/Password does not match")
		default:
			pkghttp.WriteInternalError(w, "Something went wrong")
		}
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, resp)
}

// GoogleLogin handles GET /auth/login/google by redirecting the browser
// to the Google consent screen.
func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.google.AuthURL(), http.StatusFound)
}

// GoogleCallback handles GET /auth/google/callback.
func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if errParam := q.Get("error"); errParam != "" {
		pkghttp.WriteUnauthorized(w, "Google sign-in failed: "+errParam)
		return
	}

	code := q.Get("code")
	if code == "" {
		pkghttp.WriteBadRequest(w, "Missing authorization code")
		return
	}

	resp, err := h.google.Callback(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmailNotVerified):
			pkghttp.WriteUnauthorized(w, "Email is not verified")
		case errors.Is(err, models.ErrUnauthorized):
			pkghttp.WriteUnauthorized(w, "Failed to verify Google account")
		default:
			pkghttp.WriteInternalError(w, "Something went wrong")
		}
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, resp)
}

type changePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

// ChangePassword handles PATCH /hr/users/password/{uuid}.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	uuid := chi.URLParam(r, "uuid")

	var req changePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if fields := ValidateRequest(req); fields != nil {
		pkghttp.WriteValidationFailed(w, fields)
		return
	}

	if err := h.auth.ChangePassword(r.Context(), uuid, req.Password); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			pkghttp.WriteNotFound(w)
			return
		}
		pkghttp.WriteInternalError(w, "Something went wrong")
		return
	}

	pkghttp.WriteToast(w, "update", "password")
}
