// Package handlers contains the HTTP layer: request DTOs, validation and
// the toast/error response conventions shared by every resource.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/mahin-rahman/greenbasket/internal/auth"
	"github.com/mahin-rahman/greenbasket/internal/models"
	pkghttp "github.com/mahin-rahman/greenbasket/pkg/http"
)

// decodeJSON decodes a request body, writing a 400 on malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return false
	}
	return true
}

// decodePatch tolerates an empty body: a PATCH with nothing to change is
// reported as a not-found notice, not a parse error.
func decodePatch(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return false
	}
	return true
}

// writeRepoError maps repository sentinel errors onto the response
// taxonomy used by the resource endpoints.
func writeRepoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		pkghttp.WriteNotFound(w)
	case errors.Is(err, models.ErrConflict):
		pkghttp.WriteConflict(w, "Data already exists")
	case errors.Is(err, models.ErrBadRequest):
		pkghttp.WriteBadRequest(w, "Invalid reference or missing required value")
	default:
		pkghttp.WriteInternalError(w, "Something went wrong")
	}
}

// creatorUUID pulls the authenticated user's uuid for created_by stamps.
func creatorUUID(r *http.Request) *string {
	claims := auth.GetUserFromContext(r)
	if claims == nil {
		return nil
	}
	return &claims.UUID
}
