package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Toast is the short status message returned to the caller on successful
// mutations, e.g. {"message":"create Apple"}.
type Toast struct {
	Message string `json:"message"`
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	// Log encoding errors but don't expose them to the client
	_ = json.NewEncoder(w).Encode(v)
}

// WriteToast writes a "<verb> <name>" mutation toast with HTTP 200.
func WriteToast(w http.ResponseWriter, verb, name string) {
	WriteJSON(w, http.StatusOK, Toast{Message: fmt.Sprintf("%s %s", verb, name)})
}
