package jsonutil

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes a JSON response with the given status code and data.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// WriteError writes a JSON error response with the given status code.
func WriteError(w http.ResponseWriter, status int, errMsg string) {
	WriteJSON(w, status, map[string]string{"error": errMsg})
}

// WriteInvalidArgument writes a 400 for malformed input.
func WriteInvalidArgument(w http.ResponseWriter, errMsg string) {
	WriteError(w, http.StatusBadRequest, errMsg)
}

// WriteUnauthorized writes a 401 for requests carrying no session.
func WriteUnauthorized(w http.ResponseWriter) {
	WriteError(w, http.StatusUnauthorized, "authentication required")
}

// WriteForbidden writes a 403 for sessions lacking privilege.
func WriteForbidden(w http.ResponseWriter, errMsg string) {
	WriteError(w, http.StatusForbidden, errMsg)
}

// WriteNotFound writes a 404 for an absent entity.
func WriteNotFound(w http.ResponseWriter, errMsg string) {
	WriteError(w, http.StatusNotFound, errMsg)
}

// WriteUpstreamFailure writes a 500 with a generic message. Details stay server-side.
func WriteUpstreamFailure(w http.ResponseWriter) {
	WriteError(w, http.StatusInternalServerError, "internal error")
}
