// Package response writes the JSON payloads the journal API returns,
// keeping success and error shapes consistent across handlers.
package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the error body every endpoint returns on failure.
// Details carries optional context, such as the field map from a failed
// trade validation.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// RespondJSON writes data as JSON with the given status code. A nil data
// writes only the status, which the delete and refresh endpoints use for
// 204 No Content. Encoding failures are logged; the status line has
// already been sent at that point.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode JSON response: %v", err)
	}
}

// RespondError writes an ErrorResponse with the given status code.
//
// Example:
//
//	response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
//	response.RespondError(w, http.StatusNotFound, "trade not found", "")
func RespondError(w http.ResponseWriter, status int, message string, details any) {
	RespondJSON(w, status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}
