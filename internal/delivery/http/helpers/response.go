package helpers

import (
	"encoding/json"
	"net/http"
)

// Messages written for errors whose cause must not reach the client.
const (
	MsgInternalError   = "internal server error"
	MsgUnauthenticated = "not authenticated"
	MsgForbidden       = "forbidden"
	MsgInvalidBody     = "invalid request body"
	MsgValidation      = "validation failed"
)

// APIError is the body of every error response.
// swagger:model APIError
type APIError struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// MessageResponse is a body carrying only a human-readable message.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and encodes body as-is.
func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteJSONError writes an APIError with the given status, message and optional details.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string, details ...string) {
	WriteJSON(w, statusCode, APIError{Message: message, Details: details})
}

// WriteNoContent writes a 204 with no body.
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
