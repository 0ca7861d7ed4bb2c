package handlers

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"log"
	"net/http"

	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/errors"
)

// Error codes for standardized API error responses
const (
	ErrCodeBadRequest     = "BAD_REQUEST"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeConflict       = "CONFLICT"
	ErrCodeValidation     = "VALIDATION_ERROR"
	ErrCodeNoEvent        = "NO_EVENT_OPEN"
	ErrCodeInternalServer = "INTERNAL_SERVER_ERROR"
)

// APIError represents an error with an HTTP status code and error code
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"error"`
}

func (e *APIError) Error() string {
	return e.Message
}

// BadRequest creates a 400 error with custom message
func BadRequest(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: ErrCodeBadRequest, Message: message}
}

// NotFound creates a 404 error with custom message
func NotFound(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Code: ErrCodeNotFound, Message: message}
}

// Conflict creates a 409 error with custom message
func Conflict(message string) *APIError {
	return &APIError{Status: http.StatusConflict, Code: ErrCodeConflict, Message: message}
}

// InternalError creates a 500 error, logs the original error
func InternalError(err error) *APIError {
	log.Printf("Internal error: %v", err)
	return &APIError{Status: http.StatusInternalServerError, Code: ErrCodeInternalServer, Message: "Internal server error"}
}

// respondJSON writes a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// respondOK writes a 200 OK JSON response
func respondOK(w http.ResponseWriter, data interface{}) {
	respondJSON(w, http.StatusOK, data)
}

// respondSuccess writes a 200 OK with a message
func respondSuccess(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusOK, map[string]string{"message": message})
}

// respondDeleted writes a 204 No Content response
func respondDeleted(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, err error) {
	if apiErr, ok := err.(*APIError); ok {
		respondJSON(w, apiErr.Status, apiErr)
		return
	}
	apiErr := ToAPIError(err)
	respondJSON(w, apiErr.Status, apiErr)
}

// decodeJSON decodes JSON from request body into the target
func decodeJSON(r *http.Request, target interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		if err == io.EOF {
			return BadRequest("Request body is empty")
		}
		return BadRequest("Invalid JSON: " + err.Error())
	}
	return nil
}

// ToAPIError converts service errors to appropriate API errors
func ToAPIError(err error) *APIError {
	var appErr *errors.Error
	if stderrors.As(err, &appErr) {
		switch appErr.Kind {
		case errors.ErrNotFound:
			return NotFound(appErr.Message)
		case errors.ErrValidation:
			return &APIError{Status: http.StatusBadRequest, Code: ErrCodeValidation, Message: appErr.Message}
		case errors.ErrNoActiveContext:
			return &APIError{Status: http.StatusConflict, Code: ErrCodeNoEvent, Message: appErr.Message}
		default:
			return InternalError(err)
		}
	}
	return InternalError(err)
}
