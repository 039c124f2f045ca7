package models

// ErrorResponse is the body returned for lookups that fail
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse is the body returned when a write is rejected.
// Every rejected write produces the same message, whatever the cause.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// Error messages exposed by the API
const (
	MsgRestaurantNotFound = "Restaurant not found"
	MsgValidationErrors   = "validation errors"
)

// NewErrorResponse creates an error body with the given message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewValidationErrorResponse creates the generic write-rejection body
func NewValidationErrorResponse() ValidationErrorResponse {
	return ValidationErrorResponse{Errors: []string{MsgValidationErrors}}
}
