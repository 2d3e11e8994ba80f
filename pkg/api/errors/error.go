package errors

import (
	"akurat-backend/pkg/enum"
)

// Represents a standardized error response for infrastructure failures
// (broken context wiring, rate limiting, schema validation details).
type ApiError struct {
	// Code represents the HTTP status code
	Code int `json:"code"`

	// Error represents a predefined error code from the enum package
	Error enum.ErrorCode `json:"error"`

	// Details contains additional error information (optional)
	Details interface{} `json:"details,omitempty"`
}

// MessageError is the user-visible error contract of the auth facade: every
// failed request carries a JSON body with a single message field. The status
// code travels out of band.
type MessageError struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
}
