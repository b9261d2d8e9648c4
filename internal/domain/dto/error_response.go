package dto

import "time"

// ErrorResponse is the standard JSON error body returned by every endpoint.
//
// Message is safe for clients; ErrorDetails carries the underlying cause and
// is omitted when empty. Handlers must not put raw internal error text into
// Message for unclassified failures.
type ErrorResponse struct {
	Message      string    `json:"message" example:"Invalid ticker symbol: FAKE123"`
	ErrorDetails string    `json:"error,omitempty" example:"context deadline exceeded"`
	Timestamp    time.Time `json:"timestamp" example:"2025-01-01T12:00:00Z"`
}

// Error implements the error interface so an ErrorResponse can travel through
// gin's error list.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds a response with the current timestamp.
// The inner error is optional and only its text is exposed.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
