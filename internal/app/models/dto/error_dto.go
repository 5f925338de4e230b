package dto

// ErrorResponse is the standard error payload for every failure status.
type ErrorResponse struct {
	Error   string `json:"error" example:"name is required"`
	Details string `json:"details,omitempty"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{
		Error: message,
	}
}

// WithDetails attaches a short detail string to the error
func (e *ErrorResponse) WithDetails(details string) *ErrorResponse {
	e.Details = details
	return e
}
