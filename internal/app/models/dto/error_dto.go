package dto

// ErrorType names the failure class in an error response
type ErrorType string

// Error types written to the "type" field of error responses
const (
	ErrorTypeEntityNotFound ErrorType = "EntityNotFoundException"
	ErrorTypeAccessDenied   ErrorType = "AccessDeniedException"
	ErrorTypeValidation     ErrorType = "ValidationException"
	ErrorTypeConflict       ErrorType = "DataIntegrityViolationException"
	ErrorTypeMethod         ErrorType = "HttpRequestMethodNotSupportedException"
	ErrorTypeInternal       ErrorType = "InternalServerException"
)

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Type    ErrorType   `json:"type" example:"EntityNotFoundException"`
	Message string      `json:"message" example:"UCSBOrganizations with id krc not found"`
	Details interface{} `json:"details,omitempty"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(errorType ErrorType, message string) *ErrorResponse {
	return &ErrorResponse{
		Type:    errorType,
		Message: message,
	}
}

// WithDetails adds additional details to the error
func (e *ErrorResponse) WithDetails(details interface{}) *ErrorResponse {
	e.Details = details
	return e
}

// FieldError describes one rejected request parameter
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
