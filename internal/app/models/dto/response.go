package dto

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// NewSuccessResponse creates a success response with the given message.
func NewSuccessResponse(message string) SuccessResponse {
	return SuccessResponse{Message: message}
}

// ErrorResponse represents the standard error response structure. The body
// is a single error message, matching the API's wire contract.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
