package errors

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error   string `json:"error"`             // Business error code, e.g., "code_not_found"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Detailed error information (optional)
}
