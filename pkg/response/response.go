package response

// Error codes returned in the JSON envelope. Clients match on these,
// not on messages.
const (
	ErrCodeBadRequest     = "BAD_REQUEST"
	ErrCodeUnauthorized   = "UNAUTHORIZED"
	ErrCodeForbidden      = "FORBIDDEN"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeConflict       = "CONFLICT"
	ErrCodeInternalError  = "INTERNAL_ERROR"
	ErrCodeUsernameTaken  = "USERNAME_TAKEN"
	ErrCodeInvalidLogin   = "INVALID_CREDENTIALS"
	ErrCodeInvalidToken   = "INVALID_TOKEN"
	ErrCodeMissingToken   = "MISSING_TOKEN"
	ErrCodeTooManyRequest = "RATE_LIMIT_EXCEEDED"
)

// Response is the JSON envelope for every API reply
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorData  `json:"error,omitempty"`
}

// ErrorData carries a machine-readable code and a human-readable message
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success builds a successful response envelope
func Success(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

// Error builds an error response envelope with an explicit code
func Error(code, message string) Response {
	return Response{
		Success: false,
		Error: &ErrorData{
			Code:    code,
			Message: message,
		},
	}
}

// BadRequest builds a BAD_REQUEST error envelope
func BadRequest(message string) Response {
	return Error(ErrCodeBadRequest, message)
}

// NotFound builds a NOT_FOUND error envelope
func NotFound(message string) Response {
	return Error(ErrCodeNotFound, message)
}

// Unauthorized builds an UNAUTHORIZED error envelope
func Unauthorized(message string) Response {
	return Error(ErrCodeUnauthorized, message)
}

// Forbidden builds a FORBIDDEN error envelope
func Forbidden(message string) Response {
	return Error(ErrCodeForbidden, message)
}

// InternalError builds an INTERNAL_ERROR error envelope
func InternalError(message string) Response {
	return Error(ErrCodeInternalError, message)
}
