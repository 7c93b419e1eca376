package models

// Error codes returned in ErrorDetail.Code
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInvalidArgument  = "INVALID_ARGUMENT"
	CodeIncompleteVarint = "INCOMPLETE_VARINT"
	CodeVarintOverflow   = "VARINT_OVERFLOW"
	CodeBlockTooLarge    = "BLOCK_TOO_LARGE"
	CodeCorruptBlock     = "CORRUPT_BLOCK"
	CodeNotFound         = "NOT_FOUND"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeInternal         = "INTERNAL_ERROR"
)

// APIError is an error with an HTTP status and a machine-readable code
type APIError struct {
	Status  int                    `json:"-"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError
func NewAPIError(status int, code, message string) *APIError {
	return &APIError{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of e carrying details
func (e *APIError) WithDetails(details map[string]interface{}) *APIError {
	cp := *e
	cp.Details = details
	return &cp
}
