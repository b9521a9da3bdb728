package models

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrItemNotFound  = errors.New("models: item not found")
	ErrStoreNotFound = errors.New("models: item store not found")
	ErrFileNotFound  = errors.New("models: file not found")
	ErrUserNotFound  = errors.New("models: user not found")

	ErrDuplicateUsername = errors.New("models: duplicate username")
)

// Application error codes, stable across releases. Clients key off these
// rather than off messages.
const (
	CodeInternalError = 1000
	CodeInvalidParam  = 1001
	CodeUnauthorized  = 1002
	CodeForbidden     = 1003
	CodeNotFound      = 1004
	CodeDatabaseError = 1005
	CodeValidation    = 1006

	CodeAuthFailed         = 2000
	CodeInvalidCredentials = 2001
	CodeTokenExpired       = 2002
	CodeInvalidToken       = 2003
	CodeUserNotFound       = 2004
	CodeUserAlreadyExists  = 2005

	CodeItemCreateFailed = 3000
	CodeItemNotFound     = 3001
	CodeItemUpdateFailed = 3002
	CodeItemDeleteFailed = 3003
	CodeNotItemOwner     = 3004

	CodeNothingToUpdate = 4000
)

// APIError is the single error shape that crosses the service boundary.
// Status picks the HTTP response status, Code is the application error code
// surfaced in the response envelope.
type APIError struct {
	Status  int
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
}

func NewAPIError(status, code int, message string) *APIError {
	return &APIError{Status: status, Code: code, Message: message}
}

func InternalError(message string) *APIError {
	return &APIError{Status: http.StatusInternalServerError, Code: CodeInternalError, Message: message}
}

// AsAPIError unwraps err into an APIError, falling back to a generic
// internal error so handlers never leak raw failure detail to clients.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return InternalError("Internal Server Error")
}
