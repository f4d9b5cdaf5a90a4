package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeInvalidInput      Code = "INVALID_INPUT"
	CodeNoMediaFound      Code = "NO_MEDIA_FOUND"
	CodeMissingCredential Code = "MISSING_CREDENTIAL"
	CodeGenerationFailed  Code = "GENERATION_FAILED"
)

// Sentinels for errors.Is checks; matching is done on Code.
var (
	ErrInvalidInput      = &AppError{Code: CodeInvalidInput}
	ErrNoMediaFound      = &AppError{Code: CodeNoMediaFound}
	ErrMissingCredential = &AppError{Code: CodeMissingCredential}
	ErrGenerationFailed  = &AppError{Code: CodeGenerationFailed}
)

type AppError struct {
	Code    Code
	Message string
	Err     error
}

func New(code Code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func Wrap(code Code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return string(e.Code)
	}
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Details is the underlying message, passed through verbatim to API callers.
func (e *AppError) Details() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Error()
}

func (e *AppError) StatusCode() int {
	switch e.Code {
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeMissingCredential:
		return http.StatusUnauthorized
	case CodeNoMediaFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// StatusCode maps any error to an HTTP status; non-AppErrors are 500.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode()
	}
	return http.StatusInternalServerError
}
