package failure

import (
	"errors"
	"net/http"
)

// Failure is an error carrying the HTTP status it should be reported with.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Failure) Error() string {
	return e.Message
}

// BadRequest wraps err as a 400 failure.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	var f *Failure
	if errors.As(err, &f) && f.Code == http.StatusBadRequest {
		return f
	}

	return &Failure{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	}
}

// BadRequestFromString returns a 400 failure with msg.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Validation returns a 400 failure whose message is a machine readable reason such as "end-before-start".
func Validation(reason string) *Failure {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: reason,
	}
}

func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// NotFound returns a 404 failure for the named entity.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// InternalError wraps err as a 500 failure.
func InternalError(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}

// GetCode returns the status carried by err, or 500 for plain errors.
func GetCode(err error) int {
	var f *Failure
	if errors.As(err, &f) {
		return f.Code
	}

	return http.StatusInternalServerError
}

// IsValidation reports whether err is a 400 failure.
func IsValidation(err error) bool {
	return GetCode(err) == http.StatusBadRequest
}
