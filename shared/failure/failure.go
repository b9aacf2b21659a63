// Package failure carries caller-facing errors. A Failure holds the HTTP status the
// transport layer answers with and a message that is safe to show to clients.
package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure is an error with an HTTP status code and a client-safe message.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ForbiddenError is returned when the actor's role does not allow the operation.
var ForbiddenError = New(http.StatusForbidden, "You don't have the required permissions")

func (e *Failure) Error() string {
	return e.Message
}

// New builds a Failure with the given status code.
func New(code int, message string) *Failure {
	return &Failure{Code: code, Message: message}
}

// Newf builds a Failure with a formatted message.
func Newf(code int, format string, args ...any) *Failure {
	return New(code, fmt.Sprintf(format, args...))
}

// BadRequest turns a validation error into a 400. A nil error stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return New(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return New(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) error {
	return New(http.StatusForbidden, msg)
}

// NotFound reports a missing entity; the message is shown to the caller as is.
func NotFound(message string) error {
	return New(http.StatusNotFound, message)
}

// Conflict reports a clash with existing data, such as an overlapping booking.
func Conflict(message string) error {
	return New(http.StatusConflict, message)
}

// InvalidState reports an operation the entity's current status does not allow.
func InvalidState(message string) error {
	return New(http.StatusUnprocessableEntity, message)
}

// GetCode returns the status carried by err, or 500 for anything that is not a Failure.
func GetCode(err error) int {
	if fail, ok := As(err); ok {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// MessageOf returns the client-safe message carried by err, or fallback when err
// is not a Failure.
func MessageOf(err error, fallback string) string {
	if fail, ok := As(err); ok {
		return fail.Message
	}

	return fallback
}

// IsFailure reports whether err carries a Failure anywhere in its chain.
func IsFailure(err error) bool {
	_, ok := As(err)

	return ok
}

// As unwraps the first Failure in err's chain.
func As(err error) (*Failure, bool) {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail, true
	}

	return nil, false
}
