// Package failure carries HTTP status codes on errors returned to handlers.
package failure

import (
	"errors"
	"net/http"
)

// Failure is an error whose message is safe to show to clients.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var ErrInvalidDate = New(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")

func New(code int, message string) *Failure {
	return &Failure{Code: code, Message: message}
}

func (e *Failure) Error() string {
	return e.Message
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

func NotFound(msg string) error {
	return New(http.StatusNotFound, msg)
}

// GetCode returns the code of the first Failure in err's chain, 500 otherwise.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// Public returns the Failure in err's chain, or a bare 500 so that driver and
// store messages never reach the client.
func Public(err error) error {
	if err == nil {
		return nil
	}

	var fail *Failure
	if errors.As(err, &fail) {
		return fail
	}

	return New(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
