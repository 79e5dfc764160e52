package errors

import (
	stdErrors "errors"
	"fmt"
)

type BaseError struct {
	Code    int    `json:"code"`
	Name    string `json:"name"`
	Message string `json:"message"`

	messageFormat string
	cause         error
}

func (e BaseError) Error() string {
	return e.Message
}

func (e BaseError) Unwrap() error {
	return e.cause
}

// Is reports whether target carries the same error code, so declared errors work as
// sentinels with errors.Is regardless of their formatted message.
func (e BaseError) Is(target error) bool {

	asserted, ok := target.(BaseError)
	if !ok {
		return false
	}

	return asserted.Code == e.Code
}

func (e BaseError) New(args ...any) BaseError {

	e.Message = fmt.Sprintf(e.messageFormat, args...)
	e.cause = nil
	return e
}

// Wrap formats the message like New and keeps cause for errors.Unwrap.
func (e BaseError) Wrap(cause error, args ...any) BaseError {

	wrapped := e.New(args...)
	wrapped.cause = cause
	return wrapped
}

func TryAssertError(err error) (BaseError, bool) {

	var asserted BaseError
	ok := stdErrors.As(err, &asserted)
	return asserted, ok
}

func IsError(err error, expectedError BaseError) bool {

	asserted, ok := TryAssertError(err)
	if !ok {
		return false
	}

	return asserted.Code == expectedError.Code && asserted.Message == expectedError.Message
}

func new(errorCode int, name string, messageFormat string) BaseError {

	return BaseError{Code: errorCode, Name: name, messageFormat: messageFormat}
}
