package errors

import "errors"

var (
	ErrNotFound               = errors.New("resource not found")
	ErrAlreadyExists          = errors.New("resource already exists")
	ErrInvalidInput           = errors.New("invalid input")
	ErrUnknownField           = errors.New("unknown field")
	ErrInsufficientPermission = errors.New("insufficient permission")
	ErrDatabaseError          = errors.New("database error")
	ErrCacheError             = errors.New("cache error")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrServiceUnavailable     = errors.New("service unavailable")
)

type Error struct {
	Err     error
	Message string
	Code    string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Wrap(err error, message string) *Error {
	return &Error{
		Err:     err,
		Message: message,
		Code:    "INTERNAL_ERROR",
	}
}

// Invalid reports bad client input with a message safe to return to callers.
func Invalid(message string) *Error {
	return &Error{
		Err:     ErrInvalidInput,
		Message: message,
		Code:    "INVALID_INPUT",
	}
}

func NotFound(message string) *Error {
	return &Error{
		Err:     ErrNotFound,
		Message: message,
		Code:    "NOT_FOUND",
	}
}

func Conflict(message string) *Error {
	return &Error{
		Err:     ErrAlreadyExists,
		Message: message,
		Code:    "ALREADY_EXISTS",
	}
}

func Unavailable(message string) *Error {
	return &Error{
		Err:     ErrServiceUnavailable,
		Message: message,
		Code:    "UNAVAILABLE",
	}
}
