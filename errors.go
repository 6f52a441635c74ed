package intl

import (
	"errors"
	"fmt"
)

// ErrMissingShape indicates that a formatting shape was requested from a
// context that never went through NewContext or the provider middleware.
var ErrMissingShape = errors.New("intl: no formatting shape in context")

// ErrMissingLocale indicates a configuration without a usable locale.
var ErrMissingLocale = errors.New("intl: locale missing from configuration")

// ErrMissingTranslation indicates that no pattern was found for a message id.
var ErrMissingTranslation = errors.New("intl: missing translation")

// ErrMissingData indicates absent formatting data for a requested locale.
var ErrMissingData = errors.New("intl: missing locale data")

// ErrUnsupportedFormat indicates a format preset name with no definition.
var ErrUnsupportedFormat = errors.New("intl: unsupported format")

// ErrorCode classifies a diagnostic raised while building or using a
// formatting shape.
type ErrorCode string

const (
	ErrCodeInvalidConfig      ErrorCode = "INVALID_CONFIG"
	ErrCodeMissingData        ErrorCode = "MISSING_DATA"
	ErrCodeMissingTranslation ErrorCode = "MISSING_TRANSLATION"
	ErrCodeFormatError        ErrorCode = "FORMAT_ERROR"
	ErrCodeUnsupportedFormat  ErrorCode = "UNSUPPORTED_FORMATTER"
)

// Error is a structured diagnostic. Diagnostics are advisory: they are
// handed to the configured ErrorHandler and never returned from, or
// panicked out of, a formatting call.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("intl: [%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("intl: [%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// ErrorHandler receives diagnostics. A nil handler drops them.
type ErrorHandler func(err *Error)

// ErrorHandlers fans each diagnostic out to every non-nil handler in order.
func ErrorHandlers(handlers ...ErrorHandler) ErrorHandler {
	return func(err *Error) {
		for _, h := range handlers {
			if h != nil {
				h(err)
			}
		}
	}
}

// DiagnosticLogger adapts a Logger into an ErrorHandler. Advisory codes
// log at warn, FORMAT_ERROR at error.
func DiagnosticLogger(log Logger) ErrorHandler {
	return func(err *Error) {
		if log == nil || err == nil {
			return
		}
		switch err.Code {
		case ErrCodeFormatError:
			log.Error(err.Message, "code", string(err.Code), "error", err.Err)
		default:
			log.Warn(err.Message, "code", string(err.Code), "error", err.Err)
		}
	}
}

func dispatch(h ErrorHandler, err *Error) {
	if h == nil || err == nil {
		return
	}
	h(err)
}
