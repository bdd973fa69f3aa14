package pagesift

import (
	"errors"
	"fmt"
)

// Error codes shared across all fetch and parse backends, so callers
// never branch on backend-specific types.
const (
	EINVALID     = "invalid"     // unparseable or empty input, bad argument
	ETIMEOUT     = "timeout"     // fetch or parse unit exceeded its deadline
	EAUTH        = "auth"        // bad or missing credential
	ERATELIMITED = "ratelimited" // backend rate limit hit
	EBLOCKED     = "blocked"     // anti-bot response from the target site
	EUNREACHABLE = "unreachable" // network or DNS failure
	EUNAVAILABLE = "unavailable" // parse backend unavailable or errored
	EMALFORMED   = "malformed"   // malformed backend or feed response
	EEMPTY       = "empty"       // empty backend response or feed
	EALLFAILED   = "allfailed"   // every chunk's parse failed
	EINTERNAL    = "internal"    // anything else
)

// Error represents an application error with a machine-readable code
// and a human-readable message.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("pagesift error: code=%s message=%s", e.Code, e.Message)
}

// Errorf returns a new Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps err and returns its code.
// Returns an empty string for nil errors and EINTERNAL for errors that
// are not an *Error.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps err and returns its message.
// Returns an empty string for nil errors and a generic message for
// errors that are not an *Error.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
