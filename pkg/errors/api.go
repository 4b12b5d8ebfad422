package errors

import (
	"fmt"
	"net/http"
)

// ArgumentKind classifies why an argument was rejected.
type ArgumentKind string

const (
	// ArgWrongType means the runtime type did not match the declared type.
	ArgWrongType ArgumentKind = "wrong-type"
	// ArgInvalidValue means the type matched but the value is unusable.
	ArgInvalidValue ArgumentKind = "invalid-value"
	// ArgArity means too many or too few arguments were supplied.
	ArgArity ArgumentKind = "arity"
)

// ArgumentError is returned before any network call when an argument is rejected.
//
// Index is the zero-based parameter position. For wrong-type errors Got and
// Want hold the actual and expected type names; for invalid values Reason
// describes the problem.
type ArgumentError struct {
	Index  int
	Kind   ArgumentKind
	Param  string // Parameter name (may be empty)
	Got    string // Actual type name
	Want   string // Expected type name
	Reason string
}

// NewWrongType creates a wrong-type ArgumentError.
func NewWrongType(index int, param, got, want string) *ArgumentError {
	return &ArgumentError{Index: index, Kind: ArgWrongType, Param: param, Got: got, Want: want}
}

// NewInvalidValue creates an invalid-value ArgumentError.
func NewInvalidValue(index int, param, format string, args ...any) *ArgumentError {
	return &ArgumentError{Index: index, Kind: ArgInvalidValue, Param: param, Reason: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	name := fmt.Sprintf("argument %d", e.Index)
	if e.Param != "" {
		name = fmt.Sprintf("argument %d (%s)", e.Index, e.Param)
	}
	switch e.Kind {
	case ArgWrongType:
		return fmt.Sprintf("%s: got %s, want %s", name, e.Got, e.Want)
	case ArgArity:
		return e.Reason
	default:
		return fmt.Sprintf("%s: %s", name, e.Reason)
	}
}

// Code returns ErrCodeInvalidInput.
func (e *ArgumentError) Code() Code { return ErrCodeInvalidInput }

// NotFoundError is returned when the API answers with any status other than
// 200 or 401. Kind is a human-readable resource label such as "project",
// "user", "team", "search" or "project version".
type NotFoundError struct {
	ID     string
	Kind   string
	Status int
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("%s %q not found", e.Kind, e.ID)
	if e.Status != 0 && e.Status != http.StatusNotFound {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	return msg
}

// Code returns ErrCodeNotFound.
func (e *NotFoundError) Code() Code { return ErrCodeNotFound }

// AccessError is returned when the API answers 401 Unauthorized.
type AccessError struct {
	Reason string
}

// Error implements the error interface.
func (e *AccessError) Error() string {
	if e.Reason == "" {
		return "unauthorized"
	}
	return "unauthorized: " + e.Reason
}

// Code returns ErrCodeUnauthorized.
func (e *AccessError) Code() Code { return ErrCodeUnauthorized }

var (
	_ coder = (*Error)(nil)
	_ coder = (*ArgumentError)(nil)
	_ coder = (*NotFoundError)(nil)
	_ coder = (*AccessError)(nil)
)
