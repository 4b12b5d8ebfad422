package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "test message: %s", "value")

	if err.Code() != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code(), ErrCodeInvalidInput)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_INPUT: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeNetwork, cause, "failed to fetch")

	if err.Code() != ErrCodeNetwork {
		t.Errorf("Code = %v, want %v", err.Code(), ErrCodeNetwork)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeInvalidInput,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeNetwork,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeNetwork, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeNetwork,
			expected: true,
		},
		{
			name:     "not found error",
			err:      &NotFoundError{ID: "abc", Kind: "project"},
			code:     ErrCodeNotFound,
			expected: true,
		},
		{
			name:     "access error behind fmt wrap",
			err:      fmt.Errorf("fetch: %w", &AccessError{}),
			code:     ErrCodeUnauthorized,
			expected: true,
		},
		{
			name:     "argument error",
			err:      NewWrongType(0, "id", "int", "string"),
			code:     ErrCodeInvalidInput,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeInvalidFormat, "test"), ErrCodeInvalidFormat},
		{"NotFoundError", &NotFoundError{ID: "x", Kind: "user"}, ErrCodeNotFound},
		{"AccessError", &AccessError{Reason: "no token"}, ErrCodeUnauthorized},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeInvalidInput, "friendly message"), "friendly message"},
		{"wrapped Error", Wrap(ErrCodeNetwork, errors.New("dial tcp"), "request failed"), "request failed: dial tcp"},
		{"NotFoundError", &NotFoundError{ID: "abc", Kind: "project", Status: 404}, `project "abc" not found`},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNotFoundError(t *testing.T) {
	t.Run("404 omits status", func(t *testing.T) {
		err := &NotFoundError{ID: "abc", Kind: "project", Status: 404}
		if got, want := err.Error(), `project "abc" not found`; got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})

	t.Run("other status is reported", func(t *testing.T) {
		err := &NotFoundError{ID: "1.0", Kind: "project version", Status: 500}
		if got, want := err.Error(), `project version "1.0" not found (status 500)`; got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})

	t.Run("errors.As", func(t *testing.T) {
		var err error = fmt.Errorf("lookup: %w", &NotFoundError{ID: "abc", Kind: "project"})
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Fatal("errors.As() = false, want true")
		}
		if nf.ID != "abc" || nf.Kind != "project" {
			t.Errorf("got %+v", nf)
		}
	})
}

func TestAccessError(t *testing.T) {
	if got := (&AccessError{}).Error(); got != "unauthorized" {
		t.Errorf("Error() = %q, want %q", got, "unauthorized")
	}
	if got := (&AccessError{Reason: "no token"}).Error(); got != "unauthorized: no token" {
		t.Errorf("Error() = %q, want %q", got, "unauthorized: no token")
	}
}

func TestArgumentError(t *testing.T) {
	tests := []struct {
		name string
		err  *ArgumentError
		want string
	}{
		{
			name: "wrong type",
			err:  NewWrongType(1, "offset", "string", "int"),
			want: "argument 1 (offset): got string, want int",
		},
		{
			name: "wrong type without name",
			err:  NewWrongType(0, "", "int", "string"),
			want: "argument 0: got int, want string",
		},
		{
			name: "invalid value",
			err:  NewInvalidValue(2, "limit", "must be between 0 and %d, got %d", 100, 500),
			want: "argument 2 (limit): must be between 0 and 100, got 500",
		},
		{
			name: "arity",
			err:  &ArgumentError{Kind: ArgArity, Reason: "get_project takes 1 argument, got 2"},
			want: "get_project takes 1 argument, got 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidFormat,
		ErrCodeInvalidConfig,
		ErrCodeNotFound,
		ErrCodeNetwork,
		ErrCodeTimeout,
		ErrCodeUnauthorized,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
