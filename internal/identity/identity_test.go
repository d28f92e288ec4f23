package identity

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorIs(t *testing.T) {
	err := fmt.Errorf("sign in: %w", &Error{Code: CodeWrongPassword, Message: "custom"})
	if !errors.Is(err, ErrWrongPassword) {
		t.Error("errors with the same code should match")
	}
	if errors.Is(err, ErrUserNotFound) {
		t.Error("errors with different codes should not match")
	}
}

func TestMessage(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		expected string
	}{
		{"provider error", ErrInvalidEmail, "The email address is badly formatted."},
		{"wrapped provider error", fmt.Errorf("x: %w", ErrWrongPassword), ErrWrongPassword.Message},
		{"other error", errors.New("connection refused"), "connection refused"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Message(c.err); got != c.expected {
				t.Errorf("expected %q, got %q", c.expected, got)
			}
		})
	}
}
