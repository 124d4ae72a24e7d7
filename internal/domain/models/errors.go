package models

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrNotFound           = errors.New("record not found")
	ErrInvalidTransition  = errors.New("invalid trip status transition")
)

// ValidationError reports a missing or malformed field on a request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

// ActionError wraps any unexpected rejection from a simulated backend call.
// Its message is what gets stored on the owning slice and shown to the user.
type ActionError struct {
	Op  string
	Err error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ActionError) Unwrap() error { return e.Err }

func WrapAction(op string, err error) error {
	if err == nil {
		return nil
	}
	return &ActionError{Op: op, Err: err}
}
