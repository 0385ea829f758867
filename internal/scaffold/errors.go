package scaffold

import (
	"errors"
	"fmt"
)

// Sentinel errors for scaffold operations.
var (
	ErrProjectNotFound = errors.New("project root not found")
	ErrUnknownEngine   = errors.New("unknown engine")
	ErrUnknownPlatform = errors.New("unknown platform")
)

// InputError indicates bad arguments or an invalid project name/path (exit code 2).
type InputError struct {
	Err error
}

func (e *InputError) Error() string { return e.Err.Error() }
func (e *InputError) Unwrap() error { return e.Err }

// NewInputError wraps a message as an InputError.
func NewInputError(format string, args ...any) *InputError {
	return &InputError{Err: fmt.Errorf(format, args...)}
}

// TargetError indicates a missing or unusable sweep target (exit code 3).
type TargetError struct {
	Err error
}

func (e *TargetError) Error() string { return e.Err.Error() }
func (e *TargetError) Unwrap() error { return e.Err }

// NewTargetError wraps a message as a TargetError.
func NewTargetError(format string, args ...any) *TargetError {
	return &TargetError{Err: fmt.Errorf(format, args...)}
}
