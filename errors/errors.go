// Package errors provides error handling for Slate.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - PII-safe error formatting
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrNoBinding) {
//	    // handle missing analysis context
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is     = crdb.Is
	IsAny  = crdb.IsAny
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Common sentinel errors for use across Slate.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrNoBinding indicates a compilation unit has no analysis binding
	// available (unloaded, stale, or failed to resolve)
	ErrNoBinding = New("no analysis binding")

	// ErrEditConflict indicates an edit batch is out of bounds or overlapping
	// and was rejected without touching the buffer
	ErrEditConflict = New("conflicting edits")

	// ErrDocumentLimit indicates the per-client document cache is full
	ErrDocumentLimit = New("document cache limit reached")

	// ErrInvalidRequest indicates the request was malformed or invalid
	ErrInvalidRequest = New("invalid request")
)

// IsNoBindingError checks if an error is or wraps ErrNoBinding
func IsNoBindingError(err error) bool {
	return err != nil && Is(err, ErrNoBinding)
}

// IsEditConflictError checks if an error is or wraps ErrEditConflict
func IsEditConflictError(err error) bool {
	return err != nil && Is(err, ErrEditConflict)
}
