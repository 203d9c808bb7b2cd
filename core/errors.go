package core

import (
	"errors"
	"fmt"
)

// ErrRequestInFlight is returned by the query engine when Submit is called
// while a previous request is still pending. The log and phase are left
// untouched; the caller may retry once the in-flight request resolves.
var ErrRequestInFlight = errors.New("request already in flight")

// PreconditionError reports a submit that failed before any network call was
// made: blank input or a missing access credential. It is surfaced to the
// caller and never persisted as a turn or phase.
type PreconditionError struct {
	Reason string
}

// Error implements the error interface.
func (e *PreconditionError) Error() string { return "precondition failed: " + e.Reason }

// ResponseError reports a transport failure or a structurally invalid success
// response from the remote capability. Both are handled uniformly; the caller
// must not assume partial structure is usable.
type ResponseError struct {
	Err error
}

// Error implements the error interface.
func (e *ResponseError) Error() string { return "invalid model response: " + e.Err.Error() }

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *ResponseError) Unwrap() error { return e.Err }

// ValidationError reports a malformed turn append rejected by the session store.
type ValidationError struct {
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string { return "validation failed: " + e.Reason }

// InvalidTransitionError reports a phase transition that violates the
// single-flight invariant (entering pending while already pending).
type InvalidTransitionError struct {
	From Phase
	To   Phase
}

// Error implements the error interface.
func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid phase transition: %s -> %s", e.From.Kind, e.To.Kind)
}
