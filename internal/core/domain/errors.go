package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMirrorUnattached indicates no external mirror file is connected.
	ErrMirrorUnattached = errors.New("mirror not attached")

	// ErrAborted indicates the user explicitly cancelled a flow
	// (e.g. abandoned the mirror file selection).
	ErrAborted = errors.New("aborted by user")

	// ErrAssistUnavailable indicates the sales assistant is not configured.
	// Assist features degrade to safe fallback values.
	ErrAssistUnavailable = errors.New("sales assistant unavailable")

	// ErrCorruptState indicates persisted state could not be decoded.
	// The cache layer treats this identically to "no prior data".
	ErrCorruptState = errors.New("corrupt persisted state")
)
