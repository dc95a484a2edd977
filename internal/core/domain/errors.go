package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedKind indicates a result kind no dispatcher knows about.
	ErrUnsupportedKind = errors.New("unsupported result kind")

	// Activation Errors.

	// ErrNoTarget indicates a result carries no usable source reference,
	// for example a tab result without an identifier.
	ErrNoTarget = errors.New("result has no activation target")

	// ErrBrowserUnavailable indicates the browser could not be reached.
	// Tabs cannot be listed, focused or created without it.
	ErrBrowserUnavailable = errors.New("browser unavailable")

	// Source Errors.

	// ErrSourceUnavailable indicates a candidate source could not be read.
	// Aggregation treats such a source as empty.
	ErrSourceUnavailable = errors.New("source unavailable")
)
