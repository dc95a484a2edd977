package cli

import "errors"

// ErrNotConfigured is returned when no service builder has been set.
var ErrNotConfigured = errors.New("services not configured")

// ErrIndexOutOfRange is returned when --index names a row that does not exist.
var ErrIndexOutOfRange = errors.New("result index out of range")

// ErrUnknownEngine is returned when a named engine is not known.
var ErrUnknownEngine = errors.New("unknown search engine")
