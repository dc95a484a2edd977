package tui

import "errors"

// ErrMissingSession is returned when the session is not provided.
var ErrMissingSession = errors.New("tui: session is required")

// ErrMissingActivator is returned when the activator is not provided.
var ErrMissingActivator = errors.New("tui: activator is required")

// ErrMissingSurface is returned when the surface is not provided.
var ErrMissingSurface = errors.New("tui: surface is required")
