// Package memory provides in-memory implementations of the driven ports.
//
// The tab and bookmark sources, the recording Browser and the Surface
// back the service tests and the --demo mode, where no real browser
// is required.
package memory
