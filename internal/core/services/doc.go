// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The switcher engine is made of four parts:
//
//   - AggregatorService: fans out to the sources and merges one ordered list
//   - Debouncer: trailing-edge quiet period between typing and querying
//   - Session: term, sequenced requests and the Selection they feed
//   - ActivationService: dispatches the platform action for a result
//
// Services are pure Go and never import adapter packages.
package services
