// Package domain defines the core entities of quickswitch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SearchResult: One row of the unified switcher list
//   - Tab: An open browser tab as reported by a tab source
//   - BookmarkNode: A node of a bookmark tree (folder or bookmark)
//   - SearchEngine: A web search provider used for the fallback entry
//   - Selection: The active index over the current result list
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
