// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - TabSource: Lists open browser tabs
//   - Browser: Focuses tabs, opens URLs and runs web searches
//   - Surface: The host surface closed after a successful activation
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be absent - aggregation degrades gracefully:
//
//   - BookmarkSource: Bookmark trees (Chrome, Firefox). Zero or more.
//   - SearchEngineSource: Default web search engine. Falls back to "Google".
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
