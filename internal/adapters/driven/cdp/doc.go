// Package cdp reaches a running Chrome over the DevTools Protocol.
//
// Chrome must be started with --remote-debugging-port (default 9222).
// The package provides two driven adapters over one shared Client:
//
//   - TabSource: lists page targets as tabs
//   - Browser: focuses targets, opens tabs and runs web searches
//
// Every protocol call goes through a RateLimiter so a burst of key
// presses cannot flood the browser.
package cdp
