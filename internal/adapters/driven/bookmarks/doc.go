// Package bookmarks groups the driven.BookmarkSource adapters.
//
//   - chrome: Chrome's Bookmarks JSON file, reloaded when it changes
//   - firefox: a Firefox profile's places.sqlite database
package bookmarks
