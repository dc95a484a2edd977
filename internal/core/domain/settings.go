package domain

import "time"

// Configuration defaults.
const (
	// DefaultCDPURL is where Chrome listens when started with
	// --remote-debugging-port=9222.
	DefaultCDPURL = "http://127.0.0.1:9222"

	// DefaultDebounceMillis is the quiet period before a query is run.
	DefaultDebounceMillis = 150
)

// BrowserSettings holds how quickswitch reaches the browser.
type BrowserSettings struct {
	// CDPURL is the DevTools endpoint of a running Chrome.
	CDPURL string
}

// BookmarkSettings holds where bookmarks are read from.
// Empty paths are auto-detected.
type BookmarkSettings struct {
	// ChromeFile is the path to Chrome's Bookmarks JSON file.
	ChromeFile string

	// FirefoxPlaces is the path to a Firefox profile's places.sqlite.
	FirefoxPlaces string
}

// SearchSettings holds web search fallback configuration.
type SearchSettings struct {
	// DefaultEngine is the name of the engine used for the fallback entry.
	DefaultEngine string

	// CustomName and CustomURL define an extra engine.
	// CustomURL contains %s or {searchTerms} where the term goes.
	CustomName string
	CustomURL  string
}

// HasCustomEngine returns true if a custom engine is configured.
func (s SearchSettings) HasCustomEngine() bool {
	return s.CustomName != "" && s.CustomURL != ""
}

// UISettings holds interactive behaviour configuration.
type UISettings struct {
	// DebounceMillis is the quiet period before a typed query is run.
	DebounceMillis int
}

// Debounce returns the quiet period as a duration, falling back to
// the default for non-positive values.
func (u UISettings) Debounce() time.Duration {
	if u.DebounceMillis <= 0 {
		return DefaultDebounceMillis * time.Millisecond
	}
	return time.Duration(u.DebounceMillis) * time.Millisecond
}

// AppSettings holds all user-configurable settings.
type AppSettings struct {
	Browser   BrowserSettings
	Bookmarks BookmarkSettings
	Search    SearchSettings
	UI        UISettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Browser: BrowserSettings{
			CDPURL: DefaultCDPURL,
		},
		Search: SearchSettings{
			DefaultEngine: DefaultEngineName,
		},
		UI: UISettings{
			DebounceMillis: DefaultDebounceMillis,
		},
	}
}
