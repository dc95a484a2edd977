package driving

import "github.com/custodia-labs/quickswitch/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetDefaultEngine updates the engine used for the web search entry.
	SetDefaultEngine(name string) error

	// SetDebounce updates the typing quiet period in milliseconds.
	SetDebounce(millis int) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
