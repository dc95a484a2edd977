package services

import (
	"fmt"

	"github.com/custodia-labs/quickswitch/internal/core/domain"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driven"
	"github.com/custodia-labs/quickswitch/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyCDPURL        = "browser.cdp_url"
	keyChromeFile    = "bookmarks.chrome_file"
	keyFirefoxPlaces = "bookmarks.firefox_places"
	keyDefaultEngine = "search.default_engine"
	keyCustomName    = "search.custom_name"
	keyCustomURL     = "search.custom_url"
	keyDebounceMs    = "ui.debounce_ms"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// LoadSettings reads settings from store, applying defaults for
// missing values.
func LoadSettings(store driven.ConfigStore) domain.AppSettings {
	settings, _ := NewSettingsService(store).Get()
	return *settings
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Browser: domain.BrowserSettings{
			CDPURL: s.getString(keyCDPURL, defaults.Browser.CDPURL),
		},
		Bookmarks: domain.BookmarkSettings{
			ChromeFile:    s.configStore.GetString(keyChromeFile), // Empty means auto-detect
			FirefoxPlaces: s.configStore.GetString(keyFirefoxPlaces),
		},
		Search: domain.SearchSettings{
			DefaultEngine: s.getString(keyDefaultEngine, defaults.Search.DefaultEngine),
			CustomName:    s.configStore.GetString(keyCustomName),
			CustomURL:     s.configStore.GetString(keyCustomURL),
		},
		UI: domain.UISettings{
			DebounceMillis: s.getPositiveInt(keyDebounceMs, defaults.UI.DebounceMillis),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("settings are nil: %w", domain.ErrInvalidInput)
	}

	values := []struct {
		key   string
		value any
	}{
		{keyCDPURL, settings.Browser.CDPURL},
		{keyChromeFile, settings.Bookmarks.ChromeFile},
		{keyFirefoxPlaces, settings.Bookmarks.FirefoxPlaces},
		{keyDefaultEngine, settings.Search.DefaultEngine},
		{keyCustomName, settings.Search.CustomName},
		{keyCustomURL, settings.Search.CustomURL},
		{keyDebounceMs, settings.UI.DebounceMillis},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return s.configStore.Save()
}

// SetDefaultEngine updates the engine used for the web search entry.
func (s *SettingsService) SetDefaultEngine(name string) error {
	if name == "" {
		return fmt.Errorf("engine name is empty: %w", domain.ErrInvalidInput)
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Search.DefaultEngine = name
	return s.Save(settings)
}

// SetDebounce updates the typing quiet period.
func (s *SettingsService) SetDebounce(millis int) error {
	if millis <= 0 {
		return fmt.Errorf("debounce must be positive, got %d: %w", millis, domain.ErrInvalidInput)
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.UI.DebounceMillis = millis
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getPositiveInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}
