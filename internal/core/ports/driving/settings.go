package driving

import "github.com/custodia-labs/promptvault/internal/core/domain"

// SettingsService manages gallery settings.
type SettingsService interface {
	// Get resolves the current settings, applying defaults for missing keys.
	Get() domain.GallerySettings

	// Set validates and persists a single setting.
	Set(key, value string) error

	// Keys returns the settable keys in display order.
	Keys() []string

	// Path returns the configuration file path.
	Path() string
}
