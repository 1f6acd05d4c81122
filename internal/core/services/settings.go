package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/custodia-labs/promptvault/internal/core/domain"
	"github.com/custodia-labs/promptvault/internal/core/ports/driven"
	"github.com/custodia-labs/promptvault/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages gallery settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get resolves the current settings.
func (s *SettingsService) Get() domain.GallerySettings {
	return LoadGallerySettings(s.configStore)
}

// Keys returns the settable keys in display order.
func (s *SettingsService) Keys() []string {
	return domain.SettingKeys()
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// Set parses value for key, validates the resulting settings and persists it.
func (s *SettingsService) Set(key, value string) error {
	settings := s.Get()
	var stored any

	switch key {
	case domain.KeyDataSource:
		settings.DataSource = value
		stored = value
	case domain.KeyBaseURL:
		settings.BaseURL = value
		stored = value
	case domain.KeyServeAddr:
		settings.ServeAddr = value
		stored = value
	case domain.KeyPageSize, domain.KeySearchDebounce, domain.KeyScrollThreshold, domain.KeyStyleFacets:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", key, domain.ErrInvalidInput)
		}
		applyInt(&settings, key, n)
		stored = n
	case domain.KeyServeRate:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("%s must be a positive number: %w", key, domain.ErrInvalidInput)
		}
		settings.ServeRate = f
		stored = f
	default:
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}

	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// LoadGallerySettings resolves typed settings from the config store,
// falling back to defaults for missing or invalid keys.
func LoadGallerySettings(store driven.ConfigStore) domain.GallerySettings {
	settings := domain.DefaultGallerySettings()
	if store == nil {
		return settings
	}

	if v := store.GetString(domain.KeyDataSource); v != "" {
		settings.DataSource = v
	}
	if v := store.GetString(domain.KeyBaseURL); v != "" {
		settings.BaseURL = v
	}
	if v := store.GetString(domain.KeyServeAddr); v != "" {
		settings.ServeAddr = v
	}
	for _, key := range []string{
		domain.KeyPageSize, domain.KeySearchDebounce, domain.KeyScrollThreshold, domain.KeyStyleFacets,
	} {
		if _, ok := store.Get(key); ok {
			if n := store.GetInt(key); n >= 0 {
				applyInt(&settings, key, n)
			}
		}
	}
	if settings.PageSize <= 0 {
		settings.PageSize = domain.DefaultPageSize
	}
	if v := store.GetFloat(domain.KeyServeRate); v > 0 {
		settings.ServeRate = v
	}
	return settings
}

func applyInt(settings *domain.GallerySettings, key string, n int) {
	switch key {
	case domain.KeyPageSize:
		settings.PageSize = n
	case domain.KeySearchDebounce:
		settings.SearchDebounce = time.Duration(n) * time.Millisecond
	case domain.KeyScrollThreshold:
		settings.ScrollThreshold = n
	case domain.KeyStyleFacets:
		settings.StyleFacetLimit = n
	}
}
