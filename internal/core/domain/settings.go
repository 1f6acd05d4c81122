package domain

import (
	"strconv"
	"time"
)

// Defaults for gallery behaviour.
const (
	// DefaultPageSize is the number of records materialised per page.
	DefaultPageSize = 20

	// DefaultSearchDebounce is the idle window before search input applies.
	DefaultSearchDebounce = 200 * time.Millisecond

	// DefaultScrollThreshold is how close to the bottom a scroll must come
	// to load the next page.
	DefaultScrollThreshold = 300

	// DefaultDataSource is the data file loaded at startup.
	DefaultDataSource = "data/prompts.json"

	// DefaultBaseURL is the addressable location deep links are built on.
	DefaultBaseURL = "http://localhost:8080/"

	// DefaultServeAddr is the listen address of the HTTP API.
	DefaultServeAddr = ":8080"

	// DefaultServeRate is the HTTP API's sustained requests per second.
	DefaultServeRate = 20.0
)

// Configuration keys, as flattened dot-notation TOML keys.
const (
	KeyDataSource      = "data.source"
	KeyPageSize        = "gallery.page_size"
	KeySearchDebounce  = "gallery.search_debounce_ms"
	KeyScrollThreshold = "gallery.scroll_threshold"
	KeyStyleFacets     = "gallery.style_facets"
	KeyBaseURL         = "location.base_url"
	KeyServeAddr       = "serve.addr"
	KeyServeRate       = "serve.rate"
)

// SettingKeys returns the settable keys in display order.
func SettingKeys() []string {
	return []string{
		KeyDataSource,
		KeyPageSize,
		KeySearchDebounce,
		KeyScrollThreshold,
		KeyStyleFacets,
		KeyBaseURL,
		KeyServeAddr,
		KeyServeRate,
	}
}

// GallerySettings holds the typed configuration of the gallery.
type GallerySettings struct {
	// DataSource is a file path or http(s) URL of the data file.
	DataSource string

	// PageSize is the number of records per page. Always positive.
	PageSize int

	// SearchDebounce is the search input idle window.
	SearchDebounce time.Duration

	// ScrollThreshold is the proximity that triggers loading the next page.
	ScrollThreshold int

	// StyleFacetLimit caps the number of tag facets.
	StyleFacetLimit int

	// BaseURL is the location deep links are built on.
	BaseURL string

	// ServeAddr is the HTTP API listen address.
	ServeAddr string

	// ServeRate is the HTTP API's sustained requests per second.
	ServeRate float64
}

// DefaultGallerySettings returns settings with sensible defaults.
func DefaultGallerySettings() GallerySettings {
	return GallerySettings{
		DataSource:      DefaultDataSource,
		PageSize:        DefaultPageSize,
		SearchDebounce:  DefaultSearchDebounce,
		ScrollThreshold: DefaultScrollThreshold,
		StyleFacetLimit: DefaultStyleFacetLimit,
		BaseURL:         DefaultBaseURL,
		ServeAddr:       DefaultServeAddr,
		ServeRate:       DefaultServeRate,
	}
}

// Validate checks the settings for values the gallery cannot run with.
func (s GallerySettings) Validate() error {
	if s.PageSize <= 0 {
		return ErrInvalidInput
	}
	if s.SearchDebounce < 0 || s.ScrollThreshold < 0 || s.StyleFacetLimit < 0 {
		return ErrInvalidInput
	}
	if s.DataSource == "" {
		return ErrInvalidInput
	}
	return nil
}

// Value returns the setting stored under a config key, formatted the way
// it is written to the config file. Unknown keys return "".
func (s GallerySettings) Value(key string) string {
	switch key {
	case KeyDataSource:
		return s.DataSource
	case KeyPageSize:
		return strconv.Itoa(s.PageSize)
	case KeySearchDebounce:
		return strconv.FormatInt(s.SearchDebounce.Milliseconds(), 10)
	case KeyScrollThreshold:
		return strconv.Itoa(s.ScrollThreshold)
	case KeyStyleFacets:
		return strconv.Itoa(s.StyleFacetLimit)
	case KeyBaseURL:
		return s.BaseURL
	case KeyServeAddr:
		return s.ServeAddr
	case KeyServeRate:
		return strconv.FormatFloat(s.ServeRate, 'g', -1, 64)
	default:
		return ""
	}
}
