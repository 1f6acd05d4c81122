package driving

import (
	"context"

	"github.com/custodia-labs/promptvault/internal/core/domain"
	"github.com/custodia-labs/promptvault/internal/core/ports/driven"
)

// CatalogService provides access to the loaded record set.
// This is used by TUI, CLI, MCP and HTTP adapters.
type CatalogService interface {
	// Load fetches the data file into the record store. It runs once;
	// later calls return domain.ErrAlreadyLoaded.
	Load(ctx context.Context) error

	// Loaded reports whether the record store has been populated.
	Loaded() bool

	// Count returns the number of records.
	Count() int

	// Record returns the record at a global index.
	Record(ctx context.Context, index int) (domain.Record, error)

	// Query applies a one-shot filter, search and page request.
	Query(ctx context.Context, q domain.GalleryQuery) (domain.GalleryView, error)

	// Facets returns the tag-derived facets (capped at limit) and tool facets.
	Facets(ctx context.Context, limit int) (domain.Facets, error)

	// Link returns the deep link to the record at a global index.
	Link(index int) (string, error)

	// NewGallery returns a stateful gallery bound to a location and clock.
	NewGallery(loc driven.Location, clock driven.Clock) GalleryController

	// Settings returns the settings the catalog was built with.
	Settings() domain.GallerySettings
}
