package services

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/custodia-labs/promptvault/internal/core/domain"
	"github.com/custodia-labs/promptvault/internal/core/ports/driven"
	"github.com/custodia-labs/promptvault/internal/core/ports/driving"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService serves the loaded record set. Stateless surfaces run each
// query on a fresh Gallery over the shared store.
type CatalogService struct {
	store    *RecordStore
	source   driven.RecordSource
	settings domain.GallerySettings
	clock    driven.Clock
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	source driven.RecordSource,
	settings domain.GallerySettings,
	clock driven.Clock,
) *CatalogService {
	return &CatalogService{
		store:    NewRecordStore(),
		source:   source,
		settings: settings,
		clock:    clock,
	}
}

// Load fetches the data file into the record store.
func (s *CatalogService) Load(ctx context.Context) error {
	return s.store.Load(ctx, s.source)
}

// Loaded reports whether the record store has been populated.
func (s *CatalogService) Loaded() bool {
	return s.store.Loaded()
}

// Count returns the number of records.
func (s *CatalogService) Count() int {
	return s.store.Count()
}

// Store returns the underlying record store.
func (s *CatalogService) Store() *RecordStore {
	return s.store
}

// Settings returns the settings the catalog was built with.
func (s *CatalogService) Settings() domain.GallerySettings {
	return s.settings
}

// Record returns the record at a global index.
func (s *CatalogService) Record(_ context.Context, index int) (domain.Record, error) {
	if !s.store.Loaded() {
		return domain.Record{}, domain.ErrNotLoaded
	}
	rec, ok := s.store.Get(index)
	if !ok {
		return domain.Record{}, fmt.Errorf("record %d: %w", index, domain.ErrNotFound)
	}
	return rec, nil
}

// Query applies a filter, search, page and deep link to a fresh gallery
// and returns its snapshot.
func (s *CatalogService) Query(ctx context.Context, q domain.GalleryQuery) (domain.GalleryView, error) {
	if err := ctx.Err(); err != nil {
		return domain.GalleryView{}, err
	}

	link := q.Link
	if link == "" {
		link = s.settings.BaseURL
	}
	loc, err := newQueryLocation(link)
	if err != nil {
		return domain.GalleryView{}, err
	}

	g := NewGallery(s.store, s.settings, loc, s.clock)
	g.Ready()
	if q.Filter != "" {
		g.SetFilter(q.Filter)
	}
	if q.Query != "" {
		g.SetSearch(q.Query)
	}
	for page := 1; page < q.Page; page++ {
		if !g.AdvancePage() {
			break
		}
	}
	return g.Snapshot(), nil
}

// Facets returns the tag facets, capped at limit, and the tool facets.
// A non-positive limit uses the configured limit.
func (s *CatalogService) Facets(ctx context.Context, limit int) (domain.Facets, error) {
	if err := ctx.Err(); err != nil {
		return domain.Facets{}, err
	}
	if limit <= 0 {
		limit = s.settings.StyleFacetLimit
	}
	records := s.store.Records()
	return domain.Facets{
		Style: BuildStyleFacets(records, limit),
		Tool:  BuildToolFacets(records),
	}, nil
}

// Link returns the deep link to the record at a global index, built on the
// configured base URL.
func (s *CatalogService) Link(index int) (string, error) {
	if _, ok := s.store.Get(index); !ok {
		return "", fmt.Errorf("record %d: %w", index, domain.ErrNotFound)
	}
	base, err := url.Parse(s.settings.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url %q: %w", s.settings.BaseURL, domain.ErrInvalidInput)
	}
	return LinkTo(base, index), nil
}

// NewGallery returns a stateful gallery bound to loc and clock.
func (s *CatalogService) NewGallery(loc driven.Location, clock driven.Clock) driving.GalleryController {
	return NewGallery(s.store, s.settings, loc, clock)
}

// queryLocation is the location of a single query. It lives only as long
// as the query.
type queryLocation struct {
	mu  sync.Mutex
	url *url.URL
}

func newQueryLocation(raw string) (*queryLocation, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse link %q: %w", raw, domain.ErrInvalidInput)
	}
	return &queryLocation{url: u}, nil
}

func (l *queryLocation) Current() *url.URL {
	l.mu.Lock()
	defer l.mu.Unlock()
	u := *l.url
	return &u
}

func (l *queryLocation) Replace(u *url.URL) {
	l.mu.Lock()
	defer l.mu.Unlock()
	c := *u
	l.url = &c
}
