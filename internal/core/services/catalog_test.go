package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/promptvault/internal/adapters/driven/clock"
	"github.com/custodia-labs/promptvault/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/promptvault/internal/core/domain"
)

func newLoadedCatalog(t *testing.T, records []domain.Record) *CatalogService {
	t.Helper()
	svc := NewCatalogService(memory.NewRecordSource(records), domain.DefaultGallerySettings(), clock.NewManual(testEpoch))
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func TestCatalogService_Load(t *testing.T) {
	svc := NewCatalogService(memory.NewRecordSource(sampleRecords()), domain.DefaultGallerySettings(), clock.System{})
	assert.False(t, svc.Loaded())

	require.NoError(t, svc.Load(context.Background()))
	assert.True(t, svc.Loaded())
	assert.Equal(t, 5, svc.Count())

	assert.ErrorIs(t, svc.Load(context.Background()), domain.ErrAlreadyLoaded)
}

func TestCatalogService_Record(t *testing.T) {
	svc := NewCatalogService(memory.NewRecordSource(sampleRecords()), domain.DefaultGallerySettings(), clock.System{})

	_, err := svc.Record(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrNotLoaded)

	require.NoError(t, svc.Load(context.Background()))

	rec, err := svc.Record(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Flux", rec.Tool)

	_, err = svc.Record(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogService_Query(t *testing.T) {
	svc := newLoadedCatalog(t, numberedRecords(45))

	tests := []struct {
		name      string
		query     domain.GalleryQuery
		visible   int
		matched   int
		exhausted bool
		page      int
	}{
		{"defaults", domain.GalleryQuery{}, 20, 45, false, 1},
		{"page two", domain.GalleryQuery{Page: 2}, 40, 45, false, 2},
		{"page clamps at end", domain.GalleryQuery{Page: 9}, 45, 45, true, 3},
		{"negative page", domain.GalleryQuery{Page: -2}, 20, 45, false, 1},
		{"search", domain.GalleryQuery{Query: "Prompt 4"}, 6, 6, true, 1},
		{"filter", domain.GalleryQuery{Filter: "Flux"}, 0, 0, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := svc.Query(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Len(t, view.Visible, tt.visible)
			assert.Equal(t, tt.matched, view.Matched)
			assert.Equal(t, tt.exhausted, view.Exhausted)
			assert.Equal(t, tt.page, view.Page)
			assert.True(t, view.Loaded)
		})
	}
}

func TestCatalogService_QueryDeepLink(t *testing.T) {
	svc := newLoadedCatalog(t, sampleRecords())

	view, err := svc.Query(context.Background(), domain.GalleryQuery{
		Filter: "poster",
		Link:   "http://example.com/?id=2",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, view.OpenIndex)
	assert.Equal(t, "http://example.com/?id=2", view.Location)
	assert.Equal(t, []int{1, 3}, entryIndices(view.Visible))
}

func TestCatalogService_QueryInvalidLink(t *testing.T) {
	svc := newLoadedCatalog(t, sampleRecords())

	_, err := svc.Query(context.Background(), domain.GalleryQuery{Link: "http://[::1"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalogService_QueryCancelled(t *testing.T) {
	svc := newLoadedCatalog(t, sampleRecords())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Query(ctx, domain.GalleryQuery{})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = svc.Facets(ctx, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCatalogService_Facets(t *testing.T) {
	svc := newLoadedCatalog(t, sampleRecords())

	facets, err := svc.Facets(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, facets.Style, 2)
	assert.Equal(t, "retro-3D-art", facets.Style[0].Key)
	assert.Len(t, facets.Tool, len(domain.KnownTools))

	facets, err = svc.Facets(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, facets.Style, 7)
}

func TestCatalogService_NewGallery(t *testing.T) {
	svc := newLoadedCatalog(t, sampleRecords())
	loc := memory.MustLocation(testBaseURL + "?id=4")

	g := svc.NewGallery(loc, clock.NewManual(testEpoch))
	g.Ready()

	entry, ok := g.OpenEntry()
	require.True(t, ok)
	assert.Equal(t, 4, entry.Index)
	assert.Equal(t, domain.DefaultPageSize, svc.Settings().PageSize)
}

func TestCatalogService_Link(t *testing.T) {
	svc := newLoadedCatalog(t, sampleRecords())

	link, err := svc.Link(3)
	require.NoError(t, err)
	assert.Equal(t, testBaseURL+"?id=3", link)

	_, err = svc.Link(5)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Link(-1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
