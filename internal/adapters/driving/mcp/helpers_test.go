package mcp

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/promptvault/internal/adapters/driven/clock"
	"github.com/custodia-labs/promptvault/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/promptvault/internal/core/domain"
	"github.com/custodia-labs/promptvault/internal/core/services"
)

// testRecords returns n records; every third one is tagged "poster".
func testRecords(n int) []domain.Record {
	records := make([]domain.Record, n)
	for i := range records {
		records[i] = domain.Record{
			Prompt: fmt.Sprintf("prompt %d\nwith a second line", i),
			Images: []string{fmt.Sprintf("https://img.example.com/%d.jpg", i)},
			Tool:   "Midjourney",
			Author: "tester",
		}
		if i%3 == 0 {
			records[i].Tags = []string{"poster"}
			records[i].Tool = "Flux"
		}
	}
	return records
}

func newTestCatalog(t *testing.T, n int) *services.CatalogService {
	t.Helper()
	catalog := services.NewCatalogService(
		memory.NewRecordSource(testRecords(n)),
		domain.DefaultGallerySettings(),
		clock.System{},
	)
	require.NoError(t, catalog.Load(context.Background()))
	return catalog
}

func newTestServer(t *testing.T, n int) *Server {
	t.Helper()
	server, err := NewServer(&Ports{Catalog: newTestCatalog(t, n)})
	require.NoError(t, err)
	return server
}
