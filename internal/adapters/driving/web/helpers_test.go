package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/promptvault/internal/adapters/driven/clock"
	"github.com/custodia-labs/promptvault/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/promptvault/internal/core/domain"
	"github.com/custodia-labs/promptvault/internal/core/services"
)

// testRecords returns n records; every fifth one is tagged "poster".
func testRecords(n int) []domain.Record {
	records := make([]domain.Record, n)
	for i := range records {
		records[i] = domain.Record{
			Prompt: fmt.Sprintf("prompt %d", i),
			Images: []string{"https://pbs.twimg.com/media/x?format=jpg&name=large"},
			Tool:   "Gemini",
			Author: "tester",
		}
		if i%5 == 0 {
			records[i].Tags = []string{"poster"}
		}
	}
	return records
}

func newTestCatalog(t *testing.T, n int, load bool) *services.CatalogService {
	t.Helper()
	catalog := services.NewCatalogService(
		memory.NewRecordSource(testRecords(n)),
		domain.DefaultGallerySettings(),
		clock.System{},
	)
	if load {
		require.NoError(t, catalog.Load(context.Background()))
	}
	return catalog
}

func newTestServer(t *testing.T, n int) *Server {
	t.Helper()
	server, err := NewServer(&Ports{Catalog: newTestCatalog(t, n, true)}, 0)
	require.NoError(t, err)
	return server
}

// get performs a GET against h and decodes the JSON body into out.
func get(t *testing.T, h http.Handler, target string, out any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if out != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}
	return rec
}
