package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/promptvault/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/promptvault/internal/core/domain"
	"github.com/custodia-labs/promptvault/internal/core/services"
)

func TestExtractPromptIndex(t *testing.T) {
	tests := []struct {
		name  string
		uri   string
		index int
		ok    bool
	}{
		{"valid", "promptvault://prompts/12", 12, true},
		{"zero", "promptvault://prompts/0", 0, true},
		{"negative", "promptvault://prompts/-1", 0, false},
		{"not a number", "promptvault://prompts/abc", 0, false},
		{"empty", "promptvault://prompts/", 0, false},
		{"wrong scheme", "other://prompts/1", 0, false},
		{"wrong path", "promptvault://facets", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, ok := extractPromptIndex(tt.uri)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.index, index)
		})
	}
}

func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handlePromptResource(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t, 3)

	t.Run("returns prompt text", func(t *testing.T) {
		req := makeReadResourceRequest("promptvault://prompts/2")
		result, err := server.handlePromptResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "text/plain", result.Contents[0].MIMEType)
		assert.Equal(t, "prompt 2\nwith a second line", result.Contents[0].Text)
	})

	t.Run("unknown index", func(t *testing.T) {
		req := makeReadResourceRequest("promptvault://prompts/7")
		_, err := server.handlePromptResource(ctx, req)
		assert.Error(t, err)
	})

	t.Run("malformed uri", func(t *testing.T) {
		req := makeReadResourceRequest("promptvault://prompts/seven")
		_, err := server.handlePromptResource(ctx, req)
		assert.Error(t, err)
	})
}

func TestServer_handleFacetsResource(t *testing.T) {
	server := newTestServer(t, 6)

	req := makeReadResourceRequest("promptvault://facets")
	result, err := server.handleFacetsResource(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)

	var out FacetsOutput
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &out))
	require.Len(t, out.Style, 1)
	assert.Equal(t, 2, out.Style[0].Count)
	assert.Len(t, out.Tool, len(domain.KnownTools))
}

func TestServer_handleSettingsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("catalog settings without settings service", func(t *testing.T) {
		server := newTestServer(t, 1)

		result, err := server.handleSettingsResource(ctx, makeReadResourceRequest("promptvault://settings"))
		require.NoError(t, err)

		var values map[string]string
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &values))
		assert.Equal(t, "20", values[domain.KeyPageSize])
		assert.Equal(t, "200", values[domain.KeySearchDebounce])
	})

	t.Run("settings service wins", func(t *testing.T) {
		store := memory.NewConfigStore()
		settings := services.NewSettingsService(store)
		require.NoError(t, settings.Set(domain.KeyPageSize, "12"))

		server, err := NewServer(&Ports{Catalog: newTestCatalog(t, 1), Settings: settings})
		require.NoError(t, err)

		result, err := server.handleSettingsResource(ctx, makeReadResourceRequest("promptvault://settings"))
		require.NoError(t, err)

		var values map[string]string
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &values))
		assert.Equal(t, "12", values[domain.KeyPageSize])
		assert.Len(t, values, len(domain.SettingKeys()))
	})
}
