package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/promptvault/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for PromptVault resources.
	uriScheme = "promptvault://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "facets",
		Name:        "facets",
		Description: "Style and tool categories with record counts",
		MIMEType:    "application/json",
	}, s.handleFacetsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Current gallery settings",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "prompts/{index}",
		Name:        "prompt-text",
		Description: "Full text of a prompt",
		MIMEType:    "text/plain",
	}, s.handlePromptResource)
}

// handleFacetsResource returns the facets with the configured limit.
func (s *Server) handleFacetsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	facets, err := s.ports.Catalog.Facets(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("listing facets: %w", err)
	}
	out := FacetsOutput{
		Style: facetOutputs(facets.Style),
		Tool:  facetOutputs(facets.Tool),
	}
	return jsonResource(req.Params.URI, out)
}

// handleSettingsResource returns the settings as flattened config keys.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	settings := s.ports.Catalog.Settings()
	keys := domain.SettingKeys()
	if s.ports.Settings != nil {
		settings = s.ports.Settings.Get()
		keys = s.ports.Settings.Keys()
	}

	values := make(map[string]string, len(keys))
	for _, key := range keys {
		values[key] = settings.Value(key)
	}
	return jsonResource(req.Params.URI, values)
}

// handlePromptResource returns the full text of a prompt.
func (s *Server) handlePromptResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	index, ok := extractPromptIndex(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	rec, err := s.ports.Catalog.Record(ctx, index)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     rec.Prompt,
		}},
	}, nil
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractPromptIndex extracts the index from a URI like promptvault://prompts/{index}.
func extractPromptIndex(uri string) (int, bool) {
	const prefix = uriScheme + "prompts/"

	if !strings.HasPrefix(uri, prefix) {
		return 0, false
	}
	index, err := strconv.Atoi(strings.TrimPrefix(uri, prefix))
	if err != nil || index < 0 {
		return 0, false
	}
	return index, true
}
