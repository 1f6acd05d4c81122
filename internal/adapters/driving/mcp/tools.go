package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/promptvault/internal/core/domain"
	"github.com/custodia-labs/promptvault/internal/textutil"
)

// summaryWidth caps prompt previews in search results.
const summaryWidth = 160

// SearchInput is the input schema for the search_prompts tool.
type SearchInput struct {
	Filter string `json:"filter,omitempty" jsonschema:"category key: all, a tag, a style or a tool name"`
	Query  string `json:"query,omitempty" jsonschema:"search text matched against prompts, tags, authors and tools"`
	Page   int    `json:"page,omitempty" jsonschema:"number of pages to materialise (default 1)"`
}

// SearchOutput is the output schema for the search_prompts tool.
type SearchOutput struct {
	Prompts   []PromptSummary `json:"prompts"`
	Count     int             `json:"count"`
	Matched   int             `json:"matched"`
	Total     int             `json:"total"`
	Page      int             `json:"page"`
	Exhausted bool            `json:"exhausted"`
}

// PromptSummary is a search result row.
type PromptSummary struct {
	Index   int      `json:"index"`
	Tool    string   `json:"tool"`
	Author  string   `json:"author"`
	Summary string   `json:"summary"`
	Tags    []string `json:"tags,omitempty"`
	Image   string   `json:"image,omitempty"`
}

// GetPromptInput is the input schema for the get_prompt tool.
type GetPromptInput struct {
	Index int `json:"index" jsonschema:"global index of the prompt, as returned by search_prompts"`
}

// PromptOutput is the output schema for the get_prompt tool.
type PromptOutput struct {
	Index     int      `json:"index"`
	Prompt    string   `json:"prompt"`
	Tool      string   `json:"tool"`
	Author    string   `json:"author"`
	Tags      []string `json:"tags,omitempty"`
	Style     string   `json:"style,omitempty"`
	Images    []string `json:"images,omitempty"`
	CreatedAt string   `json:"created_at,omitempty"`
	SourceURL string   `json:"source_url,omitempty"`
	Link      string   `json:"link"`
}

// FacetsInput is the input schema for the list_facets tool.
type FacetsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of style facets (default from settings)"`
}

// FacetsOutput is the output schema for the list_facets tool.
type FacetsOutput struct {
	Style []FacetOutput `json:"style"`
	Tool  []FacetOutput `json:"tool"`
}

// FacetOutput is a filter key with its record count.
type FacetOutput struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_prompts",
		Description: "Filter and search the prompt gallery, one page of results at a time",
	}, s.handleSearchPrompts)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_prompt",
		Description: "Get the full text and metadata of a prompt by index",
	}, s.handleGetPrompt)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_facets",
		Description: "List the style and tool categories with record counts",
	}, s.handleListFacets)
}

// handleSearchPrompts handles the search_prompts tool invocation.
func (s *Server) handleSearchPrompts(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	if input.Page < 0 {
		return nil, SearchOutput{}, fmt.Errorf("page %d: %w", input.Page, domain.ErrInvalidInput)
	}

	view, err := s.ports.Catalog.Query(ctx, domain.GalleryQuery{
		Filter: input.Filter,
		Query:  input.Query,
		Page:   input.Page,
	})
	if err != nil {
		return nil, SearchOutput{}, fmt.Errorf("querying prompts: %w", err)
	}

	output := SearchOutput{
		Prompts:   make([]PromptSummary, len(view.Visible)),
		Count:     len(view.Visible),
		Matched:   view.Matched,
		Total:     view.StoreCount,
		Page:      view.Page,
		Exhausted: view.Exhausted,
	}
	for i, entry := range view.Visible {
		output.Prompts[i] = PromptSummary{
			Index:   entry.Index,
			Tool:    entry.Record.Tool,
			Author:  entry.Record.Author,
			Summary: textutil.Summary(entry.Record.Prompt, summaryWidth),
			Tags:    entry.Record.Tags,
			Image:   entry.Record.Image(),
		}
	}

	return nil, output, nil
}

// handleGetPrompt handles the get_prompt tool invocation.
func (s *Server) handleGetPrompt(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetPromptInput,
) (*mcp.CallToolResult, PromptOutput, error) {
	rec, err := s.ports.Catalog.Record(ctx, input.Index)
	if err != nil {
		return nil, PromptOutput{}, fmt.Errorf("getting prompt: %w", err)
	}

	link, err := s.ports.Catalog.Link(input.Index)
	if err != nil {
		return nil, PromptOutput{}, fmt.Errorf("building link: %w", err)
	}

	return nil, PromptOutput{
		Index:     input.Index,
		Prompt:    rec.Prompt,
		Tool:      rec.Tool,
		Author:    rec.Author,
		Tags:      rec.Tags,
		Style:     rec.Style,
		Images:    rec.Images,
		CreatedAt: rec.CreatedAt,
		SourceURL: rec.SourceURL,
		Link:      link,
	}, nil
}

// handleListFacets handles the list_facets tool invocation.
func (s *Server) handleListFacets(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FacetsInput,
) (*mcp.CallToolResult, FacetsOutput, error) {
	facets, err := s.ports.Catalog.Facets(ctx, input.Limit)
	if err != nil {
		return nil, FacetsOutput{}, fmt.Errorf("listing facets: %w", err)
	}
	return nil, FacetsOutput{
		Style: facetOutputs(facets.Style),
		Tool:  facetOutputs(facets.Tool),
	}, nil
}

func facetOutputs(facets []domain.Facet) []FacetOutput {
	out := make([]FacetOutput, len(facets))
	for i, f := range facets {
		out[i] = FacetOutput{Key: f.Key, Count: f.Count}
	}
	return out
}
