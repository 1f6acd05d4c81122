package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/promptvault/internal/core/domain"
)

func TestBuildStyleFacets_OrderAndLimit(t *testing.T) {
	records := []domain.Record{
		{Tags: []string{"poster", "retro"}},
		{Tags: []string{"3D", "poster"}},
		{Tags: []string{"retro", "poster"}},
		{Tags: []string{"portrait"}},
		{Tags: []string{"3D"}},
	}

	facets := BuildStyleFacets(records, 3)

	assert.Equal(t, []domain.Facet{
		{Key: "poster", Kind: domain.FacetStyle, Count: 3},
		{Key: "retro", Kind: domain.FacetStyle, Count: 2},
		{Key: "3D", Kind: domain.FacetStyle, Count: 2},
	}, facets)
}

func TestBuildStyleFacets_NoLimit(t *testing.T) {
	records := []domain.Record{{Tags: []string{"a", "b"}}, {Tags: []string{"c"}}}

	assert.Len(t, BuildStyleFacets(records, 0), 3)
	assert.Empty(t, BuildStyleFacets(nil, 15))
}

func TestBuildToolFacets(t *testing.T) {
	records := []domain.Record{
		{Tool: "Flux"},
		{Tool: "Flux"},
		{Tool: "Midjourney"},
		{Tool: "Unknown Tool"},
	}

	facets := BuildToolFacets(records)

	assert.Len(t, facets, len(domain.KnownTools))
	for i, f := range facets {
		assert.Equal(t, domain.KnownTools[i], f.Key)
		assert.Equal(t, domain.FacetTool, f.Kind)
	}
	counts := make(map[string]int)
	for _, f := range facets {
		counts[f.Key] = f.Count
	}
	assert.Equal(t, 2, counts["Flux"])
	assert.Equal(t, 1, counts["Midjourney"])
	assert.Equal(t, 0, counts["Gemini"])
}
