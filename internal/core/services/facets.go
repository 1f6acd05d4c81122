package services

import (
	"sort"

	"github.com/custodia-labs/promptvault/internal/core/domain"
)

// BuildStyleFacets counts tags across records and returns the limit most
// frequent, most frequent first. Tags with equal counts keep the order in
// which they were first seen. A non-positive limit returns every tag.
func BuildStyleFacets(records []domain.Record, limit int) []domain.Facet {
	counts := make(map[string]int)
	var order []string
	for i := range records {
		for _, tag := range records[i].Tags {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	facets := make([]domain.Facet, 0, len(order))
	for _, tag := range order {
		facets = append(facets, domain.Facet{Key: tag, Kind: domain.FacetStyle, Count: counts[tag]})
	}
	sort.SliceStable(facets, func(i, j int) bool {
		return facets[i].Count > facets[j].Count
	})

	if limit > 0 && len(facets) > limit {
		facets = facets[:limit]
	}
	return facets
}

// BuildToolFacets returns a facet for each known tool, in display order,
// including tools no record uses.
func BuildToolFacets(records []domain.Record) []domain.Facet {
	counts := make(map[string]int)
	for i := range records {
		counts[records[i].Tool]++
	}

	facets := make([]domain.Facet, len(domain.KnownTools))
	for i, tool := range domain.KnownTools {
		facets[i] = domain.Facet{Key: tool, Kind: domain.FacetTool, Count: counts[tool]}
	}
	return facets
}
