package services

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/promptvault/internal/core/domain"
)

func TestFilterRecords_Category(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		name     string
		filter   string
		expected []int
	}{
		{"all matches everything", domain.FilterAll, []int{0, 1, 2, 3, 4}},
		{"empty key matches everything", "", []int{0, 1, 2, 3, 4}},
		{"tag substring", "poster", []int{1, 3}},
		{"tag substring inside compound tag", "3D", []int{0, 2}},
		{"style exact", "3D", []int{0, 2}},
		{"tool exact", "Flux", []int{1}},
		{"tool is not a substring match", "Nano", []int{}},
		{"tags are case sensitive", "Poster", []int{}},
		{"no match", "watercolor", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := FilterRecords(records, domain.FilterState{Filter: tt.filter})
			if diff := cmp.Diff(tt.expected, res.Indices()); diff != "" {
				t.Errorf("indices mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterRecords_CategorySubstringRule(t *testing.T) {
	records := []domain.Record{
		{Tags: []string{"retro-3D-art"}},
		{Style: "3D", Tags: []string{"clay"}},
		{Tags: []string{"3d"}},
	}

	res := FilterRecords(records, domain.FilterState{Filter: "3D"})

	assert.Equal(t, []int{0, 1}, res.Indices())
}

func TestFilterRecords_Search(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		name     string
		query    string
		expected []int
	}{
		{"empty query", "", []int{0, 1, 2, 3, 4}},
		{"prompt case-insensitive", "POSTER", []int{1, 3}},
		{"author", "dee", []int{3}},
		{"tool", "banana", []int{4}},
		{"tag", "figurine", []int{2}},
		{"trimmed", "  neon  ", []int{0}},
		{"upper-case prompt", "strasse", []int{4}},
		{"no match", "zebra", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := domain.FilterState{Filter: domain.FilterAll, Query: tt.query}
			res := FilterRecords(records, state)
			if diff := cmp.Diff(tt.expected, res.Indices()); diff != "" {
				t.Errorf("indices mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterRecords_CategoryAndSearch(t *testing.T) {
	state := domain.FilterState{Filter: "poster", Query: "noir"}

	res := FilterRecords(sampleRecords(), state)

	assert.Equal(t, []int{3}, res.Indices())
}

func TestFilterRecords_Pure(t *testing.T) {
	records := sampleRecords()
	before := sampleRecords()
	state := domain.FilterState{Filter: "poster", Query: "movie"}

	first := FilterRecords(records, state)
	second := FilterRecords(records, state)

	if diff := cmp.Diff(first.Entries(), second.Entries()); diff != "" {
		t.Errorf("repeat call differs (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(before, records); diff != "" {
		t.Errorf("records mutated (-before +after):\n%s", diff)
	}
}

func TestFilterRecords_Subsequence(t *testing.T) {
	records := numberedRecords(60)
	records[7].Tags = []string{"x"}
	records[31].Tags = []string{"x"}
	records[12].Tags = []string{"x"}
	records[59].Style = "x"

	res := FilterRecords(records, domain.FilterState{Filter: "x"})

	assert.Equal(t, []int{7, 12, 31, 59}, res.Indices())
	for pos, e := range res.Entries() {
		assert.Equal(t, records[e.Index], e.Record)
		got, ok := res.Position(e.Index)
		assert.True(t, ok)
		assert.Equal(t, pos, got)
		assert.Equal(t, e, res.At(pos))
	}
}

func TestFilterResult_PositionAbsent(t *testing.T) {
	res := FilterRecords(sampleRecords(), domain.FilterState{Filter: "Flux"})

	_, ok := res.Position(0)
	assert.False(t, ok)
	assert.Equal(t, 1, res.Len())
}

func TestFilterRecords_Empty(t *testing.T) {
	res := FilterRecords(nil, domain.DefaultFilterState())

	assert.Equal(t, 0, res.Len())
	assert.Empty(t, res.Entries())
}
