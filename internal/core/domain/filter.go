package domain

import "strings"

// FilterAll is the sentinel category key that matches every record.
const FilterAll = "all"

// FilterState is the process-wide filter: at most one category key,
// combined with the search query by logical AND.
type FilterState struct {
	// Filter is a category key or FilterAll.
	Filter string

	// Query is the normalised search text, possibly empty.
	Query string
}

// DefaultFilterState returns the unfiltered state.
func DefaultFilterState() FilterState {
	return FilterState{Filter: FilterAll}
}

// NormaliseQuery lowercases and trims raw search input.
func NormaliseQuery(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// NormaliseFilter maps an empty key to FilterAll.
func NormaliseFilter(key string) string {
	if key == "" {
		return FilterAll
	}
	return key
}

// IsAll reports whether the category filter matches everything.
func (f FilterState) IsAll() bool {
	return f.Filter == FilterAll || f.Filter == ""
}

// IsActive reports whether the state narrows the record set at all.
func (f FilterState) IsActive() bool {
	return !f.IsAll() || f.Query != ""
}
