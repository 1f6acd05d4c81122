package domain

// Render describes one render pass of the gallery surface.
type Render struct {
	// Append is true when Items extend what is already on screen and
	// false when the surface must be cleared first.
	Append bool

	// Items are the entries to draw in this pass.
	Items []Entry

	// Loaded is the size of the materialised window after this pass.
	Loaded int

	// Total is the length of the filtered sequence.
	Total int
}

// Exhausted reports whether every filtered record is on screen.
func (r Render) Exhausted() bool {
	return r.Loaded >= r.Total
}

// Empty reports whether the filter matched nothing.
func (r Render) Empty() bool {
	return r.Total == 0
}

// GalleryView is a read-only snapshot of the gallery state.
type GalleryView struct {
	// Loaded is true once the record store has been populated.
	Loaded bool

	// StoreCount is the number of records in the store.
	StoreCount int

	// Filter is the active filter state.
	Filter FilterState

	// Page is the current 1-based page.
	Page int

	// PageSize is the fixed page size.
	PageSize int

	// Visible is the materialised window.
	Visible []Entry

	// Matched is the length of the filtered sequence.
	Matched int

	// Exhausted is true when the window covers the filtered sequence.
	Exhausted bool

	// OpenIndex is the open record's global index, or NoRecord.
	OpenIndex int

	// Location is the addressable location, including the id parameter.
	Location string
}

// Empty reports whether the filter matched nothing.
func (v GalleryView) Empty() bool {
	return v.Matched == 0
}

// HasOpen reports whether the detail view is showing a record.
func (v GalleryView) HasOpen() bool {
	return v.OpenIndex != NoRecord
}

// GalleryQuery is a one-shot gallery request from a stateless surface
// (CLI, MCP, HTTP). It is applied to a fresh gallery over the shared store.
type GalleryQuery struct {
	// Filter is a category key; empty means FilterAll.
	Filter string

	// Query is raw search text.
	Query string

	// Page is the 1-based page to materialise up to. Values below 1 mean 1.
	Page int

	// Link is an addressable location to restore a deep link from.
	Link string
}

// Facets groups the tag-derived and tool facets.
type Facets struct {
	Style []Facet `json:"style"`
	Tool  []Facet `json:"tool"`
}
