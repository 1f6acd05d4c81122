package driving

import "github.com/custodia-labs/promptvault/internal/core/domain"

// GalleryController is the stateful filter, pagination and navigation
// engine behind an interactive surface. Every mutation goes through a
// named operation or Dispatch. It is not safe for concurrent use; the
// owning surface calls it from a single goroutine.
type GalleryController interface {
	// Ready recomputes the view after the record store finished loading
	// and restores a deep link from the location, at most once.
	Ready()

	// SetFilter selects a category key and resets to page 1.
	SetFilter(key string)

	// SetSearch applies raw search text immediately and resets to page 1.
	SetSearch(raw string)

	// InputSearch applies raw search text after the debounce window.
	InputSearch(raw string)

	// ClearFilters resets the filter and the search query.
	ClearFilters()

	// AdvancePage grows the materialised window by one page.
	AdvancePage() bool

	// Scroll advances when the surface is scrolled near its bottom.
	Scroll(m domain.ScrollMetrics) bool

	// OpenRecord shows the detail view for a global index.
	OpenRecord(index int) bool

	// CloseRecord hides the detail view.
	CloseRecord()

	// Navigate moves the detail view through the filtered sequence.
	Navigate(dir domain.Direction) bool

	// Swipe navigates for a completed pointer gesture.
	Swipe(s domain.Swipe) bool

	// Dispatch routes an event to the matching operation. It returns
	// whether the event changed state.
	Dispatch(e domain.Event) bool

	// OnRender registers the render hook.
	OnRender(fn func(domain.Render))

	// OnFocusSearch registers the hook for the focus-search shortcut.
	OnFocusSearch(fn func())

	// Filter returns the active filter state.
	Filter() domain.FilterState

	// Materialize returns the materialised window of the filtered sequence.
	Materialize() []domain.Entry

	// Snapshot returns the current state.
	Snapshot() domain.GalleryView

	// OpenEntry returns the record shown in the detail view.
	OpenEntry() (domain.Entry, bool)

	// Position returns the open record's 1-based position in the filtered
	// sequence and the sequence length, or false when it is filtered out.
	Position() (pos, total int, ok bool)
}
