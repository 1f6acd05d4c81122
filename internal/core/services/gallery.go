package services

import (
	"github.com/custodia-labs/promptvault/internal/core/domain"
	"github.com/custodia-labs/promptvault/internal/core/ports/driven"
	"github.com/custodia-labs/promptvault/internal/core/ports/driving"
	"github.com/custodia-labs/promptvault/internal/logger"
)

// Ensure Gallery implements the interface.
var _ driving.GalleryController = (*Gallery)(nil)

// Gallery owns the filter, pagination and navigation state of one
// rendering surface. All mutation goes through its named operations or
// Dispatch. It is not safe for concurrent use.
type Gallery struct {
	store    *RecordStore
	settings domain.GallerySettings

	state    domain.FilterState
	filtered FilterResult
	pager    *Paginator
	nav      *Navigator
	view     *ViewStateSync
	search   *Debouncer

	// loading guards AdvancePage against re-entry from rapid scroll events.
	loading    bool
	recomputes int

	render      func(domain.Render)
	focusSearch func()
}

// NewGallery creates a gallery over store. Until Ready is called the
// gallery treats the store as empty.
func NewGallery(
	store *RecordStore,
	settings domain.GallerySettings,
	loc driven.Location,
	clock driven.Clock,
) *Gallery {
	view := NewViewStateSync(loc)
	g := &Gallery{
		store:    store,
		settings: settings,
		state:    domain.DefaultFilterState(),
		pager:    NewPaginator(settings.PageSize),
		view:     view,
		search:   NewDebouncer(clock, settings.SearchDebounce),
	}
	g.nav = NewNavigator(g, view)
	return g
}

// Count returns the number of records the gallery can address.
func (g *Gallery) Count() int {
	if !g.store.Loaded() {
		return 0
	}
	return g.store.Count()
}

// OnRender registers the render hook. It is called with Append false when
// the surface must redraw from scratch and true when a page was added.
func (g *Gallery) OnRender(fn func(domain.Render)) {
	g.render = fn
}

// OnFocusSearch registers the hook for the focus-search shortcut.
func (g *Gallery) OnFocusSearch(fn func()) {
	g.focusSearch = fn
}

// Ready recomputes the view once the store has loaded and restores the
// deep link. The link is restored at most once.
func (g *Gallery) Ready() {
	g.recompute()
	g.renderFresh()
	if g.store.Loaded() {
		g.view.Restore(g.Count(), g.nav.Open)
	}
}

// SetFilter selects a category key and returns to page 1.
func (g *Gallery) SetFilter(key string) {
	g.state.Filter = domain.NormaliseFilter(key)
	g.refilter()
}

// SetSearch applies search text at once, dropping any pending debounced
// input, and returns to page 1.
func (g *Gallery) SetSearch(raw string) {
	g.search.Cancel()
	g.state.Query = domain.NormaliseQuery(raw)
	g.refilter()
}

// InputSearch applies search text once input has been idle for the
// debounce window. Only the last of a burst of inputs is applied.
func (g *Gallery) InputSearch(raw string) {
	g.search.Trigger(func() {
		g.SetSearch(raw)
	})
}

// ClearFilters resets the category filter and the search query.
func (g *Gallery) ClearFilters() {
	g.search.Cancel()
	g.state = domain.DefaultFilterState()
	g.refilter()
}

// AdvancePage adds one page to the materialised window. It returns false
// when the window is already exhausted or an advance is in progress.
func (g *Gallery) AdvancePage() bool {
	if g.loading {
		return false
	}
	total := g.filtered.Len()
	if g.pager.IsExhausted(total) {
		return false
	}

	g.loading = true
	defer func() { g.loading = false }()

	g.pager.Advance()
	start, end := g.pager.Window(total)
	logger.Debug("advance to page %d (%d/%d)", g.pager.Page(), end, total)
	g.emit(domain.Render{
		Append: true,
		Items:  g.filtered.Entries()[start:end],
		Loaded: end,
		Total:  total,
	})
	return true
}

// Scroll advances a page when the surface is scrolled to within the
// scroll threshold of its bottom.
func (g *Gallery) Scroll(m domain.ScrollMetrics) bool {
	if !m.NearBottom(g.settings.ScrollThreshold) {
		return false
	}
	return g.AdvancePage()
}

// OpenRecord shows the detail view for a global index.
func (g *Gallery) OpenRecord(index int) bool {
	return g.nav.Open(index)
}

// CloseRecord hides the detail view.
func (g *Gallery) CloseRecord() {
	g.nav.Close()
}

// Navigate moves the detail view through the current filtered sequence.
func (g *Gallery) Navigate(dir domain.Direction) bool {
	return g.nav.Next(dir, g.filtered)
}

// Swipe navigates for a completed gesture while the detail view is open.
func (g *Gallery) Swipe(s domain.Swipe) bool {
	if _, open := g.nav.OpenIndex(); !open {
		return false
	}
	return g.Navigate(s.Direction())
}

// Dispatch routes an event to its operation and reports whether the
// event was handled.
func (g *Gallery) Dispatch(e domain.Event) bool {
	logger.Debug("dispatch %s", domain.EventName(e))

	switch ev := e.(type) {
	case domain.FilterSelected:
		g.SetFilter(ev.Key)
		return true
	case domain.SearchInput:
		g.InputSearch(ev.Raw)
		return true
	case domain.SearchSubmitted:
		g.SetSearch(ev.Raw)
		return true
	case domain.FiltersCleared:
		g.ClearFilters()
		return true
	case domain.LoadMoreRequested:
		return g.AdvancePage()
	case domain.Scrolled:
		return g.Scroll(ev.Metrics)
	case domain.RecordOpened:
		return g.OpenRecord(ev.Index)
	case domain.DetailClosed:
		return g.nav.Close()
	case domain.Navigated:
		return g.Navigate(ev.Direction)
	case domain.Swiped:
		return g.Swipe(ev.Swipe)
	case domain.KeyPressed:
		return g.pressKey(ev.Key)
	default:
		return false
	}
}

func (g *Gallery) pressKey(key string) bool {
	_, open := g.nav.OpenIndex()
	switch key {
	case domain.KeyFocusSearch:
		if g.focusSearch == nil {
			return false
		}
		g.focusSearch()
		return true
	case domain.KeyEscape:
		if open {
			return g.nav.Close()
		}
		g.SetSearch("")
		return true
	case domain.KeyLeft:
		return open && g.Navigate(domain.Backward)
	case domain.KeyRight:
		return open && g.Navigate(domain.Forward)
	default:
		return false
	}
}

// Filter returns the active filter state.
func (g *Gallery) Filter() domain.FilterState {
	return g.state
}

// Filtered returns the current filtered sequence.
func (g *Gallery) Filtered() FilterResult {
	return g.filtered
}

// Materialize returns the materialised window of the filtered sequence.
func (g *Gallery) Materialize() []domain.Entry {
	return g.pager.Materialize(g.filtered.Entries())
}

// Recomputes returns how many times the filtered sequence was recomputed.
func (g *Gallery) Recomputes() int {
	return g.recomputes
}

// OpenEntry returns the record shown in the detail view.
func (g *Gallery) OpenEntry() (domain.Entry, bool) {
	index, open := g.nav.OpenIndex()
	if !open {
		return domain.Entry{}, false
	}
	rec, ok := g.store.Get(index)
	if !ok {
		return domain.Entry{}, false
	}
	return domain.Entry{Index: index, Record: rec}, true
}

// Position returns the open record's 1-based position in the filtered
// sequence and the sequence length.
func (g *Gallery) Position() (pos, total int, ok bool) {
	index, open := g.nav.OpenIndex()
	if !open {
		return 0, 0, false
	}
	p, found := g.filtered.Position(index)
	if !found {
		return 0, g.filtered.Len(), false
	}
	return p + 1, g.filtered.Len(), true
}

// Snapshot returns the current state.
func (g *Gallery) Snapshot() domain.GalleryView {
	openIndex, _ := g.nav.OpenIndex()
	total := g.filtered.Len()
	return domain.GalleryView{
		Loaded:     g.store.Loaded(),
		StoreCount: g.Count(),
		Filter:     g.state,
		Page:       g.pager.Page(),
		PageSize:   g.pager.PageSize(),
		Visible:    g.Materialize(),
		Matched:    total,
		Exhausted:  g.pager.IsExhausted(total),
		OpenIndex:  openIndex,
		Location:   g.view.Link(),
	}
}

// refilter resets to page 1 and recomputes after a filter state change.
func (g *Gallery) refilter() {
	g.pager.Reset()
	g.recompute()
	g.renderFresh()
}

func (g *Gallery) recompute() {
	var records []domain.Record
	if g.store.Loaded() {
		records = g.store.Records()
	}
	g.filtered = FilterRecords(records, g.state)
	g.recomputes++
	logger.Debug("filter=%q query=%q matched %d", g.state.Filter, g.state.Query, g.filtered.Len())
}

func (g *Gallery) renderFresh() {
	total := g.filtered.Len()
	g.emit(domain.Render{
		Items:  g.Materialize(),
		Loaded: g.pager.Loaded(total),
		Total:  total,
	})
}

func (g *Gallery) emit(r domain.Render) {
	if g.render != nil {
		g.render(r)
	}
}
