package domain

// Event is an input to the gallery's dispatch table. Rendering surfaces
// translate their own input (key presses, clicks, scroll, gestures) into
// events so the gallery logic can run without any surface attached.
type Event interface {
	eventName() string
}

// ===== FILTER EVENTS =====

// FilterSelected selects a category filter key.
type FilterSelected struct {
	Key string
}

// SearchInput carries raw search box text. It is debounced.
type SearchInput struct {
	Raw string
}

// SearchSubmitted applies raw search text immediately.
type SearchSubmitted struct {
	Raw string
}

// FiltersCleared resets both the category filter and the search query.
type FiltersCleared struct{}

// ===== PAGINATION EVENTS =====

// LoadMoreRequested is the explicit "load more" action.
type LoadMoreRequested struct{}

// Scrolled reports a new scroll position of the gallery surface.
type Scrolled struct {
	Metrics ScrollMetrics
}

// ===== DETAIL EVENTS =====

// RecordOpened opens the detail view for a global index.
type RecordOpened struct {
	Index int
}

// DetailClosed closes the detail view.
type DetailClosed struct{}

// Navigated moves the detail view through the filtered sequence.
type Navigated struct {
	Direction Direction
}

// Swiped is a completed pointer gesture over the detail view.
type Swiped struct {
	Swipe Swipe
}

// KeyPressed is a keyboard shortcut with gallery-level meaning.
type KeyPressed struct {
	Key string
}

// Shortcut keys understood by KeyPressed.
const (
	KeyFocusSearch = "/"
	KeyEscape      = "esc"
	KeyLeft        = "left"
	KeyRight       = "right"
)

func (FilterSelected) eventName() string    { return "filter_selected" }
func (SearchInput) eventName() string       { return "search_input" }
func (SearchSubmitted) eventName() string   { return "search_submitted" }
func (FiltersCleared) eventName() string    { return "filters_cleared" }
func (LoadMoreRequested) eventName() string { return "load_more_requested" }
func (Scrolled) eventName() string          { return "scrolled" }
func (RecordOpened) eventName() string      { return "record_opened" }
func (DetailClosed) eventName() string      { return "detail_closed" }
func (Navigated) eventName() string         { return "navigated" }
func (Swiped) eventName() string            { return "swiped" }
func (KeyPressed) eventName() string        { return "key_pressed" }

// EventName returns a stable name for logging.
func EventName(e Event) string {
	if e == nil {
		return "nil"
	}
	return e.eventName()
}
