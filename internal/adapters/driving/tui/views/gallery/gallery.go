// Package gallery provides the main card gallery view for the TUI.
package gallery

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/promptvault/internal/adapters/driving/tui/components/facets"
	"github.com/custodia-labs/promptvault/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/promptvault/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/promptvault/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/promptvault/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/promptvault/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/promptvault/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/promptvault/internal/core/domain"
	"github.com/custodia-labs/promptvault/internal/core/ports/driving"
)

// View represents the gallery with search input, facet chips, cards and
// status bar. Every user action becomes a domain event on the controller.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	facets    *facets.Bar
	list      *list.CardList
	statusbar *status.Bar

	gallery driving.GalleryController

	width    int
	height   int
	ready    bool
	err      error
	focusCmd tea.Cmd
}

// NewView creates a gallery view and registers its render and focus hooks
// on the controller.
func NewView(s *styles.Styles, km *keymap.KeyMap, g driving.GalleryController) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:    s,
		keymap:    km,
		input:     input.NewSearchInput(s),
		facets:    facets.NewBar(s),
		list:      list.NewCardList(s),
		statusbar: status.NewBar(s, km),
		gallery:   g,
		width:     80,
		height:    24,
	}
	if g != nil {
		g.OnRender(v.Apply)
		g.OnFocusSearch(v.focusSearch)
	}
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Apply draws a gallery render.
func (v *View) Apply(r domain.Render) {
	v.list.Apply(r)
	v.statusbar.SetRender(r)
	if v.statusbar.State() == status.StateLoading {
		v.statusbar.SetState(status.StateReady)
	}
}

// focusSearch is the controller's hook for the search shortcut.
func (v *View) focusSearch() {
	v.focusCmd = v.input.Focus()
}

// Update handles messages for the gallery view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case tea.MouseMsg:
		v.list, _ = v.list.Update(msg)
		v.scrolled()
		return v, nil

	case messages.RecordsLoaded:
		if msg.Err != nil {
			v.SetError(msg.Err)
			return v, nil
		}
		v.facets.SetFacets(msg.Facets)
		return v, nil

	case messages.ActionCompleted:
		v.showAction(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.SetError(msg.Err)
		return v, nil
	}

	return v, nil
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.input.Focused() {
		return v.handleInputKey(msg)
	}

	v.statusbar.Clear()
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.FocusSearch):
		v.dispatch(domain.KeyPressed{Key: domain.KeyFocusSearch})
		return v, v.takeFocusCmd()

	case keymap.Matches(key, v.keymap.Back):
		v.input.Reset()
		v.dispatch(domain.KeyPressed{Key: domain.KeyEscape})

	case keymap.Matches(key, v.keymap.Select):
		return v, v.openSelected()

	case keymap.Matches(key, v.keymap.NextFacet):
		v.dispatch(domain.FilterSelected{Key: v.facets.Next()})

	case keymap.Matches(key, v.keymap.PrevFacet):
		v.dispatch(domain.FilterSelected{Key: v.facets.Prev()})

	case keymap.Matches(key, v.keymap.Clear):
		v.input.Reset()
		v.facets.Select(domain.FilterAll)
		v.dispatch(domain.FiltersCleared{})

	case keymap.Matches(key, v.keymap.LoadMore):
		v.dispatch(domain.LoadMoreRequested{})

	default:
		v.list, _ = v.list.Update(msg)
		v.scrolled()
	}
	return v, nil
}

// handleInputKey routes keys while the search input has focus.
func (v *View) handleInputKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // remaining keys are edits for the input
	switch msg.Type {
	case tea.KeyEnter:
		v.input.Blur()
		v.dispatch(domain.SearchSubmitted{Raw: v.input.Value()})
		return v, nil
	case tea.KeyEsc:
		v.input.Reset()
		v.input.Blur()
		v.dispatch(domain.KeyPressed{Key: domain.KeyEscape})
		return v, nil
	case tea.KeyTab, tea.KeyDown:
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	var changed bool
	v.input, cmd, changed = v.input.Update(msg)
	if changed {
		v.dispatch(domain.SearchInput{Raw: v.input.Value()})
	}
	return v, cmd
}

// openSelected opens the record under the cursor.
func (v *View) openSelected() tea.Cmd {
	entry, ok := v.list.SelectedEntry()
	if !ok || !v.dispatch(domain.RecordOpened{Index: entry.Index}) {
		return nil
	}
	return func() tea.Msg {
		return messages.ViewChanged{View: messages.ViewDetail}
	}
}

// scrolled reports the list position so the gallery can load more.
func (v *View) scrolled() {
	v.dispatch(domain.Scrolled{Metrics: v.list.Metrics()})
}

func (v *View) dispatch(e domain.Event) bool {
	if v.gallery == nil {
		return false
	}
	return v.gallery.Dispatch(e)
}

func (v *View) takeFocusCmd() tea.Cmd {
	cmd := v.focusCmd
	v.focusCmd = nil
	return cmd
}

func (v *View) showAction(msg messages.ActionCompleted) {
	if msg.Err != nil {
		v.statusbar.SetMessage(fmt.Sprintf("%s: %v", msg.Action, msg.Err))
		return
	}
	v.statusbar.SetMessage(msg.Action)
}

// View renders the gallery view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)
	sections = append(sections,
		v.styles.Title.Render("promptvault"), "",
		v.input.View(), "",
		v.facets.View(), "",
	)

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	sections = append(sections, v.list.View(), "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.facets.SetWidth(width)
	v.list.SetDimensions(width, height-10) // Reserve space for header, input, facets, status
	v.statusbar.SetWidth(width)
}

// SetError shows an error above the cards.
func (v *View) SetError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// Reveal moves the cursor onto a record after the detail view closes.
func (v *View) Reveal(index int) {
	v.list.SelectIndex(index)
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current search input text.
func (v *View) Query() string {
	return v.input.Value()
}

// FacetKey returns the selected category chip.
func (v *View) FacetKey() string {
	return v.facets.Key()
}

// Entries returns the cards currently shown.
func (v *View) Entries() []domain.Entry {
	return v.list.Entries()
}

// SelectedIndex returns the cursor position among the cards.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// InputFocused returns whether the search input has focus.
func (v *View) InputFocused() bool {
	return v.input.Focused()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// StatusCounts returns the counters shown in the status bar.
func (v *View) StatusCounts() (loaded, total int) {
	return v.statusbar.Counts()
}
