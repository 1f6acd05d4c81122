// Package list provides list display components for the TUI.
package list

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/promptvault/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/promptvault/internal/core/domain"
	"github.com/custodia-labs/promptvault/internal/textutil"
)

const (
	// CardLines is the height of one card including its spacer line.
	CardLines = 4

	// LineUnits converts terminal rows into the pixel-like units the
	// gallery scroll threshold is expressed in.
	LineUnits = 20
)

// CardList displays gallery entries as a navigable column of cards.
type CardList struct {
	entries  []domain.Entry
	selected int
	offset   int
	styles   *styles.Styles
	now      func() time.Time
	width    int
	height   int
}

// NewCardList creates a new card list component.
func NewCardList(s *styles.Styles) *CardList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &CardList{
		styles: s,
		now:    time.Now,
		width:  80,
		height: 20,
	}
}

// Init initialises the card list.
func (l *CardList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (l *CardList) Update(msg tea.Msg) (*CardList, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		case "pgup":
			l.ScrollBy(-l.visibleCount())
		case "pgdown":
			l.ScrollBy(l.visibleCount())
		}
	case tea.MouseMsg:
		//nolint:exhaustive // only the wheel scrolls the list
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			l.ScrollBy(-1)
		case tea.MouseButtonWheelDown:
			l.ScrollBy(1)
		}
	}
	return l, nil
}

// Apply replaces or extends the entries from a gallery render. A fresh
// render resets the cursor to the top.
func (l *CardList) Apply(r domain.Render) {
	if r.Append {
		l.entries = append(l.entries, r.Items...)
		return
	}
	l.entries = append([]domain.Entry(nil), r.Items...)
	l.selected = 0
	l.offset = 0
}

// View renders the visible cards.
func (l *CardList) View() string {
	if len(l.entries) == 0 {
		return l.styles.Muted.Render("No prompts match your filters")
	}

	end := l.offset + l.visibleCount()
	if end > len(l.entries) {
		end = len(l.entries)
	}

	cards := make([]string, 0, end-l.offset)
	for i := l.offset; i < end; i++ {
		cards = append(cards, l.renderCard(i, &l.entries[i].Record))
	}
	return strings.Join(cards, "\n\n")
}

// renderCard formats a single record as three lines.
func (l *CardList) renderCard(i int, rec *domain.Record) string {
	inner := l.width - 3
	if inner < 20 {
		inner = 20
	}

	header := l.styles.Tool(rec.Tool).Render(textutil.Truncate(rec.Tool, inner/2))
	if rec.Author != "" {
		header += l.styles.Muted.Render(" · " + textutil.Truncate(rec.Author, inner/3))
	}
	if rec.IsNew(l.now()) {
		header += " " + l.styles.Badge.Render("NEW")
	}

	prompt := l.styles.Normal.Render(textutil.Summary(rec.Prompt, inner))

	tags := make([]string, 0, len(rec.Tags))
	for _, t := range rec.Tags {
		tags = append(tags, "#"+t)
	}
	tagLine := l.styles.Tag.Render(textutil.Truncate(strings.Join(tags, " "), inner))

	card := header + "\n" + prompt + "\n" + tagLine
	if i == l.selected {
		return l.styles.CardSelected.Render(card)
	}
	return l.styles.Card.Render(card)
}

// visibleCount returns how many cards fit in the height.
func (l *CardList) visibleCount() int {
	n := l.height / CardLines
	if n < 1 {
		n = 1
	}
	return n
}

// MoveUp moves selection up.
func (l *CardList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
	if l.selected < l.offset {
		l.offset = l.selected
	}
}

// MoveDown moves selection down.
func (l *CardList) MoveDown() {
	if l.selected < len(l.entries)-1 {
		l.selected++
	}
	if l.selected >= l.offset+l.visibleCount() {
		l.offset = l.selected - l.visibleCount() + 1
	}
}

// ScrollBy moves the window by n cards and keeps the cursor inside it.
func (l *CardList) ScrollBy(n int) {
	l.offset += n
	if limit := len(l.entries) - l.visibleCount(); l.offset > limit {
		l.offset = limit
	}
	if l.offset < 0 {
		l.offset = 0
	}
	if l.selected < l.offset {
		l.selected = l.offset
	}
	if last := l.offset + l.visibleCount() - 1; l.selected > last {
		l.selected = last
	}
}

// Metrics reports the scroll position for the load-more trigger.
func (l *CardList) Metrics() domain.ScrollMetrics {
	return domain.ScrollMetrics{
		ViewportHeight: l.visibleCount() * CardLines * LineUnits,
		ScrollTop:      l.offset * CardLines * LineUnits,
		ContentHeight:  len(l.entries) * CardLines * LineUnits,
	}
}

// Entries returns the materialised entries.
func (l *CardList) Entries() []domain.Entry {
	return l.entries
}

// Selected returns the cursor position.
func (l *CardList) Selected() int {
	return l.selected
}

// SelectedEntry returns the entry under the cursor.
func (l *CardList) SelectedEntry() (domain.Entry, bool) {
	if l.selected < 0 || l.selected >= len(l.entries) {
		return domain.Entry{}, false
	}
	return l.entries[l.selected], true
}

// SelectIndex moves the cursor onto the entry with a global index. It
// returns false when the entry is not materialised.
func (l *CardList) SelectIndex(index int) bool {
	for i, e := range l.entries {
		if e.Index != index {
			continue
		}
		for l.selected < i {
			l.MoveDown()
		}
		for l.selected > i {
			l.MoveUp()
		}
		return true
	}
	return false
}

// SetNow replaces the clock used for the NEW badge.
func (l *CardList) SetNow(now func() time.Time) {
	l.now = now
}

// SetDimensions sets the component dimensions.
func (l *CardList) SetDimensions(width, height int) {
	l.width = width
	l.height = height
}

// Width returns the current width.
func (l *CardList) Width() int {
	return l.width
}

// Height returns the current height.
func (l *CardList) Height() int {
	return l.height
}

// Count returns the number of entries.
func (l *CardList) Count() int {
	return len(l.entries)
}

// IsEmpty returns whether the list is empty.
func (l *CardList) IsEmpty() bool {
	return len(l.entries) == 0
}
