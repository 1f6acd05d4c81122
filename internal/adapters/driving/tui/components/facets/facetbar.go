// Package facets provides the category chip bar for the TUI.
package facets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/promptvault/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/promptvault/internal/core/domain"
)

// Bar shows the "all" chip followed by style and tool facets. One chip is
// always selected.
type Bar struct {
	styles   *styles.Styles
	chips    []domain.Facet
	selected int
	width    int
}

// NewBar creates a facet bar holding only the "all" chip.
func NewBar(s *styles.Styles) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Bar{
		styles: s,
		chips:  []domain.Facet{{Key: domain.FilterAll}},
		width:  80,
	}
}

// SetFacets replaces the chips. The selection follows its key when the key
// is still present and falls back to "all" otherwise.
func (b *Bar) SetFacets(f domain.Facets) {
	key := b.Key()
	chips := make([]domain.Facet, 0, 1+len(f.Style)+len(f.Tool))
	chips = append(chips, domain.Facet{Key: domain.FilterAll})
	chips = append(chips, f.Style...)
	chips = append(chips, f.Tool...)
	b.chips = chips
	b.selected = 0
	b.Select(key)
}

// Select moves the selection to key. It returns false when no chip has it.
func (b *Bar) Select(key string) bool {
	key = domain.NormaliseFilter(key)
	for i, c := range b.chips {
		if c.Key == key {
			b.selected = i
			return true
		}
	}
	return false
}

// Next selects the following chip, wrapping around, and returns its key.
func (b *Bar) Next() string {
	b.selected = (b.selected + 1) % len(b.chips)
	return b.Key()
}

// Prev selects the preceding chip, wrapping around, and returns its key.
func (b *Bar) Prev() string {
	b.selected = (b.selected - 1 + len(b.chips)) % len(b.chips)
	return b.Key()
}

// Key returns the selected filter key.
func (b *Bar) Key() string {
	return b.chips[b.selected].Key
}

// Len returns the number of chips including "all".
func (b *Bar) Len() int {
	return len(b.chips)
}

// SetWidth sets the available width.
func (b *Bar) SetWidth(width int) {
	b.width = width
}

// View renders as many chips as fit, keeping the selected one visible.
func (b *Bar) View() string {
	rendered := make([]string, len(b.chips))
	for i, c := range b.chips {
		label := "All"
		if c.Key != domain.FilterAll {
			label = c.Label()
		}
		style := b.styles.Chip
		if i == b.selected {
			style = b.styles.ChipActive
		}
		rendered[i] = style.Render(label)
	}

	start := 0
	for start < b.selected && widthOf(rendered[start:b.selected+1]) > b.width {
		start++
	}
	end := b.selected + 1
	for end < len(rendered) && widthOf(rendered[start:end+1]) <= b.width {
		end++
	}

	var sb strings.Builder
	if start > 0 {
		sb.WriteString(b.styles.Muted.Render("‹"))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered[start:end]...))
	if end < len(rendered) {
		sb.WriteString(b.styles.Muted.Render("›"))
	}
	return sb.String()
}

func widthOf(chips []string) int {
	w := 0
	for _, c := range chips {
		w += lipgloss.Width(c)
	}
	return w
}
