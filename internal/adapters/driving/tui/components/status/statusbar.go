// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/promptvault/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/promptvault/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/promptvault/internal/core/domain"
)

// State represents the current application state for display.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateDetail  State = "detail"
	StateError   State = "error"
	StateHelp    State = "help"
)

// Bar displays the gallery counters and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	loaded  int
	total   int
	pos     int
	of      int
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateLoading,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(msg tea.Msg) (*Bar, tea.Cmd) {
	// Bar is mostly passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the left side of the status bar.
func (s *Bar) renderLeft() string {
	var text string
	switch s.state {
	case StateLoading:
		return s.styles.Muted.Render("Loading prompts...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateHelp:
		return s.styles.Normal.Render("Help")
	case StateDetail:
		if s.of > 0 {
			text = fmt.Sprintf("Prompt %d / %d", s.pos, s.of)
		} else {
			text = "Prompt not in current filter"
		}
	case StateReady:
		text = Counter(s.loaded, s.total)
	}
	if s.message != "" {
		text += "  " + s.styles.Success.Render(s.message)
	}
	return s.styles.Normal.Render(text)
}

// Counter formats the loaded-of-total summary shown under the gallery.
func Counter(loaded, total int) string {
	switch {
	case total == 0:
		return "No prompts match"
	case loaded >= total:
		return fmt.Sprintf("Showing all %d prompts", total)
	default:
		return fmt.Sprintf("Showing %d of %d prompts", loaded, total)
	}
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	var bindings []key.Binding

	switch {
	case s.state == StateDetail:
		bindings = s.keymap.DetailHelp()
	case s.state == StateReady && s.total > 0:
		bindings = s.keymap.GalleryHelp()
	default:
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets a custom message.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// SetRender records the counters of a gallery render.
func (s *Bar) SetRender(r domain.Render) {
	s.loaded = r.Loaded
	s.total = r.Total
}

// Counts returns the loaded and total counters.
func (s *Bar) Counts() (loaded, total int) {
	return s.loaded, s.total
}

// SetPosition records the open record's position. A zero total means the
// record is outside the current filter.
func (s *Bar) SetPosition(pos, total int) {
	s.pos = pos
	s.of = total
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the message and error state.
func (s *Bar) Clear() {
	s.message = ""
	if s.state == StateError {
		s.state = StateReady
	}
}
