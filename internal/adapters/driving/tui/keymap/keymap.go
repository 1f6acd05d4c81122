// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back closes the detail view or clears the search.
	Back key.Binding

	// FocusSearch moves focus to the search input.
	FocusSearch key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Prev shows the previous record in the detail view.
	Prev key.Binding

	// Next shows the next record in the detail view.
	Next key.Binding

	// Select opens the selected record.
	Select key.Binding

	// NextFacet selects the next category.
	NextFacet key.Binding

	// PrevFacet selects the previous category.
	PrevFacet key.Binding

	// Clear resets the category and search.
	Clear key.Binding

	// LoadMore reveals the next page.
	LoadMore key.Binding

	// CopyPrompt copies the prompt text.
	CopyPrompt key.Binding

	// CopyLink copies the deep link.
	CopyLink key.Binding

	// OpenSource opens the source URL.
	OpenSource key.Binding

	// Settings shows the settings view.
	Settings key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		FocusSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		NextFacet: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next category"),
		),
		PrevFacet: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous category"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear filters"),
		),
		LoadMore: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "load more"),
		),
		CopyPrompt: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy prompt"),
		),
		CopyLink: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "copy link"),
		),
		OpenSource: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open source"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Help}
}

// GalleryHelp returns keybindings for the gallery view.
func (k *KeyMap) GalleryHelp() []key.Binding {
	return []key.Binding{k.FocusSearch, k.NextFacet, k.Select, k.LoadMore, k.Clear}
}

// DetailHelp returns keybindings for the detail view.
func (k *KeyMap) DetailHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.CopyPrompt, k.CopyLink, k.OpenSource, k.Back}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.LoadMore},
		{k.FocusSearch, k.NextFacet, k.PrevFacet, k.Clear},
		{k.Prev, k.Next, k.Back},
		{k.CopyPrompt, k.CopyLink, k.OpenSource},
		{k.Settings, k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
