// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/promptvault/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewGallery is the card grid with search and facets.
	ViewGallery ViewType = iota
	// ViewDetail shows a single record.
	ViewDetail
	// ViewHelp is the help/keybindings view.
	ViewHelp
	// ViewSettings is the settings configuration view.
	ViewSettings
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewGallery:
		return "gallery"
	case ViewDetail:
		return "detail"
	case ViewHelp:
		return "help"
	case ViewSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// RecordsLoaded signals the record store finished loading.
type RecordsLoaded struct {
	Count  int
	Facets domain.Facets
	Err    error
}

// TimerFired carries a callback scheduled on the loop clock. The app runs
// it on the update goroutine.
type TimerFired struct {
	Fn func()
}

// StatusMessage shows a transient note in the status bar.
type StatusMessage struct {
	Text string
}

// ActionCompleted signals a record action finished.
type ActionCompleted struct {
	Action string
	Err    error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// SettingsSaved signals settings were saved.
type SettingsSaved struct {
	Key string
	Err error
}
