package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/promptvault/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/promptvault/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/promptvault/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/promptvault/internal/adapters/driving/tui/views/detail"
	"github.com/custodia-labs/promptvault/internal/adapters/driving/tui/views/gallery"
	"github.com/custodia-labs/promptvault/internal/adapters/driving/tui/views/settings"
	"github.com/custodia-labs/promptvault/internal/core/domain"
	"github.com/custodia-labs/promptvault/internal/core/ports/driven"
	"github.com/custodia-labs/promptvault/internal/core/ports/driving"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings.
	keymap *keymap.KeyMap

	// clock delivers debounce timers to the update loop.
	clock *loopClock

	// gallery is the stateful controller behind every view.
	gallery driving.GalleryController

	galleryView  *gallery.View
	detailView   *detail.View
	settingsView *settings.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// previousView is restored when the help view closes.
	previousView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application. The location seeds the deep link
// and receives the link of the open record.
func NewApp(ports *Ports, loc driven.Location) (*App, error) {
	if ports == nil {
		return nil, fmt.Errorf("creating app: %w", ErrInvalidPorts)
	}
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if loc == nil {
		return nil, fmt.Errorf("creating app: %w", ErrMissingLocation)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()
	clock := newLoopClock()
	g := ports.Catalog.NewGallery(loc, clock)

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		clock:        clock,
		gallery:      g,
		galleryView:  gallery.NewView(s, km, g),
		detailView:   detail.NewView(s, km, g, ports.Actions),
		settingsView: settings.NewView(s, ports.Settings),
		currentView:  messages.ViewGallery,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.detailView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It starts loading the records and listening for timers.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("promptvault"),
		a.loadRecords(),
		a.clock.listen(),
		a.galleryView.Init(),
	)
}

// loadRecords returns a command that fills the record store.
func (a *App) loadRecords() tea.Cmd {
	catalog := a.ports.Catalog
	ctx := a.ctx
	return func() tea.Msg {
		if err := catalog.Load(ctx); err != nil && !errors.Is(err, domain.ErrAlreadyLoaded) {
			return messages.RecordsLoaded{Err: err}
		}
		facets, err := catalog.Facets(ctx, 0)
		return messages.RecordsLoaded{Count: catalog.Count(), Facets: facets, Err: err}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.RecordsLoaded:
		a.galleryView, cmd = a.galleryView.Update(msg)
		if msg.Err != nil {
			a.err = msg.Err
		}
		// Ready also restores a deep link once the records are in.
		a.gallery.Ready()
		if a.gallery.Snapshot().HasOpen() {
			a.showDetail()
		}
		return a, cmd

	case messages.TimerFired:
		msg.Fn()
		if a.currentView == messages.ViewDetail {
			a.detailView.Refresh()
		}
		return a, a.clock.listen()

	case messages.ViewChanged:
		return a, a.switchView(msg.View)

	case messages.ActionCompleted:
		if a.currentView == messages.ViewDetail {
			a.detailView, cmd = a.detailView.Update(msg)
		} else {
			a.galleryView, cmd = a.galleryView.Update(msg)
		}
		return a, cmd

	case messages.SettingsSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.galleryView, cmd = a.galleryView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to active view
	switch a.currentView {
	case messages.ViewGallery:
		a.galleryView, cmd = a.galleryView.Update(msg)
	case messages.ViewDetail:
		a.detailView, cmd = a.detailView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
		// Help view doesn't need to handle other messages
	}

	return a, cmd
}

// handleKeyMsg applies global shortcuts and forwards the rest.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	key := msg.String()

	// Global quit with ctrl+c
	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if !a.typing() {
		switch {
		case key == "q":
			return a, tea.Quit
		case keymap.Matches(key, a.keymap.Help):
			if a.currentView == messages.ViewHelp {
				a.currentView = a.previousView
			} else {
				a.previousView = a.currentView
				a.currentView = messages.ViewHelp
			}
			return a, nil
		case keymap.Matches(key, a.keymap.Settings) && a.currentView == messages.ViewGallery:
			return a, a.switchView(messages.ViewSettings)
		}
	}

	switch a.currentView {
	case messages.ViewGallery:
		a.galleryView, cmd = a.galleryView.Update(msg)
	case messages.ViewDetail:
		a.detailView, cmd = a.detailView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
		if msg.Type == tea.KeyEsc {
			a.currentView = a.previousView
		}
	}
	return a, cmd
}

// typing reports whether keys are text for an input field.
func (a *App) typing() bool {
	switch a.currentView {
	case messages.ViewGallery:
		return a.galleryView.InputFocused()
	case messages.ViewSettings:
		return a.settingsView.Editing()
	default:
		return false
	}
}

// switchView activates a view.
func (a *App) switchView(view messages.ViewType) tea.Cmd {
	switch view {
	case messages.ViewDetail:
		a.showDetail()
	case messages.ViewGallery:
		if a.currentView == messages.ViewDetail {
			a.galleryView.Reveal(a.detailView.Last().Index)
		}
		a.currentView = messages.ViewGallery
	case messages.ViewSettings, messages.ViewHelp:
		a.previousView = a.currentView
		a.currentView = view
	}
	return nil
}

func (a *App) showDetail() {
	a.detailView.Refresh()
	a.currentView = messages.ViewDetail
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewDetail:
		return a.detailView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.galleryView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	h := help.New()
	return lipgloss.JoinVertical(lipgloss.Left,
		a.styles.Title.Render("Help"),
		"",
		h.FullHelpView(a.keymap.FullHelp()),
		"",
		a.styles.Help.Render("[esc] back"),
	)
}

// Run starts the TUI application.
func (a *App) Run() error {
	defer a.clock.stop()
	p := tea.NewProgram(a,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(a.ctx),
	)
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Gallery returns the controller driving the views.
func (a *App) Gallery() driving.GalleryController {
	return a.gallery
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.galleryView.SetDimensions(width, height)
	a.detailView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
