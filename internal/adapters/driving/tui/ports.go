// Package tui provides an interactive terminal gallery for promptvault.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/promptvault/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog loads records and builds the gallery.
	Catalog driving.CatalogService

	// Actions copies prompts and links and opens sources.
	Actions driving.RecordActionService

	// Settings manages gallery settings.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	catalog driving.CatalogService,
	actions driving.RecordActionService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Catalog:  catalog,
		Actions:  actions,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
// Actions and Settings are optional; their views degrade without them.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	return nil
}
