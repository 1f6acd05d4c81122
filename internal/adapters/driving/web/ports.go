package web

import "github.com/custodia-labs/promptvault/internal/core/ports/driving"

// Ports aggregates the driving ports the HTTP API needs.
type Ports struct {
	// Catalog serves the loaded record set.
	Catalog driving.CatalogService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Catalog == nil {
		return ErrMissingCatalogService
	}
	return nil
}
