// Package web provides a read-only JSON HTTP API over the prompt gallery.
// Every request carries its own location, so each one is answered by a
// fresh gallery over the shared record store.
package web

import (
	"errors"
	"net/http"

	"github.com/custodia-labs/promptvault/internal/core/domain"
)

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("web: catalog service is required")

// statusFor maps a domain error to an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotLoaded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
