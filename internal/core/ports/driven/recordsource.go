package driven

import (
	"context"

	"github.com/custodia-labs/promptvault/internal/core/domain"
)

// RecordSource fetches and parses the data file.
// Implementations wrap domain.ErrSourceUnavailable when the data cannot be
// fetched and domain.ErrMalformedData when it cannot be parsed.
type RecordSource interface {
	// Load returns every record in file order.
	Load(ctx context.Context) ([]domain.Record, error)

	// Ref returns the path or URL the source reads from.
	Ref() string
}
