package driving

import (
	"context"

	"github.com/custodia-labs/promptvault/internal/core/domain"
)

// RecordActionService provides actions on an opened record.
// This is used by TUI, CLI, and MCP adapters.
type RecordActionService interface {
	// CopyPrompt copies the record's prompt to the system clipboard.
	CopyPrompt(ctx context.Context, record *domain.Record) error

	// CopyLink copies a deep link to the system clipboard.
	CopyLink(ctx context.Context, link string) error

	// OpenSource opens the record's source URL in the default browser.
	OpenSource(ctx context.Context, record *domain.Record) error
}
