package detail

import "errors"

// Error definitions for the detail view.
var (
	// ErrNoActionService indicates that no record action service was provided.
	ErrNoActionService = errors.New("record actions are not available")
)
