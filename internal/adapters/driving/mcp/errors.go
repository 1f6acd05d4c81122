// Package mcp provides an MCP (Model Context Protocol) server adapter for
// PromptVault. It lets AI assistants search and read the prompt gallery.
package mcp

import "errors"

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("mcp: catalog service is required")
