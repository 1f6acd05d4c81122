// Package domain defines the core entities for PromptVault.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Record: A prompt entry with images, tags, tool and author
//   - Entry: A record paired with its global index in the store
//   - FilterState: The active category filter and normalised search query
//   - Event: The vocabulary of the gallery's dispatch table
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
