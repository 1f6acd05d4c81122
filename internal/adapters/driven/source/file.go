package source

import (
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/promptvault/internal/core/domain"
	"github.com/custodia-labs/promptvault/internal/core/ports/driven"
)

// Ensure FileSource implements the interface.
var _ driven.RecordSource = (*FileSource)(nil)

// FileSource reads records from a local JSON or YAML file.
type FileSource struct {
	path string
}

// NewFileSource creates a file source.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads and decodes the file.
func (s *FileSource) Load(ctx context.Context) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}

	records, err := Decode(data, FormatOf(s.path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return records, nil
}

// Ref returns the file path.
func (s *FileSource) Ref() string {
	return s.path
}
