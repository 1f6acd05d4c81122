// Package source provides driven.RecordSource implementations that read
// the data file from disk or over HTTP.
package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/promptvault/internal/core/domain"
	"github.com/custodia-labs/promptvault/internal/core/ports/driven"
)

// Format is the encoding of a data file.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// New returns an HTTP source for http(s) refs and a file source otherwise.
func New(ref string) driven.RecordSource {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return NewHTTPSource(ref, nil)
	}
	return NewFileSource(ref)
}

// FormatOf picks the format from a path's extension. Anything that is not
// .yaml or .yml is treated as JSON.
func FormatOf(ref string) Format {
	// Strip a query string so URLs like data.yaml?v=2 are recognised.
	if i := strings.IndexByte(ref, '?'); i >= 0 {
		ref = ref[:i]
	}
	switch strings.ToLower(path.Ext(ref)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses a data file. The payload must be a sequence of records.
func Decode(data []byte, format Format) ([]domain.Record, error) {
	var records []domain.Record

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedData, err)
		}
	default:
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) == 0 || trimmed[0] != '[' {
			return nil, fmt.Errorf("%w: expected a JSON array", domain.ErrMalformedData)
		}
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedData, err)
		}
	}

	if records == nil {
		records = []domain.Record{}
	}
	return records, nil
}
