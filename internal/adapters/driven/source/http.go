package source

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/custodia-labs/promptvault/internal/core/domain"
	"github.com/custodia-labs/promptvault/internal/core/ports/driven"
)

// maxBodySize caps the size of a fetched data file.
const maxBodySize = 64 << 20

// Ensure HTTPSource implements the interface.
var _ driven.RecordSource = (*HTTPSource)(nil)

// HTTPSource fetches records with a single GET request.
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates an HTTP source. A nil client uses a client with a
// 30 second timeout.
func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPSource{url: url, client: client}
}

// Load fetches and decodes the data file.
func (s *HTTPSource) Load(ctx context.Context) ([]domain.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s: %s", domain.ErrSourceUnavailable, s.url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", domain.ErrSourceUnavailable, err)
	}

	records, err := Decode(data, s.formatOf(resp))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.url, err)
	}
	return records, nil
}

// Ref returns the URL.
func (s *HTTPSource) Ref() string {
	return s.url
}

// formatOf prefers the response content type and falls back to the URL.
func (s *HTTPSource) formatOf(resp *http.Response) Format {
	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err == nil {
		switch mediaType {
		case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
			return FormatYAML
		case "application/json":
			return FormatJSON
		}
	}
	return FormatOf(s.url)
}
