package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/custodia-labs/promptvault/internal/core/domain"
	"github.com/custodia-labs/promptvault/internal/core/ports/driving"
	"github.com/custodia-labs/promptvault/internal/logger"
)

// linkParam is the query parameter carrying a deep-linked global index.
const linkParam = "id"

// Handlers serves the API endpoints.
type Handlers struct {
	catalog driving.CatalogService
}

// NewHandlers creates handlers over catalog.
func NewHandlers(catalog driving.CatalogService) *Handlers {
	return &Handlers{catalog: catalog}
}

// PromptJSON is a record with its global index.
type PromptJSON struct {
	Index     int      `json:"index"`
	Prompt    string   `json:"prompt"`
	Tool      string   `json:"tool"`
	Author    string   `json:"author"`
	Tags      []string `json:"tags,omitempty"`
	Style     string   `json:"style,omitempty"`
	Images    []string `json:"images,omitempty"`
	Thumbnail string   `json:"thumbnail,omitempty"`
	CreatedAt string   `json:"created_at,omitempty"`
	SourceURL string   `json:"source_url,omitempty"`
	Chars     int      `json:"chars"`
}

// PageJSON is the response of GET /api/prompts.
type PageJSON struct {
	Filter    string       `json:"filter"`
	Query     string       `json:"query"`
	Page      int          `json:"page"`
	PageSize  int          `json:"page_size"`
	Loaded    int          `json:"loaded"`
	Matched   int          `json:"matched"`
	Total     int          `json:"total"`
	Exhausted bool         `json:"exhausted"`
	Empty     bool         `json:"empty"`
	Prompts   []PromptJSON `json:"prompts"`
	Open      *PromptJSON  `json:"open,omitempty"`
	Location  string       `json:"location"`
}

// FacetJSON is a filter key with its record count.
type FacetJSON struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// FacetsJSON is the response of GET /api/facets.
type FacetsJSON struct {
	Style []FacetJSON `json:"style"`
	Tool  []FacetJSON `json:"tool"`
}

// StatusJSON is the response of GET /api/status.
type StatusJSON struct {
	Loaded   bool   `json:"loaded"`
	Count    int    `json:"count"`
	PageSize int    `json:"page_size"`
	BaseURL  string `json:"base_url"`
}

// HandlePrompts serves one page window, with an optional deep-linked record.
func (h *Handlers) HandlePrompts(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	page := 1
	if raw := params.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid page")
			return
		}
		page = n
	}

	link, err := h.location(params.Get(linkParam))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	view, err := h.catalog.Query(r.Context(), domain.GalleryQuery{
		Filter: params.Get("filter"),
		Query:  params.Get("q"),
		Page:   page,
		Link:   link,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := PageJSON{
		Filter:    view.Filter.Filter,
		Query:     view.Filter.Query,
		Page:      view.Page,
		PageSize:  view.PageSize,
		Loaded:    len(view.Visible),
		Matched:   view.Matched,
		Total:     view.StoreCount,
		Exhausted: view.Exhausted,
		Empty:     view.Empty(),
		Prompts:   make([]PromptJSON, len(view.Visible)),
		Location:  view.Location,
	}
	for i, entry := range view.Visible {
		out.Prompts[i] = promptJSON(entry.Index, entry.Record)
	}
	if view.HasOpen() {
		rec, err := h.catalog.Record(r.Context(), view.OpenIndex)
		if err == nil {
			open := promptJSON(view.OpenIndex, rec)
			out.Open = &open
		}
	}

	writeJSON(w, http.StatusOK, out)
}

// HandlePrompt serves a single record by global index.
func (h *Handlers) HandlePrompt(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid index")
		return
	}

	rec, err := h.catalog.Record(r.Context(), index)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, promptJSON(index, rec))
}

// HandleFacets serves the style and tool facets.
func (h *Handlers) HandleFacets(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	facets, err := h.catalog.Facets(r.Context(), limit)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, FacetsJSON{
		Style: facetsJSON(facets.Style),
		Tool:  facetsJSON(facets.Tool),
	})
}

// HandleStatus reports whether the store is loaded and how big it is.
func (h *Handlers) HandleStatus(w http.ResponseWriter, _ *http.Request) {
	settings := h.catalog.Settings()
	writeJSON(w, http.StatusOK, StatusJSON{
		Loaded:   h.catalog.Loaded(),
		Count:    h.catalog.Count(),
		PageSize: settings.PageSize,
		BaseURL:  settings.BaseURL,
	})
}

// location builds the request's addressable location on the configured
// base URL. An id that does not name a record is passed through and left
// for the gallery to ignore.
func (h *Handlers) location(id string) (string, error) {
	base := h.catalog.Settings().BaseURL
	if id == "" {
		return base, nil
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base url %q: %w", base, domain.ErrInvalidInput)
	}
	q := u.Query()
	q.Set(linkParam, id)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func promptJSON(index int, rec domain.Record) PromptJSON {
	return PromptJSON{
		Index:     index,
		Prompt:    rec.Prompt,
		Tool:      rec.Tool,
		Author:    rec.Author,
		Tags:      rec.Tags,
		Style:     rec.Style,
		Images:    rec.Images,
		Thumbnail: rec.Thumbnail(),
		CreatedAt: rec.CreatedAt,
		SourceURL: rec.SourceURL,
		Chars:     rec.CharCount(),
	}
}

func facetsJSON(facets []domain.Facet) []FacetJSON {
	out := make([]FacetJSON, len(facets))
	for i, f := range facets {
		out[i] = FacetJSON{Key: f.Key, Count: f.Count}
	}
	return out
}

func writeDomainError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("api: %v", err)
	}
	writeError(w, status, err.Error())
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("api: encoding response: %v", err)
	}
}
