package web

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/promptvault/internal/core/domain"
)

func TestHandlePrompts(t *testing.T) {
	h := newTestServer(t, 45).Handler()

	t.Run("first page", func(t *testing.T) {
		var page PageJSON
		rec := get(t, h, "/api/prompts", &page)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, domain.FilterAll, page.Filter)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 20, page.Loaded)
		assert.Equal(t, 45, page.Matched)
		assert.Equal(t, 45, page.Total)
		assert.False(t, page.Exhausted)
		assert.False(t, page.Empty)
		assert.Nil(t, page.Open)
		assert.Equal(t, "https://pbs.twimg.com/media/x?format=jpg&name=small", page.Prompts[0].Thumbnail)
	})

	t.Run("page window grows", func(t *testing.T) {
		tests := []struct {
			target    string
			loaded    int
			exhausted bool
		}{
			{"/api/prompts?page=2", 40, false},
			{"/api/prompts?page=3", 45, true},
		}
		for _, tt := range tests {
			t.Run(tt.target, func(t *testing.T) {
				var page PageJSON
				get(t, h, tt.target, &page)
				assert.Equal(t, tt.loaded, page.Loaded)
				assert.Equal(t, tt.exhausted, page.Exhausted)
			})
		}
	})

	t.Run("filter and query", func(t *testing.T) {
		var page PageJSON
		get(t, h, "/api/prompts?filter=poster&q=PROMPT+4", &page)

		assert.Equal(t, "poster", page.Filter)
		assert.Equal(t, "prompt 4", page.Query)
		require.Len(t, page.Prompts, 1)
		assert.Equal(t, 40, page.Prompts[0].Index)
		assert.Equal(t, 1, page.Matched)
		assert.Equal(t, 45, page.Total)
	})

	t.Run("empty result", func(t *testing.T) {
		var page PageJSON
		get(t, h, "/api/prompts?q=zzz", &page)

		assert.True(t, page.Empty)
		assert.True(t, page.Exhausted)
		assert.Empty(t, page.Prompts)
	})

	t.Run("deep link opens a record", func(t *testing.T) {
		var page PageJSON
		get(t, h, "/api/prompts?id=33", &page)

		require.NotNil(t, page.Open)
		assert.Equal(t, 33, page.Open.Index)
		assert.Equal(t, "prompt 33", page.Open.Prompt)
		assert.Equal(t, domain.DefaultBaseURL+"?id=33", page.Location)
	})

	t.Run("invalid deep link is ignored", func(t *testing.T) {
		for _, target := range []string{"/api/prompts?id=99", "/api/prompts?id=abc", "/api/prompts?id=-1"} {
			var page PageJSON
			rec := get(t, h, target, &page)
			assert.Equal(t, http.StatusOK, rec.Code, target)
			assert.Nil(t, page.Open, target)
			assert.Equal(t, 20, page.Loaded, target)
		}
	})

	t.Run("invalid page", func(t *testing.T) {
		for _, target := range []string{"/api/prompts?page=0", "/api/prompts?page=x"} {
			var body map[string]string
			rec := get(t, h, target, &body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, target)
			assert.Equal(t, "invalid page", body["error"])
		}
	})
}

func TestHandlePrompt(t *testing.T) {
	h := newTestServer(t, 5).Handler()

	t.Run("found", func(t *testing.T) {
		var prompt PromptJSON
		rec := get(t, h, "/api/prompts/3", &prompt)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 3, prompt.Index)
		assert.Equal(t, "prompt 3", prompt.Prompt)
		assert.Equal(t, 8, prompt.Chars)
	})

	t.Run("not found", func(t *testing.T) {
		rec := get(t, h, "/api/prompts/5", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad index", func(t *testing.T) {
		rec := get(t, h, "/api/prompts/three", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("wrong method", func(t *testing.T) {
		req := newRequest(http.MethodPost, "/api/prompts/1")
		rec := serve(h, req)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestHandlePrompt_NotLoaded(t *testing.T) {
	server, err := NewServer(&Ports{Catalog: newTestCatalog(t, 5, false)}, 0)
	require.NoError(t, err)

	rec := get(t, server.Handler(), "/api/prompts/0", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleFacets(t *testing.T) {
	h := newTestServer(t, 10).Handler()

	var facets FacetsJSON
	rec := get(t, h, "/api/facets", &facets)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []FacetJSON{{Key: "poster", Count: 2}}, facets.Style)
	require.Len(t, facets.Tool, len(domain.KnownTools))
	assert.Equal(t, FacetJSON{Key: "Gemini", Count: 10}, facets.Tool[2])

	rec = get(t, h, "/api/facets?limit=-3", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleStatus(t *testing.T) {
	h := newTestServer(t, 7).Handler()

	var status StatusJSON
	get(t, h, "/api/status", &status)

	assert.Equal(t, StatusJSON{
		Loaded:   true,
		Count:    7,
		PageSize: domain.DefaultPageSize,
		BaseURL:  domain.DefaultBaseURL,
	}, status)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrInvalidInput, http.StatusBadRequest},
		{domain.ErrNotLoaded, http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
