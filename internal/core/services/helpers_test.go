package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/promptvault/internal/adapters/driven/clock"
	"github.com/custodia-labs/promptvault/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/promptvault/internal/core/domain"
)

const testBaseURL = "http://localhost:8080/"

var testEpoch = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// numberedRecords returns n records whose prompts are "prompt 0".."prompt n-1".
func numberedRecords(n int) []domain.Record {
	records := make([]domain.Record, n)
	for i := range records {
		records[i] = domain.Record{
			Prompt: fmt.Sprintf("prompt %d", i),
			Tool:   "Midjourney",
			Author: "tester",
		}
	}
	return records
}

// sampleRecords is a small mixed dataset.
func sampleRecords() []domain.Record {
	return []domain.Record{
		{Prompt: "A neon city at night", Tags: []string{"retro-3D-art", "city"}, Tool: "Midjourney", Author: "Ana"},
		{Prompt: "Minimal poster of a cat", Tags: []string{"poster"}, Tool: "Flux", Author: "Bo"},
		{Prompt: "Clay figurine", Tags: []string{"figurine"}, Style: "3D", Tool: "Gemini", Author: "Cy"},
		{Prompt: "Movie poster, noir", Tags: []string{"movie-poster", "retro"}, Tool: "DALL-E", Author: "Dee"},
		{Prompt: "Landscape with STRASSE sign", Tags: []string{"landscape"}, Tool: "Nano Banana", Author: "Eve"},
	}
}

func loadedStore(t *testing.T, records []domain.Record) *RecordStore {
	t.Helper()
	store := NewRecordStore()
	require.NoError(t, store.Load(context.Background(), memory.NewRecordSource(records)))
	return store
}

type galleryFixture struct {
	gallery *Gallery
	store   *RecordStore
	loc     *memory.Location
	clock   *clock.Manual
	renders []domain.Render
}

func newGalleryFixture(t *testing.T, records []domain.Record, link string) *galleryFixture {
	t.Helper()
	if link == "" {
		link = testBaseURL
	}
	f := &galleryFixture{
		store: loadedStore(t, records),
		loc:   memory.MustLocation(link),
		clock: clock.NewManual(testEpoch),
	}
	f.gallery = NewGallery(f.store, domain.DefaultGallerySettings(), f.loc, f.clock)
	f.gallery.OnRender(func(r domain.Render) { f.renders = append(f.renders, r) })
	return f
}

func (f *galleryFixture) lastRender() domain.Render {
	return f.renders[len(f.renders)-1]
}

func entryIndices(entries []domain.Entry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Index
	}
	return out
}
