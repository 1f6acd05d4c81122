package domain

import "fmt"

// DefaultStyleFacetLimit is how many tag facets are derived from the data.
const DefaultStyleFacetLimit = 15

// KnownTools are the generator names offered as tool facets, in display order.
var KnownTools = []string{
	"Nano Banana Pro",
	"Nano Banana",
	"Gemini",
	"Midjourney",
	"Flux",
	"Stable Diffusion",
	"DALL-E",
}

// FacetKind distinguishes facets derived from tags from tool facets.
type FacetKind string

// Facet kinds.
const (
	FacetStyle FacetKind = "style"
	FacetTool  FacetKind = "tool"
)

// Facet is a selectable filter key with the number of records carrying it.
type Facet struct {
	Key   string    `json:"key"`
	Kind  FacetKind `json:"kind"`
	Count int       `json:"count"`
}

// Label returns the display label, e.g. "poster (12)".
func (f Facet) Label() string {
	return fmt.Sprintf("%s (%d)", f.Key, f.Count)
}
