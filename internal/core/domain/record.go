package domain

import (
	"strings"
	"time"
)

// NewWindow is how long after creation a record is presented as new.
const NewWindow = 7 * 24 * time.Hour

// createdAtLayouts are the date formats seen in collected data files.
var createdAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Record is a single prompt entry from the data file.
// Its identity inside the application is its global index in the
// RecordStore, not the ID field.
type Record struct {
	// ID is the identifier assigned by the collector, if any.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Prompt is the free-text prompt.
	Prompt string `json:"prompt" yaml:"prompt"`

	// Images are image URLs; the first one is representative.
	Images []string `json:"images" yaml:"images"`

	// Tags are free-form labels, matched by substring.
	Tags []string `json:"tags" yaml:"tags"`

	// Style is a scalar category.
	Style string `json:"style,omitempty" yaml:"style,omitempty"`

	// Tool is the generator that produced the images.
	Tool string `json:"tool" yaml:"tool"`

	// Author is the credited author.
	Author string `json:"author" yaml:"author"`

	// CreatedAt is the publication date, used for recency only.
	CreatedAt string `json:"created_at,omitempty" yaml:"created_at,omitempty"`

	// CollectedAt is when the record was collected.
	CollectedAt string `json:"collected_at,omitempty" yaml:"collected_at,omitempty"`

	// SourceURL links to the original post.
	SourceURL string `json:"source_url,omitempty" yaml:"source_url,omitempty"`
}

// Image returns the representative image URL, or "" when there is none.
func (r *Record) Image() string {
	if len(r.Images) == 0 {
		return ""
	}
	return r.Images[0]
}

// Thumbnail returns a smaller variant of the representative image where
// the host supports one.
func (r *Record) Thumbnail() string {
	url := r.Image()
	if url == "" {
		return ""
	}
	if strings.Contains(url, "pbs.twimg.com") {
		url = strings.Replace(url, "name=large", "name=small", 1)
		url = strings.Replace(url, "name=medium", "name=small", 1)
	}
	return url
}

// Created parses CreatedAt. The boolean is false when the field is empty
// or in an unknown format.
func (r *Record) Created() (time.Time, bool) {
	if r.CreatedAt == "" {
		return time.Time{}, false
	}
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, r.CreatedAt); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsNew reports whether the record was created within NewWindow of now.
func (r *Record) IsNew(now time.Time) bool {
	created, ok := r.Created()
	if !ok {
		return false
	}
	return now.Sub(created) < NewWindow
}

// CharCount returns the number of characters in the prompt.
func (r *Record) CharCount() int {
	return len([]rune(r.Prompt))
}

// HasSource reports whether the record links to an original post.
func (r *Record) HasSource() bool {
	return r.SourceURL != ""
}

// Entry is a record paired with its global index in the RecordStore.
type Entry struct {
	// Index is the record's permanent position in the store.
	Index int

	// Record is the record itself.
	Record Record
}
