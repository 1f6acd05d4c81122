package memory

import (
	"fmt"
	"net/url"
	"sync"

	"github.com/custodia-labs/promptvault/internal/core/domain"
	"github.com/custodia-labs/promptvault/internal/core/ports/driven"
)

// Ensure Location implements the interface.
var _ driven.Location = (*Location)(nil)

// Location is an in-memory addressable location with a history stack.
// Replace swaps the top entry; Push adds one, as a browser navigation would.
type Location struct {
	mu      sync.RWMutex
	history []*url.URL
}

// NewLocation creates a location starting at raw.
func NewLocation(raw string) (*Location, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse location %q: %w", raw, domain.ErrInvalidInput)
	}
	return &Location{history: []*url.URL{u}}, nil
}

// MustLocation is like NewLocation but panics on a malformed URL.
func MustLocation(raw string) *Location {
	loc, err := NewLocation(raw)
	if err != nil {
		panic(err)
	}
	return loc
}

// Current returns a copy of the current location.
func (l *Location) Current() *url.URL {
	l.mu.RLock()
	defer l.mu.RUnlock()
	u := *l.history[len(l.history)-1]
	return &u
}

// Replace swaps the current location without adding history.
func (l *Location) Replace(u *url.URL) {
	l.mu.Lock()
	defer l.mu.Unlock()
	c := *u
	l.history[len(l.history)-1] = &c
}

// Push navigates to u, adding a history entry.
func (l *Location) Push(u *url.URL) {
	l.mu.Lock()
	defer l.mu.Unlock()
	c := *u
	l.history = append(l.history, &c)
}

// Len returns the number of history entries.
func (l *Location) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.history)
}

// String returns the current location.
func (l *Location) String() string {
	return l.Current().String()
}
