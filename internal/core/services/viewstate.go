package services

import (
	"net/url"
	"strconv"

	"github.com/custodia-labs/promptvault/internal/core/ports/driven"
)

// LinkParam is the query parameter carrying the open global index.
const LinkParam = "id"

// ViewStateSync mirrors the open record into the addressable location and
// restores it once after load. Every update replaces the location so no
// history entries are created.
type ViewStateSync struct {
	loc      driven.Location
	restored bool
}

// NewViewStateSync creates a synchronizer over loc.
func NewViewStateSync(loc driven.Location) *ViewStateSync {
	return &ViewStateSync{loc: loc}
}

// Opened sets the link parameter to index.
func (v *ViewStateSync) Opened(index int) {
	u := v.loc.Current()
	q := u.Query()
	q.Set(LinkParam, strconv.Itoa(index))
	u.RawQuery = q.Encode()
	v.loc.Replace(u)
}

// Closed removes the link parameter.
func (v *ViewStateSync) Closed() {
	u := v.loc.Current()
	q := u.Query()
	if !q.Has(LinkParam) {
		return
	}
	q.Del(LinkParam)
	u.RawQuery = q.Encode()
	v.loc.Replace(u)
}

// Restore opens the linked record the first time it is called. Later calls
// do nothing. It must only be called once the records are available.
func (v *ViewStateSync) Restore(count int, open func(int) bool) bool {
	if v.restored {
		return false
	}
	v.restored = true
	index, ok := LinkedIndex(v.loc.Current())
	if !ok || index >= count {
		return false
	}
	return open(index)
}

// Restored reports whether Restore has run.
func (v *ViewStateSync) Restored() bool {
	return v.restored
}

// Link returns the current location as a string.
func (v *ViewStateSync) Link() string {
	return v.loc.Current().String()
}

// LinkedIndex parses the link parameter of u. Only non-negative base-10
// integers are accepted.
func LinkedIndex(u *url.URL) (int, bool) {
	if u == nil {
		return 0, false
	}
	raw := u.Query().Get(LinkParam)
	if raw == "" {
		return 0, false
	}
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		return 0, false
	}
	return index, true
}

// LinkTo returns base with the link parameter set to index.
func LinkTo(base *url.URL, index int) string {
	u := *base
	q := u.Query()
	q.Set(LinkParam, strconv.Itoa(index))
	u.RawQuery = q.Encode()
	return u.String()
}
