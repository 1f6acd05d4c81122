package services

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/custodia-labs/promptvault/internal/core/domain"
)

// FilterResult is the filtered sequence as (global index, record) pairs in
// store order, plus the inverse mapping from global index to position.
type FilterResult struct {
	entries   []domain.Entry
	positions map[int]int
}

// FilterRecords applies the filter state to records. The result is a
// subsequence of records in their original order; identical inputs always
// produce an identical result.
func FilterRecords(records []domain.Record, state domain.FilterState) FilterResult {
	m := newMatcher(state)

	res := FilterResult{positions: make(map[int]int)}
	for i := range records {
		if !m.match(&records[i]) {
			continue
		}
		res.positions[i] = len(res.entries)
		res.entries = append(res.entries, domain.Entry{Index: i, Record: records[i]})
	}
	return res
}

// Entries returns the filtered sequence. The slice must not be modified.
func (r FilterResult) Entries() []domain.Entry {
	return r.entries
}

// Len returns the length of the filtered sequence.
func (r FilterResult) Len() int {
	return len(r.entries)
}

// At returns the entry at a filtered position.
func (r FilterResult) At(pos int) domain.Entry {
	return r.entries[pos]
}

// Position returns the filtered position of a global index.
func (r FilterResult) Position(global int) (int, bool) {
	pos, ok := r.positions[global]
	return pos, ok
}

// Indices returns the global indices of the filtered sequence.
func (r FilterResult) Indices() []int {
	out := make([]int, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Index
	}
	return out
}

type matcher struct {
	filter string
	all    bool
	query  string
	fold   cases.Caser
}

func newMatcher(state domain.FilterState) *matcher {
	fold := cases.Fold()
	return &matcher{
		filter: state.Filter,
		all:    state.IsAll(),
		query:  fold.String(domain.NormaliseQuery(state.Query)),
		fold:   fold,
	}
}

func (m *matcher) match(r *domain.Record) bool {
	return m.matchCategory(r) && m.matchQuery(r)
}

// matchCategory matches tags by case-sensitive substring and style or tool
// exactly.
func (m *matcher) matchCategory(r *domain.Record) bool {
	if m.all {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(tag, m.filter) {
			return true
		}
	}
	return r.Style == m.filter || r.Tool == m.filter
}

func (m *matcher) matchQuery(r *domain.Record) bool {
	if m.query == "" {
		return true
	}
	if m.contains(r.Prompt) || m.contains(r.Author) || m.contains(r.Tool) {
		return true
	}
	for _, tag := range r.Tags {
		if m.contains(tag) {
			return true
		}
	}
	return false
}

func (m *matcher) contains(field string) bool {
	return strings.Contains(m.fold.String(field), m.query)
}
