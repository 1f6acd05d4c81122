package services

import "github.com/custodia-labs/promptvault/internal/core/domain"

// Paginator tracks how much of the filtered sequence is materialised.
// The window is [0, page*pageSize) clamped to the sequence length.
type Paginator struct {
	pageSize int
	page     int
}

// NewPaginator creates a paginator on page 1. A non-positive page size
// falls back to domain.DefaultPageSize.
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	return &Paginator{pageSize: pageSize, page: 1}
}

// Page returns the current 1-based page.
func (p *Paginator) Page() int {
	return p.page
}

// PageSize returns the fixed page size.
func (p *Paginator) PageSize() int {
	return p.pageSize
}

// Reset returns to page 1.
func (p *Paginator) Reset() {
	p.page = 1
}

// Advance moves to the next page. Advancing past the end is allowed and
// simply yields no new items.
func (p *Paginator) Advance() {
	p.page++
}

// Loaded returns the size of the materialised window for total items.
func (p *Paginator) Loaded(total int) int {
	return min(p.page*p.pageSize, total)
}

// IsExhausted reports whether the window covers total items.
func (p *Paginator) IsExhausted(total int) bool {
	return p.page*p.pageSize >= total
}

// Materialize returns the materialised prefix of entries.
func (p *Paginator) Materialize(entries []domain.Entry) []domain.Entry {
	return entries[:p.Loaded(len(entries))]
}

// Window returns the bounds of the current page within total items, which
// is what an appending render draws after Advance.
func (p *Paginator) Window(total int) (start, end int) {
	end = p.Loaded(total)
	start = min((p.page-1)*p.pageSize, end)
	return start, end
}
