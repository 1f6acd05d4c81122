package services

import "github.com/custodia-labs/promptvault/internal/core/domain"

// RecordCounter reports how many records are addressable.
type RecordCounter interface {
	Count() int
}

// Navigator holds the open record and moves it through the filtered
// sequence. Invalid targets are ignored without error.
type Navigator struct {
	records RecordCounter
	view    *ViewStateSync
	open    int
}

// NewNavigator creates a navigator with nothing open. view may be nil when
// the surface has no addressable location.
func NewNavigator(records RecordCounter, view *ViewStateSync) *Navigator {
	return &Navigator{records: records, view: view, open: domain.NoRecord}
}

// OpenIndex returns the open global index.
func (n *Navigator) OpenIndex() (int, bool) {
	return n.open, n.open != domain.NoRecord
}

// Open shows the record at a global index. Out-of-range indices are a no-op.
func (n *Navigator) Open(index int) bool {
	if index < 0 || index >= n.records.Count() {
		return false
	}
	n.open = index
	if n.view != nil {
		n.view.Opened(index)
	}
	return true
}

// Close hides the detail view and clears the deep link. It reports whether
// a record was open.
func (n *Navigator) Close() bool {
	wasOpen := n.open != domain.NoRecord
	n.open = domain.NoRecord
	if n.view != nil {
		n.view.Closed()
	}
	return wasOpen
}

// Next moves the open record by dir within filtered, wrapping around at
// both ends. It is a no-op when nothing is open or the open record is not
// part of filtered.
func (n *Navigator) Next(dir domain.Direction, filtered FilterResult) bool {
	if dir == domain.None || n.open == domain.NoRecord {
		return false
	}
	pos, ok := filtered.Position(n.open)
	if !ok {
		return false
	}
	length := filtered.Len()
	next := ((pos+int(dir))%length + length) % length
	return n.Open(filtered.At(next).Index)
}
