package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventName(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{FilterSelected{Key: "3D"}, "filter_selected"},
		{SearchInput{Raw: "cat"}, "search_input"},
		{SearchSubmitted{Raw: "cat"}, "search_submitted"},
		{FiltersCleared{}, "filters_cleared"},
		{LoadMoreRequested{}, "load_more_requested"},
		{Scrolled{}, "scrolled"},
		{RecordOpened{Index: 3}, "record_opened"},
		{DetailClosed{}, "detail_closed"},
		{Navigated{Direction: Forward}, "navigated"},
		{Swiped{}, "swiped"},
		{KeyPressed{Key: KeyEscape}, "key_pressed"},
		{nil, "nil"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, EventName(tt.event))
		})
	}
}
