package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/promptvault/internal/core/domain"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view ViewType
		want string
	}{
		{ViewGallery, "gallery"},
		{ViewDetail, "detail"},
		{ViewHelp, "help"},
		{ViewSettings, "settings"},
		{ViewType(99), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.view.String())
		})
	}
}

func TestViewGallery_IsZeroValue(t *testing.T) {
	var v ViewType
	assert.Equal(t, ViewGallery, v)
}

func TestTimerFired_RunsCallback(t *testing.T) {
	ran := false
	msg := TimerFired{Fn: func() { ran = true }}
	msg.Fn()
	assert.True(t, ran)
}

func TestRecordsLoaded_CarriesFacets(t *testing.T) {
	msg := RecordsLoaded{Count: 3, Facets: domain.Facets{Tool: []domain.Facet{{Key: "Flux", Count: 3}}}}
	assert.Len(t, msg.Facets.Tool, 1)
}

func TestRecordsLoaded_Error(t *testing.T) {
	err := errors.New("boom")
	msg := RecordsLoaded{Err: err}
	assert.ErrorIs(t, msg.Err, err)
}
