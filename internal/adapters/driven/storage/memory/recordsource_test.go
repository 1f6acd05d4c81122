package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/promptvault/internal/core/domain"
)

func TestRecordSource_Load(t *testing.T) {
	records := []domain.Record{{Prompt: "a"}, {Prompt: "b"}}
	src := NewRecordSource(records)

	got, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, records, got)
	assert.Equal(t, 1, src.Calls())
	assert.Equal(t, ":memory:", src.Ref())

	// Returned slice is a copy.
	got[0].Prompt = "changed"
	again, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a", again[0].Prompt)
}

func TestRecordSource_Failing(t *testing.T) {
	src := NewFailingSource(domain.ErrSourceUnavailable)

	got, err := src.Load(context.Background())
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domain.ErrSourceUnavailable))
}

func TestRecordSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRecordSource(nil).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
