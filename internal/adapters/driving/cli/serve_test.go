package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCmd_Flags(t *testing.T) {
	addr := serveCmd.Flags().Lookup("addr")
	require.NotNil(t, addr)
	assert.Empty(t, addr.DefValue)

	rate := serveCmd.Flags().Lookup("rate")
	require.NotNil(t, rate)
	assert.Equal(t, "0", rate.DefValue)
}

func TestServeCmd_StopsWithContext(t *testing.T) {
	setupTestServices(t, 12)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := executeContext(t, ctx, "serve", "--addr", "127.0.0.1:0")
	require.NoError(t, err)
	assert.Contains(t, out, "Serving 12 prompts on 127.0.0.1:0")
}
