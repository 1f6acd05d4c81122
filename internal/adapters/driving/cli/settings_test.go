package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/promptvault/internal/core/domain"
)

func TestSettingsCmd_Show(t *testing.T) {
	setupTestServices(t, 1)

	for _, args := range [][]string{{"settings"}, {"settings", "show"}} {
		out, err := execute(t, args...)
		require.NoError(t, err)

		assert.Contains(t, out, "Current Settings")
		assert.Contains(t, out, domain.KeyPageSize)
		assert.Contains(t, out, domain.DefaultDataSource)
		assert.Contains(t, out, "Config file: :memory:")
	}
}

func TestSettingsCmd_Set(t *testing.T) {
	setupTestServices(t, 1)

	out, err := execute(t, "settings", "set", domain.KeyPageSize, "30")
	require.NoError(t, err)
	assert.Contains(t, out, "Set gallery.page_size to 30")
	assert.Equal(t, 30, settingsService.Get().PageSize)
}

func TestSettingsCmd_SetInvalid(t *testing.T) {
	setupTestServices(t, 1)

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"not a number", domain.KeyPageSize, "many"},
		{"zero page size", domain.KeyPageSize, "0"},
		{"unknown key", "gallery.colour", "blue"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "settings", "set", tt.key, tt.value)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSettingsCmd_SetRequiresTwoArgs(t *testing.T) {
	setupTestServices(t, 1)

	_, err := execute(t, "settings", "set", domain.KeyPageSize)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestSettingsCmd_Wizard(t *testing.T) {
	setupTestServices(t, 1)

	// Keep data.source, change the page size, reject a bad debounce and
	// keep the rest.
	rootCmd.SetIn(strings.NewReader("\n40\nsoon\n"))
	out, err := execute(t, "settings", "wizard")
	require.NoError(t, err)

	assert.Contains(t, out, "Step 1/8: data.source")
	assert.Contains(t, out, "Invalid value, keeping 200")
	assert.Contains(t, out, "1 setting(s) changed")
	assert.Equal(t, 40, settingsService.Get().PageSize)
	assert.Equal(t, domain.DefaultSearchDebounce, settingsService.Get().SearchDebounce)
}

func TestSettingsCmd_NoService(t *testing.T) {
	setupTestServices(t, 1)
	settingsService = nil

	_, err := execute(t, "settings")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}
