package settings

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/promptvault/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/promptvault/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/promptvault/internal/core/domain"
	"github.com/custodia-labs/promptvault/internal/core/services"
)

func newView(t *testing.T) (*View, *services.SettingsService) {
	t.Helper()
	svc := services.NewSettingsService(memory.NewConfigStore())
	v := NewView(nil, svc)
	v.SetDimensions(100, 30)
	return v, svc
}

func press(v *View, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd = v.Update(msg)
	}
	return cmd
}

func TestNewView_NilService(t *testing.T) {
	v := NewView(nil, nil)

	assert.ErrorIs(t, v.Err(), ErrNoSettingsService)
	assert.Contains(t, v.View(), "settings service not available")
}

func TestView_ListsSettings(t *testing.T) {
	v, _ := newView(t)

	view := v.View()

	assert.Contains(t, view, "Page size")
	assert.Contains(t, view, "Search debounce (ms)")
	assert.Contains(t, view, "data/prompts.json")
}

func TestView_Navigation(t *testing.T) {
	v, _ := newView(t)

	press(v, "j", "j", "k")
	assert.Equal(t, 1, v.Selected())

	press(v, "k", "k")
	assert.Equal(t, 0, v.Selected())
}

// selectKey moves the cursor onto a config key.
func selectKey(t *testing.T, v *View, svc *services.SettingsService, key string) {
	t.Helper()
	for i, k := range svc.Keys() {
		if k == key {
			for v.Selected() < i {
				press(v, "j")
			}
			return
		}
	}
	t.Fatalf("unknown key %s", key)
}

func TestView_EditAndSave(t *testing.T) {
	v, svc := newView(t)
	selectKey(t, v, svc, domain.KeyPageSize)

	press(v, "enter")
	require.True(t, v.Editing())
	press(v, "backspace", "backspace", "4", "0")
	cmd := press(v, "enter")

	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, messages.SettingsSaved{Key: domain.KeyPageSize}, msg)
	v.Update(msg)

	assert.False(t, v.Editing())
	assert.Equal(t, 40, svc.Get().PageSize)
	assert.Contains(t, v.View(), "Saved gallery.page_size")
}

func TestView_InvalidValueShowsError(t *testing.T) {
	v, svc := newView(t)
	selectKey(t, v, svc, domain.KeyPageSize)

	press(v, "enter", "backspace", "backspace", "x")
	msg := press(v, "enter")()
	v.Update(msg)

	assert.True(t, errors.Is(v.Err(), domain.ErrInvalidInput))
	assert.Equal(t, domain.DefaultPageSize, svc.Get().PageSize)
}

func TestView_EscapeCancelsEdit(t *testing.T) {
	v, _ := newView(t)
	press(v, "enter")

	cmd := press(v, "esc")

	assert.Nil(t, cmd)
	assert.False(t, v.Editing())
}

func TestView_EscapeReturnsToGallery(t *testing.T) {
	v, _ := newView(t)

	cmd := press(v, "esc")

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewGallery}, cmd())
}
