package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/promptvault/internal/adapters/driving/tui/styles"
)

func focused(t *testing.T) *SearchInput {
	t.Helper()
	in := NewSearchInput(nil)
	in.Focus()
	require.True(t, in.Focused())
	return in
}

func typeRunes(in *SearchInput, s string) bool {
	changed := false
	for _, r := range s {
		var c bool
		_, _, c = in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		changed = changed || c
	}
	return changed
}

func TestNewSearchInput(t *testing.T) {
	s := styles.DefaultStyles()
	input := NewSearchInput(s)

	require.NotNil(t, input)
	assert.Equal(t, "", input.Value())
	assert.False(t, input.Focused())
}

func TestNewSearchInput_NilStyles(t *testing.T) {
	input := NewSearchInput(nil)

	require.NotNil(t, input)
	assert.NotNil(t, input.styles)
}

func TestSearchInput_Init(t *testing.T) {
	input := NewSearchInput(nil)

	assert.NotNil(t, input.Init())
}

func TestSearchInput_Update_ReportsChange(t *testing.T) {
	input := focused(t)

	changed := typeRunes(input, "cat")

	assert.True(t, changed)
	assert.Equal(t, "cat", input.Value())
}

func TestSearchInput_Update_CursorMoveIsNotAChange(t *testing.T) {
	input := focused(t)
	input.SetValue("cat")

	_, _, changed := input.Update(tea.KeyMsg{Type: tea.KeyLeft})

	assert.False(t, changed)
}

func TestSearchInput_Update_BlurredIgnoresKeys(t *testing.T) {
	input := NewSearchInput(nil)

	changed := typeRunes(input, "x")

	assert.False(t, changed)
	assert.Empty(t, input.Value())
}

func TestSearchInput_Update_Backspace(t *testing.T) {
	input := focused(t)
	typeRunes(input, "dogs")

	_, _, changed := input.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	assert.True(t, changed)
	assert.Equal(t, "dog", input.Value())
}

func TestSearchInput_View(t *testing.T) {
	input := NewSearchInput(nil)

	view := input.View()

	assert.Contains(t, view, "Search")
}

func TestSearchInput_FocusBlur(t *testing.T) {
	input := focused(t)

	input.Blur()

	assert.False(t, input.Focused())
}

func TestSearchInput_SetWidth(t *testing.T) {
	input := NewSearchInput(nil)

	input.SetWidth(100)
	assert.Equal(t, 100, input.Width())
	assert.Equal(t, 90, input.textinput.Width)

	input.SetWidth(5)
	assert.Equal(t, 20, input.textinput.Width)
}

func TestSearchInput_Reset(t *testing.T) {
	input := NewSearchInput(nil)
	input.SetValue("test")

	input.Reset()

	assert.Empty(t, input.Value())
}
