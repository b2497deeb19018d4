package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQueryInput(t *testing.T) {
	q := NewQueryInput(nil)

	require.NotNil(t, q)
	assert.Equal(t, "", q.Value())
	assert.NotNil(t, q.Init())
}

func TestQueryInput_UpdateAppendsRunes(t *testing.T) {
	q := NewQueryInput(nil)

	q, _ = q.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	q, _ = q.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")})

	assert.Equal(t, "ab", q.Value())
}

func TestQueryInput_SetValueAndReset(t *testing.T) {
	q := NewQueryInput(nil)

	q.SetValue("from:alice")
	assert.Equal(t, "from:alice", q.Value())

	q.Reset()
	assert.Equal(t, "", q.Value())
}

func TestQueryInput_SetWidthFloor(t *testing.T) {
	q := NewQueryInput(nil)

	q.SetWidth(5)

	assert.Equal(t, 5, q.Width())
	assert.Equal(t, 20, q.textinput.Width)
}
