package browse

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quoteloc/internal/core"
	"quoteloc/internal/document"
	"quoteloc/internal/locate"
)

func resultFor(content string) *core.Result {
	doc := document.FromString(content)
	return &core.Result{
		Path:        "page.tsx",
		Target:      core.Target,
		Unit:        locate.Runes,
		Doc:         doc,
		Occurrences: locate.Collect(doc, core.Target),
	}
}

// simulateKeyMsg creates a tea.KeyMsg for a given string key
func simulateKeyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{
		Type:  tea.KeyRunes,
		Runes: []rune(key),
	}
}

func TestInitialModel_Items(t *testing.T) {
	m := InitialModel(resultFor("a'b\nc'd"), 24)

	items := m.list.Items()
	require.Len(t, items, 2)

	first, ok := items[0].(OccurrenceItem)
	require.True(t, ok)
	assert.Equal(t, "1:2", first.Title())
	assert.Equal(t, "a'b", first.Description())
	assert.Equal(t, "a'b", first.FilterValue())

	second := items[1].(OccurrenceItem)
	assert.Equal(t, "2:2", second.Title())
	assert.Equal(t, "c'd", second.Description())

	assert.Equal(t, "page.tsx (Total single quote characters: 2)", m.list.Title)
}

func TestHandleKeyMsg_Quit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{name: "q", msg: simulateKeyMsg("q")},
		{name: "ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := InitialModel(resultFor("'"), 24)

			m, cmd := HandleKeyMsg(m, tt.msg)
			assert.True(t, m.quitting)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.Empty(t, ModelView(m))

			// further input is ignored once quitting
			_, cmd = HandleKeyMsg(m, simulateKeyMsg("j"))
			assert.Nil(t, cmd)
		})
	}
}

func TestUpdate_OtherKeysDoNotQuit(t *testing.T) {
	m := InitialModel(resultFor("'\n'\n'"), 24)
	m, _ = Update(m, simulateKeyMsg("j"))
	assert.False(t, m.quitting)
}

func TestUpdate_WindowResize(t *testing.T) {
	m := InitialModel(resultFor("'"), 24)

	m, cmd := Update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Nil(t, cmd)
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 116, m.list.Width())
	assert.Equal(t, 36, m.list.Height())

	m, _ = Update(m, tea.WindowSizeMsg{Width: 10, Height: 3})
	assert.Equal(t, 20, m.list.Width())
	assert.Equal(t, 5, m.list.Height())
}

func TestModelView(t *testing.T) {
	view := ModelView(InitialModel(resultFor("x = 'y'\n"), 24))
	assert.Contains(t, view, "1:5")

	empty := ModelView(InitialModel(resultFor("no quotes"), 24))
	assert.Contains(t, empty, "Nothing to browse")
	assert.True(t, strings.Contains(empty, "Total single quote characters: 0"))
}
