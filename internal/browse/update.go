package browse

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all Bubbletea update logic for the browser model.
func Update(m model, msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(m, msg)
	case tea.WindowSizeMsg:
		return handleWindowResize(m, msg)
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// HandleKeyMsg quits on q or ctrl+c and passes other keys to the list.
func HandleKeyMsg(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "q":
		// q is a literal while the filter input is focused
		if m.list.FilterState() != list.Filtering {
			m.quitting = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func handleWindowResize(m model, msg tea.WindowSizeMsg) (model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.list.SetSize(max(msg.Width-4, 20), listHeight(msg.Height))
	return m, nil
}
