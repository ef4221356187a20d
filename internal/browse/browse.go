// Package browse shows scan results in an interactive terminal list.
package browse

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"quoteloc/internal/core"
)

// Init initializes the browser model and returns any initial commands to run.
func (m model) Init() tea.Cmd {
	return nil
}

// Run launches the browser for an already completed scan.
func Run(res *core.Result, opts ...tea.ProgramOption) error {
	m := InitialModel(res, defaultHeight)
	p := tea.NewProgram(&teaModelAdapter{m}, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running browser: %w", err)
	}
	return nil
}

// teaModelAdapter adapts our model to the tea.Model interface using Update and ModelView.
type teaModelAdapter struct {
	m model
}

func (a *teaModelAdapter) Init() tea.Cmd {
	return a.m.Init()
}

func (a *teaModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m2, cmd := Update(a.m, msg)
	a.m = m2
	return a, cmd
}

func (a *teaModelAdapter) View() string {
	return ModelView(a.m)
}
