package projects

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// rowsLoadedMsg carries the fetched project/environment rows
type rowsLoadedMsg struct {
	rows []Row
	err  error
}

// OpenServicesMsg asks the root model to open the services view for
// the selected project environment
type OpenServicesMsg struct {
	Project     string
	Environment string
}

// LoadCmd fetches every project and its environments
func (m *Model) LoadCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		page, err := m.backend.Projects(ctx)
		if err != nil {
			return rowsLoadedMsg{err: err}
		}

		rows := make([]Row, 0, len(page.Results))

		for _, project := range page.Results {
			envs, err := m.backend.Environments(ctx, project.Slug)
			if err != nil {
				return rowsLoadedMsg{err: err}
			}

			for _, env := range envs {
				rows = append(rows, Row{Project: project, Environment: env})
			}
		}

		return rowsLoadedMsg{rows: rows}
	}
}

// Update handles messages for the projects view
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case rowsLoadedMsg:
		m.loader.Stop("projects")

		if msg.err != nil {
			m.loadErr = msg.err
			m.loaded = true

			return nil
		}

		m.setRows(msg.rows)

		return nil
	}

	return nil
}

// handleKeyPress processes keyboard input for the projects view
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.rows)-1 {
			m.selected++
		}

	case key.Matches(msg, m.keys.Select):
		if row, ok := m.Selected(); ok {
			return func() tea.Msg {
				return OpenServicesMsg{
					Project:     row.Project.Slug,
					Environment: row.Environment.Name,
				}
			}
		}
	}

	return nil
}
