package projects

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"opsdeck/internal/app/ui/components"
)

// View renders the projects list
func (m *Model) View() string {
	if !m.loaded {
		return components.EmptyStateStyle.Render("loading projects…")
	}

	if m.loadErr != nil {
		return components.ErrorStyle.Render(fmt.Sprintf("could not load projects: %v", m.loadErr))
	}

	if len(m.rows) == 0 {
		return components.EmptyStateStyle.Render("no projects on this server")
	}

	var b strings.Builder

	for i, row := range m.rows {
		line := renderRow(row)

		if i == m.selected {
			b.WriteString(components.SelectedRowStyle.Render(line))
		} else {
			b.WriteString(components.RowStyle.Render(line))
		}

		b.WriteString("\n")
	}

	return b.String()
}

// renderRow renders one project/environment row
func renderRow(row Row) string {
	slug := lipgloss.NewStyle().Width(24).Render(row.Project.Slug)
	env := components.StatusHealthyStyle.Width(16).Render(row.Environment.Name)
	desc := components.TimestampStyle.Render(row.Project.Description)

	return fmt.Sprintf("%s %s %s", slug, env, desc)
}

// Help returns the rendered key help for this view
func (m *Model) Help() string {
	return components.HelpStyle.Render("↑/↓ move · enter open · q quit")
}
