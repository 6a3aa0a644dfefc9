package services

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"opsdeck/internal/app/ui/components"
)

// View renders the services table
func (m *Model) View() string {
	if !m.loaded {
		return components.EmptyStateStyle.Render("loading services…")
	}

	if m.loadErr != nil {
		return components.ErrorStyle.Render(fmt.Sprintf("could not load services: %v", m.loadErr))
	}

	if len(m.services) == 0 {
		return components.EmptyStateStyle.Render("no services in this environment")
	}

	var b strings.Builder

	for i, svc := range m.services {
		row := m.renderRow(svc)

		if i == m.selected {
			b.WriteString(components.SelectedRowStyle.Render(row))
		} else {
			b.WriteString(components.RowStyle.Render(row))
		}

		b.WriteString("\n")
	}

	return b.String()
}

// renderRow renders one service row: indicator, slug, image, status
func (m *Model) renderRow(svc *ServiceState) string {
	indicator := m.renderIndicator(svc)
	status := renderStatus(svc.Status)

	name := lipgloss.NewStyle().Width(24).Render(svc.Service.Slug)
	image := components.TimestampStyle.Width(32).Render(svc.Service.Image)

	return fmt.Sprintf("%s %s %s %s", indicator, name, image, status)
}

// renderIndicator renders the status dot, pulsing during transitions
func (m *Model) renderIndicator(svc *ServiceState) string {
	switch svc.Status {
	case StatusStarting, StatusStopping:
		return svc.Blink.Render(components.StatusPendingStyle)
	case StatusHealthy:
		return components.StatusHealthyStyle.Render("●")
	case StatusFailed:
		return components.StatusFailedStyle.Render("●")
	default:
		return components.StatusSleepingStyle.Render("○")
	}
}

// renderStatus renders the status column
func renderStatus(status Status) string {
	switch status {
	case StatusHealthy:
		return components.StatusHealthyStyle.Render(string(status))
	case StatusStarting, StatusStopping:
		return components.StatusPendingStyle.Render(string(status) + "…")
	case StatusFailed:
		return components.StatusFailedStyle.Render(string(status))
	default:
		return components.StatusSleepingStyle.Render(string(status))
	}
}

// Help returns the rendered key help for this view
func (m *Model) Help() string {
	bindings := m.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))

	for _, b := range bindings {
		parts = append(parts, fmt.Sprintf("%s %s", b.Help().Key, b.Help().Desc))
	}

	return components.HelpStyle.Render(strings.Join(parts, " · "))
}

// Tick advances animations; returns true when a redraw is needed
func (m *Model) Tick() bool {
	return m.updateBlinkAnimations()
}
