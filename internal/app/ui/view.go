package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"opsdeck/internal/app/notify"
	"opsdeck/internal/app/procstats"
	"opsdeck/internal/app/ui/components"
	"opsdeck/internal/app/ui/navigation"
)

// View renders the full dashboard frame
func (m Model) View() string {
	sections := []string{
		m.renderHeader(),
		m.renderBody(),
		m.renderToasts(),
		m.renderFooter(),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the title and breadcrumb
func (m Model) renderHeader() string {
	title := components.TitleStyle.Render("opsdeck")

	return lipgloss.JoinHorizontal(lipgloss.Center, title, components.BreadcrumbStyle.Render(m.breadcrumb()))
}

// breadcrumb builds the navigation path for the current view
func (m Model) breadcrumb() string {
	parts := []string{"projects"}

	switch m.nav.CurrentView() {
	case navigation.ViewServices:
		parts = append(parts, m.scope.project+"/"+m.scope.environment)
	case navigation.ViewLogs:
		parts = append(parts, m.scope.project+"/"+m.scope.environment, m.scope.service, "logs")
	case navigation.ViewEnvForm:
		parts = append(parts, m.scope.project+"/"+m.scope.environment, m.scope.service, "env")
	}

	return strings.Join(parts, " › ")
}

// renderBody renders the active view inside the main panel
func (m Model) renderBody() string {
	var body string

	switch m.nav.CurrentView() {
	case navigation.ViewProjects:
		body = m.views.projects.View()
	case navigation.ViewServices:
		body = m.views.services.View()
	case navigation.ViewLogs:
		body = m.views.logs.View()
	case navigation.ViewEnvForm:
		return m.views.envform.View()
	}

	style := components.PanelStyle
	if m.ui.width > 0 {
		style = style.Width(m.ui.width - 2)
	}

	return style.Render(body)
}

// renderToasts renders the active notifications, newest last
func (m Model) renderToasts() string {
	active := m.center.Active()
	if len(active) == 0 {
		return ""
	}

	lines := make([]string, 0, len(active))
	for _, n := range active {
		lines = append(lines, m.renderToast(n))
	}

	return strings.Join(lines, "\n")
}

// renderToast renders one notification line
func (m Model) renderToast(n notify.Notification) string {
	switch n.Level {
	case notify.LevelLoading:
		return m.ui.loader.Model.View() + " " + components.ToastInfoStyle.Render(n.Message)
	case notify.LevelSuccess:
		return components.ToastSuccessStyle.Render("✓ " + n.Message)
	case notify.LevelWarning:
		return components.ToastWarningStyle.Render("! " + n.Message)
	case notify.LevelError:
		return components.ToastErrorStyle.Render("✗ " + n.Message)
	default:
		return components.ToastInfoStyle.Render("· " + n.Message)
	}
}

// renderFooter renders the help line and self-stats
func (m Model) renderFooter() string {
	var helpText string

	switch m.nav.CurrentView() {
	case navigation.ViewProjects:
		helpText = m.views.projects.Help()
	case navigation.ViewServices:
		helpText = m.views.services.Help()
	case navigation.ViewLogs:
		helpText = m.views.logs.Help()
	case navigation.ViewEnvForm:
		helpText = m.views.envform.Help()
	}

	stats := components.TimestampStyle.Render(procstats.FormatStats(m.ui.selfStats))

	if m.ui.loader.Active {
		loading := m.ui.loader.Model.View() + " " + components.ToastInfoStyle.Render(m.ui.loader.Message())

		return lipgloss.JoinVertical(lipgloss.Left, loading, helpText+"  "+stats)
	}

	return helpText + "  " + stats
}
