package logs

import (
	"fmt"
	"strings"
	"time"

	"opsdeck/internal/app/logquery"
	"opsdeck/internal/app/ui/components"
)

// View renders the logs viewer
func (m *Model) View() string {
	if !m.loaded {
		return components.EmptyStateStyle.Render("loading logs…")
	}

	if m.loadErr != nil {
		return components.ErrorStyle.Render(fmt.Sprintf("could not load logs: %v", m.loadErr))
	}

	if m.resultCount() == 0 {
		return components.EmptyStateStyle.Render("no log entries in this window")
	}

	return m.viewport.View() + "\n" + m.renderStatus()
}

// renderStatus renders the pagination and filter status line
func (m *Model) renderStatus() string {
	var parts []string

	if m.kind == kindHTTP {
		parts = append(parts, fmt.Sprintf("http logs %s", m.svc.Service))
	} else {
		parts = append(parts, fmt.Sprintf("deployment %s", shortHash(m.ref.Hash)))
	}

	parts = append(parts, fmt.Sprintf("page %d", len(m.history)+1))

	if len(m.filter.Levels) > 0 {
		parts = append(parts, "level "+strings.Join(m.filter.Levels, ","))
	}

	if len(m.filter.Sources) > 0 {
		parts = append(parts, "source "+strings.Join(m.filter.Sources, ","))
	}

	if len(m.filter.Methods) > 0 {
		parts = append(parts, "method "+strings.Join(m.filter.Methods, ","))
	}

	if m.nextParam() == nil {
		parts = append(parts, "oldest")
	}

	return components.BreadcrumbStyle.Render(strings.Join(parts, " · "))
}

// renderContent rebuilds the viewport content from the current page
func (m *Model) renderContent() {
	if m.resultCount() == 0 {
		m.viewport.SetContent("")
		return
	}

	var b strings.Builder

	if m.kind == kindHTTP {
		for _, entry := range m.httpPage.Results {
			b.WriteString(m.renderHTTPEntry(entry))
			b.WriteString("\n")
		}
	} else {
		for _, entry := range m.page.Results {
			b.WriteString(m.renderEntry(entry))
			b.WriteString("\n")
		}
	}

	m.viewport.SetContent(b.String())
}

// renderEntry renders one log line: timestamp, level, content
func (m *Model) renderEntry(entry logquery.RuntimeEntry) string {
	ts := components.TimestampStyle.Render(entry.Timestamp.Format(components.LogTimeFormat))
	level := renderLevel(entry.Level)

	content := entry.ContentText
	if m.match != nil && m.match(content) && m.filter.Query != "" {
		content = components.HighlightStyle.Render(content)
	}

	return fmt.Sprintf("%s %s %s", ts, level, content)
}

// renderHTTPEntry renders one access log line: timestamp, status,
// method and path, duration
func (m *Model) renderHTTPEntry(entry logquery.HTTPEntry) string {
	ts := components.TimestampStyle.Render(entry.Time.Format(components.LogTimeFormat))
	status := renderHTTPStatus(entry.Status)

	target := fmt.Sprintf("%s %s", entry.Method, entry.Path)
	if m.match != nil && m.filter.Query != "" && m.match(entry.Path) {
		target = components.HighlightStyle.Render(target)
	}

	duration := components.TimestampStyle.Render(time.Duration(entry.Duration).Round(time.Millisecond).String())

	return fmt.Sprintf("%s %s %s %s", ts, status, target, duration)
}

// renderHTTPStatus renders the response status tag
func renderHTTPStatus(status int) string {
	text := fmt.Sprintf("%d", status)

	if status >= 500 {
		return components.StatusFailedStyle.Render(text)
	}

	return components.TimestampStyle.Render(text)
}

// renderLevel renders the level tag
func renderLevel(level string) string {
	switch level {
	case logquery.LevelError:
		return components.StatusFailedStyle.Render("ERR")
	default:
		return components.TimestampStyle.Render("INF")
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

// shortHash abbreviates a deployment hash for display
func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}

	return hash
}
