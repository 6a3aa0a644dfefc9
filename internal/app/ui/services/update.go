package services

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"opsdeck/internal/app/api"
)

// servicesLoadedMsg carries a fetched services list
type servicesLoadedMsg struct {
	services []api.Service
	err      error
}

// toggleDoneMsg signals a finished toggle cycle
type toggleDoneMsg struct {
	ref api.ServiceRef
	err error
}

// OpenLogsMsg asks the root model to open the logs view for a service
type OpenLogsMsg struct {
	Ref api.ServiceRef
}

// OpenEnvMsg asks the root model to open the env-var editor for a service
type OpenEnvMsg struct {
	Ref api.ServiceRef
}

// LoadCmd fetches the services of the current scope
func (m *Model) LoadCmd(ctx context.Context) tea.Cmd {
	project, environment := m.project, m.environment

	return func() tea.Msg {
		services, err := m.backend.Services(ctx, project, environment)

		return servicesLoadedMsg{services: services, err: err}
	}
}

// Update handles messages for the services view
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case servicesLoadedMsg:
		m.loader.Stop("services")

		if msg.err != nil {
			m.loadErr = msg.err
			m.loaded = true

			return nil
		}

		m.setServices(msg.services)

		return nil

	case toggleDoneMsg:
		// Whatever the outcome, re-sync the table with reality.
		m.loader.Start("services", "refreshing services…")

		return m.LoadCmd(context.Background())
	}

	return nil
}

// handleKeyPress processes keyboard input for the services view
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.services)-1 {
			m.selected++
		}

	case key.Matches(msg, m.keys.Refresh):
		m.loader.Start("services", "refreshing services…")

		return m.LoadCmd(context.Background())

	case key.Matches(msg, m.keys.Toggle):
		return m.handleToggle()

	case key.Matches(msg, m.keys.Logs):
		if ref, ok := m.SelectedRef(); ok {
			return func() tea.Msg { return OpenLogsMsg{Ref: ref} }
		}

	case key.Matches(msg, m.keys.EnvVars):
		if ref, ok := m.SelectedRef(); ok {
			return func() tea.Msg { return OpenEnvMsg{Ref: ref} }
		}
	}

	return nil
}

// handleToggle submits a start or stop intent for the selected service
// and leaves the polling loop to run to completion: the background
// context keeps the final notification coming even if the user
// navigates away meanwhile.
func (m *Model) handleToggle() tea.Cmd {
	svc, ok := m.Selected()
	if !ok {
		return nil
	}

	ref, _ := m.SelectedRef()

	var desired api.DesiredState

	switch svc.Status {
	case StatusHealthy:
		desired = api.DesiredStop
		_ = svc.FSM.Event(context.Background(), EventStop)
	case StatusSleeping, StatusFailed:
		desired = api.DesiredStart
		_ = svc.FSM.Event(context.Background(), EventStart)
	default:
		// Already in transition, the guard would reject it anyway.
		return nil
	}

	return func() tea.Msg {
		err := m.toggler.Toggle(context.Background(), ref, desired)

		return toggleDoneMsg{ref: ref, err: err}
	}
}
