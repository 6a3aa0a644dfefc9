package logs

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"opsdeck/internal/app/api"
	"opsdeck/internal/app/errors"
	"opsdeck/internal/app/logquery"
)

// pageLoadedMsg carries one fetched log page. push records the param
// on the history stack (moving to an older page); pop removes the top
// (moving back to a newer one).
type pageLoadedMsg struct {
	page   logquery.Page[logquery.RuntimeEntry]
	param  *string
	push   bool
	pop    bool
	err    error
	forRef api.DeploymentRef
}

// httpPageLoadedMsg carries one fetched HTTP log page
type httpPageLoadedMsg struct {
	page   logquery.Page[logquery.HTTPEntry]
	param  *string
	push   bool
	pop    bool
	err    error
	forRef api.ServiceRef
}

// deploymentResolvedMsg carries the deployment picked for a service
type deploymentResolvedMsg struct {
	ref api.DeploymentRef
	err error
}

// OpenCmd resolves the latest deployment of the service and opens its
// runtime logs
func (m *Model) OpenCmd(ref api.ServiceRef) tea.Cmd {
	m.kind = kindRuntime
	m.svc = ref
	m.resetCycles()
	m.loader.Start("logs", "loading logs…")

	return func() tea.Msg {
		deployments, err := m.client.Deployments(m.loadCtx(), ref)
		if err != nil {
			return deploymentResolvedMsg{err: err}
		}

		if len(deployments.Results) == 0 {
			return deploymentResolvedMsg{err: errors.ErrNotFound}
		}

		return deploymentResolvedMsg{ref: api.DeploymentRef{
			ServiceRef: ref,
			Hash:       deployments.Results[0].Hash,
		}}
	}
}

// Update handles messages for the logs view
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case deploymentResolvedMsg:
		if m.kind != kindRuntime {
			// The user switched to HTTP logs while resolving; drop it.
			return nil
		}

		if msg.err != nil {
			m.loader.Stop("logs")
			m.loadErr = msg.err
			m.loaded = true

			return nil
		}

		m.open(msg.ref, logquery.Filter{})

		return m.fetch(nil, false, false)

	case pageLoadedMsg:
		if m.kind != kindRuntime || msg.forRef != m.ref {
			// A stale fetch from a previous deployment or kind; drop it.
			return nil
		}

		m.loader.Stop("logs")

		if msg.err != nil {
			m.loadErr = msg.err
			m.loaded = true

			return nil
		}

		switch {
		case msg.pop && len(m.history) > 0:
			m.history = m.history[:len(m.history)-1]
		case msg.push && msg.param != nil:
			m.history = append(m.history, msg.param)
		}

		m.setPage(msg.page)

		return nil

	case httpPageLoadedMsg:
		if m.kind != kindHTTP || msg.forRef != m.svc {
			return nil
		}

		m.loader.Stop("logs")

		if msg.err != nil {
			m.loadErr = msg.err
			m.loaded = true

			return nil
		}

		switch {
		case msg.pop && len(m.history) > 0:
			m.history = m.history[:len(m.history)-1]
		case msg.push && msg.param != nil:
			m.history = append(m.history, msg.param)
		}

		m.setHTTPPage(msg.page)

		return nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	return cmd
}

// handleKeyPress processes keyboard input for the logs view
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Older):
		if next := m.nextParam(); next != nil {
			return m.load(next, true, false)
		}

	case key.Matches(msg, m.keys.Newer):
		if len(m.history) > 0 {
			return m.load(m.previousParam(), false, true)
		}

	case key.Matches(msg, m.keys.Filter):
		m.cycleFilter()

		return m.load(nil, false, false)

	case key.Matches(msg, m.keys.Source):
		if m.cycleSource() {
			return m.load(nil, false, false)
		}

	case key.Matches(msg, m.keys.Kind):
		return m.toggleKind()

	case key.Matches(msg, m.keys.Refresh):
		return m.load(m.currentParam(), false, false)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	return cmd
}

// previousParam returns the page param one step back in the history
func (m *Model) previousParam() *string {
	if len(m.history) > 1 {
		return m.history[len(m.history)-2]
	}

	return nil
}

// toggleKind switches between the runtime logs of the resolved
// deployment and the HTTP access logs of the service. Each switch
// starts an unfiltered sequence; the previous kind keeps its cached
// pages.
func (m *Model) toggleKind() tea.Cmd {
	if m.svc.Project == "" {
		return nil
	}

	m.resetCycles()

	if m.kind == kindRuntime {
		m.openHTTP(m.svc, logquery.Filter{})

		return m.fetchHTTP(nil, false, false)
	}

	if m.ref.Hash != "" {
		m.open(m.ref, logquery.Filter{})

		return m.fetch(nil, false, false)
	}

	// Runtime logs were never opened for this service; resolve the
	// deployment first.
	return m.OpenCmd(m.svc)
}

// load loads the page addressed by param for the current kind
func (m *Model) load(param *string, push, pop bool) tea.Cmd {
	if m.kind == kindHTTP {
		return m.fetchHTTP(param, push, pop)
	}

	return m.fetch(param, push, pop)
}

// fetch loads the runtime log page addressed by param
func (m *Model) fetch(param *string, push, pop bool) tea.Cmd {
	m.loader.Start("logs", "loading logs…")

	paginator, ref := m.paginator, m.ref

	return func() tea.Msg {
		page, err := paginator.Page(m.loadCtx(), param)

		return pageLoadedMsg{page: page, param: param, push: push, pop: pop, err: err, forRef: ref}
	}
}

// fetchHTTP loads the HTTP log page addressed by param
func (m *Model) fetchHTTP(param *string, push, pop bool) tea.Cmd {
	m.loader.Start("logs", "loading logs…")

	paginator, ref := m.httpPaginator, m.svc

	return func() tea.Msg {
		page, err := paginator.Page(m.loadCtx(), param)

		return httpPageLoadedMsg{page: page, param: param, push: push, pop: pop, err: err, forRef: ref}
	}
}
