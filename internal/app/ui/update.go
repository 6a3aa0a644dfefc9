package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"opsdeck/internal/app/notify"
	"opsdeck/internal/app/procstats"
	"opsdeck/internal/app/ui/components"
	"opsdeck/internal/app/ui/envform"
	"opsdeck/internal/app/ui/navigation"
	"opsdeck/internal/app/ui/projects"
	"opsdeck/internal/app/ui/services"
)

const tickCounterMaximum = 1000000

// tickMsg signals a UI tick for animations
type tickMsg time.Time

// statsMsg carries a fresh self-stats sample
type statsMsg procstats.Stats

// toastMsg wraps a notification for tea messaging
type toastMsg notify.Notification

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.ui.width = msg.Width
		m.ui.height = msg.Height
		m.ui.help.Width = msg.Width

		panelHeight := msg.Height - components.PanelHeightPadding
		if panelHeight < components.MinPanelHeight {
			panelHeight = components.MinPanelHeight
		}

		m.views.projects.SetSize(msg.Width, panelHeight)
		m.views.services.SetSize(msg.Width, panelHeight)
		m.views.logs.SetSize(msg.Width, panelHeight)

		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.ui.loader.Model, cmd = m.ui.loader.Model.Update(msg)

		return m, cmd

	case tickMsg:
		m.ui.tickCounter++
		if m.ui.tickCounter >= tickCounterMaximum {
			m.ui.tickCounter = 0
		}

		m.views.services.Tick()
		m.expireToasts()

		return m, tickCmd()

	case statsMsg:
		m.ui.selfStats = procstats.Stats(msg)

		return m, statsCmd(m.stats)

	case toastMsg:
		// The center already holds the current toast set; this message
		// only forces a redraw.
		return m, waitForToastCmd(m.toasts)

	case projects.OpenServicesMsg:
		m.scope.project = msg.Project
		m.scope.environment = msg.Environment
		m.scope.service = ""

		m.views.services.SetScope(msg.Project, msg.Environment)
		m.nav.Push(navigation.ViewServices)
		m.ui.loader.Start("services", "loading services…")

		return m, m.views.services.LoadCmd(m.ctx)

	case services.OpenLogsMsg:
		m.setScope(msg.Ref)
		m.nav.Push(navigation.ViewLogs)
		m.ui.loader.Start("logs", "resolving deployment…")

		return m, m.views.logs.OpenCmd(msg.Ref)

	case services.OpenEnvMsg:
		m.setScope(msg.Ref)
		m.views.envform.Open(msg.Ref)
		m.nav.Push(navigation.ViewEnvForm)

		return m, nil

	case envform.ClosedMsg:
		m.nav.Back()

		if msg.Saved {
			m.center.Success("envvar:"+m.scope.project+"/"+m.scope.environment+"/"+m.scope.service,
				"environment variable saved")

			// The save invalidated cached services data; re-sync.
			return m, m.views.services.LoadCmd(m.ctx)
		}

		return m, nil
	}

	return m, m.forward(msg)
}

// handleKeyPress routes keyboard input. The env-var editor owns the
// keyboard completely while it is open, so typed text never triggers
// navigation shortcuts.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.ui.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.nav.CurrentView() == navigation.ViewEnvForm {
		return m, m.views.envform.Update(msg)
	}

	switch {
	case key.Matches(msg, m.ui.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.ui.keys.Back):
		m.nav.Back()

		return m, nil
	}

	return m, m.forward(msg)
}

// forward hands a message to the model owning the current view; async
// completion messages are additionally offered to the other views so a
// late response still lands after navigating away.
func (m Model) forward(msg tea.Msg) tea.Cmd {
	if _, isKey := msg.(tea.KeyMsg); isKey {
		switch m.nav.CurrentView() {
		case navigation.ViewProjects:
			return m.views.projects.Update(msg)
		case navigation.ViewServices:
			return m.views.services.Update(msg)
		case navigation.ViewLogs:
			return m.views.logs.Update(msg)
		case navigation.ViewEnvForm:
			return m.views.envform.Update(msg)
		}

		return nil
	}

	cmds := []tea.Cmd{
		m.views.projects.Update(msg),
		m.views.services.Update(msg),
		m.views.logs.Update(msg),
		m.views.envform.Update(msg),
	}

	return tea.Batch(cmds...)
}

// expireToasts dismisses settled toasts past their lifetime. Loading
// toasts stay until their operation replaces or dismisses them.
func (m Model) expireToasts() {
	for _, n := range m.center.Active() {
		if n.Level == notify.LevelLoading {
			continue
		}

		if time.Since(n.Time) > components.ToastLifetime {
			m.center.Dismiss(n.ID)
		}
	}
}

// tickCmd returns a command that sends a tick after the interval
func tickCmd() tea.Cmd {
	return tea.Tick(components.UITickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// statsCmd schedules a self-stats sample for the footer
func statsCmd(provider procstats.Provider) tea.Cmd {
	return tea.Tick(components.StatsInterval, func(time.Time) tea.Msg {
		stats, err := provider.Self()
		if err != nil {
			return statsMsg{}
		}

		return statsMsg(stats)
	})
}

// waitForToastCmd returns a command that waits for the next notification
func waitForToastCmd(toasts <-chan notify.Notification) tea.Cmd {
	return func() tea.Msg {
		n, ok := <-toasts
		if !ok {
			return nil
		}

		return toastMsg(n)
	}
}
