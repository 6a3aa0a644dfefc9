package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"opsdeck/internal/app/api"
	"opsdeck/internal/app/notify"
	"opsdeck/internal/app/procstats"
	"opsdeck/internal/app/ui/components"
	"opsdeck/internal/app/ui/envform"
	"opsdeck/internal/app/ui/logs"
	"opsdeck/internal/app/ui/navigation"
	"opsdeck/internal/app/ui/projects"
	"opsdeck/internal/app/ui/services"
	"opsdeck/internal/config/logger"
)

// Model is the root Bubble Tea model. It owns navigation between the
// views, the shared loader spinner, the toast area and the footer
// self-stats; everything else lives in the per-view models.
type Model struct {
	ctx    context.Context
	nav    navigation.Navigator
	center *notify.Center
	toasts <-chan notify.Notification
	stats  procstats.Provider

	views struct {
		projects *projects.Model
		services *services.Model
		logs     *logs.Model
		envform  *envform.Model
	}

	scope struct {
		project     string
		environment string
		service     string
	}

	ui struct {
		width       int
		height      int
		tickCounter int
		keys        components.KeyMap
		help        help.Model
		loader      *components.Loader
		selfStats   procstats.Stats
	}

	log logger.Logger
}

// NewModel creates the root model with all views wired up
func NewModel(
	ctx context.Context,
	nav navigation.Navigator,
	center *notify.Center,
	stats procstats.Provider,
	loader *components.Loader,
	projectsView *projects.Model,
	servicesView *services.Model,
	logsView *logs.Model,
	envformView *envform.Model,
	log logger.Logger,
) Model {
	m := Model{
		ctx:    ctx,
		nav:    nav,
		center: center,
		toasts: center.Subscribe(),
		stats:  stats,
		log:    log.WithComponent("ui"),
	}

	m.views.projects = projectsView
	m.views.services = servicesView
	m.views.logs = logsView
	m.views.envform = envformView

	m.ui.keys = components.DefaultKeyMap()
	m.ui.help = help.New()
	m.ui.loader = loader

	return m
}

// ApplyInitialScope jumps straight into a project environment, as if
// the user had selected it from the projects list; a named service
// additionally lands on its logs view
func (m *Model) ApplyInitialScope(project, environment, service string) {
	if project == "" || environment == "" {
		return
	}

	m.scope.project = project
	m.scope.environment = environment
	m.scope.service = service

	m.views.services.SetScope(project, environment)
	m.nav.Push(navigation.ViewServices)

	if service != "" {
		m.nav.Push(navigation.ViewLogs)
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	m.ui.loader.Start("projects", "loading projects…")

	cmds := []tea.Cmd{
		m.ui.loader.Model.Tick,
		m.views.projects.LoadCmd(m.ctx),
		tickCmd(),
		statsCmd(m.stats),
		waitForToastCmd(m.toasts),
	}

	return tea.Batch(append(cmds, m.scopeCmds()...)...)
}

// scopeCmds returns the extra loads an initial scope needs: the
// services list behind the current view, and the log open itself when
// the scope names a service
func (m Model) scopeCmds() []tea.Cmd {
	var cmds []tea.Cmd

	view := m.nav.CurrentView()

	if view == navigation.ViewServices || view == navigation.ViewLogs {
		m.ui.loader.Start("services", "loading services…")
		cmds = append(cmds, m.views.services.LoadCmd(m.ctx))
	}

	if view == navigation.ViewLogs {
		m.ui.loader.Start("logs", "resolving deployment…")
		cmds = append(cmds, m.views.logs.OpenCmd(api.ServiceRef{
			Project:     m.scope.project,
			Environment: m.scope.environment,
			Service:     m.scope.service,
		}))
	}

	return cmds
}

// SetScope records the breadcrumb pieces for the current navigation
func (m *Model) setScope(ref api.ServiceRef) {
	m.scope.project = ref.Project
	m.scope.environment = ref.Environment
	m.scope.service = ref.Service
}
