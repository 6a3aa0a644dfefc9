package ui

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"go.uber.org/fx"

	"opsdeck/internal/app/api"
	"opsdeck/internal/app/forms"
	"opsdeck/internal/app/notify"
	"opsdeck/internal/app/procstats"
	"opsdeck/internal/app/query"
	"opsdeck/internal/app/toggle"
	"opsdeck/internal/app/ui/components"
	"opsdeck/internal/app/ui/envform"
	"opsdeck/internal/app/ui/logs"
	"opsdeck/internal/app/ui/navigation"
	"opsdeck/internal/app/ui/projects"
	"opsdeck/internal/app/ui/services"
	"opsdeck/internal/config"
	"opsdeck/internal/config/logger"
)

// Scope is an optional starting point inside the project tree
type Scope struct {
	Project     string
	Environment string
	Service     string
}

// Program creates a Bubble Tea program for the dashboard
type Program func(ctx context.Context, initial Scope) *tea.Program

// Module provides the dashboard UI and its views
var Module = fx.Options(
	navigation.Module,
	fx.Provide(
		newLoader,
		newProjectsView,
		newServicesView,
		newLogsView,
		newEnvFormView,
		NewProgram,
	),
)

func newLoader() *components.Loader {
	loader := components.NewLoader()

	return &loader
}

func newProjectsView(client *api.Client, cfg *config.Config, layout *config.Layout, loader *components.Loader, log logger.Logger) *projects.Model {
	return projects.NewModel(client, cfg, layout, loader, log)
}

func newServicesView(client *api.Client, toggler *toggle.Toggler, loader *components.Loader, log logger.Logger) *services.Model {
	return services.NewModel(client, toggler, loader, log)
}

func newLogsView(client *api.Client, cache *query.Cache, loader *components.Loader, log logger.Logger) *logs.Model {
	return logs.NewModel(client, cache, loader, log)
}

func newEnvFormView(factory *forms.Factory, log logger.Logger) *envform.Model {
	return envform.NewModel(factory, log)
}

// ProgramParams contains the dependencies of the program factory
type ProgramParams struct {
	fx.In

	Navigator navigation.Navigator
	Center    *notify.Center
	Stats     procstats.Provider
	Loader    *components.Loader
	Projects  *projects.Model
	Services  *services.Model
	Logs      *logs.Model
	EnvForm   *envform.Model
	Logger    logger.Logger
}

// NewProgram creates a factory for constructing Bubble Tea programs
func NewProgram(params ProgramParams) Program {
	return func(ctx context.Context, initial Scope) *tea.Program {
		model := NewModel(
			ctx,
			params.Navigator,
			params.Center,
			params.Stats,
			params.Loader,
			params.Projects,
			params.Services,
			params.Logs,
			params.EnvForm,
			params.Logger,
		)

		model.ApplyInitialScope(initial.Project, initial.Environment, initial.Service)

		// Seed panel sizes so the first frame renders before the
		// initial WindowSizeMsg arrives.
		if width, height, err := term.GetSize(os.Stdout.Fd()); err == nil {
			model.ui.width = width
			model.ui.height = height
		} else {
			model.ui.width = components.DefaultViewportWidth
		}

		p := tea.NewProgram(
			model,
			tea.WithAltScreen(),
			tea.WithContext(ctx),
		)

		params.Logger.Debug().Msg("TUI: Program created via factory")

		return p
	}
}
