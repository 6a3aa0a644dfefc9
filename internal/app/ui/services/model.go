package services

import (
	"context"
	"sort"

	"github.com/looplab/fsm"

	"opsdeck/internal/app/api"
	"opsdeck/internal/app/toggle"
	"opsdeck/internal/app/ui/components"
	"opsdeck/internal/config"
	"opsdeck/internal/config/logger"
)

// Status represents the displayed status of a service
type Status string

// Status values for the services table
const (
	StatusHealthy  Status = "healthy"
	StatusSleeping Status = "sleeping"
	StatusStarting Status = "starting"
	StatusStopping Status = "stopping"
	StatusFailed   Status = "failed"
)

// ServiceState is the display state of one service row
type ServiceState struct {
	Service api.Service
	Status  Status
	FSM     *fsm.FSM
	Blink   *components.Blink
}

// Model is the services table for one project environment
type Model struct {
	project     string
	environment string

	services []*ServiceState
	selected int

	backend  Lister
	toggler  *toggle.Toggler
	loader   *components.Loader
	keys     KeyMap
	log      logger.Logger
	loaded   bool
	loadErr  error
	width    int
	height   int
}

// Lister is the slice of the API client the services view needs
type Lister interface {
	Services(ctx context.Context, project, environment string) ([]api.Service, error)
}

// NewModel creates a services view for the given scope
func NewModel(backend Lister, toggler *toggle.Toggler, loader *components.Loader, log logger.Logger) *Model {
	return &Model{
		backend: backend,
		toggler: toggler,
		loader:  loader,
		keys:    DefaultKeyMap(),
		log:     log.WithComponent("services"),
	}
}

// SetScope points the view at a project environment and clears state
func (m *Model) SetScope(project, environment string) {
	m.project = project
	m.environment = environment
	m.services = nil
	m.selected = 0
	m.loaded = false
	m.loadErr = nil
}

// SetSize updates layout dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selected returns the currently highlighted service, if any
func (m *Model) Selected() (*ServiceState, bool) {
	if m.selected < 0 || m.selected >= len(m.services) {
		return nil, false
	}

	return m.services[m.selected], true
}

// SelectedRef returns the API reference of the highlighted service
func (m *Model) SelectedRef() (api.ServiceRef, bool) {
	s, ok := m.Selected()
	if !ok {
		return api.ServiceRef{}, false
	}

	return api.ServiceRef{
		Project:     m.project,
		Environment: m.environment,
		Service:     s.Service.Slug,
	}, true
}

// setServices replaces the table contents, keeping slug order stable
func (m *Model) setServices(services []api.Service) {
	sort.Slice(services, func(i, j int) bool {
		return services[i].Slug < services[j].Slug
	})

	m.services = make([]*ServiceState, 0, len(services))

	for _, svc := range services {
		state := &ServiceState{
			Service: svc,
			Status:  statusFromAPI(svc.Status),
			Blink:   components.NewBlink(),
		}
		state.FSM = newServiceFSM(state)

		m.services = append(m.services, state)
	}

	if m.selected >= len(m.services) {
		m.selected = 0
	}

	m.loaded = true
	m.loadErr = nil
}

// statusFromAPI maps a backend status marker onto a display status
func statusFromAPI(status string) Status {
	switch status {
	case config.SleepingStatus:
		return StatusSleeping
	case "FAILED", "UNHEALTHY":
		return StatusFailed
	case "DEPLOYING", "STARTING":
		return StatusStarting
	default:
		return StatusHealthy
	}
}

// updateBlinkAnimations advances pulse animation for rows in transition
func (m *Model) updateBlinkAnimations() bool {
	animating := false

	for _, svc := range m.services {
		switch svc.Status {
		case StatusStarting, StatusStopping:
			if !svc.Blink.IsActive() {
				svc.Blink.Start()
			}

			svc.Blink.Update()

			animating = true
		default:
			if svc.Blink.IsActive() {
				svc.Blink.Stop()
			}
		}
	}

	return animating
}
