package projects

import (
	"context"
	"sort"

	"opsdeck/internal/app/api"
	"opsdeck/internal/app/ui/components"
	"opsdeck/internal/config"
	"opsdeck/internal/config/logger"
)

// Row is one selectable project/environment pair
type Row struct {
	Project     api.Project
	Environment api.Environment
}

// Lister is the slice of the API client the projects view needs
type Lister interface {
	Projects(ctx context.Context) (api.Paginated[api.Project], error)
	Environments(ctx context.Context, project string) ([]api.Environment, error)
}

// Model is the projects view: a flat list of every project/environment
// pair reachable on the server. Scopes saved as views in the config
// file are pinned to the top in their declared order.
type Model struct {
	backend Lister
	cfg     *config.Config
	layout  *config.Layout
	loader  *components.Loader
	keys    components.KeyMap
	log     logger.Logger

	rows     []Row
	selected int
	loaded   bool
	loadErr  error

	width  int
	height int
}

// NewModel creates the projects view
func NewModel(backend Lister, cfg *config.Config, layout *config.Layout, loader *components.Loader, log logger.Logger) *Model {
	return &Model{
		backend: backend,
		cfg:     cfg,
		layout:  layout,
		loader:  loader,
		keys:    components.DefaultKeyMap(),
		log:     log.WithComponent("projects"),
	}
}

// SetSize updates the available render area
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selected returns the highlighted row, if any
func (m *Model) Selected() (Row, bool) {
	if m.selected < 0 || m.selected >= len(m.rows) {
		return Row{}, false
	}

	return m.rows[m.selected], true
}

// setRows stores the loaded rows in stable display order: pinned view
// scopes first, then the rest alphabetically
func (m *Model) setRows(rows []Row) {
	rank := m.pinnedRanks()

	sort.Slice(rows, func(i, j int) bool {
		ri, pi := rank[scopeKey(rows[i])]
		rj, pj := rank[scopeKey(rows[j])]

		if pi != pj {
			return pi
		}

		if pi && ri != rj {
			return ri < rj
		}

		if rows[i].Project.Slug != rows[j].Project.Slug {
			return rows[i].Project.Slug < rows[j].Project.Slug
		}

		return rows[i].Environment.Name < rows[j].Environment.Name
	})

	m.rows = rows
	m.loaded = true
	m.loadErr = nil

	if m.selected >= len(rows) {
		m.selected = 0
	}
}

// pinnedRanks maps saved view scopes to their declared position
func (m *Model) pinnedRanks() map[string]int {
	rank := make(map[string]int, len(m.layout.Order))

	for i, name := range m.layout.Order {
		view, ok := m.cfg.Views[name]
		if !ok {
			continue
		}

		rank[view.Project+"/"+view.Environment] = i
	}

	return rank
}

func scopeKey(row Row) string {
	return row.Project.Slug + "/" + row.Environment.Name
}
