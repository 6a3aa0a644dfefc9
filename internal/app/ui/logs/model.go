package logs

import (
	"context"

	"github.com/charmbracelet/bubbles/viewport"

	"opsdeck/internal/app/api"
	"opsdeck/internal/app/logquery"
	"opsdeck/internal/app/query"
	"opsdeck/internal/app/ui/components"
	"opsdeck/internal/config/logger"
)

// logKind selects which of the two log endpoints the viewer pages:
// the runtime logs of a deployment or the HTTP access logs of the
// whole service
type logKind int

const (
	kindRuntime logKind = iota
	kindHTTP
)

// filter cycles stepped through by the filter keys
var (
	levelCycle  = [][]string{nil, {logquery.LevelInfo}, {logquery.LevelError}}
	sourceCycle = [][]string{nil, {logquery.SourceService}, {logquery.SourceSystem}}
	methodCycle = [][]string{nil, {"GET"}, {"POST"}}
)

// Model is the log viewer for one service. It pages through a
// cursor-paginated log endpoint from newest to oldest; each page is
// a stable window, so going back re-serves cached pages untouched.
// The kind key switches between the runtime logs of the resolved
// deployment and the HTTP access logs of the service.
type Model struct {
	client *api.Client
	cache  *query.Cache
	log    logger.Logger

	kind   logKind
	svc    api.ServiceRef
	ref    api.DeploymentRef
	filter logquery.Filter

	paginator     *logquery.Paginator[logquery.RuntimeEntry]
	httpPaginator *logquery.Paginator[logquery.HTTPEntry]

	page     logquery.Page[logquery.RuntimeEntry]
	httpPage logquery.Page[logquery.HTTPEntry]
	history  []*string // page params leading to the current page
	match    func(string) bool
	loaded   bool
	loadErr  error

	levelIndex  int
	sourceIndex int
	methodIndex int

	viewport viewport.Model
	keys     KeyMap
	loader   *components.Loader
	width    int
	height   int
}

// NewModel creates a logs view
func NewModel(client *api.Client, cache *query.Cache, loader *components.Loader, log logger.Logger) *Model {
	return &Model{
		client:   client,
		cache:    cache,
		loader:   loader,
		log:      log.WithComponent("logs"),
		keys:     DefaultKeyMap(),
		viewport: viewport.New(0, 0),
	}
}

// SetSize updates layout dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height

	m.renderContent()
}

// Ref returns the deployment the view is currently showing
func (m *Model) Ref() api.DeploymentRef {
	return m.ref
}

// open points the view at a deployment with the given filter and
// rebuilds the paginator; the filter set decides the cache key prefix,
// so a changed filter starts a fresh pagination sequence
func (m *Model) open(ref api.DeploymentRef, filter logquery.Filter) {
	m.kind = kindRuntime
	m.ref = ref
	m.svc = ref.ServiceRef
	m.paginator = logquery.NewRuntimePaginator(m.client, m.cache, m.log, ref, filter)
	m.httpPaginator = nil
	m.page = logquery.Page[logquery.RuntimeEntry]{}
	m.httpPage = logquery.Page[logquery.HTTPEntry]{}

	m.reset(filter)
}

// openHTTP points the view at the HTTP access logs of a service. The
// deployment ref is kept so switching back to runtime logs does not
// resolve it again.
func (m *Model) openHTTP(ref api.ServiceRef, filter logquery.Filter) {
	m.kind = kindHTTP
	m.svc = ref
	m.paginator = nil
	m.httpPaginator = logquery.NewHTTPPaginator(m.client, m.cache, m.log, ref, filter)
	m.page = logquery.Page[logquery.RuntimeEntry]{}
	m.httpPage = logquery.Page[logquery.HTTPEntry]{}

	m.reset(filter)
}

// reset clears the per-sequence state shared by both kinds
func (m *Model) reset(filter logquery.Filter) {
	m.filter = filter
	m.history = nil
	m.loaded = false
	m.loadErr = nil

	matcher, err := filter.Matcher()
	if err != nil {
		m.log.Warn().Err(err).Msg("bad filter pattern, matching everything")
		matcher = func(string) bool { return true }
	}

	m.match = matcher
}

// cycleFilter steps the primary filter of the current kind (level for
// runtime logs, request method for HTTP logs) and restarts the sequence
func (m *Model) cycleFilter() {
	filter := m.filter

	if m.kind == kindHTTP {
		m.methodIndex = (m.methodIndex + 1) % len(methodCycle)
		filter.Methods = methodCycle[m.methodIndex]

		m.openHTTP(m.svc, filter)

		return
	}

	m.levelIndex = (m.levelIndex + 1) % len(levelCycle)
	filter.Levels = levelCycle[m.levelIndex]

	m.open(m.ref, filter)
}

// cycleSource steps the source filter of the runtime logs and restarts
// the sequence; HTTP logs have no source dimension
func (m *Model) cycleSource() bool {
	if m.kind == kindHTTP {
		return false
	}

	m.sourceIndex = (m.sourceIndex + 1) % len(sourceCycle)

	filter := m.filter
	filter.Sources = sourceCycle[m.sourceIndex]

	m.open(m.ref, filter)

	return true
}

// resetCycles rewinds every filter cycle to its unfiltered position
func (m *Model) resetCycles() {
	m.levelIndex = 0
	m.sourceIndex = 0
	m.methodIndex = 0
}

// currentParam returns the page param of the current page
func (m *Model) currentParam() *string {
	if len(m.history) == 0 {
		return nil
	}

	return m.history[len(m.history)-1]
}

// nextParam returns the page param pointing at the next older page
func (m *Model) nextParam() *string {
	if m.kind == kindHTTP {
		return m.httpPage.Next
	}

	return m.page.Next
}

// resultCount returns the number of entries on the current page
func (m *Model) resultCount() int {
	if m.kind == kindHTTP {
		return len(m.httpPage.Results)
	}

	return len(m.page.Results)
}

// setPage installs a fetched runtime log page
func (m *Model) setPage(page logquery.Page[logquery.RuntimeEntry]) {
	m.page = page
	m.loaded = true
	m.loadErr = nil

	m.renderContent()
	m.viewport.GotoTop()
}

// setHTTPPage installs a fetched HTTP log page
func (m *Model) setHTTPPage(page logquery.Page[logquery.HTTPEntry]) {
	m.httpPage = page
	m.loaded = true
	m.loadErr = nil

	m.renderContent()
	m.viewport.GotoTop()
}

// loadCtx is the context for page fetches; viewport teardown does not
// cancel them because the shared cache keeps the result useful
func (m *Model) loadCtx() context.Context {
	return context.Background()
}
