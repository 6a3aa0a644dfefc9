package ui

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func newRootModel(t *testing.T, baseURL string) Model {
	t.Helper()
	t.Setenv(config.TokenEnvVar, "test-token")

	cfg := config.DefaultConfig()
	cfg.API.BaseURL = baseURL

	log := logger.NewSilentLogger(config.DefaultConfig())

	client, err := api.NewClient(cfg, log)
	require.NoError(t, err)

	cache := query.NewCache()
	center := notify.NewCenter()
	loader := components.NewLoader()
	toggler := toggle.NewToggler(cfg, client, toggle.NewGuard(), center, log)

	return NewModel(
		context.Background(),
		navigation.NewNavigator(),
		center,
		procstats.NewProvider(),
		&loader,
		projects.NewModel(client, cfg, config.DefaultLayout(), &loader, log),
		services.NewModel(client, toggler, &loader, log),
		logs.NewModel(client, cache, &loader, log),
		envform.NewModel(forms.NewFactory(client, cache, log), log),
		log,
	)
}

func newScopeServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	base := "/api/projects/acme/production/"

	mux.HandleFunc(base+"services/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"id":"svc-1","slug":"web","status":"HEALTHY"}]`)
	})

	mux.HandleFunc(base+"service-details/docker/web/deployments/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results":[{"hash":"abc123","status":"FINISHED"}],"next":null,"previous":null}`)
	})

	mux.HandleFunc(base+"service-details/docker/web/deployments/abc123/logs/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results":[{"id":"1","level":"INFO","content_text":"up and running"}],"next":null,"previous":null}`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

// pumpRoot executes a command tree and feeds every resulting message
// back into the root model
func pumpRoot(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()

	if cmd == nil {
		return
	}

	msg := cmd()
	if msg == nil {
		return
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			pumpRoot(t, m, c)
		}

		return
	}

	updated, next := m.Update(msg)
	*m = updated.(Model)

	pumpRoot(t, m, next)
}

func Test_Model_ApplyInitialScope_EnvironmentLandsOnServices(t *testing.T) {
	server := newScopeServer(t)
	m := newRootModel(t, server.URL)

	m.ApplyInitialScope("acme", "production", "")

	assert.Equal(t, navigation.ViewServices, m.nav.CurrentView())
	assert.Len(t, m.scopeCmds(), 1)
}

func Test_Model_ApplyInitialScope_ServiceLandsOnLogs(t *testing.T) {
	server := newScopeServer(t)
	m := newRootModel(t, server.URL)

	m.ApplyInitialScope("acme", "production", "web")
	require.Equal(t, navigation.ViewLogs, m.nav.CurrentView())

	// The first WindowSizeMsg has not arrived yet in this path.
	m.views.logs.SetSize(80, 24)

	for _, cmd := range m.scopeCmds() {
		pumpRoot(t, &m, cmd)
	}

	assert.Equal(t, "abc123", m.views.logs.Ref().Hash)
	assert.Contains(t, m.views.logs.View(), "up and running")

	// Back lands on the already loaded services list.
	m.nav.Back()
	assert.Equal(t, navigation.ViewServices, m.nav.CurrentView())
}

func Test_Model_ApplyInitialScope_EmptyScopeStaysOnProjects(t *testing.T) {
	server := newScopeServer(t)
	m := newRootModel(t, server.URL)

	m.ApplyInitialScope("", "", "")

	assert.Equal(t, navigation.ViewProjects, m.nav.CurrentView())
	assert.Empty(t, m.scopeCmds())
}
