package projects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsdeck/internal/app/api"
	"opsdeck/internal/app/ui/components"
	"opsdeck/internal/config"
	"opsdeck/internal/config/logger"
)

func row(project, environment string) Row {
	return Row{
		Project:     api.Project{Slug: project},
		Environment: api.Environment{Name: environment},
	}
}

func newTestModel(t *testing.T, cfg *config.Config, layout *config.Layout) *Model {
	t.Helper()

	loader := components.NewLoader()

	return NewModel(nil, cfg, layout, &loader, logger.NewSilentLogger(config.DefaultConfig()))
}

func Test_Model_SetRows_SortsAlphabetically(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig(), config.DefaultLayout())

	m.setRows([]Row{
		row("zeta", "production"),
		row("acme", "staging"),
		row("acme", "production"),
	})

	require.Len(t, m.rows, 3)
	assert.Equal(t, "acme/production", scopeKey(m.rows[0]))
	assert.Equal(t, "acme/staging", scopeKey(m.rows[1]))
	assert.Equal(t, "zeta/production", scopeKey(m.rows[2]))
}

func Test_Model_SetRows_PinsSavedViewsFirst(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Views = map[string]*config.View{
		"prod-web": {Project: "zeta", Environment: "production"},
		"staging":  {Project: "mid", Environment: "staging"},
	}
	layout := &config.Layout{Order: []string{"prod-web", "staging"}}

	m := newTestModel(t, cfg, layout)

	m.setRows([]Row{
		row("acme", "production"),
		row("mid", "staging"),
		row("zeta", "production"),
	})

	require.Len(t, m.rows, 3)

	// Pinned scopes come first in their declared order, the rest follow
	// alphabetically.
	assert.Equal(t, "zeta/production", scopeKey(m.rows[0]))
	assert.Equal(t, "mid/staging", scopeKey(m.rows[1]))
	assert.Equal(t, "acme/production", scopeKey(m.rows[2]))
}

func Test_Model_SetRows_UnknownViewNameIgnored(t *testing.T) {
	cfg := config.DefaultConfig()
	layout := &config.Layout{Order: []string{"missing"}}

	m := newTestModel(t, cfg, layout)

	m.setRows([]Row{
		row("beta", "production"),
		row("acme", "production"),
	})

	assert.Equal(t, "acme/production", scopeKey(m.rows[0]))
	assert.Equal(t, "beta/production", scopeKey(m.rows[1]))
}

func Test_Model_SetRows_ClampsSelection(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig(), config.DefaultLayout())

	m.setRows([]Row{row("a", "p"), row("b", "p"), row("c", "p")})
	m.selected = 2

	m.setRows([]Row{row("a", "p")})

	assert.Equal(t, 0, m.selected)
}

func Test_Model_Selected(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig(), config.DefaultLayout())

	_, ok := m.Selected()
	assert.False(t, ok)

	m.setRows([]Row{row("acme", "production")})

	selected, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "acme", selected.Project.Slug)
}
