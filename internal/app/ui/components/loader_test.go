package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NewLoader(t *testing.T) {
	l := NewLoader()

	assert.False(t, l.Active)
	assert.Empty(t, l.Message())
}

func Test_Loader_Start(t *testing.T) {
	l := NewLoader()

	l.Start("projects", "loading projects…")

	assert.True(t, l.Active)
	assert.Equal(t, "loading projects…", l.Message())
	assert.True(t, l.Has("projects"))
}

func Test_Loader_Start_SameScopeUpdatesMessage(t *testing.T) {
	l := NewLoader()

	l.Start("logs", "resolving deployment…")
	l.Start("logs", "fetching logs…")

	assert.Equal(t, "fetching logs…", l.Message())
	assert.True(t, l.Active)
}

func Test_Loader_QueueFrontProvidesMessage(t *testing.T) {
	l := NewLoader()

	l.Start("projects", "loading projects…")
	l.Start("services", "loading services…")

	assert.Equal(t, "loading projects…", l.Message())

	l.Stop("projects")

	assert.Equal(t, "loading services…", l.Message())
	assert.True(t, l.Active)
}

func Test_Loader_Stop_LastItemDeactivates(t *testing.T) {
	l := NewLoader()

	l.Start("projects", "loading projects…")
	l.Stop("projects")

	assert.False(t, l.Active)
	assert.Empty(t, l.Message())
	assert.False(t, l.Has("projects"))
}

func Test_Loader_Stop_UnknownScope(t *testing.T) {
	l := NewLoader()

	l.Start("projects", "loading projects…")
	l.Stop("other")

	assert.True(t, l.Active)
	assert.Equal(t, "loading projects…", l.Message())
}

func Test_Loader_StopAll(t *testing.T) {
	l := NewLoader()

	l.Start("projects", "loading projects…")
	l.Start("services", "loading services…")
	l.StopAll()

	assert.False(t, l.Active)
	assert.Empty(t, l.Message())
}
