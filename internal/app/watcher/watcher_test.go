package watcher

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsdeck/internal/config"
	"opsdeck/internal/config/logger"
)

const validConfig = `api:
  base_url: https://paas.example.com
toggle:
  max_tries: 4
`

func newTestWatcher(t *testing.T) Watcher {
	t.Helper()
	t.Chdir(t.TempDir())

	w, err := NewWatcher(logger.NewSilentLogger(config.DefaultConfig()))
	require.NoError(t, err)

	return w
}

func writeConfig(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(config.ConfigFileName, []byte(content), 0644))
}

func waitForChange(t *testing.T, w Watcher) *config.Config {
	t.Helper()

	select {
	case cfg := <-w.Changes():
		return cfg
	case <-time.After(3 * time.Second):
		t.Fatal("timeout waiting for config change")
		return nil
	}
}

func Test_NewWatcher(t *testing.T) {
	w := newTestWatcher(t)
	defer w.Close()

	assert.NotNil(t, w)
}

func Test_Watcher_Close(t *testing.T) {
	w := newTestWatcher(t)

	w.Close()
	w.Close() // double close must not panic
}

func Test_Watcher_PublishesReloadedConfig(t *testing.T) {
	w := newTestWatcher(t)
	defer w.Close()

	writeConfig(t, validConfig)

	cfg := waitForChange(t, w)
	assert.Equal(t, "https://paas.example.com", cfg.API.BaseURL)
	assert.Equal(t, 4, cfg.Toggle.MaxTries)
}

func Test_Watcher_BrokenConfigKeepsPrevious(t *testing.T) {
	w := newTestWatcher(t)
	defer w.Close()

	writeConfig(t, "api: [\n")

	select {
	case cfg := <-w.Changes():
		t.Fatalf("broken config should not be published, got %+v", cfg)
	case <-time.After(700 * time.Millisecond):
	}
}

func Test_Watcher_IgnoresUnrelatedFiles(t *testing.T) {
	w := newTestWatcher(t)
	defer w.Close()

	require.NoError(t, os.WriteFile("notes.txt", []byte("unrelated"), 0644))

	select {
	case <-w.Changes():
		t.Fatal("unrelated file should not trigger a reload")
	case <-time.After(700 * time.Millisecond):
	}
}
