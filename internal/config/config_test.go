package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsdeck/internal/app/errors"
)

func Test_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg.Views)
	assert.Equal(t, TokenEnvVar, cfg.API.TokenEnv)
	assert.Equal(t, DefaultRequestTimeout, cfg.API.Timeout)
	assert.Equal(t, ToggleMaxTries, cfg.Toggle.MaxTries)
	assert.Equal(t, ToggleInterval, cfg.Toggle.Interval)
	assert.Equal(t, DefaultPageSize, cfg.Logs.PageSize)
	assert.Equal(t, DefaultOrder, cfg.Logs.Order)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
}

func Test_Parse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		error   error
		check   func(t *testing.T, cfg *Config, layout *Layout)
	}{
		{
			name: "full config",
			content: `api:
  base_url: https://paas.example.com
  timeout: 30s
toggle:
  max_tries: 6
  interval: 2s
logs:
  page_size: 100
  order: asc
logging:
  level: debug
  format: json
views:
  prod-web:
    project: acme
    environment: production
    columns: [slug, status, image]
  staging:
    project: acme
    environment: staging
`,
			check: func(t *testing.T, cfg *Config, layout *Layout) {
				assert.Equal(t, "https://paas.example.com", cfg.API.BaseURL)
				assert.Equal(t, 30*time.Second, cfg.API.Timeout)
				assert.Equal(t, 6, cfg.Toggle.MaxTries)
				assert.Equal(t, 2*time.Second, cfg.Toggle.Interval)
				assert.Equal(t, 100, cfg.Logs.PageSize)
				assert.Equal(t, "asc", cfg.Logs.Order)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)

				require.Contains(t, cfg.Views, "prod-web")
				assert.Equal(t, "acme", cfg.Views["prod-web"].Project)
				assert.Equal(t, []string{"slug", "status", "image"}, cfg.Views["prod-web"].Columns)

				assert.Equal(t, []string{"prod-web", "staging"}, layout.Order)
			},
		},
		{
			name: "partial config keeps defaults",
			content: `api:
  base_url: https://paas.example.com
`,
			check: func(t *testing.T, cfg *Config, layout *Layout) {
				assert.Equal(t, TokenEnvVar, cfg.API.TokenEnv)
				assert.Equal(t, DefaultRequestTimeout, cfg.API.Timeout)
				assert.Equal(t, ToggleMaxTries, cfg.Toggle.MaxTries)
				assert.Equal(t, DefaultOrder, cfg.Logs.Order)
				assert.Empty(t, layout.Order)
			},
		},
		{
			name:    "missing base url",
			content: `logging: {level: debug}`,
			error:   errors.ErrInvalidConfig,
		},
		{
			name: "invalid logs order",
			content: `api:
  base_url: https://paas.example.com
logs:
  order: sideways
`,
			error: errors.ErrInvalidConfig,
		},
		{
			name: "view without project",
			content: `api:
  base_url: https://paas.example.com
views:
  broken:
    environment: production
`,
			error: errors.ErrInvalidConfig,
		},
		{
			name:    "unparsable yaml",
			content: "api: [\n",
			error:   errors.ErrFailedToParseConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, layout, err := Parse([]byte(tt.content))

			if tt.error != nil {
				assert.ErrorIs(t, err, tt.error)
				assert.Nil(t, cfg)

				return
			}

			require.NoError(t, err)
			tt.check(t, cfg, layout)
		})
	}
}

func Test_Load_MissingFileRequiresBaseURL(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidConfig)
	assert.ErrorIs(t, err, errors.ErrAPIBaseURLRequired)
}

func Test_Load_ReadsConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())

	content := []byte("api:\n  base_url: https://paas.example.com\n")
	require.NoError(t, os.WriteFile(ConfigFileName, content, 0o600))

	cfg, layout, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://paas.example.com", cfg.API.BaseURL)
	assert.Empty(t, layout.Order)
}

func Test_ParseViewOrder_PreservesDeclarationOrder(t *testing.T) {
	content := `api:
  base_url: https://paas.example.com
views:
  zeta:
    project: p1
  alpha:
    project: p2
  mid:
    project: p3
`

	_, layout, err := Parse([]byte(content))
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, layout.Order)
}

func Test_Token(t *testing.T) {
	cfg := DefaultConfig()

	t.Setenv(TokenEnvVar, "secret")
	token, err := cfg.Token()
	require.NoError(t, err)
	assert.Equal(t, "secret", token)

	t.Setenv(TokenEnvVar, "")
	_, err = cfg.Token()
	assert.ErrorIs(t, err, errors.ErrAPITokenMissing)
}

func Test_Token_CustomEnvVar(t *testing.T) {
	cfg := DefaultConfig()
	cfg.API.TokenEnv = "OTHER_TOKEN"

	t.Setenv("OTHER_TOKEN", "from-custom")
	token, err := cfg.Token()
	require.NoError(t, err)
	assert.Equal(t, "from-custom", token)
}

func Test_Apply_CopiesReloadableSectionsOnly(t *testing.T) {
	live := DefaultConfig()
	live.API.BaseURL = "https://paas.example.com"

	next := DefaultConfig()
	next.API.BaseURL = "https://other.example.com"
	next.Toggle.MaxTries = 3
	next.Logs.Order = "asc"
	next.Logging.Level = "debug"
	next.Views["v"] = &View{Project: "acme"}

	live.Apply(next)

	assert.Equal(t, "https://paas.example.com", live.API.BaseURL)
	assert.Equal(t, 3, live.Toggle.MaxTries)
	assert.Equal(t, "asc", live.Logs.Order)
	assert.Equal(t, "debug", live.Logging.Level)
	assert.Contains(t, live.Views, "v")
}

func Test_Apply_NilNextIsNoop(t *testing.T) {
	live := DefaultConfig()
	live.Toggle.MaxTries = 7

	live.Apply(nil)

	assert.Equal(t, 7, live.Toggle.MaxTries)
}

func Test_ApplyDefaults_BackfillsZeroValues(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, TokenEnvVar, cfg.API.TokenEnv)
	assert.Equal(t, DefaultRequestTimeout, cfg.API.Timeout)
	assert.Equal(t, ToggleMaxTries, cfg.Toggle.MaxTries)
	assert.Equal(t, ToggleInterval, cfg.Toggle.Interval)
	assert.Equal(t, DefaultPageSize, cfg.Logs.PageSize)
	assert.Equal(t, LogBufferSize, cfg.Logs.Buffer)
	assert.Equal(t, DefaultOrder, cfg.Logs.Order)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
}
