package config

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"opsdeck/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	API struct {
		BaseURL  string        `yaml:"base_url"`
		TokenEnv string        `yaml:"token_env"`
		Timeout  time.Duration `yaml:"timeout"`
	} `yaml:"api"`
	Toggle struct {
		MaxTries int           `yaml:"max_tries"`
		Interval time.Duration `yaml:"interval"`
	} `yaml:"toggle"`
	Logs struct {
		PageSize int    `yaml:"page_size"`
		Buffer   int    `yaml:"buffer"`
		Order    string `yaml:"order"`
	} `yaml:"logs"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
	Sentry struct {
		DSN string `yaml:"dsn"`
	} `yaml:"sentry"`
	Views map[string]*View `yaml:"views"`
}

// View represents a saved dashboard view: a project/environment scope
// plus the column layout for its services table
type View struct {
	Project     string   `yaml:"project"`
	Environment string   `yaml:"environment"`
	Columns     []string `yaml:"columns"`
}

// Layout holds the declared order of views, which the file's key order
// defines and viper's map decoding loses
type Layout struct {
	Order []string
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{
		Views: make(map[string]*View),
	}

	cfg.API.TokenEnv = TokenEnvVar
	cfg.API.Timeout = DefaultRequestTimeout

	cfg.Toggle.MaxTries = ToggleMaxTries
	cfg.Toggle.Interval = ToggleInterval

	cfg.Logs.PageSize = DefaultPageSize
	cfg.Logs.Buffer = LogBufferSize
	cfg.Logs.Order = DefaultOrder

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	return cfg
}

// DefaultLayout returns the default view layout
func DefaultLayout() *Layout {
	return &Layout{Order: []string{}}
}

// Load loads the configuration from file and returns read-only config
// with the derived view layout
func Load() (*Config, *Layout, error) {
	_ = godotenv.Load(EnvFileName)

	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigFileName)
	if err != nil {
		if os.IsNotExist(err) {
			// Without a file the defaults carry no base URL; failing
			// here gives a startup error instead of a broken request
			// on the first fetch.
			if err := cfg.Validate(); err != nil {
				return nil, nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
			}

			return cfg, DefaultLayout(), nil
		}

		return nil, nil, errors.ErrFailedToReadConfig
	}

	return Parse(data)
}

// Parse decodes raw YAML configuration bytes
func Parse(data []byte) (*Config, *Layout, error) {
	cfg := DefaultConfig()

	layout, err := parseViewOrder(data)
	if err != nil {
		return nil, nil, errors.ErrFailedToParseConfig
	}

	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, nil, errors.ErrFailedToReadConfig
	}

	if err := v.Unmarshal(cfg, func(dc *mapstructure.DecoderConfig) { dc.TagName = "yaml" }); err != nil {
		return nil, nil, errors.ErrFailedToParseConfig
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, layout, nil
}

// ApplyDefaults backfills zero values left by partial config files
func (c *Config) ApplyDefaults() {
	if c.API.TokenEnv == "" {
		c.API.TokenEnv = TokenEnvVar
	}

	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultRequestTimeout
	}

	if c.Toggle.MaxTries == 0 {
		c.Toggle.MaxTries = ToggleMaxTries
	}

	if c.Toggle.Interval == 0 {
		c.Toggle.Interval = ToggleInterval
	}

	if c.Logs.PageSize == 0 {
		c.Logs.PageSize = DefaultPageSize
	}

	if c.Logs.Buffer == 0 {
		c.Logs.Buffer = LogBufferSize
	}

	if c.Logs.Order == "" {
		c.Logs.Order = DefaultOrder
	}

	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}

	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
}

// Validate checks the configuration for inconsistencies
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.ErrAPIBaseURLRequired
	}

	if c.Logs.Order != "asc" && c.Logs.Order != "desc" {
		return fmt.Errorf("logs order must be 'asc' or 'desc', got '%s'", c.Logs.Order)
	}

	for name, view := range c.Views {
		if view.Project == "" {
			return fmt.Errorf("view '%s' is missing a project", name)
		}
	}

	return nil
}

// Apply copies the reloadable sections of a freshly parsed config onto
// the live one. The API section is deliberately excluded: the HTTP
// client is built once at startup.
func (c *Config) Apply(next *Config) {
	if next == nil {
		return
	}

	c.Toggle = next.Toggle
	c.Logs = next.Logs
	c.Logging = next.Logging
	c.Views = next.Views
}

// Token resolves the API token from the configured environment variable
func (c *Config) Token() (string, error) {
	token := os.Getenv(c.API.TokenEnv)
	if token == "" {
		return "", errors.ErrAPITokenMissing
	}

	return token, nil
}

// parseViewOrder extracts the declared ordering of the views section
func parseViewOrder(data []byte) (*Layout, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	layout := DefaultLayout()

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return layout, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return layout, nil
	}

	for i := 0; i < len(doc.Content)-1; i += 2 {
		key := doc.Content[i]
		value := doc.Content[i+1]

		if key.Value != "views" || value.Kind != yaml.MappingNode {
			continue
		}

		for j := 0; j < len(value.Content)-1; j += 2 {
			layout.Order = append(layout.Order, value.Content[j].Value)
		}
	}

	return layout, nil
}
