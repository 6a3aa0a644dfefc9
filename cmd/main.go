package main

import (
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"opsdeck/internal/app"
	"opsdeck/internal/config"
	"opsdeck/internal/config/logger"
)

const sentryFlushTimeout = 2 * time.Second

// main is the entry point for the application
func main() {
	runApp()
}

// runApp contains the main application logic
func runApp() {
	cfg, layout, err := config.Load()
	if err != nil {
		os.Exit(1)
	}

	if cfg.Sentry.DSN != "" {
		if err := initSentry(cfg); err == nil {
			defer sentry.Flush(sentryFlushTimeout)
		}
	}

	application := createApp(cfg, layout)
	application.Run()
}

// initSentry configures crash reporting when a DSN is set
func initSentry(cfg *config.Config) error {
	return sentry.Init(sentry.ClientOptions{
		Dsn:     cfg.Sentry.DSN,
		Release: "opsdeck@" + config.Version,
	})
}

// createApp creates the FX application with the given config
func createApp(cfg *config.Config, layout *config.Layout) *fx.App {
	return fx.New(
		fx.WithLogger(createFxLogger(cfg)),
		fx.Supply(cfg, layout),
		app.Module,
	)
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			return &fxevent.ConsoleLogger{W: os.Stderr}
		}

		return fxevent.NopLogger
	}
}
