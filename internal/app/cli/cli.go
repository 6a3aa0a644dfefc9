//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"os"

	"opsdeck/internal/app/notify"
	"opsdeck/internal/app/ui"
	"opsdeck/internal/app/ui/components"
	"opsdeck/internal/app/watcher"
	"opsdeck/internal/config"
	"opsdeck/internal/config/logger"
)

const (
	appName = "opsdeck"
	appDesc = "terminal dashboard for self-hosted PaaS deployments"
)

// CLI defines the interface for cli operations
type CLI interface {
	Execute() (int, error)
}

// cli represents the command-line interface for the application
type cli struct {
	cfg      *config.Config
	program  ui.Program
	watcher  watcher.Watcher
	notifier notify.Notifier
	log      logger.Logger
}

// NewCLI creates a new cli instance
func NewCLI(
	cfg *config.Config,
	program ui.Program,
	w watcher.Watcher,
	notifier notify.Notifier,
	log logger.Logger,
) CLI {
	return &cli{
		cfg:      cfg,
		program:  program,
		watcher:  w,
		notifier: notifier,
		log:      log,
	}
}

// Execute processes command-line arguments and runs the chosen command
func (c *cli) Execute() (int, error) {
	opts, err := Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return 1, err
	}

	switch opts.Type {
	case CommandVersion:
		return 0, c.handleVersion()
	case CommandHelp:
		return 0, c.handleHelp()
	default:
		if err := c.runDashboard(opts); err != nil {
			return 1, err
		}

		return 0, nil
	}
}

// runDashboard starts the TUI and keeps it running until the user
// quits. Config file changes are picked up live and surfaced as a
// toast rather than restarting the program.
func (c *cli) runDashboard(opts *Options) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	defer c.watcher.Close()
	go c.watchConfig(ctx)

	p := c.program(ctx, ui.Scope{
		Project:     opts.Project,
		Environment: opts.Environment,
		Service:     opts.Service,
	})

	c.log.Debug().Msgf("starting dashboard (project=%q environment=%q)", opts.Project, opts.Environment)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard exited: %w", err)
	}

	return nil
}

// watchConfig consumes config reloads while the dashboard runs
func (c *cli) watchConfig(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case cfg, ok := <-c.watcher.Changes():
			if !ok {
				return
			}

			c.cfg.Apply(cfg)
			c.notifier.Info("config", "configuration reloaded")
		}
	}
}

// handleVersion displays version information
func (c *cli) handleVersion() error {
	fmt.Printf("\n%s %s\n", components.TitleStyle.Render(appName), "v"+config.Version)
	fmt.Printf("%s\n\n", appDesc)

	return nil
}

// handleHelp displays help information
func (c *cli) handleHelp() error {
	fmt.Printf("\n%s %s\n", components.TitleStyle.Render(appName), "v"+config.Version)
	fmt.Printf("%s\n\n", appDesc)

	fmt.Println("USAGE")
	fmt.Printf("  %s [command] [options]\n\n", appName)

	fmt.Println("COMMANDS")
	fmt.Printf("  %-16s %s\n", "dash", "Open the dashboard (default)")
	fmt.Printf("  %-16s %s\n", "logs [service]", "Open the dashboard on the logs of a service")
	fmt.Printf("  %-16s %s\n\n", "version", "Show version information")

	fmt.Println("OPTIONS")
	fmt.Printf("  %-20s %s\n", "-p, --project", "Jump straight to a project")
	fmt.Printf("  %-20s %s\n", "-e, --environment", "Environment within the project")
	fmt.Printf("  %-20s %s\n\n", "-v, --version", "Show version information")

	return nil
}
