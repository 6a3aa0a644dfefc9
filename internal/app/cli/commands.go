package cli

import (
	"github.com/spf13/cobra"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandDash CommandType = iota
	CommandLogs
	CommandVersion
	CommandHelp
)

// Options contains the parsed command-line arguments
type Options struct {
	Type        CommandType
	Project     string
	Environment string
	Service     string
}

// rootFlags holds flag values for the root command
type rootFlags struct {
	version bool
}

// Parse parses command-line args and returns an Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{
		Type: CommandDash,
	}

	var flags rootFlags

	root := buildRootCommand(result, &flags)
	root.AddCommand(
		buildDashCommand(result),
		buildLogsCommand(result),
		buildVersionCommand(result),
	)

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if flags.version {
		result.Type = CommandVersion
	}

	return result, nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "opsdeck",
		Short: "A terminal dashboard for self-hosted PaaS deployments",
		Long: `Opsdeck is a terminal dashboard for self-hosted PaaS servers:
browse projects, toggle services, page through deployment logs and
edit environment variables without leaving the shell.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandDash
		},
	}

	cmd.PersistentFlags().StringVarP(&result.Project, "project", "p", "", "Jump straight to a project")
	cmd.PersistentFlags().StringVarP(&result.Environment, "environment", "e", "", "Environment within the project")
	cmd.Flags().BoolVarP(&flags.version, "version", "v", false, "Show version information")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildDashCommand creates the dash subcommand
func buildDashCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dash",
		Aliases: []string{"d"},
		Short:   "Open the dashboard",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandDash
		},
	}

	return cmd
}

// buildLogsCommand creates the logs subcommand
func buildLogsCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "logs [service]",
		Aliases: []string{"l"},
		Short:   "Open the dashboard on the logs of a service",
		Args:    cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandLogs
			if len(args) > 0 {
				result.Service = args[0]
			}
		},
	}

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}

	return cmd
}
