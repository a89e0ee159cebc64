package cmd

import (
	"github.com/Pr0ject-X/px-valet/internal/environment"
	"github.com/spf13/cobra"
)

var restartService string

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the docker services",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnvironment(func(env *environment.Environment) error {
			return env.Start(cmd.Context())
		})
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the docker services and optionally valet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnvironment(func(env *environment.Environment) error {
			return env.Stop(cmd.Context())
		})
	},
}

var restartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Restart valet and the docker services",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnvironment(func(env *environment.Environment) error {
			return env.Restart(cmd.Context(), restartService)
		})
	},
}

var destroyCmd = &cobra.Command{
	Use:   "destroy",
	Short: "Remove the valet links and certificates of the project domains",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnvironment(func(env *environment.Environment) error {
			return env.Destroy(cmd.Context())
		})
	},
}

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Open a project domain in the browser",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnvironment(func(env *environment.Environment) error {
			return env.Launch(cmd.Context())
		})
	},
}

var execCmd = &cobra.Command{
	Use:   "exec -- <command> [args...]",
	Short: "Run a command from the project root",
	Long: `Run a command from the project root. A single quoted argument is run
through the shell, so pipes and redirections work:

  px-valet exec -- 'gzcat dump.sql.gz | mysql app'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnvironment(func(env *environment.Environment) error {
			return env.Exec(cmd.Context(), args)
		})
	},
}

func init() {
	restartCmd.Flags().StringVar(&restartService, "service", "", "restart only this valet service: dnsmasq, nginx, php")
	rootCmd.AddCommand(startCmd, stopCmd, restartCmd, destroyCmd, launchCmd, execCmd)
}
