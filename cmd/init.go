package cmd

import (
	"fmt"

	"github.com/Pr0ject-X/px-valet/internal/environment"
	"github.com/Pr0ject-X/px-valet/internal/ui"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Install valet, link the project domains and write the docker compose file",
	Long: `Install Laravel Valet when it is missing, link and secure every configured
domain from the application root, then write the docker compose file for
the configured services into .project-x/docker.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	return withEnvironment(func(env *environment.Environment) error {
		if err := env.Init(cmd.Context()); err != nil {
			return err
		}
		fmt.Println()
		fmt.Printf("Next step: %s\n", ui.Bold("px-valet start"))
		return nil
	})
}
