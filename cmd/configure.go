package cmd

import (
	"fmt"
	"os"

	"github.com/Pr0ject-X/px-valet/internal/environment"
	"github.com/Pr0ject-X/px-valet/internal/service"
	"github.com/Pr0ject-X/px-valet/internal/ui"
	"github.com/Pr0ject-X/px-valet/internal/wizard"
	"github.com/spf13/cobra"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Create or update px-valet.yml interactively",
	Long: `Ask for the application root, the project domains and the docker services
of every group, then save the answers to px-valet.yml. Existing answers are
offered as defaults.`,
	Args: cobra.NoArgs,
	RunE: runConfigure,
}

func init() {
	rootCmd.AddCommand(configureCmd)
}

func runConfigure(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.close()

	fmt.Println(ui.Bold("Scanning environment..."))
	home, _ := os.UserHomeDir()
	detection := wizard.Detect(nil, a.paths, home)
	if detection.ValetBinary == "" {
		a.printer.Warn("valet was not found; 'px-valet init' will try to install it")
	}
	if !detection.DockerAvailable() {
		a.printer.Warn("docker was not found; the docker services cannot start")
	}

	flow := &wizard.Flow{
		Asker:    wizard.HuhAsker{},
		Registry: service.NewRegistry(),
		Tags:     a.tagLister(),
		Project:  a.paths.ProjectName(),
	}
	next, err := flow.Run(cmd.Context(), a.cfg)
	if err != nil {
		a.printer.Error("Configuration aborted", err.Error(), "")
		return &environment.ReportedError{Err: err}
	}

	header, err := wizard.ConfigHeader(a.paths.ProjectName(), next)
	if err != nil {
		return fmt.Errorf("generating config: %w", err)
	}

	path := a.paths.ConfigFile()
	if cfgFile != "" {
		path = cfgFile
	}
	if err := next.Save(path, header); err != nil {
		return err
	}

	a.printer.Success(fmt.Sprintf("Saved %s", path))
	fmt.Println()
	fmt.Printf("Next step: %s\n", ui.Bold("px-valet init"))
	fmt.Printf("           %s\n", ui.Hint("or edit px-valet.yml to fine-tune your config"))
	return nil
}
