package cmd

import (
	"fmt"
	"os"

	"github.com/Pr0ject-X/px-valet/internal/environment"
	"github.com/Pr0ject-X/px-valet/internal/manifest"
	"github.com/Pr0ject-X/px-valet/internal/service"
	"github.com/Pr0ject-X/px-valet/internal/ui"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate px-valet.yml, the host tools and the generated compose file",
	Long: `Check that valet and docker are available, that the configured domains and
services are usable, and that the generated docker compose file loads.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

type tally struct {
	printer *ui.Printer
	passed  int
	failed  int
}

func (t *tally) ok(field, detail string) {
	t.printer.ValidationOK(field, detail)
	t.passed++
}

func (t *tally) fail(field, message, suggestion string) {
	t.printer.ValidationErr(field, message, suggestion)
	t.failed++
}

func runValidate(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.close()

	fmt.Println(ui.Bold("Validating " + a.paths.ConfigFile() + "..."))
	t := &tally{printer: a.printer}

	// Host tools
	if p, err := findExecutable(a.cfg.Valet.Binary); err == nil {
		t.ok("valet", p)
	} else {
		t.fail("valet", "not found in PATH", "composer global require laravel/valet")
	}
	if p, err := findExecutable("docker"); err == nil {
		t.ok("docker", p)
	} else if p, err := findExecutable("docker-compose"); err == nil {
		t.ok("docker-compose", p)
	} else {
		t.fail("docker", "not found in PATH", "install Docker Desktop or OrbStack")
	}

	// Domains
	if len(a.cfg.Domains) == 0 {
		t.fail("domains", "no domains configured", "run 'px-valet configure'")
	}
	for i, d := range a.cfg.Domains {
		if d.Name == "" {
			t.fail(fmt.Sprintf("domains[%d]", i), "name is empty", "")
			continue
		}
		t.ok("domain "+d.Name, fmt.Sprintf("ssl=%t", d.SSL))
	}

	// Services
	registry := service.NewRegistry()
	for _, group := range service.Groups() {
		entries := a.cfg.ServiceEntries(group)
		if len(entries) == 0 && group.Required() {
			t.fail("services."+string(group), "a "+string(group)+" service is required", "run 'px-valet configure'")
		}
		for _, e := range entries {
			field := fmt.Sprintf("services.%s %s", group, e.Image)
			if _, ok := registry.CreateInstance(e.Image, e.Configuration); !ok {
				t.fail(field, "unknown service image", "run 'px-valet services' for the supported images")
				continue
			}
			if err := service.ValidateImage(e.Image); err != nil {
				t.fail(field, err.Error(), "")
				continue
			}
			t.ok(field, "supported")
		}
	}

	// Generated manifest
	path := a.paths.ManifestPath()
	if _, err := os.Stat(path); err != nil {
		a.printer.Skipped("docker compose file", "not generated yet, run 'px-valet init'")
	} else if project, err := manifest.Validate(cmd.Context(), path, a.paths.ProjectName()); err != nil {
		t.fail("docker compose file", err.Error(), "run 'px-valet init' to regenerate it")
	} else {
		t.ok("docker compose file", fmt.Sprintf("%d services", len(project.Services)))
	}

	fmt.Println()
	if t.failed == 0 {
		a.printer.Success(fmt.Sprintf("%d checks passed, 0 errors", t.passed))
		return nil
	}
	fmt.Printf("%d checks passed, %d errors\n", t.passed, t.failed)
	return &environment.ReportedError{Err: fmt.Errorf("%d validation errors", t.failed)}
}
