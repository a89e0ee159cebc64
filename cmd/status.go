package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Pr0ject-X/px-valet/internal/config"
	"github.com/Pr0ject-X/px-valet/internal/environment"
	"github.com/Pr0ject-X/px-valet/internal/health"
	"github.com/Pr0ject-X/px-valet/internal/manifest"
	"github.com/Pr0ject-X/px-valet/internal/ui"
	"github.com/Pr0ject-X/px-valet/internal/valet"
	"github.com/spf13/cobra"
)

var statusTimeout int

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the valet sites and whether the docker services answer",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().IntVar(&statusTimeout, "timeout", 2, "seconds to wait for each service")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.close()

	probe := a.probe()
	fmt.Println(ui.Bold("Valet sites"))
	if !probe.Installed() {
		a.printer.Warn("valet is not installed, run 'px-valet init'")
	}
	printSites(a.printer, probe, a.cfg.Domains)

	fmt.Println()
	fmt.Println(ui.Bold("Docker services"))
	path := a.paths.ManifestPath()
	if _, err := os.Stat(path); err != nil {
		a.printer.Skipped("docker compose file", "not generated yet")
		return nil
	}
	m, err := manifest.Read(path)
	if err != nil {
		a.printer.Error("Unable to read the docker compose file", err.Error(), "")
		return &environment.ReportedError{Err: err}
	}

	services := health.Services(m)
	for _, svc := range services {
		if len(svc.PublishedPorts()) == 0 {
			a.printer.Skipped(svc.Name, "no published port")
		}
	}

	timeout := health.DefaultTimeout
	if statusTimeout > 0 {
		timeout = secondsDuration(statusTimeout)
	}
	checker := health.NewChecker(timeout, a.log)

	down := 0
	for _, r := range checker.Check(cmd.Context(), services) {
		field := fmt.Sprintf("%s %s", r.Service, r.Port)
		if r.OK() {
			a.printer.ValidationOK(field, r.Method+" ok")
			continue
		}
		down++
		a.printer.ValidationErr(field, r.Err.Error(), "run 'px-valet start'")
	}
	if down > 0 {
		return &environment.ReportedError{Err: fmt.Errorf("%d services are not reachable", down)}
	}
	return nil
}

// printSites reports each domain's valet state. Entries without a name are
// skipped: probing "" would look at the Sites directory itself.
func printSites(p *ui.Printer, probe valet.StateProbe, domains []config.Domain) {
	for _, d := range domains {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			continue
		}
		linked := probe.SiteLinked(name)
		cert := probe.CertificatePresent(name)
		switch {
		case !linked:
			p.ValidationErr(name, "not linked", "run 'px-valet init'")
		case d.SSL && !cert:
			p.ValidationErr(name, "linked without certificate", "run 'px-valet init'")
		case cert:
			p.ValidationOK(name, "linked, secured")
		default:
			p.ValidationOK(name, "linked")
		}
	}
}
