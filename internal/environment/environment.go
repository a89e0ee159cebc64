// Package environment drives the project environment: valet sites on the
// host and the docker services next to them.
package environment

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/Pr0ject-X/px-valet/internal/compose"
	"github.com/Pr0ject-X/px-valet/internal/config"
	"github.com/Pr0ject-X/px-valet/internal/logger"
	"github.com/Pr0ject-X/px-valet/internal/runner"
	"github.com/Pr0ject-X/px-valet/internal/service"
	"github.com/Pr0ject-X/px-valet/internal/ui"
	"github.com/Pr0ject-X/px-valet/internal/valet"
)

// Prompter asks the user to decide.
type Prompter interface {
	Confirm(title string, def bool) (bool, error)
	Select(title string, options []string, def string) (string, error)
}

// Deps are the collaborators an Environment works through.
type Deps struct {
	Executor runner.Executor
	Probe    valet.StateProbe
	Valet    valet.Executable
	Compose  *compose.Compose
	Registry *service.Registry
	Prompter Prompter
	Printer  *ui.Printer
	Logger   logger.Logger
	Paths    config.Paths
}

// Environment runs the lifecycle operations of one project.
type Environment struct {
	cfg        *config.Config
	deps       Deps
	reconciler *valet.Reconciler
}

// New returns the environment for cfg.
func New(cfg *config.Config, deps Deps) *Environment {
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	if deps.Printer == nil {
		deps.Printer = ui.NewPrinter(nil)
	}
	if deps.Registry == nil {
		deps.Registry = service.NewRegistry()
	}
	if deps.Compose == nil {
		deps.Compose = compose.New(compose.Detect(nil), deps.Paths.ManifestPath(), deps.Paths.ProjectName())
	}
	if deps.Valet.Binary == "" {
		deps.Valet = valet.NewExecutable(cfg.Valet.Binary)
	}
	return &Environment{
		cfg:        cfg,
		deps:       deps,
		reconciler: valet.NewReconciler(deps.Probe, deps.Valet, deps.Logger),
	}
}

// Printer returns the printer lifecycle messages go to.
func (e *Environment) Printer() *ui.Printer {
	return e.deps.Printer
}

// Fail reports err under title and returns it as already reported.
func (e *Environment) Fail(title string, err error) error {
	return e.fail(title, err)
}

// fail prints err once and returns it marked as reported.
func (e *Environment) fail(title string, err error) error {
	var cmdErr *runner.CommandError
	hint := ""
	if errors.As(err, &cmdErr) {
		hint = "the command failed: " + cmdErr.Command.String()
	}
	e.deps.Logger.Error(title, logger.Error(err))
	e.deps.Printer.Error(title, err.Error(), hint)
	return &ReportedError{Err: err}
}

func (e *Environment) run(ctx context.Context, dir string, cmd runner.Command) error {
	e.deps.Logger.Debug("exec", logger.String("cmd", cmd.String()), logger.String("dir", dir))
	return e.deps.Executor.Run(ctx, dir, cmd)
}

func (e *Environment) requireManifest() error {
	if _, err := os.Stat(e.deps.Paths.ManifestPath()); err != nil {
		return fmt.Errorf("%w: %s", ErrNoManifest, e.deps.Paths.ManifestPath())
	}
	return nil
}

// Init installs valet when needed, links and secures the configured domains
// and writes the docker compose file.
func (e *Environment) Init(ctx context.Context) error {
	e.deps.Printer.Banner()

	install := runner.NewStack()
	if !e.deps.Probe.Installed() {
		install.Exec(e.deps.Valet.Install())
	} else {
		reinstall, err := e.deps.Prompter.Confirm("Valet is installed already, reinstall?", false)
		if err != nil {
			return e.fail("Installation aborted", err)
		}
		if reinstall {
			install.Exec(e.deps.Valet.Install())
		}
	}
	if err := install.Run(ctx, e.deps.Executor); err != nil {
		return e.fail("Valet installation failed", err)
	}

	sites := e.reconciler.Converge(e.cfg.Domains).Dir(e.AppRoot())
	var planned []string
	for _, c := range sites.Commands() {
		planned = append(planned, c.String())
	}
	e.deps.Logger.Debug("site commands", logger.Int("count", len(planned)), logger.Strings("commands", planned))
	if err := sites.Run(ctx, e.deps.Executor); err != nil {
		return e.fail("Unable to configure the valet domains", err)
	}

	return e.WriteManifest()
}

// Start brings the docker services up in the background.
func (e *Environment) Start(ctx context.Context) error {
	if err := e.requireManifest(); err != nil {
		return e.fail("Unable to start the docker services", err)
	}
	if err := e.run(ctx, e.deps.Paths.Root, e.deps.Compose.Up()); err != nil {
		return e.fail("Unable to start the docker services", err)
	}
	e.deps.Printer.Success("The docker services are running!")
	return nil
}

// Stop takes the docker services down and, when confirmed, stops valet.
func (e *Environment) Stop(ctx context.Context) error {
	if err := e.requireManifest(); err != nil {
		return e.fail("Unable to stop the docker services", err)
	}
	if err := e.run(ctx, e.deps.Paths.Root, e.deps.Compose.Down()); err != nil {
		return e.fail("Unable to stop the docker services", err)
	}
	e.deps.Printer.Success("The docker services have been stopped!")

	stopValet, err := e.deps.Prompter.Confirm("Stop local Valet services?", false)
	if err != nil {
		return e.fail("Unable to stop valet", err)
	}
	if !stopValet {
		return nil
	}
	if err := e.run(ctx, e.deps.Paths.Root, e.deps.Valet.Stop()); err != nil {
		return e.fail("Unable to stop valet", err)
	}
	return nil
}

// Restart restarts valet, then the docker services. svc limits the valet
// restart to dnsmasq, nginx or php.
func (e *Environment) Restart(ctx context.Context, svc string) error {
	if err := e.run(ctx, e.deps.Paths.Root, e.deps.Valet.Restart(svc)); err != nil {
		return e.fail("Unable to restart valet", err)
	}
	if err := e.requireManifest(); err != nil {
		return e.fail("Unable to restart the docker services", err)
	}
	if err := e.run(ctx, e.deps.Paths.Root, e.deps.Compose.Restart()); err != nil {
		return e.fail("Unable to restart the docker services", err)
	}
	e.deps.Printer.Success("The host services have successfully restarted!")
	return nil
}

// Destroy removes the certificates and links of every configured domain.
func (e *Environment) Destroy(ctx context.Context) error {
	stack := e.reconciler.Teardown(e.cfg.Domains).Dir(e.deps.Paths.Root)
	if err := stack.Run(ctx, e.deps.Executor); err != nil {
		return e.fail("Unable to remove the valet domains", err)
	}
	e.deps.Printer.Success("The valet domain/certs for this project were successfully removed!")
	return nil
}

// URLs maps each configured domain to the address valet serves it on.
func (e *Environment) URLs() (names []string, urls map[string]string) {
	tld := e.cfg.Valet.TLD
	if tld == "" {
		tld = valet.DefaultTLD
	}
	urls = make(map[string]string)
	for _, d := range e.cfg.Domains {
		if d.Name == "" {
			continue
		}
		scheme := "http"
		if d.SSL {
			scheme = "https"
		}
		if _, seen := urls[d.Name]; !seen {
			names = append(names, d.Name)
		}
		urls[d.Name] = fmt.Sprintf("%s://%s.%s", scheme, d.Name, tld)
	}
	return names, urls
}

// Launch opens a configured domain in the browser, asking which one when
// there are several.
func (e *Environment) Launch(ctx context.Context) error {
	names, urls := e.URLs()
	if len(names) == 0 {
		return e.fail("Unable to launch the project", ErrNoDomains)
	}

	host := names[0]
	if len(names) > 1 {
		var err error
		host, err = e.deps.Prompter.Select("Select the host", names, names[0])
		if err != nil {
			return e.fail("Unable to launch the project", err)
		}
	}
	if err := e.run(ctx, e.deps.Paths.Root, openCommand(urls[host])); err != nil {
		return e.fail("Unable to launch the project", err)
	}
	return nil
}

func openCommand(target string) runner.Command {
	if runtime.GOOS == "darwin" {
		return runner.NewCommand("open", target)
	}
	return runner.NewCommand("xdg-open", target)
}

// Exec runs a command from the project root. A single argument is treated as
// a shell line.
func (e *Environment) Exec(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return e.fail("Nothing to execute", errors.New("no command given"))
	}
	cmd := runner.NewCommand(args[0], args[1:]...)
	if len(args) == 1 {
		cmd = runner.Shell(args[0])
	}
	if err := e.run(ctx, e.deps.Paths.Root, cmd); err != nil {
		return e.fail("Command failed", err)
	}
	return nil
}

// AppRoot returns the application root directory.
func (e *Environment) AppRoot() string {
	return e.deps.Paths.AppRoot(e.cfg.AppRoot)
}

// Packages lists the tools the environment expects on the host.
func (e *Environment) Packages() []string {
	return []string{"drush", "composer"}
}
