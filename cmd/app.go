package cmd

import (
	"os"

	"github.com/Pr0ject-X/px-valet/internal/compose"
	"github.com/Pr0ject-X/px-valet/internal/config"
	"github.com/Pr0ject-X/px-valet/internal/environment"
	"github.com/Pr0ject-X/px-valet/internal/logger"
	"github.com/Pr0ject-X/px-valet/internal/runner"
	"github.com/Pr0ject-X/px-valet/internal/service"
	"github.com/Pr0ject-X/px-valet/internal/ui"
	"github.com/Pr0ject-X/px-valet/internal/valet"
	"github.com/Pr0ject-X/px-valet/internal/wizard"
)

// app bundles what every command needs.
type app struct {
	cfg     *config.Config
	paths   config.Paths
	log     logger.Logger
	printer *ui.Printer
}

func loadApp() (*app, error) {
	printer := ui.NewPrinter(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		printer.Error("Failed to load config", err.Error(), "run 'px-valet configure' to create a config file")
		return nil, &environment.ReportedError{Err: err}
	}
	if err := cfg.Validate(); err != nil {
		printer.Error("Invalid config", err.Error(), "")
		return nil, &environment.ReportedError{Err: err}
	}

	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}

	return &app{
		cfg:     cfg,
		paths:   config.Paths{Root: rootDir()},
		log:     logger.New(level, cfg.Log.Pretty),
		printer: printer,
	}, nil
}

func (a *app) close() {
	_ = a.log.Sync()
}

// tagLister returns the tag source chosen by registry.source. Failures are
// logged and leave the version prompt as free input.
func (a *app) tagLister() service.TagLister {
	var lister service.TagLister
	switch a.cfg.Registry.Source {
	case config.SourceOCI:
		registry := a.cfg.Registry.URL
		if registry == service.DefaultHubURL {
			registry = ""
		}
		lister = &service.RegistryTagLister{Registry: registry}
	default:
		lister = service.NewHubTagLister(nil, a.cfg.Registry.URL)
	}
	return service.Tolerant(lister, a.log)
}

func (a *app) probe() *valet.FSProbe {
	home, err := os.UserHomeDir()
	if err != nil {
		a.log.Warn("home directory unknown", logger.Error(err))
	}
	dir := valet.NewConfigDir(nil, home)
	return valet.NewFSProbe(nil, dir, a.cfg.Valet.TLD)
}

func (a *app) environment() *environment.Environment {
	return environment.New(a.cfg, environment.Deps{
		Executor: runner.NewOSExecutor(),
		Probe:    a.probe(),
		Valet:    valet.NewExecutable(a.cfg.Valet.Binary),
		Compose:  compose.New(compose.Detect(nil), a.paths.ManifestPath(), a.paths.ProjectName()),
		Registry: service.NewRegistry(),
		Prompter: wizard.HuhAsker{},
		Printer:  a.printer,
		Logger:   a.log,
		Paths:    a.paths,
	})
}

// withEnvironment loads the app and runs fn against the project environment.
func withEnvironment(fn func(env *environment.Environment) error) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.close()
	return fn(a.environment())
}
