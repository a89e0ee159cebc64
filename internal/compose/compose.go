// Package compose builds docker compose invocations for the project manifest.
package compose

import (
	"github.com/Pr0ject-X/px-valet/internal/manifest"
	"github.com/Pr0ject-X/px-valet/internal/runner"
)

// Compose targets one manifest file under one compose project.
type Compose struct {
	base    []string
	file    string
	project string
}

// LookPathFunc resolves a program in PATH.
type LookPathFunc func(name string) (string, error)

// Detect returns the compose entry point available on the host: the docker
// compose plugin, or the standalone docker-compose binary when docker is
// missing. It falls back to the plugin form when neither is found.
func Detect(lookPath LookPathFunc) []string {
	if lookPath == nil {
		lookPath = runner.LookPath
	}
	if _, err := lookPath("docker"); err == nil {
		return []string{"docker", "compose"}
	}
	if _, err := lookPath("docker-compose"); err == nil {
		return []string{"docker-compose"}
	}
	return []string{"docker", "compose"}
}

// New returns a compose builder for file using the base command, for example
// the result of Detect. project names the compose project so named volumes
// stay apart between projects; it is normalized like compose does.
func New(base []string, file, project string) *Compose {
	if len(base) == 0 {
		base = []string{"docker", "compose"}
	}
	return &Compose{base: base, file: file, project: manifest.ProjectName(project)}
}

// Project returns the normalized compose project name.
func (c *Compose) Project() string {
	return c.project
}

// File returns the manifest path.
func (c *Compose) File() string {
	return c.file
}

func (c *Compose) command(args ...string) runner.Command {
	words := append([]string{}, c.base[1:]...)
	if c.project != "" {
		words = append(words, "-p", c.project)
	}
	words = append(words, "-f", c.file)
	return runner.NewCommand(c.base[0], append(words, args...)...)
}

// Up starts the services in the background.
func (c *Compose) Up() runner.Command {
	return c.command("up", "-d")
}

func (c *Compose) Down() runner.Command {
	return c.command("down")
}

func (c *Compose) Restart() runner.Command {
	return c.command("restart")
}
