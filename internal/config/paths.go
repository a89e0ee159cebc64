package config

import (
	"path/filepath"

	"github.com/Pr0ject-X/px-valet/internal/manifest"
	"github.com/Pr0ject-X/px-valet/internal/util"
)

// TempDirName is the per-project directory holding generated files.
const TempDirName = ".project-x"

// Paths resolves project locations from the project root.
type Paths struct {
	Root string
}

func (p Paths) ConfigFile() string {
	return filepath.Join(p.Root, Filename)
}

func (p Paths) TempDir() string {
	return filepath.Join(p.Root, TempDirName)
}

// DockerDir is where the manifest and service templates are written.
func (p Paths) DockerDir() string {
	return filepath.Join(p.TempDir(), "docker")
}

func (p Paths) ManifestPath() string {
	return filepath.Join(p.DockerDir(), manifest.Filename)
}

// AppRoot joins the configured application root onto the project root. A
// leading ~ refers to the home directory.
func (p Paths) AppRoot(appRoot string) string {
	appRoot = util.ExpandPath(appRoot)
	if filepath.IsAbs(appRoot) {
		return appRoot
	}
	return filepath.Join(p.Root, appRoot)
}

// ProjectName is the compose project name derived from the root directory.
func (p Paths) ProjectName() string {
	return filepath.Base(p.Root)
}
