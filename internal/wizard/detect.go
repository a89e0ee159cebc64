package wizard

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/Pr0ject-X/px-valet/internal/config"
	"github.com/Pr0ject-X/px-valet/internal/valet"
)

// DetectionResult holds what was auto-detected on the system.
type DetectionResult struct {
	ValetBinary    string // path if found, empty otherwise
	ValetConfigDir string
	DockerBinary   string
	ComposeBinary  string // standalone docker-compose
	ConfigFile     string // existing project config
	Manifest       string // existing generated manifest
}

// DockerAvailable reports whether any compose entry point was found.
func (r DetectionResult) DockerAvailable() bool {
	return r.DockerBinary != "" || r.ComposeBinary != ""
}

// Detector abstracts filesystem and path lookups for testing.
type Detector interface {
	LookPath(name string) (string, error)
	Stat(path string) (os.FileInfo, error)
}

// OSDetector uses the real OS for detection.
type OSDetector struct{}

func (OSDetector) LookPath(name string) (string, error) { return exec.LookPath(name) }
func (OSDetector) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }

// Detect scans the host and the project for what px-valet works with.
func Detect(d Detector, paths config.Paths, home string) DetectionResult {
	if d == nil {
		d = OSDetector{}
	}

	result := DetectionResult{}

	if p, err := d.LookPath(valet.DefaultBinary); err == nil {
		result.ValetBinary = p
	} else if home != "" {
		// composer global installs are often missing from PATH
		bin := filepath.Join(home, ".composer", "vendor", "bin", valet.DefaultBinary)
		if _, err := d.Stat(bin); err == nil {
			result.ValetBinary = bin
		}
	}

	if home != "" {
		if dir, ok := valet.NewConfigDir(d, home).Path(); ok {
			result.ValetConfigDir = dir
		}
	}

	if p, err := d.LookPath("docker"); err == nil {
		result.DockerBinary = p
	}
	if p, err := d.LookPath("docker-compose"); err == nil {
		result.ComposeBinary = p
	}

	if _, err := d.Stat(paths.ConfigFile()); err == nil {
		result.ConfigFile = paths.ConfigFile()
	}
	if _, err := d.Stat(paths.ManifestPath()); err == nil {
		result.Manifest = paths.ManifestPath()
	}

	return result
}
