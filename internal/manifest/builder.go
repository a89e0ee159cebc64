package manifest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Pr0ject-X/px-valet/internal/service"
	"gopkg.in/yaml.v3"
)

const (
	// Filename is the manifest file written inside the docker directory.
	Filename = "docker-compose.yml"
	// DefaultVersion is the compose file format version written by init.
	DefaultVersion = 3.1

	indent = 4
)

// Builder accumulates service definitions and the named volumes they use,
// then persists them as one manifest.
type Builder struct {
	dir      string
	manifest *Manifest
}

// NewBuilder returns a builder writing into dir.
func NewBuilder(dir string) *Builder {
	return &Builder{dir: dir, manifest: New()}
}

// Path returns the manifest file path.
func (b *Builder) Path() string {
	return filepath.Join(b.dir, Filename)
}

// Manifest returns the document built so far.
func (b *Builder) Manifest() *Manifest {
	return b.manifest
}

// SetVersion sets the compose format version.
func (b *Builder) SetVersion(version float64) *Builder {
	b.manifest.Version = strconv.FormatFloat(version, 'f', -1, 64)
	return b
}

// SetService stores the descriptor's definition under key and registers every
// named volume it mounts. Empty definitions are ignored.
func (b *Builder) SetService(key string, svc service.Descriptor) *Builder {
	def := svc.Definition()
	if def.Empty() {
		return b
	}
	b.manifest.putService(key, def)

	for _, spec := range def.Volumes {
		if name, ok := NamedVolume(spec); ok {
			b.SetVolume(name, Volume{Driver: "local"})
		}
	}
	return b
}

// SetVolume declares a named volume. An existing declaration is never
// replaced, so services can share a volume without conflicting configs.
func (b *Builder) SetVolume(name string, v Volume) *Builder {
	b.manifest.putVolume(name, v)
	return b
}

// Save writes the manifest, creating the directory when needed.
func (b *Builder) Save() error {
	data, err := Encode(b.manifest)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", b.dir, err)
	}
	if err := os.WriteFile(b.Path(), data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// Encode renders m as YAML with four-space indentation.
func Encode(m *Manifest) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Read loads a manifest file written by Save.
func Read(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m := New()
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}

// NamedVolume reports whether a "<source>:<target>" volume spec mounts a
// named volume rather than a host path, and returns its name.
func NamedVolume(spec string) (string, bool) {
	source, _, found := strings.Cut(spec, ":")
	if !found || source == "" {
		return "", false
	}
	if strings.ContainsAny(source, `/\`) || strings.HasPrefix(source, ".") || strings.HasPrefix(source, "~") {
		return "", false
	}
	return source, true
}
