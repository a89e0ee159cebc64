package wizard

import (
	"os"
	"testing"
	"time"

	"github.com/Pr0ject-X/px-valet/internal/config"
	"github.com/stretchr/testify/assert"
)

// mockDetector implements Detector for testing.
type mockDetector struct {
	binaries map[string]bool
	files    map[string]bool
	dirs     map[string]bool
}

func (m *mockDetector) LookPath(name string) (string, error) {
	if m.binaries[name] {
		return "/usr/local/bin/" + name, nil
	}
	return "", &os.PathError{Op: "lookpath", Path: name, Err: os.ErrNotExist}
}

type fakeFileInfo struct {
	name  string
	isDir bool
}

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return 0 }
func (f fakeFileInfo) Mode() os.FileMode  { return 0644 }
func (f fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f fakeFileInfo) IsDir() bool        { return f.isDir }
func (f fakeFileInfo) Sys() interface{}   { return nil }

func (m *mockDetector) Stat(path string) (os.FileInfo, error) {
	if m.dirs[path] {
		return fakeFileInfo{name: path, isDir: true}, nil
	}
	if m.files[path] {
		return fakeFileInfo{name: path, isDir: false}, nil
	}
	return nil, os.ErrNotExist
}

var testPaths = config.Paths{Root: "/srv/shop"}

func TestDetectEverything(t *testing.T) {
	d := &mockDetector{
		binaries: map[string]bool{"valet": true, "docker": true},
		dirs:     map[string]bool{"/home/dev/.config/valet": true},
		files: map[string]bool{
			"/srv/shop/px-valet.yml":                          true,
			"/srv/shop/.project-x/docker/docker-compose.yml": true,
		},
	}
	result := Detect(d, testPaths, "/home/dev")

	assert.Equal(t, "/usr/local/bin/valet", result.ValetBinary)
	assert.Equal(t, "/home/dev/.config/valet", result.ValetConfigDir)
	assert.Equal(t, "/usr/local/bin/docker", result.DockerBinary)
	assert.True(t, result.DockerAvailable())
	assert.Equal(t, "/srv/shop/px-valet.yml", result.ConfigFile)
	assert.Equal(t, "/srv/shop/.project-x/docker/docker-compose.yml", result.Manifest)
}

func TestDetectComposerValet(t *testing.T) {
	d := &mockDetector{
		files: map[string]bool{"/home/dev/.composer/vendor/bin/valet": true},
	}
	result := Detect(d, testPaths, "/home/dev")
	assert.Equal(t, "/home/dev/.composer/vendor/bin/valet", result.ValetBinary)
}

func TestDetectStandaloneCompose(t *testing.T) {
	d := &mockDetector{binaries: map[string]bool{"docker-compose": true}}
	result := Detect(d, testPaths, "/home/dev")

	assert.Empty(t, result.DockerBinary)
	assert.Equal(t, "/usr/local/bin/docker-compose", result.ComposeBinary)
	assert.True(t, result.DockerAvailable())
}

func TestDetectNothing(t *testing.T) {
	result := Detect(&mockDetector{}, testPaths, "/home/dev")

	assert.Empty(t, result.ValetBinary)
	assert.Empty(t, result.ValetConfigDir)
	assert.False(t, result.DockerAvailable())
	assert.Empty(t, result.ConfigFile)
	assert.Empty(t, result.Manifest)
}
