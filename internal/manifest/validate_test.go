package manifest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Pr0ject-X/px-valet/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateGeneratedManifest(t *testing.T) {
	b := NewBuilder(t.TempDir()).SetVersion(DefaultVersion)
	b.SetService("mysql", service.NewMySQL(nil))
	b.SetService("redis", service.NewRedis(nil))
	require.NoError(t, b.Save())

	project, err := Validate(context.Background(), b.Path(), "shop")
	require.NoError(t, err)
	assert.Len(t, project.Services, 2)
	assert.Contains(t, project.Volumes, "mysql-data")
}

func TestValidateRejectsBrokenManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), Filename)
	require.NoError(t, os.WriteFile(path, []byte("services:\n    web:\n        ports: nope\n"), 0o644))

	_, err := Validate(context.Background(), path, "shop")
	assert.Error(t, err)
}
