package compose

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func lookPathWith(found ...string) LookPathFunc {
	return func(name string) (string, error) {
		for _, f := range found {
			if f == name {
				return "/usr/local/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		found    []string
		expected []string
	}{
		{"plugin", []string{"docker", "docker-compose"}, []string{"docker", "compose"}},
		{"standalone", []string{"docker-compose"}, []string{"docker-compose"}},
		{"nothing", nil, []string{"docker", "compose"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Detect(lookPathWith(tt.found...)))
		})
	}
}

func TestCommands(t *testing.T) {
	file := "/srv/shop/.project-x/docker/docker-compose.yml"

	plugin := New(nil, file, "shop")
	assert.Equal(t, "docker compose -p shop -f "+file+" up -d", plugin.Up().String())
	assert.Equal(t, "docker compose -p shop -f "+file+" down", plugin.Down().String())
	assert.Equal(t, "docker compose -p shop -f "+file+" restart", plugin.Restart().String())
	assert.Equal(t, file, plugin.File())

	standalone := New([]string{"docker-compose"}, file, "shop")
	assert.Equal(t, "docker-compose -p shop -f "+file+" up -d", standalone.Up().String())
}

func TestProjectName(t *testing.T) {
	tests := []struct {
		name     string
		project  string
		expected string
	}{
		{"plain", "shop", "shop"},
		{"normalized", "My Shop.dev", "myshopdev"},
		{"empty omits the flag", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(nil, "docker-compose.yml", tt.project)
			assert.Equal(t, tt.expected, c.Project())
			if tt.expected == "" {
				assert.Equal(t, "docker compose -f docker-compose.yml down", c.Down().String())
			}
		})
	}
}

func TestProjectsKeepVolumesApart(t *testing.T) {
	shop := New(nil, "/srv/shop/.project-x/docker/docker-compose.yml", "shop")
	blog := New(nil, "/srv/blog/.project-x/docker/docker-compose.yml", "blog")
	assert.NotEqual(t, shop.Up().Args, blog.Up().Args)
	assert.Contains(t, blog.Up().Args, "blog")
}
