package config

import (
	"fmt"
	"os"

	"github.com/Pr0ject-X/px-valet/internal/service"
	"github.com/Pr0ject-X/px-valet/internal/util"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// Name is the config file name without extension.
	Name = "px-valet"
	// Filename is the config file written into the project root.
	Filename = Name + ".yml"
	// EnvPrefix prefixes environment variable overrides.
	EnvPrefix = "PX_VALET"

	DefaultAppRoot  = "web"
	DefaultLogLevel = "warn"
)

// Registry sources for image tag lookups.
const (
	SourceHub = "hub"
	SourceOCI = "oci"
)

type Config struct {
	AppRoot  string                           `mapstructure:"app_root" yaml:"app_root"`
	Domains  []Domain                         `mapstructure:"domains" yaml:"domains"`
	Services map[service.Group][]ServiceEntry `mapstructure:"services" yaml:"services,omitempty"`
	Registry Registry                         `mapstructure:"registry" yaml:"registry"`
	Valet    Valet                            `mapstructure:"valet" yaml:"valet"`
	Log      Log                              `mapstructure:"log" yaml:"log"`
}

// Domain is a site served by valet for the project.
type Domain struct {
	Name string `mapstructure:"name" yaml:"name"`
	SSL  bool   `mapstructure:"ssl" yaml:"ssl"`
}

// ServiceEntry is a chosen service and the options it was configured with.
type ServiceEntry struct {
	Image         string                `mapstructure:"image" yaml:"image"`
	Configuration service.Configuration `mapstructure:"configuration" yaml:"configuration,omitempty"`
}

type Registry struct {
	Source string `mapstructure:"source" yaml:"source"` // hub, oci
	URL    string `mapstructure:"url" yaml:"url,omitempty"`
}

type Valet struct {
	Binary string `mapstructure:"binary" yaml:"binary"`
	TLD    string `mapstructure:"tld" yaml:"tld"`
}

type Log struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Pretty bool   `mapstructure:"pretty" yaml:"pretty"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		AppRoot:  DefaultAppRoot,
		Domains:  []Domain{},
		Services: map[service.Group][]ServiceEntry{},
		Registry: Registry{Source: SourceHub, URL: service.DefaultHubURL},
		Valet:    Valet{Binary: "valet", TLD: "test"},
		Log:      Log{Level: DefaultLogLevel},
	}
}

// Load reads the configuration from the global viper instance.
func Load() (*Config, error) {
	return Unmarshal(viper.GetViper())
}

// Unmarshal decodes v over the defaults and normalizes domain names.
func Unmarshal(v *viper.Viper) (*Config, error) {
	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.AppRoot == "" {
		c.AppRoot = DefaultAppRoot
	}
	c.Valet.Binary = util.ExpandPath(c.Valet.Binary)
	domains := c.Domains[:0]
	for _, d := range c.Domains {
		d.Name = util.NormalizeDomain(d.Name)
		if d.Name == "" {
			continue
		}
		domains = append(domains, d)
	}
	c.Domains = domains
	if c.Services == nil {
		c.Services = map[service.Group][]ServiceEntry{}
	}
}

// Validate checks the settings that are not free-form.
func (c *Config) Validate() error {
	switch c.Registry.Source {
	case SourceHub, SourceOCI:
	default:
		return fmt.Errorf("registry.source must be %q or %q, got %q", SourceHub, SourceOCI, c.Registry.Source)
	}
	for group := range c.Services {
		if !group.Valid() {
			return fmt.Errorf("services: unknown group %q", group)
		}
	}
	return nil
}

// ServiceEntries returns the entries of group that name an image. A repeated
// image keeps its first position and its last configuration.
func (c *Config) ServiceEntries(group service.Group) []ServiceEntry {
	var out []ServiceEntry
	index := map[string]int{}
	for _, e := range c.Services[group] {
		if e.Image == "" {
			continue
		}
		if i, ok := index[e.Image]; ok {
			out[i].Configuration = e.Configuration
			continue
		}
		index[e.Image] = len(out)
		out = append(out, e)
	}
	return out
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}

// Save writes the configuration to path as YAML, preceded by header.
func (c *Config) Save(path, header string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append([]byte(header), data...), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
