package manifest

import (
	"fmt"

	"github.com/Pr0ject-X/px-valet/internal/service"
	"gopkg.in/yaml.v3"
)

// Volume is a named volume declaration.
type Volume struct {
	Driver string `yaml:"driver,omitempty"`
}

// Manifest is a compose document whose services and volumes keep the order
// they were added in.
type Manifest struct {
	Version string

	serviceKeys []string
	services    map[string]*service.Definition
	volumeNames []string
	volumes     map[string]Volume
}

// New returns an empty manifest.
func New() *Manifest {
	return &Manifest{
		services: make(map[string]*service.Definition),
		volumes:  make(map[string]Volume),
	}
}

// ServiceKeys returns service keys in insertion order.
func (m *Manifest) ServiceKeys() []string {
	return append([]string(nil), m.serviceKeys...)
}

// Service returns the definition stored under key.
func (m *Manifest) Service(key string) (*service.Definition, bool) {
	def, ok := m.services[key]
	return def, ok
}

// VolumeNames returns named volumes in insertion order.
func (m *Manifest) VolumeNames() []string {
	return append([]string(nil), m.volumeNames...)
}

// Volume returns the named volume declaration.
func (m *Manifest) Volume(name string) (Volume, bool) {
	v, ok := m.volumes[name]
	return v, ok
}

func (m *Manifest) putService(key string, def *service.Definition) {
	if _, exists := m.services[key]; !exists {
		m.serviceKeys = append(m.serviceKeys, key)
	}
	m.services[key] = def
}

// putVolume stores a volume unless one already exists under name.
func (m *Manifest) putVolume(name string, v Volume) bool {
	if _, exists := m.volumes[name]; exists {
		return false
	}
	m.volumeNames = append(m.volumeNames, name)
	m.volumes[name] = v
	return true
}

func (m *Manifest) MarshalYAML() (interface{}, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}

	if m.Version != "" {
		doc.Content = append(doc.Content, scalar("version"), scalar(m.Version))
	}

	services := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range m.serviceKeys {
		value := &yaml.Node{}
		if err := value.Encode(m.services[key]); err != nil {
			return nil, fmt.Errorf("encoding service %s: %w", key, err)
		}
		services.Content = append(services.Content, scalar(key), value)
	}
	doc.Content = append(doc.Content, scalar("services"), services)

	if len(m.volumeNames) > 0 {
		volumes := &yaml.Node{Kind: yaml.MappingNode}
		for _, name := range m.volumeNames {
			value := &yaml.Node{}
			if err := value.Encode(m.volumes[name]); err != nil {
				return nil, fmt.Errorf("encoding volume %s: %w", name, err)
			}
			volumes.Content = append(volumes.Content, scalar(name), value)
		}
		doc.Content = append(doc.Content, scalar("volumes"), volumes)
	}

	return doc, nil
}

func (m *Manifest) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("manifest: expected a mapping, got %s", node.Tag)
	}
	*m = *New()

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "version":
			m.Version = value.Value
		case "services":
			for j := 0; j+1 < len(value.Content); j += 2 {
				def := &service.Definition{}
				if err := value.Content[j+1].Decode(def); err != nil {
					return fmt.Errorf("service %s: %w", value.Content[j].Value, err)
				}
				m.putService(value.Content[j].Value, def)
			}
		case "volumes":
			for j := 0; j+1 < len(value.Content); j += 2 {
				var v Volume
				if err := value.Content[j+1].Decode(&v); err != nil {
					return fmt.Errorf("volume %s: %w", value.Content[j].Value, err)
				}
				m.putVolume(value.Content[j].Value, v)
			}
		}
	}
	return nil
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
