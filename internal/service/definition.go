package service

// Definition is one service entry of the generated manifest.
type Definition struct {
	Image         string            `yaml:"image"`
	Restart       string            `yaml:"restart"`
	ContainerName string            `yaml:"container_name"`
	Ports         []string          `yaml:"ports,omitempty"`
	Volumes       []string          `yaml:"volumes,omitempty"`
	Environment   map[string]string `yaml:"environment,omitempty"`
}

// Empty reports whether the definition carries nothing worth writing.
func (d *Definition) Empty() bool {
	return d == nil || d.Image == ""
}
