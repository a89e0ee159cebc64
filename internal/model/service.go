package model

// ServiceType classifies a manifest service for reachability checks.
type ServiceType string

const (
	ServiceTypeCache     ServiceType = "cache"
	ServiceTypeDatabase  ServiceType = "database"
	ServiceTypeMail      ServiceType = "mail"
	ServiceTypeContainer ServiceType = "container"
)

// Service is one container of the project manifest.
type Service struct {
	Name  string
	Image string
	Type  ServiceType
	Ports []PortMapping
}

// PublishedPorts returns the TCP ports bound on the host.
func (s Service) PublishedPorts() []PortMapping {
	var out []PortMapping
	for _, p := range s.Ports {
		if p.HostPort == 0 || p.Protocol != "tcp" {
			continue
		}
		out = append(out, p)
	}
	return out
}
