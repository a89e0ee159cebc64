package model

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// LocalHost is the address published ports are reached on when the mapping
// does not bind one.
const LocalHost = "127.0.0.1"

// PortMapping is a published container port.
type PortMapping struct {
	HostIP        string
	HostPort      int
	ContainerPort int
	Protocol      string // tcp or udp
}

// String returns a human-readable port mapping.
func (p PortMapping) String() string {
	proto := ""
	if p.Protocol != "" && p.Protocol != "tcp" {
		proto = "/" + p.Protocol
	}
	if p.HostPort == p.ContainerPort {
		return fmt.Sprintf("%d%s", p.HostPort, proto)
	}
	return fmt.Sprintf("%d→%d%s", p.HostPort, p.ContainerPort, proto)
}

// Address returns the host address the port is reachable on.
func (p PortMapping) Address() string {
	host := p.HostIP
	if host == "" || host == "0.0.0.0" {
		host = LocalHost
	}
	return net.JoinHostPort(host, strconv.Itoa(p.HostPort))
}

// ParsePortMapping parses a compose port string like "6379:6379" or
// "127.0.0.1:8025:8025/tcp". Unparseable numbers are left at zero.
func ParsePortMapping(s string) PortMapping {
	pm := PortMapping{Protocol: "tcp"}

	s, proto, found := strings.Cut(strings.TrimSpace(s), "/")
	if found {
		pm.Protocol = proto
	}

	parts := strings.Split(s, ":")
	atoi := func(v string) int {
		n, _ := strconv.Atoi(v)
		return n
	}
	switch len(parts) {
	case 1:
		pm.HostPort = atoi(parts[0])
		pm.ContainerPort = pm.HostPort
	case 2:
		pm.HostPort = atoi(parts[0])
		pm.ContainerPort = atoi(parts[1])
	case 3:
		pm.HostIP = parts[0]
		pm.HostPort = atoi(parts[1])
		pm.ContainerPort = atoi(parts[2])
	}
	return pm
}

// ParsePorts parses every port string of a service definition.
func ParsePorts(ports []string) []PortMapping {
	out := make([]PortMapping, 0, len(ports))
	for _, p := range ports {
		out = append(out, ParsePortMapping(p))
	}
	return out
}
