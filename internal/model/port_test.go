package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePortMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected PortMapping
	}{
		{"6379", PortMapping{HostPort: 6379, ContainerPort: 6379, Protocol: "tcp"}},
		{"3307:3306", PortMapping{HostPort: 3307, ContainerPort: 3306, Protocol: "tcp"}},
		{"127.0.0.1:8025:8025", PortMapping{HostIP: "127.0.0.1", HostPort: 8025, ContainerPort: 8025, Protocol: "tcp"}},
		{"1025:1025/udp", PortMapping{HostPort: 1025, ContainerPort: 1025, Protocol: "udp"}},
		{" 6379:6379 ", PortMapping{HostPort: 6379, ContainerPort: 6379, Protocol: "tcp"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParsePortMapping(tt.input))
		})
	}
}

func TestPortMappingString(t *testing.T) {
	tests := []struct {
		pm       PortMapping
		expected string
	}{
		{PortMapping{HostPort: 6379, ContainerPort: 6379, Protocol: "tcp"}, "6379"},
		{PortMapping{HostPort: 3307, ContainerPort: 3306, Protocol: "tcp"}, "3307→3306"},
		{PortMapping{HostPort: 1025, ContainerPort: 25, Protocol: "udp"}, "1025→25/udp"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.pm.String())
		})
	}
}

func TestPortMappingAddress(t *testing.T) {
	assert.Equal(t, "127.0.0.1:6379", ParsePortMapping("6379:6379").Address())
	assert.Equal(t, "127.0.0.1:6379", ParsePortMapping("0.0.0.0:6379:6379").Address())
	assert.Equal(t, "10.0.0.5:3306", ParsePortMapping("10.0.0.5:3306:3306").Address())
}

func TestParsePorts(t *testing.T) {
	ports := ParsePorts([]string{"8025:8025", "1025:1025"})
	assert.Len(t, ports, 2)
	assert.Equal(t, 1025, ports[1].HostPort)
}
