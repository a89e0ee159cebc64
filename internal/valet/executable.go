package valet

import "github.com/Pr0ject-X/px-valet/internal/runner"

// DefaultBinary is the host tool looked up in PATH.
const DefaultBinary = "valet"

// restartable lists the services valet restart accepts by name.
var restartable = map[string]bool{
	"dnsmasq": true,
	"nginx":   true,
	"php":     true,
}

// Executable builds valet invocations.
type Executable struct {
	Binary string
}

// NewExecutable returns a builder for binary, or for DefaultBinary when empty.
func NewExecutable(binary string) Executable {
	if binary == "" {
		binary = DefaultBinary
	}
	return Executable{Binary: binary}
}

func (e Executable) sub(name string, args ...string) runner.Command {
	return runner.NewCommand(e.Binary, append([]string{name}, args...)...)
}

func (e Executable) Install() runner.Command             { return e.sub("install") }
func (e Executable) Start() runner.Command               { return e.sub("start") }
func (e Executable) Stop() runner.Command                { return e.sub("stop") }
func (e Executable) Link(name string) runner.Command     { return e.sub("link", name) }
func (e Executable) Unlink(name string) runner.Command   { return e.sub("unlink", name) }
func (e Executable) Secure(name string) runner.Command   { return e.sub("secure", name) }
func (e Executable) Unsecure(name string) runner.Command { return e.sub("unsecure", name) }

// Restart restarts every valet service, or only service when it is one of
// dnsmasq, nginx or php. Other names are ignored.
func (e Executable) Restart(service string) runner.Command {
	if restartable[service] {
		return e.sub("restart", service)
	}
	return e.sub("restart")
}
