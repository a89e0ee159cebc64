package runner

import (
	"strings"

	"github.com/Pr0ject-X/px-valet/internal/util"
)

// Command is a single external program invocation.
type Command struct {
	Name string
	Args []string
}

// NewCommand builds a command from a program name and its arguments.
func NewCommand(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

// String renders the command as a shell line with every word quoted as needed.
func (c Command) String() string {
	words := make([]string, 0, len(c.Args)+1)
	words = append(words, util.ShellQuote(c.Name))
	for _, a := range c.Args {
		words = append(words, util.ShellQuote(a))
	}
	return strings.Join(words, " ")
}

// Shell wraps a raw command line so it runs through sh -c. Pipes and
// redirections in line are interpreted by the shell.
func Shell(line string) Command {
	return Command{Name: "sh", Args: []string{"-c", line}}
}
