package runner

import (
	"context"
)

// Stack queues commands and runs them as one batch. Commands run strictly in
// queue order and the batch stops at the first failure; nothing already
// applied is rolled back.
type Stack struct {
	dir      string
	commands []Command
}

// NewStack creates an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Dir sets the working directory for every command in the stack.
func (s *Stack) Dir(dir string) *Stack {
	s.dir = dir
	return s
}

// Exec queues a command.
func (s *Stack) Exec(cmd Command) *Stack {
	s.commands = append(s.commands, cmd)
	return s
}

// Append queues every command of other after the current ones.
func (s *Stack) Append(other *Stack) *Stack {
	if other != nil {
		s.commands = append(s.commands, other.commands...)
	}
	return s
}

// Commands returns a copy of the queued commands.
func (s *Stack) Commands() []Command {
	out := make([]Command, len(s.commands))
	copy(out, s.commands)
	return out
}

// Empty reports whether nothing is queued.
func (s *Stack) Empty() bool {
	return len(s.commands) == 0
}

// Run executes the queued commands in order. An empty stack succeeds.
func (s *Stack) Run(ctx context.Context, exec Executor) error {
	for _, cmd := range s.commands {
		if err := exec.Run(ctx, s.dir, cmd); err != nil {
			return err
		}
	}
	return nil
}
