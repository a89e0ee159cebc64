package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingExecutor records every command and fails on the configured one.
type recordingExecutor struct {
	ran    []string
	dirs   []string
	failOn string
}

func (r *recordingExecutor) Run(_ context.Context, dir string, cmd Command) error {
	r.ran = append(r.ran, cmd.String())
	r.dirs = append(r.dirs, dir)
	if cmd.String() == r.failOn {
		return &CommandError{Command: cmd, Err: errors.New("exit status 1")}
	}
	return nil
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd      Command
		expected string
	}{
		{NewCommand("valet", "link", "app"), "valet link app"},
		{NewCommand("valet", "install"), "valet install"},
		{NewCommand("open", "https://app.test"), "open https://app.test"},
		{NewCommand("open", "-a", "/Applications/Sequel Ace.app"), "open -a '/Applications/Sequel Ace.app'"},
		{Shell("mysql app < dump.sql"), "sh -c 'mysql app < dump.sql'"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cmd.String())
		})
	}
}

func TestStackRunsInOrder(t *testing.T) {
	exec := &recordingExecutor{}
	stack := NewStack().Dir("/srv/app").
		Exec(NewCommand("valet", "link", "app")).
		Exec(NewCommand("valet", "secure", "app"))

	require.NoError(t, stack.Run(context.Background(), exec))
	assert.Equal(t, []string{"valet link app", "valet secure app"}, exec.ran)
	assert.Equal(t, []string{"/srv/app", "/srv/app"}, exec.dirs)
}

func TestStackStopsAtFirstFailure(t *testing.T) {
	exec := &recordingExecutor{failOn: "valet link app"}
	stack := NewStack().
		Exec(NewCommand("valet", "link", "app")).
		Exec(NewCommand("valet", "secure", "app"))

	err := stack.Run(context.Background(), exec)
	require.Error(t, err)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "valet link app", cmdErr.Command.String())
	assert.Equal(t, []string{"valet link app"}, exec.ran)
}

func TestEmptyStackSucceeds(t *testing.T) {
	exec := &recordingExecutor{}
	stack := NewStack()

	assert.True(t, stack.Empty())
	require.NoError(t, stack.Run(context.Background(), exec))
	assert.Empty(t, exec.ran)
}

func TestStackAppend(t *testing.T) {
	a := NewStack().Exec(NewCommand("valet", "install"))
	b := NewStack().Exec(NewCommand("valet", "link", "app"))

	a.Append(b).Append(nil)
	assert.Len(t, a.Commands(), 2)
	assert.Equal(t, "valet link app", a.Commands()[1].String())
}
