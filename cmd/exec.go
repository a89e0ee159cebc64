package cmd

import (
	"os/exec"
	"time"
)

// findExecutable wraps exec.LookPath for testability.
var findExecutable = exec.LookPath

func secondsDuration(n int) time.Duration {
	return time.Duration(n) * time.Second
}
