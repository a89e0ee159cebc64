package main

import (
	"os"

	"github.com/Pr0ject-X/px-valet/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
