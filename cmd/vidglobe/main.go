package main

import (
	"fmt"
	"os"

	"vidglobe/cmd/vidglobe/cmd"
	"vidglobe/internal/config"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration warning: %v\n", err)
	}

	cmd.Execute()
}
