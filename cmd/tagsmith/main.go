package main

import (
	"os"

	"github.com/tagsmith-io/tagsmith-cli/internal/adapters/driving/cli"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)

	err := cli.Execute()
	cli.Shutdown()
	if err != nil {
		os.Exit(1)
	}
}
