package main

import (
	"fmt"
	"os"

	"github.com/scaffoldnext/preflight/pkg/cli"
	"github.com/scaffoldnext/preflight/pkg/console"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	rootCmd := cli.NewRootCommand(version)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
		os.Exit(1)
	}
}
