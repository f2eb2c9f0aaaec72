package main

import (
	"fmt"
	"os"

	"github.com/go-sif/tidy/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func run() error {
	return cli.NewRootCmd(version).Execute()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
