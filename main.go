package main

import (
	"fmt"
	"os"

	"github.com/pacopablo/finddups/internal/cli"
)

// version is overridden at build time via ldflags.
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
