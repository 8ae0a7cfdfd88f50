package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/unionfind/internal/cli"
)

// Version is set at build time with -ldflags.
var Version = "dev"

func main() {
	if err := cli.NewRootCommand(Version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "unionfind:", err)
		os.Exit(1)
	}
}
