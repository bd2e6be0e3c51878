package main

import (
	"fmt"
	"os"

	"github.com/rshade/footprint/internal/cli"
	"github.com/rshade/footprint/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and returns the process exit code.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	err := root.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return cli.ExitCode(err)
}
