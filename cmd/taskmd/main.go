// Package main is the entry point for the taskmd CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/taskmd/taskmd/internal/app"
	"github.com/taskmd/taskmd/internal/cli"
	"github.com/taskmd/taskmd/internal/infra/project"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// The project root must be known before the container exists, so
	// -C/--dir is scanned here rather than in cobra.
	root := project.Locate(explicitDir(os.Args[1:]))

	container := app.New(root)
	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}

// explicitDir extracts the value of -C/--dir from args, if present.
func explicitDir(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "-C" || arg == "--dir":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(arg, "--dir="):
			return strings.TrimPrefix(arg, "--dir=")
		case strings.HasPrefix(arg, "-C="):
			return strings.TrimPrefix(arg, "-C=")
		}
	}
	return ""
}
