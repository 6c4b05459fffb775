// Package main is the entry point for the roleprobe CLI.
//
// roleprobe checks that a set of storage credentials can write to a
// bucket by uploading one zero-byte object. It is meant to be invoked by
// an external scheduler with a mapping of named arguments.
//
// Commands: run, init, version, completion.
//
// For detailed usage information, run:
//
//	roleprobe --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/roleprobe/cmd/roleprobe/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
