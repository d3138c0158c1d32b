// Package main provides the entry point for the unicycle CLI tool.
package main

import "github.com/mrdmnd/unicycle/cmd/unicycle/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	cmd.Execute(version, commit, date, builtBy)
}
