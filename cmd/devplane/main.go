// Package main is the entry point for the devplane CLI.
//
// devplane resolves per-environment platform configuration for Coder on
// Scaleway, estimates its monthly cost, and prepares the inputs the
// Terraform layer consumes: tfvars files, the state bucket, and generated
// credentials.
//
// Commands: init, plan, cost, render, bootstrap, pricing, secrets, doctor.
//
// For detailed usage information, run:
//
//	devplane --help
package main

import (
	"fmt"
	"os"

	"github.com/devplane/devplane/cmd/devplane/commands"
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
