// imgforge main entrypoint
//
// This binary builds, tags and pushes the forge container image variants.
// It resolves the requested variant, derives the tag matrix, runs the
// release preflight when a release tag is supplied, and drives docker
// through a single command runner that honors dry-run.
//
// Keep this file simple: load env overrides, hand off to the CLI, exit
// with its code. All the heavy lifting stays internal.

package main

import (
	"os"

	"github.com/joho/godotenv"

	"imgforge/internal/cli"
)

func main() {
	// Local overrides for dev runs; harmless when the file is absent.
	_ = godotenv.Load(".imgforge.env")

	os.Exit(cli.Run(os.Args[1:], os.Stdout))
}
