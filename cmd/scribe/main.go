// Package main is the entry point for the scribe CLI binary.
package main

import (
	"os"

	"github.com/irahardianto/scribe/cmd/scribe/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
