// Package main provides the clippygen CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/clippygen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
