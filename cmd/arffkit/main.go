// Package main provides the arffkit command-line tool.
package main

import (
	"os"

	"github.com/leapstack-labs/arffkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
