// Package main provides the dirlint CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/dirlint/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
