// Command diagscan reports where two numeric recordings overlap.
//
//	diagscan [--tolerance T] [--no-cutoff] [--workers N] [--grid] X_FILE Y_FILE
package main

import (
	"os"

	"github.com/katalvlaran/diagscan/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
