// Package main implements the physical command line tool, a unit-conversion
// and dimensional-analysis front end for the Physical library.
package main

import (
	"os"

	"github.com/BhaskerGarudadri/Physical/cmd/physical/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
