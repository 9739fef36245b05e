// Command inplace runs the in-place rendering demo and reports its version.
package main

import (
	"os"

	"github.com/go-drift/inplace/cmd/inplace/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
