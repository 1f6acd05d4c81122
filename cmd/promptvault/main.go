// Command promptvault is a searchable, filterable gallery of
// image-generation prompts for the terminal.
package main

import (
	"os"

	"github.com/custodia-labs/promptvault/internal/adapters/driving/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
