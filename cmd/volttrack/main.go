// Command volttrack runs the usage engine offline against a backup bundle file.
package main

import (
	"os"

	"github.com/volttrack/backend/cmd/volttrack/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
