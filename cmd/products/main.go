package main

import (
	"errors"
	"os"

	"github.com/dyluth/products/cmd/products/commands"
	"github.com/dyluth/products/internal/printer"
)

// Version information - set during build
var (
	version = "0.1.0"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Set version information on root command
	commands.SetVersionInfo(version, commit, date)

	// Command errors are printed by the printer package; anything else
	// (unknown command, cobra internals) is reported here
	if err := commands.Execute(); err != nil {
		var reported *printer.ReportedError
		if !errors.As(err, &reported) {
			_ = printer.Error("command failed", err.Error(), []string{"Run 'products --help' for usage."})
		}
		os.Exit(commands.ExitCode(err))
	}
}
