// Package cmd implements the CLI application around the fintypes library.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Commands lists the subcommands in registration order. A main package
// registers each of them on its commander and executes the user-selected
// one.
var Commands = []subcommands.Command{
	&validateCmd{},
	&fmtCmd{},
	&convertCmd{},
	&minorCmd{},
	&currencyCmd{},
	&extractCmd{},
	&topicCmd{},
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail prints an error to stderr and returns the failure status, the single
// error path every command funnels through.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

// usageError prints a usage problem to stderr.
func usageError(format string, args ...interface{}) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitUsageError
}
