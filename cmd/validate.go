package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fintypes"
	"github.com/google/subcommands"
)

type validateCmd struct {
	kind string
}

func (*validateCmd) Name() string     { return "validate" }
func (*validateCmd) Synopsis() string { return "validate security identifiers (ISIN, FIGI, symbol)" }
func (*validateCmd) Usage() string {
	return `fin validate [-kind isin|figi|symbol] <identifier>...

  Validates each identifier and prints its canonical form. Without -kind the
  identifier kind is detected: checksummed ISIN first, then FIGI, then ticker
  symbol.

Usage Examples:
$ fin validate US0378331005 BBG000B9XRY4
$ fin validate -kind symbol brk.b
`
}

func (c *validateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "", "Identifier kind (isin, figi, symbol). Detected when empty.")
}

func (c *validateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		return usageError("validate: at least one identifier is required")
	}

	status := subcommands.ExitSuccess
	for _, arg := range f.Args() {
		kind, canonical, err := validateOne(c.kind, arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", arg, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("%s\t%s\n", kind, canonical)
	}
	return status
}

func validateOne(kind, arg string) (string, string, error) {
	switch kind {
	case "isin":
		id, err := fintypes.ParseISIN(arg)
		return "isin", id.String(), err
	case "figi":
		id, err := fintypes.ParseFIGI(arg)
		return "figi", id.String(), err
	case "symbol":
		s, err := fintypes.ParseSymbol(arg)
		return "symbol", s.String(), err
	case "":
		if id, err := fintypes.ParseISIN(arg); err == nil {
			return "isin", id.String(), nil
		}
		if id, err := fintypes.ParseFIGI(arg); err == nil {
			return "figi", id.String(), nil
		}
		s, err := fintypes.ParseSymbol(arg)
		return "symbol", s.String(), err
	default:
		return "", "", fmt.Errorf("unknown identifier kind %q", kind)
	}
}
