package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/fintypes"
	"github.com/google/subcommands"
)

type currencyCmd struct{}

func (*currencyCmd) Name() string     { return "currency" }
func (*currencyCmd) Synopsis() string { return "show the resolved metadata of a currency code" }
func (*currencyCmd) Usage() string {
	return `fin currency <code>...

  Resolves each code and prints its canonical form, origin (ISO 4217 or
  provider), precision and display metadata.

Usage Examples:
$ fin currency usd bitcoin XAU
`
}

func (c *currencyCmd) SetFlags(f *flag.FlagSet) {}

func (c *currencyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		return usageError("currency: at least one code is required")
	}

	status := subcommands.ExitSuccess
	var b strings.Builder
	for _, arg := range f.Args() {
		cur, err := fintypes.ParseCurrency(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", arg, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Fprintf(&b, "# %s\n\n", cur.Code())
		origin := "provider code"
		if cur.IsStandard() {
			origin = "ISO 4217"
		}
		fmt.Fprintf(&b, "* name: %s\n", cur.Name())
		fmt.Fprintf(&b, "* origin: %s\n", origin)
		if places, err := cur.DecimalPlaces(); err != nil {
			fmt.Fprintf(&b, "* precision: unknown (%v)\n", err)
		} else {
			scale, _ := cur.MinorUnitScale()
			fmt.Fprintf(&b, "* precision: %d decimal places (1/%d)\n", places, scale)
		}
		if sym, ok := cur.Symbol(); ok {
			fmt.Fprintf(&b, "* symbol: %s\n", sym)
		}
		fmt.Fprintf(&b, "* default locale: %s\n\n", cur.DefaultLocale())
	}
	printMarkdown(b.String())
	return status
}
