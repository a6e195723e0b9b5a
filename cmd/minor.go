package cmd

import (
	"context"
	"flag"
	"fmt"
	"math/big"

	"github.com/etnz/fintypes"
	"github.com/google/subcommands"
)

type minorCmd struct {
	from string
}

func (*minorCmd) Name() string     { return "minor" }
func (*minorCmd) Synopsis() string { return "convert an amount to or from minor units" }
func (*minorCmd) Usage() string {
	return `fin minor [-from <currency>] <amount> [<currency>]

  Prints the amount in the currency's minor units (12.34 USD -> 1234). With
  -from the argument is an integer minor-unit count converted back to a
  decimal amount.

Usage Examples:
$ fin minor 12.34 USD
1234
$ fin minor -from EUR 9212
92.12 EUR
`
}

func (c *minorCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Interpret the argument as minor units of this currency.")
}

func (c *minorCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from != "" {
		if f.NArg() != 1 {
			return usageError("minor -from: expected a single integer argument")
		}
		units, ok := new(big.Int).SetString(f.Arg(0), 10)
		if !ok {
			return usageError("minor -from: %q is not an integer", f.Arg(0))
		}
		currency, err := fintypes.ParseCurrency(c.from)
		if err != nil {
			return fail(err)
		}
		m, err := fintypes.MoneyFromMinorUnits(units, currency)
		if err != nil {
			return fail(err)
		}
		fmt.Println(m)
		return subcommands.ExitSuccess
	}

	m, status := moneyArg(f)
	if status != subcommands.ExitSuccess {
		return status
	}
	units, ok, err := m.AsMinorUnits()
	if err != nil {
		return fail(err)
	}
	if !ok {
		return fail(fmt.Errorf("%s carries more precision than %s supports", m, m.Currency()))
	}
	fmt.Println(units)
	return subcommands.ExitSuccess
}
