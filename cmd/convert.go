package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/fintypes"
	"github.com/etnz/fintypes/decimal"
	"github.com/google/subcommands"
)

type convertCmd struct {
	rate string
	to   string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert an amount with an exchange rate" }
func (*convertCmd) Usage() string {
	return `fin convert -rate <rate> -to <currency> <amount> <currency>

  Applies the rate to the amount and prints the result rounded to the target
  currency's precision.

Usage Examples:
$ fin convert -rate 0.92 -to EUR 100.00 USD
92.00 EUR
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.rate, "rate", "", "Units of the target currency per unit of the source currency.")
	f.StringVar(&c.to, "to", "", "Target currency code.")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.rate == "" || c.to == "" {
		return usageError("convert: both -rate and -to are required")
	}
	m, status := moneyArg(f)
	if status != subcommands.ExitSuccess {
		return status
	}

	rate, err := decimal.Parse(c.rate)
	if err != nil {
		return fail(err)
	}
	quote, err := fintypes.ParseCurrency(c.to)
	if err != nil {
		return fail(err)
	}
	xr, err := fintypes.NewExchangeRate(m.Currency(), quote, rate)
	if err != nil {
		return fail(err)
	}
	converted, err := m.TryConvert(xr)
	if err != nil {
		return fail(err)
	}
	fmt.Println(converted)
	return subcommands.ExitSuccess
}
