package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/fintypes"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	locale string
	code   bool
	bare   bool
	digits int
}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "render a monetary amount for a locale" }
func (*fmtCmd) Usage() string {
	return `fin fmt [-locale <locale>] [-code] [-bare] [-digits <n>] <amount> <currency>

  Renders an amount for human display. Without -locale the currency's default
  locale is used. The canonical form "<amount> <CODE>" is accepted as a single
  argument too.

Usage Examples:
$ fin fmt 1234567.89 USD
$ fin fmt -locale en-IN -code 1234567.89 INR
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.locale, "locale", "", "Locale to render with (en-US, en-IN, en-EU, en-BY).")
	f.BoolVar(&c.code, "code", false, "Render the currency code instead of its symbol.")
	f.BoolVar(&c.bare, "bare", false, "Render the bare amount without a currency affix.")
	f.IntVar(&c.digits, "digits", -1, "Fraction digits to display. Defaults to the currency's precision.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, status := moneyArg(f)
	if status != subcommands.ExitSuccess {
		return status
	}

	locale := m.Currency().DefaultLocale()
	if c.locale != "" {
		locale = fintypes.Locale(c.locale)
	}
	lm := m.Localized(locale)
	if c.code {
		lm = lm.WithCode()
	}
	if c.bare {
		lm = lm.WithoutSymbol()
	}
	if c.digits >= 0 {
		lm = lm.FractionDigits(uint32(c.digits))
	}

	out, err := lm.Render()
	if err != nil {
		return fail(err)
	}
	fmt.Println(out)
	return subcommands.ExitSuccess
}

// moneyArg reads "<amount> <currency>" from the remaining arguments, either
// as two arguments or as the single canonical form.
func moneyArg(f *flag.FlagSet) (fintypes.Money, subcommands.ExitStatus) {
	var text string
	switch f.NArg() {
	case 1:
		text = f.Arg(0)
	case 2:
		text = f.Arg(0) + " " + f.Arg(1)
	default:
		return fintypes.Money{}, usageError("expected <amount> <currency>, got %q", strings.Join(f.Args(), " "))
	}
	m, err := fintypes.ParseMoney(text)
	if err != nil {
		return fintypes.Money{}, fail(err)
	}
	return m, subcommands.ExitSuccess
}
