package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/fintypes"
	"github.com/etnz/fintypes/decimal"
	"github.com/google/subcommands"
)

type extractCmd struct {
	path     string
	currency string
}

func (*extractCmd) Name() string     { return "extract" }
func (*extractCmd) Synopsis() string { return "extract an amount from provider JSON" }
func (*extractCmd) Usage() string {
	return `fin extract -path <jsonpath> -currency <code> [<file>]

  Evaluates a JSONPath expression against a provider payload (a file, or
  stdin when omitted) and prints the result as canonical money. String values
  are parsed exactly; number values go through their shortest decimal form.

Usage Examples:
$ curl -s https://provider/quote | fin extract -path '$.quote.last' -currency USD
`
}

func (c *extractCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "path", "", "JSONPath expression selecting the amount.")
	f.StringVar(&c.currency, "currency", "", "Currency of the extracted amount.")
}

func (c *extractCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.path == "" || c.currency == "" {
		return usageError("extract: both -path and -currency are required")
	}

	in := io.Reader(os.Stdin)
	switch f.NArg() {
	case 0:
	case 1:
		file, err := os.Open(f.Arg(0))
		if err != nil {
			return fail(err)
		}
		defer file.Close()
		in = file
	default:
		return usageError("extract: at most one input file")
	}

	var payload interface{}
	dec := json.NewDecoder(in)
	dec.UseNumber() // keep amounts exact, never through float64
	if err := dec.Decode(&payload); err != nil {
		return fail(fmt.Errorf("decoding payload: %w", err))
	}

	val, err := jsonpath.Get(c.path, payload)
	if err != nil {
		return fail(fmt.Errorf("evaluating %q: %w", c.path, err))
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer: keep the first one if any
	if list, ok := val.([]interface{}); ok && len(list) > 0 {
		val = list[0]
	}

	amount, err := amountOf(val)
	if err != nil {
		return fail(fmt.Errorf("value at %q: %w", c.path, err))
	}
	currency, err := fintypes.ParseCurrency(c.currency)
	if err != nil {
		return fail(err)
	}
	fmt.Println(fintypes.NewMoney(amount, currency))
	return subcommands.ExitSuccess
}

func amountOf(val interface{}) (decimal.Decimal, error) {
	switch v := val.(type) {
	case json.Number:
		if d, err := decimal.Parse(v.String()); err == nil {
			return d, nil
		}
		// exponent notation: go through the float form
		f, err := v.Float64()
		if err != nil {
			return decimal.Zero(), err
		}
		return decimal.Parse(strconv.FormatFloat(f, 'f', -1, 64))
	case string:
		return decimal.Parse(v)
	case float64:
		return decimal.Parse(strconv.FormatFloat(v, 'f', -1, 64))
	default:
		return decimal.Zero(), fmt.Errorf("not a number: %v", val)
	}
}
