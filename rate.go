package fintypes

import (
	"fmt"

	"github.com/etnz/fintypes/decimal"
)

// ExchangeRate is a stateless single-step conversion factor: one unit of the
// base currency is worth rate units of the quote currency.
type ExchangeRate struct {
	base  Currency
	quote Currency
	rate  decimal.Decimal
}

// NewExchangeRate validates that the rate is strictly positive and that base
// and quote differ, failing with ErrInvalidExchangeRate otherwise.
func NewExchangeRate(base, quote Currency, rate decimal.Decimal) (ExchangeRate, error) {
	if !rate.IsPositive() {
		return ExchangeRate{}, fmt.Errorf("rate %s %s/%s must be positive: %w", rate, base, quote, ErrInvalidExchangeRate)
	}
	if base == quote {
		return ExchangeRate{}, fmt.Errorf("base and quote are both %s: %w", base, ErrInvalidExchangeRate)
	}
	return ExchangeRate{base: base, quote: quote, rate: rate}, nil
}

func (r ExchangeRate) Base() Currency        { return r.base }
func (r ExchangeRate) Quote() Currency       { return r.quote }
func (r ExchangeRate) Rate() decimal.Decimal { return r.rate }

// String renders "0.92 USD/EUR".
func (r ExchangeRate) String() string {
	return fmt.Sprintf("%s %s/%s", r.rate, r.base, r.quote)
}

// Inverse swaps base and quote. It is fallible because 1/rate may not be a
// terminating decimal; in that case it fails with ErrScaleTooLarge rather
// than guess a precision.
func (r ExchangeRate) Inverse() (ExchangeRate, error) {
	inv, err := decimal.One().Div(r.rate)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("invert %s: %w", r, err)
	}
	return ExchangeRate{base: r.quote, quote: r.base, rate: inv}, nil
}

// TryConvert applies the rate to an amount in the base currency. The exact
// product is rounded half away from zero to the quote currency's resolved
// precision; this is the library's single deliberate quantization point.
// 100.00 USD at 0.92 USD/EUR yields exactly 92.00 EUR.
func (m Money) TryConvert(r ExchangeRate) (Money, error) {
	if m.currency != r.base {
		return Money{}, fmt.Errorf("convert %s with %s: %w", m, r, ErrCurrencyMismatch)
	}
	product, err := m.amount.Mul(r.rate)
	if err != nil {
		return Money{}, fmt.Errorf("convert %s with %s: %w", m, r, err)
	}
	places, err := r.quote.DecimalPlaces()
	if err != nil {
		return Money{}, fmt.Errorf("convert %s to %s: %w", m, r.quote, err)
	}
	return Money{amount: product.RoundTo(places, decimal.HalfAwayFromZero), currency: r.quote}, nil
}
