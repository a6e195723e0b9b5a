package fintypes

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/etnz/fintypes/decimal"
)

// Money pairs an exact decimal amount with a Currency. Values are immutable;
// construction never rounds and never fails, arithmetic is exact or it
// reports an error. The zero value is the amount 0 of the zero Currency and
// is not meaningful before construction through NewMoney or ParseMoney.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney pairs an amount with a currency as-is, keeping every digit the
// caller supplied even beyond the currency's minor-unit precision.
func NewMoney(amount decimal.Decimal, currency Currency) Money {
	return Money{amount: amount, currency: currency}
}

// ParseMoney reads the canonical form "<amount> <CODE>", the inverse of
// String.
func ParseMoney(s string) (Money, error) {
	trimmed := strings.TrimSpace(s)
	i := strings.LastIndexByte(trimmed, ' ')
	if i < 0 {
		return Money{}, fmt.Errorf("money %q: missing currency: %w", s, ErrInvalidAmountFormat)
	}
	amount, err := decimal.Parse(strings.TrimSpace(trimmed[:i]))
	if err != nil {
		return Money{}, fmt.Errorf("money %q: %w", s, err)
	}
	currency, err := ParseCurrency(trimmed[i+1:])
	if err != nil {
		return Money{}, fmt.Errorf("money %q: %w", s, err)
	}
	return Money{amount: amount, currency: currency}, nil
}

// MustParseMoney is ParseMoney for statically known literals; it panics on
// error.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// MoneyFromMinorUnits builds the amount units/10^places for the currency's
// resolved minor-unit precision. 9212 with EUR yields 92.12 EUR.
func MoneyFromMinorUnits(units *big.Int, currency Currency) (Money, error) {
	places, err := currency.DecimalPlaces()
	if err != nil {
		return Money{}, err
	}
	return Money{amount: decimal.FromMinorUnits(units, places, decimal.Fixed), currency: currency}, nil
}

// Amount returns the exact decimal amount.
func (m Money) Amount() decimal.Decimal { return m.amount }

// Currency returns the currency.
func (m Money) Currency() Currency { return m.currency }

// String emits the canonical form "<amount> <CODE>", e.g. "12.34 USD".
func (m Money) String() string {
	return m.amount.String() + " " + m.currency.Code()
}

// Equal reports value equality: same currency and numerically equal amounts
// ("1.5 USD" equals "1.50 USD").
func (m Money) Equal(n Money) bool {
	return m.currency == n.currency && m.amount.Equal(n.amount)
}

func (m Money) IsZero() bool     { return m.amount.IsZero() }
func (m Money) IsNegative() bool { return m.amount.IsNegative() }
func (m Money) IsPositive() bool { return m.amount.IsPositive() }

func (m Money) Neg() Money { return Money{amount: m.amount.Neg(), currency: m.currency} }
func (m Money) Abs() Money { return Money{amount: m.amount.Abs(), currency: m.currency} }

// TryAdd returns m+n, failing with ErrCurrencyMismatch when the currencies
// differ.
func (m Money) TryAdd(n Money) (Money, error) {
	if m.currency != n.currency {
		return Money{}, fmt.Errorf("add %s + %s: %w", m.currency, n.currency, ErrCurrencyMismatch)
	}
	return Money{amount: m.amount.Add(n.amount), currency: m.currency}, nil
}

// TrySub returns m-n, failing with ErrCurrencyMismatch when the currencies
// differ.
func (m Money) TrySub(n Money) (Money, error) {
	if m.currency != n.currency {
		return Money{}, fmt.Errorf("sub %s - %s: %w", m.currency, n.currency, ErrCurrencyMismatch)
	}
	return Money{amount: m.amount.Sub(n.amount), currency: m.currency}, nil
}

// TryMul scales the amount by a dimensionless factor. It fails with
// ErrScaleTooLarge when the exact product exceeds the backend's precision.
func (m Money) TryMul(factor decimal.Decimal) (Money, error) {
	product, err := m.amount.Mul(factor)
	if err != nil {
		return Money{}, fmt.Errorf("mul %s * %s: %w", m, factor, err)
	}
	return Money{amount: product, currency: m.currency}, nil
}

// TryDiv divides the amount by a dimensionless divisor. It fails with
// ErrDivisionByZero on a zero divisor and with ErrScaleTooLarge when the
// exact quotient is not a terminating decimal.
func (m Money) TryDiv(divisor decimal.Decimal) (Money, error) {
	quotient, err := m.amount.Div(divisor)
	if err != nil {
		return Money{}, fmt.Errorf("div %s / %s: %w", m, divisor, err)
	}
	return Money{amount: quotient, currency: m.currency}, nil
}

// AsMinorUnits returns the amount in the currency's minor units (12.34 USD →
// 1234). ok is false, without error, when the amount carries more fractional
// precision than the currency supports; err reports precision-resolution
// failures only.
func (m Money) AsMinorUnits() (units *big.Int, ok bool, err error) {
	places, err := m.currency.DecimalPlaces()
	if err != nil {
		return nil, false, err
	}
	units, ok = m.amount.MinorUnits(places)
	return units, ok, nil
}

type moneyJSON struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// MarshalJSON emits {"amount":"12.34","currency":"USD"}; the amount is a
// string so no reader can degrade it to a float.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{Amount: m.amount.String(), Currency: m.currency.Code()})
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var w moneyJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	amount, err := decimal.Parse(w.Amount)
	if err != nil {
		return fmt.Errorf("money amount %q: %w", w.Amount, err)
	}
	currency, err := ParseCurrency(w.Currency)
	if err != nil {
		return err
	}
	*m = Money{amount: amount, currency: currency}
	return nil
}

// UncheckedMoney is the opt-in panicking surface over Money arithmetic, for
// call sites that have already established invariants. It panics only on
// currency mismatch and division by zero; everything else stays total: Mul
// promotes to the arbitrary-precision backend instead of overflowing, Div
// rounds half away from zero at the backend's maximum scale instead of
// rejecting non-terminating quotients.
type UncheckedMoney struct {
	m Money
}

// Unchecked enters the panicking surface.
func (m Money) Unchecked() UncheckedMoney { return UncheckedMoney{m: m} }

// Money returns to the checked surface.
func (u UncheckedMoney) Money() Money { return u.m }

func (u UncheckedMoney) String() string { return u.m.String() }

func (u UncheckedMoney) Add(n Money) UncheckedMoney {
	sum, err := u.m.TryAdd(n)
	if err != nil {
		panic(err)
	}
	return UncheckedMoney{m: sum}
}

func (u UncheckedMoney) Sub(n Money) UncheckedMoney {
	diff, err := u.m.TrySub(n)
	if err != nil {
		panic(err)
	}
	return UncheckedMoney{m: diff}
}

func (u UncheckedMoney) Mul(factor decimal.Decimal) UncheckedMoney {
	product, err := u.m.TryMul(factor)
	if err == nil {
		return UncheckedMoney{m: product}
	}
	wide, _ := u.m.amount.Convert(decimal.Arbitrary)
	product, err = Money{amount: wide, currency: u.m.currency}.TryMul(factor)
	if err != nil {
		panic(err)
	}
	return UncheckedMoney{m: product}
}

func (u UncheckedMoney) Div(divisor decimal.Decimal) UncheckedMoney {
	quotient, err := u.m.amount.DivRound(divisor, decimal.MaxScale)
	if err != nil {
		panic(fmt.Errorf("div %s / %s: %w", u.m, divisor, err))
	}
	return UncheckedMoney{m: Money{amount: quotient, currency: u.m.currency}}
}
