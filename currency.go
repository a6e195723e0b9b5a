package fintypes

import (
	"fmt"
	"strings"

	gomoney "github.com/Rhymond/go-money"
)

// Currency identifies either a standards-backed ISO 4217 code or an
// arbitrary provider code held in canonical token form. Values are
// immutable, freely copyable and usable as map keys; equality operates on
// the resolved code. The zero value is not a valid currency: construct
// through ParseCurrency or MustCurrency.
type Currency struct {
	code string
	std  bool
}

// Common currencies.
var (
	USD = MustCurrency("USD")
	EUR = MustCurrency("EUR")
	GBP = MustCurrency("GBP")
	JPY = MustCurrency("JPY")
	CHF = MustCurrency("CHF")
	BTC = MustCurrency("BTC")
	ETH = MustCurrency("ETH")
	XMR = MustCurrency("XMR")
)

// currencyAliases maps canonical tokens of well-known spellings to their
// fixed code.
var currencyAliases = map[string]string{
	"BITCOIN":  "BTC",
	"ETHEREUM": "ETH",
	"MONERO":   "XMR",
	"EURO":     "EUR",
	"RMB":      "CNY",
}

// noIsoExponent lists ISO 4217 codes for which the standard defines no
// minor-unit exponent (precious metals, bond-market units, special drawing
// rights, testing and no-currency codes). For these the registry overlay is
// the only source of precision.
var noIsoExponent = map[string]bool{
	"XAU": true, "XAG": true, "XPT": true, "XPD": true,
	"XBA": true, "XBB": true, "XBC": true, "XBD": true,
	"XDR": true, "XSU": true, "XUA": true, "XTS": true, "XXX": true,
}

// ParseCurrency resolves arbitrary input to a Currency. The input is
// canonicalized, checked against the alias table, then against the ISO 4217
// table; anything else becomes a provider code carrying its canonical token.
func ParseCurrency(input string) (Currency, error) {
	token, err := Canonicalize(input)
	if err != nil {
		return Currency{}, fmt.Errorf("invalid currency %q: %w", input, err)
	}
	if alias, ok := currencyAliases[token]; ok {
		token = alias
	}
	return Currency{code: token, std: gomoney.GetCurrency(token) != nil}, nil
}

// MustCurrency is ParseCurrency for statically known codes; it panics on
// error.
func MustCurrency(code string) Currency {
	c, err := ParseCurrency(code)
	if err != nil {
		panic(err)
	}
	return c
}

// Code returns the canonical currency code, which is also the wire form.
func (c Currency) Code() string { return c.code }

func (c Currency) String() string { return c.code }

// IsStandard reports whether the code is defined by ISO 4217.
func (c Currency) IsStandard() bool { return c.std }

// Name returns the registered human-readable name, falling back to the code.
func (c Currency) Name() string {
	if meta, ok := LookupCurrencyMetadata(c.code); ok && meta.Name != "" {
		return meta.Name
	}
	return c.code
}

// Symbol returns the display symbol for this currency and whether one is
// known. Registered metadata takes precedence over the ISO table.
func (c Currency) Symbol() (string, bool) {
	if meta, ok := LookupCurrencyMetadata(c.code); ok {
		return meta.Symbol, meta.Symbol != ""
	}
	if c.std {
		if cur := gomoney.GetCurrency(c.code); cur != nil && cur.Grapheme != "" {
			return cur.Grapheme, true
		}
	}
	return "", false
}

// SymbolFirst reports whether the symbol is conventionally rendered before
// the amount ("$1" rather than "1 $").
func (c Currency) SymbolFirst() bool {
	if meta, ok := LookupCurrencyMetadata(c.code); ok {
		return meta.SymbolFirst
	}
	if c.std {
		if cur := gomoney.GetCurrency(c.code); cur != nil {
			return strings.Index(cur.Template, "$") < strings.Index(cur.Template, "1")
		}
	}
	return false
}

// DefaultLocale returns the registered default locale, falling back to
// LocaleEnUS.
func (c Currency) DefaultLocale() Locale {
	if meta, ok := LookupCurrencyMetadata(c.code); ok && meta.DefaultLocale != "" {
		return meta.DefaultLocale
	}
	return LocaleEnUS
}

// DecimalPlaces resolves the currency's minor-unit precision. The order is
// load-bearing: the ISO exponent wins when the standard defines one, the
// registry overlay is consulted next, and only then does the query fail with
// ErrMetadataNotFound. "The standard has no opinion" and "no one registered
// an opinion" therefore stay distinguishable from a successful lookup.
func (c Currency) DecimalPlaces() (uint32, error) {
	if c.std && !noIsoExponent[c.code] {
		if cur := gomoney.GetCurrency(c.code); cur != nil && cur.Fraction >= 0 {
			return uint32(cur.Fraction), nil
		}
	}
	if meta, ok := LookupCurrencyMetadata(c.code); ok {
		return meta.DecimalPlaces, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrMetadataNotFound, c.code)
}

// MinorUnitScale returns 10^DecimalPlaces, the factor between major and
// minor units. It fails like DecimalPlaces on missing metadata, and with
// ErrScaleTooLarge when the precision cannot be held by an int64 scale.
func (c Currency) MinorUnitScale() (int64, error) {
	places, err := c.DecimalPlaces()
	if err != nil {
		return 0, err
	}
	if places > MaxMinorUnitDecimals {
		return 0, fmt.Errorf("%w: %d minor-unit digits exceed %d", ErrScaleTooLarge, places, MaxMinorUnitDecimals)
	}
	scale := int64(1)
	for i := uint32(0); i < places; i++ {
		scale *= 10
	}
	return scale, nil
}

// MarshalText emits the canonical code.
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.code), nil
}

// UnmarshalText parses a currency through the same path as ParseCurrency,
// so wire values and user input share one canonicalization.
func (c *Currency) UnmarshalText(text []byte) error {
	parsed, err := ParseCurrency(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
