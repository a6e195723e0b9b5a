package fintypes

import (
	"strings"

	"github.com/etnz/fintypes/decimal"
)

// LocalizedMoney renders a Money for human display in a given locale. It is
// a value builder: each option returns a copy, Render produces the string.
// Display formatting never alters the Money itself; the canonical wire form
// stays Money.String.
type LocalizedMoney struct {
	money       Money
	locale      Locale
	useCode     bool
	bare        bool
	symbolFirst *bool
	digits      *uint32
}

// Localized starts a display rendering of m in the given locale.
func (m Money) Localized(locale Locale) LocalizedMoney {
	return LocalizedMoney{money: m, locale: locale}
}

// WithCode renders the currency code instead of its symbol.
func (lm LocalizedMoney) WithCode() LocalizedMoney {
	lm.useCode = true
	return lm
}

// WithoutSymbol renders the bare amount with no currency affix.
func (lm LocalizedMoney) WithoutSymbol() LocalizedMoney {
	lm.bare = true
	return lm
}

// SymbolFirst overrides the currency's conventional affix placement.
func (lm LocalizedMoney) SymbolFirst(first bool) LocalizedMoney {
	lm.symbolFirst = &first
	return lm
}

// FractionDigits overrides the number of fraction digits to display; the
// default is the currency's resolved precision.
func (lm LocalizedMoney) FractionDigits(n uint32) LocalizedMoney {
	lm.digits = &n
	return lm
}

// Render produces the localized string, e.g. "$1,234.57" for en-US. Display
// rounding is half to even. It fails on an unsupported locale, and on a
// currency whose precision cannot be resolved unless FractionDigits was
// given.
func (lm LocalizedMoney) Render() (string, error) {
	spec, err := lm.locale.format()
	if err != nil {
		return "", err
	}
	digits := uint32(0)
	if lm.digits != nil {
		digits = *lm.digits
	} else if digits, err = lm.money.currency.DecimalPlaces(); err != nil {
		return "", err
	}

	rounded := lm.money.amount.RoundTo(digits, decimal.HalfEven)
	negative := rounded.IsNegative()
	intPart, fracPart := splitParts(rounded.Abs().String(), digits)
	number := groupDigits(intPart, spec)
	if fracPart != "" {
		number += string(spec.decimalSeparator) + fracPart
	}

	var sb strings.Builder
	if negative {
		sb.WriteByte('-')
	}
	affix, first := lm.affix()
	switch {
	case affix == "":
		sb.WriteString(number)
	case first && lm.useCode:
		sb.WriteString(affix)
		sb.WriteByte(' ')
		sb.WriteString(number)
	case first:
		sb.WriteString(affix)
		sb.WriteString(number)
	case lm.useCode:
		sb.WriteString(number)
		sb.WriteByte(' ')
		sb.WriteString(affix)
	default:
		sb.WriteString(number)
		sb.WriteByte(' ')
		sb.WriteString(affix)
	}
	return sb.String(), nil
}

// String renders like Render, falling back to the canonical form when the
// rendering fails.
func (lm LocalizedMoney) String() string {
	s, err := lm.Render()
	if err != nil {
		return lm.money.String()
	}
	return s
}

// FormatWithLocale is shorthand for Localized(locale).Render().
func (m Money) FormatWithLocale(locale Locale) (string, error) {
	return m.Localized(locale).Render()
}

// LocalizedString renders in the currency's default locale, falling back to
// the canonical form when rendering fails.
func (m Money) LocalizedString() string {
	return m.Localized(m.currency.DefaultLocale()).String()
}

// affix resolves the currency affix and its placement.
func (lm LocalizedMoney) affix() (affix string, first bool) {
	if lm.bare {
		return "", false
	}
	affix = lm.money.currency.Code()
	if !lm.useCode {
		if sym, ok := lm.money.currency.Symbol(); ok {
			affix = sym
		}
	}
	first = lm.money.currency.SymbolFirst()
	if lm.symbolFirst != nil {
		first = *lm.symbolFirst
	}
	return affix, first
}

// splitParts separates the plain decimal string of a non-negative value into
// integer digits and the fraction padded with zeros to the requested width.
func splitParts(s string, digits uint32) (intPart, fracPart string) {
	intPart, fracPart, _ = strings.Cut(s, ".")
	for uint32(len(fracPart)) < digits {
		fracPart += "0"
	}
	return intPart, fracPart
}

// groupDigits inserts the locale's group separator into an unsigned digit
// string following its right-to-left grouping pattern; the pattern's last
// entry repeats (en-IN {3,2,2}: 12345678 -> 1,23,45,678).
func groupDigits(digits string, spec localeFormat) string {
	sizes := groupSizes(len(digits), spec.grouping)
	if len(sizes) == 1 {
		return digits
	}
	var sb strings.Builder
	pos := 0
	for i := len(sizes) - 1; i >= 0; i-- {
		if pos > 0 {
			sb.WriteByte(spec.groupSeparator)
		}
		sb.WriteString(digits[pos : pos+sizes[i]])
		pos += sizes[i]
	}
	return sb.String()
}

// groupSizes splits a digit count into group sizes, rightmost first; the
// leftmost group absorbs the remainder.
func groupSizes(n int, grouping []int) []int {
	sizes := make([]int, 0, 4)
	for i := 0; n > 0; i++ {
		g := grouping[len(grouping)-1]
		if i < len(grouping) {
			g = grouping[i]
		}
		if g >= n {
			g = n
		}
		sizes = append(sizes, g)
		n -= g
	}
	return sizes
}
