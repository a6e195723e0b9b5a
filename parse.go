package fintypes

import (
	"fmt"
	"strings"

	"github.com/etnz/fintypes/decimal"
)

// ParseMoneyLocale reads a human-formatted amount in the given locale,
// strictly: an attached symbol or code must belong to the expected currency
// (ErrMismatchedCurrencyAffix), digit groups must follow the locale's
// pattern exactly (ErrInvalidGrouping), and fraction digits beyond the
// currency's resolved precision are rejected (ErrScaleTooLarge) rather than
// silently rounded. A bare number with no affix is accepted.
func ParseMoneyLocale(text string, currency Currency, locale Locale) (Money, error) {
	spec, err := locale.format()
	if err != nil {
		return Money{}, err
	}
	places, err := currency.DecimalPlaces()
	if err != nil {
		return Money{}, err
	}

	t := strings.TrimSpace(text)
	if t == "" {
		return Money{}, fmt.Errorf("%w: empty input", ErrInvalidAmountFormat)
	}

	negative, signed := false, false
	if t[0] == '-' || t[0] == '+' {
		negative, signed = t[0] == '-', true
		t = strings.TrimLeft(t[1:], " ")
	}
	t, err = stripAffix(t, currency)
	if err != nil {
		return Money{}, err
	}
	if t != "" && (t[0] == '-' || t[0] == '+') {
		// sign after a leading affix, as in "$-12.34"
		if signed {
			return Money{}, fmt.Errorf("%w: %q: repeated sign", ErrInvalidAmountFormat, text)
		}
		negative = t[0] == '-'
		t = t[1:]
	}
	if t == "" {
		return Money{}, fmt.Errorf("%w: %q: no digits", ErrInvalidAmountFormat, text)
	}

	intPart := t
	fracPart := ""
	if i := strings.IndexByte(t, spec.decimalSeparator); i >= 0 {
		intPart, fracPart = t[:i], t[i+1:]
		if strings.IndexByte(fracPart, spec.decimalSeparator) >= 0 {
			return Money{}, fmt.Errorf("%w: %q: repeated decimal separator", ErrInvalidAmountFormat, text)
		}
	}
	intDigits, err := ungroup(intPart, spec, text)
	if err != nil {
		return Money{}, err
	}
	if fracPart != "" && !allDigits(fracPart) {
		return Money{}, fmt.Errorf("%w: %q: malformed fraction", ErrInvalidAmountFormat, text)
	}
	if uint32(len(fracPart)) > places {
		return Money{}, fmt.Errorf("%w: %q has %d fraction digits, %s supports %d",
			ErrScaleTooLarge, text, len(fracPart), currency, places)
	}

	plain := intDigits
	if fracPart != "" {
		plain += "." + fracPart
	}
	if negative {
		plain = "-" + plain
	}
	amount, err := decimal.Parse(plain)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmountFormat, text)
	}
	return Money{amount: amount, currency: currency}, nil
}

// ParseMoneyDefaultLocale parses with the currency's registered default
// locale.
func ParseMoneyDefaultLocale(text string, currency Currency) (Money, error) {
	return ParseMoneyLocale(text, currency, currency.DefaultLocale())
}

// stripAffix removes one leading or trailing currency affix (symbol or
// code). Any other letter content is a foreign affix and fails with
// ErrMismatchedCurrencyAffix.
func stripAffix(t string, currency Currency) (string, error) {
	code := currency.Code()
	candidates := []string{code}
	if symbol, ok := currency.Symbol(); ok {
		// longest first, so a symbol never shadows a code it prefixes
		if len(symbol) > len(code) {
			candidates = []string{symbol, code}
		} else {
			candidates = append(candidates, symbol)
		}
	}
	for _, affix := range candidates {
		if rest, ok := cutAffixPrefix(t, affix); ok {
			return rest, nil
		}
		if rest, ok := cutAffixSuffix(t, affix); ok {
			return rest, nil
		}
	}
	if i := strings.IndexFunc(t, isAffixRune); i >= 0 {
		return "", fmt.Errorf("%w: %q does not carry %s", ErrMismatchedCurrencyAffix, t, currency)
	}
	return t, nil
}

func cutAffixPrefix(t, affix string) (string, bool) {
	if rest, ok := strings.CutPrefix(t, affix); ok {
		return strings.TrimLeft(rest, " "), true
	}
	return t, false
}

func cutAffixSuffix(t, affix string) (string, bool) {
	if rest, ok := strings.CutSuffix(t, affix); ok {
		return strings.TrimRight(rest, " "), true
	}
	return t, false
}

// isAffixRune reports characters that can only belong to a currency affix,
// never to a localized number.
func isAffixRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return false
	case r == ' ' || r == '.' || r == ',' || r == '-' || r == '+':
		return false
	}
	return true
}

// ungroup validates the integer part against the locale's grouping pattern
// and returns its bare digits. Separators are optional, but once present
// every group must match the pattern exactly.
func ungroup(intPart string, spec localeFormat, text string) (string, error) {
	if intPart == "" {
		return "", fmt.Errorf("%w: %q: missing integer digits", ErrInvalidAmountFormat, text)
	}
	groups := strings.Split(intPart, string(spec.groupSeparator))
	for _, g := range groups {
		if g == "" || !allDigits(g) {
			return "", fmt.Errorf("%w: %q: malformed integer part", ErrInvalidAmountFormat, text)
		}
	}
	if len(groups) > 1 {
		// rightmost group first, mirroring how the pattern is defined
		for i := 0; i < len(groups)-1; i++ {
			expected := spec.grouping[len(spec.grouping)-1]
			if i < len(spec.grouping) {
				expected = spec.grouping[i]
			}
			size := len(groups[len(groups)-1-i])
			if size != expected {
				return "", fmt.Errorf("%w: %q: group of %d digits where the locale expects %d",
					ErrInvalidGrouping, text, size, expected)
			}
		}
		leftmost := len(groups[0])
		expected := spec.grouping[len(spec.grouping)-1]
		if len(groups)-1 < len(spec.grouping) {
			expected = spec.grouping[len(groups)-1]
		}
		if leftmost > expected {
			return "", fmt.Errorf("%w: %q: leading group of %d digits exceeds %d",
				ErrInvalidGrouping, text, leftmost, expected)
		}
	}
	return strings.Join(groups, ""), nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
