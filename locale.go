package fintypes

import "fmt"

// Locale identifies a closed set of formatting conventions for rendering and
// parsing Money. Unknown locales fail rather than silently defaulting.
type Locale string

const (
	// LocaleEnUS groups 3-3-3 with ',' thousands and '.' decimal.
	LocaleEnUS Locale = "en-US"
	// LocaleEnIN groups 3-2-2 with ',' thousands and '.' decimal.
	LocaleEnIN Locale = "en-IN"
	// LocaleEnEU groups 3-3-3 with '.' thousands and ',' decimal.
	LocaleEnEU Locale = "en-EU"
	// LocaleEnBY groups 3-3-3 with space thousands and ',' decimal.
	LocaleEnBY Locale = "en-BY"
)

// localeFormat is the concrete rendering specification for a locale. The
// grouping pattern is applied from the rightmost digit moving left, so the
// Indian pattern {3, 2, 2} renders 12345678 as 1,23,45,678.
type localeFormat struct {
	groupSeparator   byte
	decimalSeparator byte
	grouping         []int
}

// format resolves the locale's specification, failing with
// ErrUnsupportedLocale for anything outside the closed set.
func (l Locale) format() (localeFormat, error) {
	switch l {
	case LocaleEnUS:
		return localeFormat{groupSeparator: ',', decimalSeparator: '.', grouping: []int{3, 3, 3}}, nil
	case LocaleEnIN:
		return localeFormat{groupSeparator: ',', decimalSeparator: '.', grouping: []int{3, 2, 2}}, nil
	case LocaleEnEU:
		return localeFormat{groupSeparator: '.', decimalSeparator: ',', grouping: []int{3, 3, 3}}, nil
	case LocaleEnBY:
		return localeFormat{groupSeparator: ' ', decimalSeparator: ',', grouping: []int{3, 3, 3}}, nil
	}
	return localeFormat{}, fmt.Errorf("%w: %q", ErrUnsupportedLocale, string(l))
}

func (l Locale) String() string { return string(l) }
