package fintypes

import (
	"errors"

	"github.com/etnz/fintypes/decimal"
)

// Sentinel errors returned by this package. Callers match them with
// errors.Is; the returned error always carries additional context.
var (
	// ErrEmptyToken reports input that canonicalizes to an empty token.
	ErrEmptyToken = errors.New("empty canonical token")
	// ErrCurrencyMismatch reports arithmetic across two different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrMetadataNotFound reports a precision query for a currency with no
	// standard exponent and no registered metadata.
	ErrMetadataNotFound = errors.New("currency metadata not found")
	// ErrInvalidExchangeRate reports a non-positive rate or identical
	// base and quote currencies.
	ErrInvalidExchangeRate = errors.New("invalid exchange rate")
	// ErrInvalidAmountFormat reports a malformed localized amount.
	ErrInvalidAmountFormat = errors.New("invalid localized amount format")
	// ErrInvalidGrouping reports digit groups that do not match the locale.
	ErrInvalidGrouping = errors.New("invalid digit grouping for locale")
	// ErrMismatchedCurrencyAffix reports a symbol or code in the input that
	// does not belong to the expected currency.
	ErrMismatchedCurrencyAffix = errors.New("currency affix does not match currency")
	// ErrUnsupportedLocale reports a locale with no configured format.
	ErrUnsupportedLocale = errors.New("unsupported locale")
	// ErrInvalidISIN reports a malformed or checksum-failing ISIN.
	ErrInvalidISIN = errors.New("invalid ISIN")
	// ErrInvalidFIGI reports a malformed or checksum-failing FIGI.
	ErrInvalidFIGI = errors.New("invalid FIGI")
	// ErrInvalidSymbol reports a malformed ticker symbol.
	ErrInvalidSymbol = errors.New("invalid symbol")
)

// Re-exported decimal errors, so most callers only import this package.
var (
	// ErrInvalidDecimal reports an unparseable decimal amount.
	ErrInvalidDecimal = decimal.ErrInvalidDecimal
	// ErrDivisionByZero reports a zero divisor.
	ErrDivisionByZero = decimal.ErrDivisionByZero
	// ErrScaleTooLarge reports a result that has no exact representation
	// within the decimal backend's precision.
	ErrScaleTooLarge = decimal.ErrScaleTooLarge
)
