package fintypes

import (
	"fmt"
	"regexp"
)

// ISIN is a validated ISO 6166 International Securities Identification
// Number in canonical 12-character form. The zero value is invalid;
// construct through ParseISIN.
type ISIN struct {
	code string
}

var isinRegex = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{9}[0-9]$`)

// ParseISIN validates an ISIN. Separators and spaces are scrubbed and
// letters uppercased before validation, so "US-0378331005" and
// "us0378331005" both resolve to US0378331005. Failures wrap ErrInvalidISIN.
func ParseISIN(input string) (ISIN, error) {
	scrubbed := scrubAlnum(input)
	if len(scrubbed) != 12 {
		return ISIN{}, fmt.Errorf("%w: %q: must be 12 characters, got %d", ErrInvalidISIN, input, len(scrubbed))
	}
	if !isinRegex.MatchString(scrubbed) {
		return ISIN{}, fmt.Errorf("%w: %q: must be 2 letters, 9 alphanumerics and a check digit", ErrInvalidISIN, input)
	}
	if isinCheckDigit(scrubbed[:11]) != int(scrubbed[11]-'0') {
		return ISIN{}, fmt.Errorf("%w: %q: check digit mismatch", ErrInvalidISIN, input)
	}
	return ISIN{code: scrubbed}, nil
}

// MustParseISIN is ParseISIN for statically known identifiers; it panics on
// error.
func MustParseISIN(input string) ISIN {
	id, err := ParseISIN(input)
	if err != nil {
		panic(err)
	}
	return id
}

// isinCheckDigit expands letters to two-digit values (A=10 .. Z=35) and
// applies the Luhn algorithm over the resulting digit stream, doubling from
// the rightmost expanded digit.
func isinCheckDigit(body string) int {
	digits := make([]int, 0, 2*len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c >= 'A' && c <= 'Z' {
			v := int(c-'A') + 10
			digits = append(digits, v/10, v%10)
		} else {
			digits = append(digits, int(c-'0'))
		}
	}
	sum := 0
	double := true
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if double {
			d *= 2
		}
		sum += d/10 + d%10
		double = !double
	}
	return (10 - sum%10) % 10
}

// String returns the canonical 12-character form.
func (id ISIN) String() string { return id.code }

// CountryCode returns the two-letter ISO 3166-1 prefix.
func (id ISIN) CountryCode() string {
	if len(id.code) < 2 {
		return ""
	}
	return id.code[:2]
}

func (id ISIN) MarshalText() ([]byte, error) { return []byte(id.code), nil }

func (id *ISIN) UnmarshalText(text []byte) error {
	parsed, err := ParseISIN(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// scrubAlnum drops everything but ASCII letters and digits and uppercases
// the rest.
func scrubAlnum(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
			out = append(out, c-'a'+'A')
		case c >= 'A' && c <= 'Z' || c >= '0' && c <= '9':
			out = append(out, c)
		}
	}
	return string(out)
}
