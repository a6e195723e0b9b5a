package fintypes

import (
	"fmt"
	"strings"
)

// Symbol is a validated provider ticker symbol: 1 to 64 printable ASCII
// characters, held uppercase, punctuation preserved ("BRK.B", "EURUSD=X").
// The zero value is invalid; construct through ParseSymbol.
type Symbol struct {
	sym string
}

// ParseSymbol trims and uppercases the input, rejecting empty results,
// embedded whitespace or control characters, non-ASCII bytes and anything
// longer than 64 bytes. Failures wrap ErrInvalidSymbol.
func ParseSymbol(input string) (Symbol, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Symbol{}, fmt.Errorf("%w: empty", ErrInvalidSymbol)
	}
	if len(trimmed) > 64 {
		return Symbol{}, fmt.Errorf("%w: %q: longer than 64 bytes", ErrInvalidSymbol, input)
	}
	out := make([]byte, len(trimmed))
	for i := 0; i < len(trimmed); i++ {
		c := trimmed[i]
		if c < '!' || c > '~' {
			return Symbol{}, fmt.Errorf("%w: %q: non-printable or non-ASCII character at %d", ErrInvalidSymbol, input, i)
		}
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return Symbol{sym: string(out)}, nil
}

// MustParseSymbol is ParseSymbol for statically known symbols; it panics on
// error.
func MustParseSymbol(input string) Symbol {
	s, err := ParseSymbol(input)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Symbol) String() string { return s.sym }

func (s Symbol) MarshalText() ([]byte, error) { return []byte(s.sym), nil }

func (s *Symbol) UnmarshalText(text []byte) error {
	parsed, err := ParseSymbol(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
