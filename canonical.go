package fintypes

import (
	"fmt"
	"strings"
)

// Canonicalize normalizes arbitrary input into the canonical token form used
// as the wire representation of every extensible value in this package:
// uppercase ASCII letters and digits, with every maximal run of other
// characters collapsed to a single underscore and leading/trailing
// separators trimmed. The result matches [A-Z0-9]+(_[A-Z0-9]+)*.
//
// Canonicalization is pure, ASCII-only and idempotent. It fails with
// ErrEmptyToken when nothing alphanumeric survives.
func Canonicalize(input string) (string, error) {
	token := canon(input)
	if token == "" {
		return "", fmt.Errorf("%w: %q", ErrEmptyToken, input)
	}
	return token, nil
}

// canon performs the normalization without the empty-token check.
func canon(input string) string {
	if isCanonical(input) {
		return input
	}
	var sb strings.Builder
	sb.Grow(len(input))
	prevSep := true // swallow leading separators
	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
			fallthrough
		case c >= 'A' && c <= 'Z' || c >= '0' && c <= '9':
			sb.WriteByte(c)
			prevSep = false
		default:
			if !prevSep {
				sb.WriteByte('_')
				prevSep = true
			}
		}
	}
	return strings.TrimSuffix(sb.String(), "_")
}

// isCanonical is the fast path: no allocation when the input already is a
// canonical token.
func isCanonical(s string) bool {
	if s == "" || s[0] == '_' || s[len(s)-1] == '_' {
		return false
	}
	prev := byte('_')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z' || c >= '0' && c <= '9':
			prev = c
		case c == '_' && prev != '_':
			prev = c
		default:
			return false
		}
	}
	return true
}
