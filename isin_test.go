package fintypes

import (
	"errors"
	"testing"
)

func TestParseISIN(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"apple", "US0378331005", "US0378331005"},
		{"sap", "DE0007664039", "DE0007664039"},
		{"treasury", "US9128285M81", "US9128285M81"},
		{"lowercase", "us0378331005", "US0378331005"},
		{"dashed", "US-037833100-5", "US0378331005"},
		{"padded", " US0378331005 ", "US0378331005"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			id, err := ParseISIN(c.input)
			if err != nil {
				t.Fatalf("ParseISIN(%q): %v", c.input, err)
			}
			if id.String() != c.want {
				t.Errorf("String() = %q, want %q", id.String(), c.want)
			}
		})
	}
}

func TestParseISINRejects(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"too short", "US03783310"},
		{"too long", "US03783310055"},
		{"digit country", "120378331005"},
		{"letter check digit", "US037833100A"},
		{"wrong check digit", "US0378331006"},
		{"single substitution", "US0378431005"},
		{"transposed digits", "US0378313005"},
		{"empty", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ParseISIN(c.input); !errors.Is(err, ErrInvalidISIN) {
				t.Errorf("ParseISIN(%q) err = %v, want ErrInvalidISIN", c.input, err)
			}
		})
	}
}

func TestISINCountryCode(t *testing.T) {
	if got := MustParseISIN("DE0007664039").CountryCode(); got != "DE" {
		t.Errorf("CountryCode() = %q, want DE", got)
	}
}

func TestISINTextRoundTrip(t *testing.T) {
	orig := MustParseISIN("US0378331005")
	text, err := orig.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var back ISIN
	if err := back.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if back != orig {
		t.Errorf("round trip gave %s", back)
	}
	if err := back.UnmarshalText([]byte("US0378331006")); !errors.Is(err, ErrInvalidISIN) {
		t.Errorf("UnmarshalText err = %v, want ErrInvalidISIN", err)
	}
}
