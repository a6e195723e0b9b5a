package decimal

import (
	"errors"
	"math/big"
	"testing"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"plain", "12.34", "12.34", nil},
		{"integer", "92", "92", nil},
		{"leading plus", "+5.5", "5.5", nil},
		{"negative", "-0.001", "-0.001", nil},
		{"surrounding space", "  7.25  ", "7.25", nil},
		{"trailing zeros kept", "92.00", "92.00", nil},
		{"empty", "", "", ErrInvalidDecimal},
		{"spaces only", "   ", "", ErrInvalidDecimal},
		{"scientific notation", "1e5", "", ErrInvalidDecimal},
		{"upper scientific", "1E5", "", ErrInvalidDecimal},
		{"garbage", "12,34", "", ErrInvalidDecimal},
		{"too many digits", "0.00000000000000000000000000001", "", ErrScaleTooLarge},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := Parse(tc.input)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tc.input, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tc.input, err)
			}
			if got := d.String(); got != tc.want {
				t.Errorf("Parse(%q).String() = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseWithArbitrary(t *testing.T) {
	// 29 fractional digits exceed the Fixed cap but not the Arbitrary one.
	const input = "0.00000000000000000000000000001"
	d, err := ParseWith(input, Arbitrary)
	if err != nil {
		t.Fatalf("ParseWith(%q, Arbitrary) unexpected error: %v", input, err)
	}
	if d.Backend() != Arbitrary {
		t.Errorf("Backend() = %v, want Arbitrary", d.Backend())
	}
	if got := d.String(); got != input {
		t.Errorf("String() = %q, want %q", got, input)
	}
}

func TestAddSubRoundTrip(t *testing.T) {
	testCases := []struct {
		a, b string
	}{
		{"12.34", "1.23"},
		{"0.1", "0.2"},
		{"-5", "10.001"},
		{"99999999999999999999.99", "0.01"},
	}
	for _, tc := range testCases {
		a, b := MustParse(tc.a), MustParse(tc.b)
		if got := a.Add(b).Sub(b); !got.Equal(a) {
			t.Errorf("(%s + %s) - %s = %s, want %s", tc.a, tc.b, tc.b, got, tc.a)
		}
	}
}

func TestMul(t *testing.T) {
	a := MustParse("100")
	b := MustParse("0.92")
	got, err := a.Mul(b)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	if want := MustParse("92"); !got.Equal(want) {
		t.Errorf("100 * 0.92 = %s, want 92", got)
	}

	// The exact product of two 20-digit fractions needs 40 digits.
	tiny := New(1, 20)
	if _, err := tiny.Mul(tiny); !errors.Is(err, ErrScaleTooLarge) {
		t.Errorf("Mul error = %v, want ErrScaleTooLarge", err)
	}
}

func TestDiv(t *testing.T) {
	testCases := []struct {
		name    string
		a, b    string
		want    string
		wantErr error
	}{
		{"exact quarter", "1", "4", "0.25", nil},
		{"exact eighth", "1.00", "8", "0.125", nil},
		{"zero dividend", "0", "3", "0", nil},
		{"non-terminating", "1", "3", "", ErrScaleTooLarge},
		{"division by zero", "1", "0", "", ErrDivisionByZero},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MustParse(tc.a).Div(MustParse(tc.b))
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("%s/%s error = %v, want %v", tc.a, tc.b, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("%s/%s unexpected error: %v", tc.a, tc.b, err)
			}
			if !got.Equal(MustParse(tc.want)) {
				t.Errorf("%s/%s = %s, want %s", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestDivRound(t *testing.T) {
	testCases := []struct {
		name    string
		a, b    string
		scale   uint32
		want    string
		wantErr error
	}{
		{"third", "1", "3", 4, "0.3333", nil},
		{"two thirds half up", "2", "3", 4, "0.6667", nil},
		{"negative half away", "-1", "8", 2, "-0.13", nil},
		{"already exact", "1", "4", 4, "0.25", nil},
		{"division by zero", "1", "0", 2, "", ErrDivisionByZero},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for _, backend := range []Backend{Fixed, Arbitrary} {
				a, err := ParseWith(tc.a, backend)
				if err != nil {
					t.Fatal(err)
				}
				got, err := a.DivRound(MustParse(tc.b), tc.scale)
				if tc.wantErr != nil {
					if !errors.Is(err, tc.wantErr) {
						t.Fatalf("backend %v: %s/%s error = %v, want %v", backend, tc.a, tc.b, err, tc.wantErr)
					}
					continue
				}
				if err != nil {
					t.Fatalf("backend %v: %s/%s unexpected error: %v", backend, tc.a, tc.b, err)
				}
				if !got.Equal(MustParse(tc.want)) {
					t.Errorf("backend %v: DivRound(%s/%s, %d) = %s, want %s",
						backend, tc.a, tc.b, tc.scale, got, tc.want)
				}
			}
		})
	}
}

func TestDivArbitrary(t *testing.T) {
	a, err := ParseWith("1", Arbitrary)
	if err != nil {
		t.Fatal(err)
	}
	got, err := a.Div(MustParse("1024"))
	if err != nil {
		t.Fatalf("1/1024: %v", err)
	}
	if got.Backend() != Arbitrary {
		t.Errorf("Backend() = %v, want Arbitrary", got.Backend())
	}
	if want := "0.0009765625"; got.String() != want {
		t.Errorf("1/1024 = %s, want %s", got, want)
	}
	if _, err := a.Div(MustParse("7")); !errors.Is(err, ErrScaleTooLarge) {
		t.Errorf("1/7 error = %v, want ErrScaleTooLarge", err)
	}
}

func TestMixedBackendPromotion(t *testing.T) {
	fixed := MustParse("1.5")
	arb, err := ParseWith("2.5", Arbitrary)
	if err != nil {
		t.Fatal(err)
	}
	sum := fixed.Add(arb)
	if sum.Backend() != Arbitrary {
		t.Errorf("Backend() = %v, want Arbitrary", sum.Backend())
	}
	if !sum.Equal(MustParse("4")) {
		t.Errorf("1.5 + 2.5 = %s, want 4", sum)
	}
}

func TestRoundTo(t *testing.T) {
	testCases := []struct {
		input string
		scale uint32
		mode  Rounding
		want  string
	}{
		{"2.5", 0, HalfAwayFromZero, "3"},
		{"-2.5", 0, HalfAwayFromZero, "-3"},
		{"2.5", 0, HalfEven, "2"},
		{"3.5", 0, HalfEven, "4"},
		{"2.9", 0, ToZero, "2"},
		{"-2.9", 0, ToZero, "-2"},
		{"2.1", 0, AwayFromZero, "3"},
		{"-2.1", 0, AwayFromZero, "-3"},
		{"2.9", 0, Floor, "2"},
		{"-2.1", 0, Floor, "-3"},
		{"2.1", 0, Ceil, "3"},
		{"-2.9", 0, Ceil, "-2"},
		{"92.005", 2, HalfAwayFromZero, "92.01"},
		{"92", 2, HalfAwayFromZero, "92"},
	}
	for _, tc := range testCases {
		for _, backend := range []Backend{Fixed, Arbitrary} {
			d, err := ParseWith(tc.input, backend)
			if err != nil {
				t.Fatal(err)
			}
			got := d.RoundTo(tc.scale, tc.mode)
			if !got.Equal(MustParse(tc.want)) {
				t.Errorf("backend %v: RoundTo(%s, %d, %v) = %s, want %s",
					backend, tc.input, tc.scale, tc.mode, got, tc.want)
			}
		}
	}
}

func TestMinorUnits(t *testing.T) {
	testCases := []struct {
		input string
		scale uint32
		want  string
		ok    bool
	}{
		{"12.34", 2, "1234", true},
		{"12", 2, "1200", true},
		{"-0.01", 2, "-1", true},
		{"12.345", 2, "", false},
		{"0.000000001", 9, "1", true},
	}
	for _, tc := range testCases {
		for _, backend := range []Backend{Fixed, Arbitrary} {
			d, err := ParseWith(tc.input, backend)
			if err != nil {
				t.Fatal(err)
			}
			units, ok := d.MinorUnits(tc.scale)
			if ok != tc.ok {
				t.Fatalf("backend %v: MinorUnits(%s, %d) ok = %v, want %v", backend, tc.input, tc.scale, ok, tc.ok)
			}
			if ok && units.String() != tc.want {
				t.Errorf("backend %v: MinorUnits(%s, %d) = %s, want %s", backend, tc.input, tc.scale, units, tc.want)
			}
		}
	}
}

func TestFromMinorUnitsRoundTrip(t *testing.T) {
	units := big.NewInt(9200)
	d := FromMinorUnits(units, 2, Fixed)
	if got := d.String(); got != "92.00" {
		t.Errorf("FromMinorUnits(9200, 2) = %q, want \"92.00\"", got)
	}
	back, ok := d.MinorUnits(2)
	if !ok || back.Cmp(units) != 0 {
		t.Errorf("MinorUnits round trip = %v (ok=%v), want 9200", back, ok)
	}
}

func TestConvert(t *testing.T) {
	d := MustParse("12.34")
	arb, err := d.Convert(Arbitrary)
	if err != nil {
		t.Fatal(err)
	}
	if arb.Backend() != Arbitrary || !arb.Equal(d) {
		t.Errorf("Convert(Arbitrary) = %s (%v)", arb, arb.Backend())
	}
	back, err := arb.Convert(Fixed)
	if err != nil {
		t.Fatal(err)
	}
	if back.Backend() != Fixed || !back.Equal(d) {
		t.Errorf("Convert(Fixed) = %s (%v)", back, back.Backend())
	}

	deep, err := ParseWith("0.0000000000000000000000000000001", Arbitrary) // 31 digits
	if err != nil {
		t.Fatal(err)
	}
	if _, err := deep.Convert(Fixed); !errors.Is(err, ErrScaleTooLarge) {
		t.Errorf("Convert(Fixed) error = %v, want ErrScaleTooLarge", err)
	}
}

func TestCmpAcrossScales(t *testing.T) {
	a := MustParse("92")
	b := MustParse("92.00")
	if !a.Equal(b) {
		t.Errorf("92 != 92.00")
	}
	if a.Cmp(MustParse("92.01")) >= 0 {
		t.Errorf("92 should be below 92.01")
	}
}
