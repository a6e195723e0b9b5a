// Package decimal provides the exact-decimal arithmetic used for monetary
// magnitudes. A single Decimal value type hides two interchangeable
// backends: the default Fixed backend delegates to
// github.com/shopspring/decimal with its scale capped at MaxScale, while the
// Arbitrary backend keeps an unbounded coefficient for precisions beyond
// that cap. Operations never round silently; anything that cannot produce an
// exact result returns an error, and quantization only happens through an
// explicit RoundTo call.
package decimal

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	sdec "github.com/shopspring/decimal"
)

// MaxScale is the largest number of fractional digits the Fixed backend
// can represent exactly.
const MaxScale = 28

// Errors reported by decimal operations.
var (
	ErrInvalidDecimal = errors.New("invalid decimal")
	ErrDivisionByZero = errors.New("division by zero")
	ErrScaleTooLarge  = errors.New("scale exceeds exact decimal precision")
)

// Backend selects the arithmetic implementation behind a Decimal value.
type Backend uint8

const (
	// Fixed is the default backend, capped at MaxScale fractional digits.
	Fixed Backend = iota
	// Arbitrary has no scale cap. Results of mixed-backend operations are
	// always Arbitrary.
	Arbitrary
)

// Decimal is an immutable exact decimal number. The zero value is the Fixed
// backend's zero.
type Decimal struct {
	fix sdec.Decimal
	arb *bigdec // nil means the value belongs to the Fixed backend
}

// Zero returns the Fixed backend's zero value.
func Zero() Decimal { return Decimal{} }

// One returns the Fixed backend's one value.
func One() Decimal { return Decimal{fix: sdec.New(1, 0)} }

// New returns units/10^scale as a Fixed decimal, e.g. New(1234, 2) == 12.34.
func New(units int64, scale int32) Decimal {
	return Decimal{fix: sdec.New(units, -scale)}
}

// NewFromInt returns the integer as a Fixed decimal.
func NewFromInt(i int64) Decimal { return Decimal{fix: sdec.NewFromInt(i)} }

// NewFromFloat converts a float using its shortest exact decimal
// representation. Prefer Parse for values that originate as text.
func NewFromFloat(f float64) Decimal { return Decimal{fix: sdec.NewFromFloat(f)} }

// Parse reads a plain decimal string into the Fixed backend. Leading and
// trailing whitespace is ignored and a leading '+' is accepted. Scientific
// notation is rejected so both backends share identical parsing semantics.
func Parse(value string) (Decimal, error) {
	return ParseWith(value, Fixed)
}

// ParseWith is Parse targeting an explicit backend.
func ParseWith(value string, backend Backend) (Decimal, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Decimal{}, fmt.Errorf("%w: empty input", ErrInvalidDecimal)
	}
	if strings.ContainsAny(trimmed, "eE") {
		return Decimal{}, fmt.Errorf("%w: scientific notation %q", ErrInvalidDecimal, value)
	}
	trimmed = strings.TrimPrefix(trimmed, "+")
	d, err := sdec.NewFromString(trimmed)
	if err != nil {
		return Decimal{}, fmt.Errorf("%w: %q", ErrInvalidDecimal, value)
	}
	if backend == Arbitrary {
		return Decimal{arb: bigFromShopspring(d)}, nil
	}
	fixed, err := clampFixed(d)
	if err != nil {
		return Decimal{}, fmt.Errorf("%w: %q", ErrScaleTooLarge, value)
	}
	return Decimal{fix: fixed}, nil
}

// MustParse is Parse for statically known literals; it panics on error.
func MustParse(value string) Decimal {
	d, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return d
}

// FromMinorUnits returns units/10^scale, e.g. FromMinorUnits(9200, 2) == 92.00.
// The scale is preserved, so the result renders with exactly scale fraction
// digits.
func FromMinorUnits(units *big.Int, scale uint32, backend Backend) Decimal {
	if backend == Arbitrary || scale > MaxScale {
		return Decimal{arb: &bigdec{coeff: new(big.Int).Set(units), scale: int32(scale)}}
	}
	return Decimal{fix: sdec.NewFromBigInt(units, -int32(scale))}
}

// Backend reports which backend holds this value.
func (d Decimal) Backend() Backend {
	if d.arb != nil {
		return Arbitrary
	}
	return Fixed
}

// Convert re-expresses the value in the requested backend. Converting to
// Fixed fails with ErrScaleTooLarge when the value needs more than MaxScale
// fractional digits.
func (d Decimal) Convert(backend Backend) (Decimal, error) {
	if backend == d.Backend() {
		return d, nil
	}
	if backend == Arbitrary {
		return Decimal{arb: d.big()}, nil
	}
	bd := d.arb.trimmed()
	if bd.scale > MaxScale {
		return Decimal{}, fmt.Errorf("%w: scale %d", ErrScaleTooLarge, bd.scale)
	}
	return Decimal{fix: sdec.NewFromBigInt(bd.coeff, -bd.scale)}, nil
}

// String renders the canonical plain-decimal form, never using exponent
// notation. Trailing zeros carried by the value's scale are preserved.
func (d Decimal) String() string {
	if d.arb != nil {
		return d.arb.String()
	}
	return d.fix.String()
}

// Sign returns -1, 0 or 1.
func (d Decimal) Sign() int {
	if d.arb != nil {
		return d.arb.coeff.Sign()
	}
	return d.fix.Sign()
}

// IsZero reports whether the value is exactly zero.
func (d Decimal) IsZero() bool { return d.Sign() == 0 }

// IsNegative reports whether the value is below zero.
func (d Decimal) IsNegative() bool { return d.Sign() < 0 }

// IsPositive reports whether the value is above zero.
func (d Decimal) IsPositive() bool { return d.Sign() > 0 }

// Neg returns the negated value in the same backend.
func (d Decimal) Neg() Decimal {
	if d.arb != nil {
		return Decimal{arb: &bigdec{coeff: new(big.Int).Neg(d.arb.coeff), scale: d.arb.scale}}
	}
	return Decimal{fix: d.fix.Neg()}
}

// Abs returns the absolute value in the same backend.
func (d Decimal) Abs() Decimal {
	if d.IsNegative() {
		return d.Neg()
	}
	return d
}

// Cmp compares two values numerically, regardless of backend or scale.
func (d Decimal) Cmp(o Decimal) int {
	if d.arb == nil && o.arb == nil {
		return d.fix.Cmp(o.fix)
	}
	return d.big().cmp(o.big())
}

// Equal reports numeric equality; 92 and 92.00 are equal.
func (d Decimal) Equal(o Decimal) bool { return d.Cmp(o) == 0 }

// Add returns d+o exactly. The result is Arbitrary when either operand is.
func (d Decimal) Add(o Decimal) Decimal {
	if d.arb == nil && o.arb == nil {
		return Decimal{fix: d.fix.Add(o.fix)}
	}
	return Decimal{arb: bigAdd(d.big(), o.big())}
}

// Sub returns d-o exactly. The result is Arbitrary when either operand is.
func (d Decimal) Sub(o Decimal) Decimal {
	return d.Add(o.Neg())
}

// Mul returns d*o exactly, failing with ErrScaleTooLarge when the exact
// product exceeds the Fixed backend's precision.
func (d Decimal) Mul(o Decimal) (Decimal, error) {
	if d.arb == nil && o.arb == nil {
		product, err := clampFixed(d.fix.Mul(o.fix))
		if err != nil {
			return Decimal{}, err
		}
		return Decimal{fix: product}, nil
	}
	return Decimal{arb: bigMul(d.big(), o.big())}, nil
}

// Div returns d/o exactly. It fails with ErrDivisionByZero on a zero
// divisor, and with ErrScaleTooLarge when the exact quotient is not a
// terminating decimal within the backend's limits. Round explicitly before
// dividing when an inexact quotient is acceptable.
func (d Decimal) Div(o Decimal) (Decimal, error) {
	if o.IsZero() {
		return Decimal{}, ErrDivisionByZero
	}
	if d.arb == nil && o.arb == nil {
		quotient := d.fix.DivRound(o.fix, MaxScale)
		if !quotient.Mul(o.fix).Equal(d.fix) {
			return Decimal{}, fmt.Errorf("%w: %s/%s has no exact quotient", ErrScaleTooLarge, d, o)
		}
		return Decimal{fix: quotient}, nil
	}
	quotient, err := bigDiv(d.big(), o.big())
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{arb: quotient}, nil
}

// DivRound returns d/o rounded half away from zero at the given scale. It is
// the inexact companion of Div and fails only on a zero divisor. On the
// Fixed backend the scale is capped at MaxScale.
func (d Decimal) DivRound(o Decimal, scale uint32) (Decimal, error) {
	if o.IsZero() {
		return Decimal{}, ErrDivisionByZero
	}
	if d.arb == nil && o.arb == nil {
		if scale > MaxScale {
			scale = MaxScale
		}
		return Decimal{fix: d.fix.DivRound(o.fix, int32(scale))}, nil
	}
	return Decimal{arb: bigDivRound(d.big(), o.big(), int32(scale))}, nil
}

// MinorUnits returns the value scaled by 10^scale when that is an exact
// integer. The second return is false when the value carries more fractional
// precision than the requested scale.
func (d Decimal) MinorUnits(scale uint32) (*big.Int, bool) {
	bd := d.big()
	if bd.scale <= int32(scale) {
		shift := pow10(int64(int32(scale) - bd.scale))
		return new(big.Int).Mul(bd.coeff, shift), true
	}
	div := pow10(int64(bd.scale - int32(scale)))
	q, r := new(big.Int).QuoRem(bd.coeff, div, new(big.Int))
	if r.Sign() != 0 {
		return nil, false
	}
	return q, true
}

// Rounding selects how RoundTo resolves discarded digits.
type Rounding uint8

const (
	// HalfAwayFromZero rounds halves away from zero (commercial rounding).
	HalfAwayFromZero Rounding = iota
	// HalfEven rounds halves toward the nearest even digit.
	HalfEven
	// ToZero always truncates.
	ToZero
	// AwayFromZero always rounds away from zero.
	AwayFromZero
	// Floor always rounds toward negative infinity.
	Floor
	// Ceil always rounds toward positive infinity.
	Ceil
)

// RoundTo quantizes the value to the given number of fractional digits.
// Values already within the requested scale are returned unchanged.
func (d Decimal) RoundTo(scale uint32, mode Rounding) Decimal {
	if d.arb != nil {
		return Decimal{arb: d.arb.round(int32(scale), mode)}
	}
	places := int32(scale)
	switch mode {
	case HalfEven:
		return Decimal{fix: d.fix.RoundBank(places)}
	case ToZero:
		return Decimal{fix: d.fix.RoundDown(places)}
	case AwayFromZero:
		return Decimal{fix: d.fix.RoundUp(places)}
	case Floor:
		return Decimal{fix: d.fix.RoundFloor(places)}
	case Ceil:
		return Decimal{fix: d.fix.RoundCeil(places)}
	default:
		return Decimal{fix: d.fix.Round(places)}
	}
}

// big returns the value as a bigdec, converting from the Fixed backend when
// necessary.
func (d Decimal) big() *bigdec {
	if d.arb != nil {
		return d.arb
	}
	return bigFromShopspring(d.fix)
}

// clampFixed enforces the Fixed backend's scale cap, tolerating trailing
// zeros beyond it.
func clampFixed(d sdec.Decimal) (sdec.Decimal, error) {
	if d.Exponent() >= -MaxScale {
		return d, nil
	}
	truncated := d.Truncate(MaxScale)
	if !truncated.Equal(d) {
		return sdec.Decimal{}, fmt.Errorf("%w: more than %d fractional digits", ErrScaleTooLarge, MaxScale)
	}
	return truncated, nil
}
