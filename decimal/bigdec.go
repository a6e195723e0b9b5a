package decimal

import (
	"fmt"
	"math/big"
	"strings"

	sdec "github.com/shopspring/decimal"
)

// bigdec is the Arbitrary backend's representation: coeff / 10^scale with a
// non-negative scale and no cap on either component.
type bigdec struct {
	coeff *big.Int
	scale int32
}

var (
	bigTwo  = big.NewInt(2)
	bigFive = big.NewInt(5)
	bigTen  = big.NewInt(10)
)

// pow10 returns 10^n for n >= 0.
func pow10(n int64) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(n), nil)
}

func bigFromShopspring(d sdec.Decimal) *bigdec {
	coeff := new(big.Int).Set(d.Coefficient())
	exp := d.Exponent()
	if exp > 0 {
		coeff.Mul(coeff, pow10(int64(exp)))
		exp = 0
	}
	return &bigdec{coeff: coeff, scale: -exp}
}

// align returns both coefficients expressed at the larger of the two scales.
func align(a, b *bigdec) (x, y *big.Int, scale int32) {
	if a.scale == b.scale {
		return a.coeff, b.coeff, a.scale
	}
	if a.scale < b.scale {
		x = new(big.Int).Mul(a.coeff, pow10(int64(b.scale-a.scale)))
		return x, b.coeff, b.scale
	}
	y = new(big.Int).Mul(b.coeff, pow10(int64(a.scale-b.scale)))
	return a.coeff, y, a.scale
}

func bigAdd(a, b *bigdec) *bigdec {
	x, y, scale := align(a, b)
	return &bigdec{coeff: new(big.Int).Add(x, y), scale: scale}
}

func bigMul(a, b *bigdec) *bigdec {
	return &bigdec{coeff: new(big.Int).Mul(a.coeff, b.coeff), scale: a.scale + b.scale}
}

// bigDiv computes the exact quotient when it is a terminating decimal. After
// reducing the fraction, the denominator must factor into 2s and 5s only;
// anything else (1/3, 1/7, ...) has no exact decimal form at any scale.
func bigDiv(a, b *bigdec) (*bigdec, error) {
	if b.coeff.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	// a/b = (a.coeff * 10^b.scale) / (b.coeff * 10^a.scale)
	num := new(big.Int).Mul(a.coeff, pow10(int64(b.scale)))
	den := new(big.Int).Mul(b.coeff, pow10(int64(a.scale)))
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	if num.Sign() == 0 {
		return &bigdec{coeff: new(big.Int), scale: 0}, nil
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	num.Quo(num, g)
	den.Quo(den, g)

	var twos, fives int64
	r := new(big.Int)
	for {
		q, rem := new(big.Int).QuoRem(den, bigTwo, r)
		if rem.Sign() != 0 {
			break
		}
		den = q
		twos++
	}
	for {
		q, rem := new(big.Int).QuoRem(den, bigFive, r)
		if rem.Sign() != 0 {
			break
		}
		den = q
		fives++
	}
	if den.Cmp(big.NewInt(1)) != 0 {
		return nil, fmt.Errorf("%w: quotient is not a terminating decimal", ErrScaleTooLarge)
	}
	scale := twos
	if fives > scale {
		scale = fives
	}
	// 10^scale / original denominator == 2^(scale-twos) * 5^(scale-fives)
	coeff := num
	if scale > twos {
		coeff = new(big.Int).Mul(coeff, new(big.Int).Exp(bigTwo, big.NewInt(scale-twos), nil))
	}
	if scale > fives {
		coeff = new(big.Int).Mul(coeff, new(big.Int).Exp(bigFive, big.NewInt(scale-fives), nil))
	}
	return &bigdec{coeff: coeff, scale: int32(scale)}, nil
}

// bigDivRound computes a/b truncated one digit past the requested scale,
// then rounds half away from zero. The extra digit decides the rounding
// exactly: truncation toward zero can only land on the tie when the true
// quotient is at or beyond it.
func bigDivRound(a, b *bigdec, scale int32) *bigdec {
	exp := int64(b.scale) - int64(a.scale) + int64(scale) + 1
	num := new(big.Int).Set(a.coeff)
	den := b.coeff
	if exp >= 0 {
		num.Mul(num, pow10(exp))
	} else {
		den = new(big.Int).Mul(den, pow10(-exp))
	}
	q := new(big.Int).Quo(num, den)
	return (&bigdec{coeff: q, scale: scale + 1}).round(scale, HalfAwayFromZero)
}

// round quantizes to the requested scale; values already within it are
// returned unchanged.
func (b *bigdec) round(scale int32, mode Rounding) *bigdec {
	if b.scale <= scale {
		return b
	}
	drop := pow10(int64(b.scale - scale))
	q, r := new(big.Int).QuoRem(b.coeff, drop, new(big.Int))
	if r.Sign() != 0 {
		negative := r.Sign() < 0
		double := new(big.Int).Lsh(new(big.Int).Abs(r), 1)
		half := double.Cmp(drop) // <0 below half, 0 exactly half, >0 above half
		away := false
		switch mode {
		case HalfAwayFromZero:
			away = half >= 0
		case HalfEven:
			away = half > 0 || (half == 0 && q.Bit(0) == 1)
		case ToZero:
			away = false
		case AwayFromZero:
			away = true
		case Floor:
			away = negative
		case Ceil:
			away = !negative
		}
		if away {
			if negative {
				q.Sub(q, big.NewInt(1))
			} else {
				q.Add(q, big.NewInt(1))
			}
		}
	}
	return &bigdec{coeff: q, scale: scale}
}

// trimmed returns an equal value with trailing zero digits removed from the
// fraction.
func (b *bigdec) trimmed() *bigdec {
	coeff := new(big.Int).Set(b.coeff)
	scale := b.scale
	r := new(big.Int)
	for scale > 0 && coeff.Sign() != 0 {
		q, rem := new(big.Int).QuoRem(coeff, bigTen, r)
		if rem.Sign() != 0 {
			break
		}
		coeff = q
		scale--
	}
	if coeff.Sign() == 0 {
		scale = 0
	}
	return &bigdec{coeff: coeff, scale: scale}
}

func (b *bigdec) cmp(o *bigdec) int {
	x, y, _ := align(b, o)
	return x.Cmp(y)
}

func (b *bigdec) String() string {
	digits := new(big.Int).Abs(b.coeff).String()
	var sb strings.Builder
	if b.coeff.Sign() < 0 {
		sb.WriteByte('-')
	}
	if b.scale == 0 {
		sb.WriteString(digits)
		return sb.String()
	}
	if int64(len(digits)) <= int64(b.scale) {
		sb.WriteString("0.")
		for i := int64(len(digits)); i < int64(b.scale); i++ {
			sb.WriteByte('0')
		}
		sb.WriteString(digits)
		return sb.String()
	}
	split := len(digits) - int(b.scale)
	sb.WriteString(digits[:split])
	sb.WriteByte('.')
	sb.WriteString(digits[split:])
	return sb.String()
}
