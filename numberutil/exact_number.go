// Package numberutil reads numeric literal text without losing precision.
package numberutil

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/shibukawa/sqlsegment"
	"github.com/shopspring/decimal"
)

type numberKind int

const (
	kindInt64 numberKind = iota
	kindBigInt
	kindDecimal
)

// ExactNumber is a parsed numeric literal. It holds an int64 when the value
// fits, an arbitrary precision integer when it does not, and an exact decimal
// for base-10 literals with a fraction or exponent.
type ExactNumber struct {
	kind  numberKind
	small int64
	big   *big.Int
	dec   decimal.Decimal
}

// ParseExactNumber parses text as a numeral in the given radix.
func ParseExactNumber(text string, radix int) (ExactNumber, error) {
	if radix < 2 || radix > 36 {
		return ExactNumber{}, fmt.Errorf("%w: unsupported radix %d for '%s'", sqlsegment.ErrMalformedNumericLiteral, radix, text)
	}

	v, err := strconv.ParseInt(text, radix, 64)
	if err == nil {
		return ExactNumber{kind: kindInt64, small: v}, nil
	}

	if errors.Is(err, strconv.ErrRange) {
		b, ok := new(big.Int).SetString(text, radix)
		if ok {
			return ExactNumber{kind: kindBigInt, big: b}, nil
		}
	}

	if radix == 10 {
		d, derr := decimal.NewFromString(text)
		if derr == nil {
			return ExactNumber{kind: kindDecimal, dec: d}, nil
		}
	}

	return ExactNumber{}, fmt.Errorf("%w: '%s' is not a valid base-%d number", sqlsegment.ErrMalformedNumericLiteral, text, radix)
}

// maxExponent bounds the powers of ten built from a decimal exponent.
// 10^64 is a multiple of 2^64, so larger positive exponents leave no
// low-order bits in an int64.
const maxExponent = 64

// integerPart truncates d toward zero. It reports whether d is an integer and
// whether the integer part fits into int64; when it does not, v holds its
// low-order 64 bits. Powers of ten never exceed maxExponent or the number of
// digits of the coefficient.
func integerPart(d decimal.Decimal) (v int64, integer, fits bool) {
	coef := d.Coefficient()
	exp := int64(d.Exponent())

	switch {
	case coef.Sign() == 0:
		return 0, true, true
	case exp >= maxExponent:
		return 0, true, false
	case exp >= 0:
		b := new(big.Int).Mul(coef, pow10(exp))
		return b.Int64(), true, b.IsInt64()
	case -exp > int64(len(new(big.Int).Abs(coef).Text(10))):
		// |d| < 1
		return 0, false, true
	default:
		q, r := new(big.Int).QuoRem(coef, pow10(-exp), new(big.Int))
		return q.Int64(), r.Sign() == 0, q.IsInt64()
	}
}

func pow10(exp int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(exp), nil)
}

// Int returns the value as a native int. Fractions are truncated toward zero
// and integers wider than int keep their low-order bits.
func (n ExactNumber) Int() int {
	switch n.kind {
	case kindBigInt:
		return int(n.big.Int64())
	case kindDecimal:
		v, _, _ := integerPart(n.dec)
		return int(v)
	default:
		return int(n.small)
	}
}

// Int64 returns the value and whether it is an integer that fits into int64
func (n ExactNumber) Int64() (int64, bool) {
	switch n.kind {
	case kindBigInt:
		return n.big.Int64(), n.big.IsInt64()
	case kindDecimal:
		v, integer, fits := integerPart(n.dec)
		return v, integer && fits
	default:
		return n.small, true
	}
}

// IsInteger reports whether the value has no fractional part
func (n ExactNumber) IsInteger() bool {
	if n.kind == kindDecimal {
		_, integer, _ := integerPart(n.dec)
		return integer
	}

	return true
}

// Decimal returns the value as an exact decimal
func (n ExactNumber) Decimal() decimal.Decimal {
	switch n.kind {
	case kindBigInt:
		return decimal.NewFromBigInt(n.big, 0)
	case kindDecimal:
		return n.dec
	default:
		return decimal.NewFromInt(n.small)
	}
}

// String returns the plain decimal form. Exponents beyond maxExponent are
// kept in scientific notation.
func (n ExactNumber) String() string {
	switch n.kind {
	case kindBigInt:
		return n.big.String()
	case kindDecimal:
		if exp := n.dec.Exponent(); exp > maxExponent || exp < -maxExponent {
			return n.dec.Coefficient().String() + "E" + strconv.Itoa(int(exp))
		}

		return n.dec.String()
	default:
		return strconv.FormatInt(n.small, 10)
	}
}

// RoundHalfUp parses a base-10 literal and rounds it half away from zero to an int.
// Values outside the int range are rejected.
func RoundHalfUp(text string) (int, error) {
	n, err := ParseExactNumber(text, 10)
	if err != nil {
		return 0, err
	}

	switch n.kind {
	case kindInt64:
		return int(n.small), nil
	case kindBigInt:
		return 0, fmt.Errorf("%w: '%s' is out of range", sqlsegment.ErrMalformedNumericLiteral, text)
	}

	v, integer, fits := integerPart(n.dec)
	if !fits {
		return 0, fmt.Errorf("%w: '%s' is out of range", sqlsegment.ErrMalformedNumericLiteral, text)
	}

	if !integer {
		// the integer part is small, so this rescale stays bounded
		rounded := n.dec.Sub(decimal.NewFromInt(v)).Round(0).IntPart()
		if (rounded > 0 && v == math.MaxInt64) || (rounded < 0 && v == math.MinInt64) {
			return 0, fmt.Errorf("%w: '%s' is out of range", sqlsegment.ErrMalformedNumericLiteral, text)
		}

		v += rounded
	}

	return int(v), nil
}
