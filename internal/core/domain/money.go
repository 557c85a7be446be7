package domain

import (
	"fmt"
	"math"
	"math/bits"
)

// minorPerWhole is the number of minor units (cents) in one whole unit.
const minorPerWhole = 100

// Currency is a compile-time marker for the unit a MonetaryAmount is expressed in.
// Implementations carry no data.
type Currency interface {
	Symbol() string
}

// Euro is the currency every prize of the lottery is paid in.
type Euro struct{}

// Symbol returns the euro sign.
func (Euro) Symbol() string { return "€" }

// MonetaryAmount is an integer number of minor units of currency C.
// Amounts of different currencies are different types and cannot be combined.
type MonetaryAmount[C Currency] struct {
	value int64
}

// Amount is the monetary amount used throughout the award engine.
type Amount = MonetaryAmount[Euro]

// FromMinor builds an amount from minor units (cents).
func FromMinor[C Currency](minor int64) MonetaryAmount[C] {
	return MonetaryAmount[C]{value: minor}
}

// FromWhole builds an amount from whole units.
func FromWhole[C Currency](whole int64) MonetaryAmount[C] {
	return MonetaryAmount[C]{value: mustMul(whole, minorPerWhole)}
}

// FromWholeAndMinor builds an amount from whole units plus a separate minor component.
// The sign of whole applies to minor as well.
func FromWholeAndMinor[C Currency](whole int64, minor uint8) MonetaryAmount[C] {
	m := int64(minor)
	switch {
	case whole == 0:
		return MonetaryAmount[C]{value: m}
	case whole > 0:
		return MonetaryAmount[C]{value: mustAdd(mustMul(whole, minorPerWhole), m)}
	default:
		return MonetaryAmount[C]{value: mustSub(mustMul(whole, minorPerWhole), m)}
	}
}

// FromFloatTruncated converts a floating amount of whole units, truncating toward zero
// at the minor unit. It panics with ErrAmountOverflow when the value is NaN or does
// not fit in int64 minor units.
func FromFloatTruncated[C Currency](whole float64) MonetaryAmount[C] {
	t := math.Trunc(whole * minorPerWhole)
	// -2^63 is exactly representable; 2^63 is the first value past MaxInt64.
	if math.IsNaN(t) || t < math.MinInt64 || t >= -math.MinInt64 {
		panic(fmt.Errorf("%w: %v whole units", ErrAmountOverflow, whole))
	}
	return MonetaryAmount[C]{value: int64(t)}
}

// Cents builds a euro amount from cents.
func Cents(c int64) Amount { return FromMinor[Euro](c) }

// Euros builds a euro amount from whole euros.
func Euros(e int64) Amount { return FromWhole[Euro](e) }

// EurosAndCents builds a euro amount from whole euros and cents.
func EurosAndCents(e int64, c uint8) Amount { return FromWholeAndMinor[Euro](e, c) }

// EurosTruncated converts floating euros, truncating toward zero at the cent.
func EurosTruncated(e float64) Amount { return FromFloatTruncated[Euro](e) }

// Minor returns the amount in minor units.
func (a MonetaryAmount[C]) Minor() int64 { return a.value }

// IsZero reports whether the amount is zero.
func (a MonetaryAmount[C]) IsZero() bool { return a.value == 0 }

// Add returns a + b. It panics on overflow.
func (a MonetaryAmount[C]) Add(b MonetaryAmount[C]) MonetaryAmount[C] {
	return MonetaryAmount[C]{value: mustAdd(a.value, b.value)}
}

// Sub returns a - b. It panics on overflow.
func (a MonetaryAmount[C]) Sub(b MonetaryAmount[C]) MonetaryAmount[C] {
	return MonetaryAmount[C]{value: mustSub(a.value, b.value)}
}

// Mul multiplies the raw minor-unit values of a and b. It panics on overflow.
func (a MonetaryAmount[C]) Mul(b MonetaryAmount[C]) MonetaryAmount[C] {
	return MonetaryAmount[C]{value: mustMul(a.value, b.value)}
}

// Div divides the raw minor-unit values of a and b, truncating toward zero.
func (a MonetaryAmount[C]) Div(b MonetaryAmount[C]) MonetaryAmount[C] {
	return MonetaryAmount[C]{value: a.value / b.value}
}

// MulDiv returns a × num ÷ den over minor units, truncated toward zero.
// The product is kept in 128 bits, so the result equals a.Mul(num).Div(den)
// whenever that does not overflow, and ErrAmountOverflow is returned when the
// quotient itself does not fit.
func (a MonetaryAmount[C]) MulDiv(num, den MonetaryAmount[C]) (MonetaryAmount[C], error) {
	if den.value == 0 {
		return MonetaryAmount[C]{}, ErrDivisionByZero
	}

	neg := (a.value < 0) != (num.value < 0) != (den.value < 0)
	hi, lo := bits.Mul64(absUint(a.value), absUint(num.value))
	d := absUint(den.value)
	if hi >= d {
		return MonetaryAmount[C]{}, ErrAmountOverflow
	}
	q, _ := bits.Div64(hi, lo, d)

	if neg {
		if q > 1<<63 {
			return MonetaryAmount[C]{}, ErrAmountOverflow
		}
		return MonetaryAmount[C]{value: int64(-q)}, nil
	}
	if q > math.MaxInt64 {
		return MonetaryAmount[C]{}, ErrAmountOverflow
	}
	return MonetaryAmount[C]{value: int64(q)}, nil
}

// String renders the amount as <whole>.<cc><symbol>. Only the whole part carries
// the sign, so -50 cents renders as "0.50€".
func (a MonetaryAmount[C]) String() string {
	var c C
	whole := a.value / minorPerWhole
	frac := a.value % minorPerWhole
	if frac < 0 {
		frac = -frac
	}
	return fmt.Sprintf("%d.%02d%s", whole, frac, c.Symbol())
}

func absUint(v int64) uint64 {
	if v < 0 {
		return uint64(^v) + 1
	}
	return uint64(v)
}

func mustAdd(a, b int64) int64 {
	s := a + b
	if (s > a) != (b > 0) {
		panic(fmt.Errorf("%w: %d + %d", ErrAmountOverflow, a, b))
	}
	return s
}

func mustSub(a, b int64) int64 {
	s := a - b
	if (s < a) != (b > 0) {
		panic(fmt.Errorf("%w: %d - %d", ErrAmountOverflow, a, b))
	}
	return s
}

func mustMul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	if p/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		panic(fmt.Errorf("%w: %d * %d", ErrAmountOverflow, a, b))
	}
	return p
}
