package kansuji

import (
	"fmt"
	"math"
	"strconv"

	"github.com/govalues/decimal"
	"github.com/shabbyrobe/go-num"
)

// fracScale is the number of supported digits after the decimal point,
// one for each of 分, 厘, 毛.
const fracScale = 3

// Kansuji type represents a non-negative number written in kanji numerals.
// Its zero value corresponds to 零.
//
// The integer part is a 128-bit unsigned integer, the fractional part is
// kept as thousandths (0 to 999), so three digits after the decimal point are
// represented exactly.
// Kansuji is designed to be safe for concurrent use by multiple goroutines.
type Kansuji struct {
	integer num.U128 // integer part
	frac    uint16   // fractional part in thousandths
}

// newKansujiUnsafe creates a new value without checking the fraction.
// Use it only if you are absolutely sure that the arguments are valid.
func newKansujiUnsafe(integer num.U128, frac uint16) Kansuji {
	return Kansuji{integer: integer, frac: frac}
}

// NewFromUint128 converts a 128-bit unsigned integer to a value.
// Every 128-bit value can be represented. See also method [Kansuji.Uint128].
func NewFromUint128(u num.U128) Kansuji {
	return newKansujiUnsafe(u, 0)
}

// NewFromUint64 converts an unsigned integer to a value.
// See also method [Kansuji.Uint64].
func NewFromUint64(u uint64) Kansuji {
	return newKansujiUnsafe(num.U128From64(u), 0)
}

// NewFromFloat64 converts a float to a (possibly rounded) value.
// The fractional part is rounded to the nearest multiple of 0.001 (毛)
// using [rounding half to even]; finer digits are lost.
// See also method [Kansuji.Float64].
//
// NewFromFloat64 returns an error wrapping [ErrOutOfRange] if:
//   - the float is a special value (NaN or Inf);
//   - the float is negative;
//   - the integer part of the float does not fit into 128 bits.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func NewFromFloat64(f float64) (Kansuji, error) {
	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return Kansuji{}, fmt.Errorf("converting float: special value %v: %w", f, ErrOutOfRange)
	case f < 0:
		return Kansuji{}, fmt.Errorf("converting float: negative value %v: %w", f, ErrOutOfRange)
	case f >= 0x1p128:
		return Kansuji{}, fmt.Errorf("converting float: value %v exceeds 128 bits: %w", f, ErrOutOfRange)
	}

	// Floats below 2^53 may carry fractional digits
	if f < 0x1p53 {
		d, err := decimal.Parse(strconv.FormatFloat(f, 'f', -1, 64))
		if err != nil {
			return Kansuji{}, fmt.Errorf("converting float: %w", err)
		}
		k, err := NewFromDecimal(d)
		if err != nil {
			return Kansuji{}, fmt.Errorf("converting float: %w", err)
		}
		return k, nil
	}

	// Larger floats are integers
	u, ok := num.U128FromFloat64(f)
	if !ok {
		return Kansuji{}, fmt.Errorf("converting float: value %v exceeds 128 bits: %w", f, ErrOutOfRange)
	}
	return NewFromUint128(u), nil
}

// NewFromFloat32 is like [NewFromFloat64] but converts a float32.
// See also method [Kansuji.Float32].
func NewFromFloat32(f float32) (Kansuji, error) {
	return NewFromFloat64(float64(f))
}

// NewFromDecimal converts a decimal to a (possibly rounded) value.
// The fractional part is rounded to three digits using
// [rounding half to even]. See also method [Kansuji.Decimal].
//
// NewFromDecimal returns an error wrapping [ErrOutOfRange] if the decimal
// is negative.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func NewFromDecimal(d decimal.Decimal) (Kansuji, error) {
	if d.IsNeg() {
		return Kansuji{}, fmt.Errorf("converting decimal: negative value %v: %w", d, ErrOutOfRange)
	}
	if d.Scale() > fracScale {
		d = d.Round(fracScale)
	}
	coef, scale := d.Coef(), d.Scale()
	whole := coef / pow10[scale]
	frac := coef % pow10[scale] * pow10[fracScale-scale]
	return newKansujiUnsafe(num.U128From64(whole), uint16(frac)), nil
}

// Uint128 returns the value as a 128-bit unsigned integer.
// See also constructor [NewFromUint128] and method [Kansuji.Int].
//
// Uint128 returns an error wrapping [ErrNonIntegerConversion] if the value
// has a fractional part.
func (k Kansuji) Uint128() (num.U128, error) {
	if !k.IsInt() {
		return num.U128{}, fmt.Errorf("converting %v to integer: %w", k, ErrNonIntegerConversion)
	}
	return k.integer, nil
}

// Uint64 returns the value as an unsigned integer.
// See also constructor [NewFromUint64].
//
// Uint64 returns an error if:
//   - the value has a fractional part ([ErrNonIntegerConversion]);
//   - the value does not fit into 64 bits ([ErrOverflow]).
func (k Kansuji) Uint64() (uint64, error) {
	u, err := k.Uint128()
	if err != nil {
		return 0, err
	}
	hi, lo := u.Raw()
	if hi != 0 {
		return 0, fmt.Errorf("converting %v to uint64: %w", k, ErrOverflow)
	}
	return lo, nil
}

// Float64 returns the nearest binary floating-point number.
// Values beyond 2^53 are subject to the usual floating-point rounding.
// See also constructor [NewFromFloat64].
func (k Kansuji) Float64() float64 {
	return k.integer.AsFloat64() + k.Fraction()
}

// Float32 returns the value narrowed to a single-precision float.
// See also constructor [NewFromFloat32].
func (k Kansuji) Float32() float32 {
	return float32(k.Float64())
}

// Decimal returns the decimal representation of the value with trailing
// zeros removed. See also constructor [NewFromDecimal].
//
// Decimal returns an error wrapping [ErrOverflow] if the value needs more
// than [decimal.MaxPrec] digits.
func (k Kansuji) Decimal() (decimal.Decimal, error) {
	hi, lo := k.integer.Raw()
	if hi != 0 || lo > (math.MaxInt64-uint64(k.frac))/pow10[fracScale] {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", k, ErrOverflow)
	}
	coef := lo*pow10[fracScale] + uint64(k.frac)
	d, err := decimal.New(int64(coef), fracScale) //nolint:gosec
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", k, err)
	}
	return d.Trim(0), nil
}

// Int returns the integer part of the value.
// See also methods [Kansuji.Trunc], [Kansuji.Fraction].
func (k Kansuji) Int() num.U128 {
	return k.integer
}

// Fraction returns the fractional part of the value, a number in [0, 1).
// See also method [Kansuji.Int].
func (k Kansuji) Fraction() float64 {
	return float64(k.frac) / float64(pow10[fracScale])
}

// Trunc returns the value with the fractional part removed.
func (k Kansuji) Trunc() Kansuji {
	return newKansujiUnsafe(k.integer, 0)
}

// IsZero returns:
//
//	true  if k = 0
//	false otherwise
func (k Kansuji) IsZero() bool {
	return k.integer.IsZero() && k.frac == 0
}

// IsInt returns true if there are no significant digits after the decimal point.
func (k Kansuji) IsInt() bool {
	return k.frac == 0
}

// Cmp compares values and returns:
//
//	-1 if k < l
//	 0 if k = l
//	+1 if k > l
func (k Kansuji) Cmp(l Kansuji) int {
	if c := k.integer.Cmp(l.integer); c != 0 {
		return c
	}
	switch {
	case k.frac < l.frac:
		return -1
	case k.frac > l.frac:
		return 1
	}
	return 0
}
