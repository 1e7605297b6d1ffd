// Package duration provides rational time values and their LilyPond notation
package duration

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrDivisionByZero is returned when dividing by a zero-valued Duration or scalar
var ErrDivisionByZero = errors.New("duration: division by zero")

// Duration is a reduced fraction of a whole note.
// The denominator is always positive; the sign is carried by the numerator.
type Duration struct {
	numerator   int
	denominator int
}

// Zero is the empty duration
var Zero = Duration{numerator: 0, denominator: 1}

// New creates a reduced Duration. It panics if denominator is zero.
func New(numerator, denominator int) Duration {
	if denominator == 0 {
		panic("duration: zero denominator")
	}
	n, d := reduce(numerator, denominator)
	return Duration{numerator: n, denominator: d}
}

// Numerator returns the reduced numerator
func (d Duration) Numerator() int {
	return d.numerator
}

// Denominator returns the reduced, positive denominator
func (d Duration) Denominator() int {
	if d.denominator == 0 {
		return 1
	}
	return d.denominator
}

// Pair returns numerator and denominator
func (d Duration) Pair() (int, int) {
	return d.numerator, d.Denominator()
}

// Float returns the duration as a float
func (d Duration) Float() float64 {
	return float64(d.numerator) / float64(d.Denominator())
}

// Add returns d + other. Like all arithmetic here it works in int; results whose
// reduced numerator or denominator do not fit in int overflow silently.
func (d Duration) Add(other Duration) Duration {
	a, b := d.Pair()
	c, e := other.Pair()
	g := gcd(b, e)
	return New(a*(e/g)+c*(b/g), b/g*e)
}

// Sub returns d - other
func (d Duration) Sub(other Duration) Duration {
	return d.Add(other.Neg())
}

// Mul returns d * other
func (d Duration) Mul(other Duration) Duration {
	a, b := d.Pair()
	c, e := other.Pair()
	return New(crossReduce(a, b, c, e))
}

// MulInt returns d * n
func (d Duration) MulInt(n int) Duration {
	a, b := d.Pair()
	return New(a*n, b)
}

// Div returns d / other
func (d Duration) Div(other Duration) (Duration, error) {
	if other.IsZero() {
		return Zero, ErrDivisionByZero
	}
	a, b := d.Pair()
	c, e := other.Pair()
	n, den := crossReduce(a, b, e, c)
	return New(n, den), nil
}

// DivInt returns d / n
func (d Duration) DivInt(n int) (Duration, error) {
	if n == 0 {
		return Zero, ErrDivisionByZero
	}
	a, b := d.Pair()
	return New(a, b*n), nil
}

// Neg returns -d
func (d Duration) Neg() Duration {
	return New(-d.numerator, d.Denominator())
}

// Abs returns |d|
func (d Duration) Abs() Duration {
	if d.numerator < 0 {
		return d.Neg()
	}
	return New(d.numerator, d.Denominator())
}

// IsZero reports whether d == 0
func (d Duration) IsZero() bool {
	return d.numerator == 0
}

// IsNegative reports whether d < 0. Zero is not negative.
func (d Duration) IsNegative() bool {
	return d.numerator < 0
}

// Cmp compares d and other and returns -1, 0 or +1
func (d Duration) Cmp(other Duration) int {
	a, b := d.Pair()
	c, e := other.Pair()
	// compare a/b with c/e as a*(e/g) against c*(b/g), in 128 bits
	g := gcd(b, e)
	return cmpProducts(a, e/g, c, b/g)
}

// Equal reports whether d and other are the same value
func (d Duration) Equal(other Duration) bool {
	return d.Cmp(other) == 0
}

// Max returns the longer of d and other
func Max(d, other Duration) Duration {
	if other.Cmp(d) > 0 {
		return other
	}
	return d
}

// Sum adds up a list of durations
func Sum(durations []Duration) Duration {
	total := Zero
	for _, d := range durations {
		total = total.Add(d)
	}
	return total
}

// String returns the fraction as "n/d"
func (d Duration) String() string {
	return fmt.Sprintf("%d/%d", d.numerator, d.Denominator())
}

// IsPrintable reports whether d can be written as a single notehead:
// strictly between 0 and 16, a power-of-two denominator and a numerator made only of 1-bits.
func (d Duration) IsPrintable() bool {
	return d.hasPrintableLength() && d.hasPrintableDenominator() && !d.isTied()
}

func (d Duration) hasPrintableLength() bool {
	f := d.Float()
	return 0 < f && f < 16
}

func (d Duration) hasPrintableDenominator() bool {
	return isPowerOfTwo(d.Denominator())
}

// a numerator whose binary form contains "01" needs a tie
func (d Duration) isTied() bool {
	n := uint(d.numerator)
	if d.numerator <= 0 {
		return true
	}
	n >>= bits.TrailingZeros(n)
	return n&(n+1) != 0
}

// Dots returns the number of augmentation dots of a printable duration
func (d Duration) Dots() int {
	if d.numerator <= 0 {
		return 0
	}
	return bits.OnesCount(uint(d.numerator)) - 1
}
