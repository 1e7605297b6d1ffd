package duration

import "fmt"

// Multiplier is a reduced ratio used to scale durations, e.g. the 2/3 of a triplet
type Multiplier struct {
	numerator   int
	denominator int
}

// NewMultiplier creates a reduced Multiplier. It panics if denominator is zero.
func NewMultiplier(numerator, denominator int) Multiplier {
	if denominator == 0 {
		panic("duration: zero multiplier denominator")
	}
	n, d := reduce(numerator, denominator)
	return Multiplier{numerator: n, denominator: d}
}

// Pair returns numerator and denominator
func (m Multiplier) Pair() (int, int) {
	if m.denominator == 0 {
		return m.numerator, 1
	}
	return m.numerator, m.denominator
}

// Float returns the ratio as a float
func (m Multiplier) Float() float64 {
	n, d := m.Pair()
	return float64(n) / float64(d)
}

func (m Multiplier) Add(other Multiplier) Multiplier {
	a, b := m.Pair()
	c, d := other.Pair()
	g := gcd(b, d)
	return NewMultiplier(a*(d/g)+c*(b/g), b/g*d)
}

func (m Multiplier) Sub(other Multiplier) Multiplier {
	return m.Add(other.Neg())
}

func (m Multiplier) Mul(other Multiplier) Multiplier {
	a, b := m.Pair()
	c, d := other.Pair()
	return NewMultiplier(crossReduce(a, b, c, d))
}

func (m Multiplier) MulInt(n int) Multiplier {
	a, b := m.Pair()
	return NewMultiplier(a*n, b)
}

func (m Multiplier) Div(other Multiplier) (Multiplier, error) {
	c, d := other.Pair()
	if c == 0 {
		return Multiplier{}, ErrDivisionByZero
	}
	a, b := m.Pair()
	return NewMultiplier(crossReduce(a, b, d, c)), nil
}

func (m Multiplier) DivInt(n int) (Multiplier, error) {
	if n == 0 {
		return Multiplier{}, ErrDivisionByZero
	}
	a, b := m.Pair()
	return NewMultiplier(a, b*n), nil
}

func (m Multiplier) Neg() Multiplier {
	a, b := m.Pair()
	return NewMultiplier(-a, b)
}

func (m Multiplier) Abs() Multiplier {
	a, b := m.Pair()
	return NewMultiplier(abs(a), b)
}

// Scale applies the multiplier to a duration
func (m Multiplier) Scale(d Duration) Duration {
	a, b := m.Pair()
	return d.Mul(New(a, b))
}

func (m Multiplier) String() string {
	a, b := m.Pair()
	return fmt.Sprintf("%d/%d", a, b)
}
