package duration

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

func abs[T constraints.Signed](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

func gcd[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// reduce divides out the common factor and moves the sign onto the numerator
func reduce(a, b int) (int, int) {
	g := gcd(abs(a), abs(b))
	if g == 0 {
		return 0, 1
	}
	a, b = a/g, b/g
	if b < 0 {
		a, b = -a, -b
	}
	return a, b
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// splitDenominator factors den into odd * 2^exp
func splitDenominator(den int) (odd, exp int) {
	exp = bits.TrailingZeros(uint(den))
	return den >> exp, exp
}

// leadingRun keeps the leading run of 1-bits of n and clears every bit after it
func leadingRun(n int) int {
	u := uint(n)
	width := bits.Len(u)
	run := bits.LeadingZeros(^(u << (bits.UintSize - width)))
	low := width - run
	return n >> low << low
}

// nextRun returns the smallest value at or above n made of one run of 1-bits
// followed by zeros
func nextRun(n int) int {
	u := uint(n)
	if t := u >> bits.TrailingZeros(u); t&(t+1) == 0 {
		return n
	}
	width := bits.Len(u)
	run := bits.LeadingZeros(^(u << (bits.UintSize - width)))
	low := width - run - 1
	return (n>>low | 1) << low
}

// crossReduce multiplies a/b by c/e, dividing out common factors first
func crossReduce(a, b, c, e int) (int, int) {
	g1 := gcd(abs(a), abs(e))
	if g1 == 0 {
		g1 = 1
	}
	g2 := gcd(abs(c), abs(b))
	if g2 == 0 {
		g2 = 1
	}
	return (a / g1) * (c / g2), (b / g2) * (e / g1)
}

// cmpProducts compares x*y with u*v without overflowing, for y and v positive
func cmpProducts(x, y, u, v int) int {
	l, r := mul128(x, y), mul128(u, v)
	switch {
	case l.hi != r.hi:
		if l.hi < r.hi {
			return -1
		}
		return 1
	case l.lo < r.lo:
		return -1
	case l.lo > r.lo:
		return 1
	}
	return 0
}

type int128 struct {
	hi int64
	lo uint64
}

// mul128 returns the exact product of a signed x and a positive y
func mul128(x, y int) int128 {
	hi, lo := bits.Mul64(uint64(abs(x)), uint64(y))
	p := int128{hi: int64(hi), lo: lo}
	if x < 0 {
		// two's complement negation
		p.lo = ^p.lo + 1
		p.hi = ^p.hi
		if p.lo == 0 {
			p.hi++
		}
	}
	return p
}
