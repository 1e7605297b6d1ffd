package duration

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// MaxDecomposable is the longest duration PrintableList will split, in whole notes
const MaxDecomposable = 4096

// EqualOrShorterPrintable returns the longest printable duration at or below d whose
// numerator sits on d's denominator. ok is false when there is none.
func (d Duration) EqualOrShorterPrintable() (Duration, bool) {
	n, den := d.Pair()
	odd, exp := splitDenominator(den)
	// only multiples of the odd factor reduce to a power-of-two denominator
	m := n / odd
	if m <= 0 {
		return Zero, false
	}
	if m>>exp >= 16 {
		return New(16<<exp-1, 1<<exp), true
	}
	return New(leadingRun(m), 1<<exp), true
}

// EqualOrGreaterPrintable returns the shortest printable duration at or above d whose
// numerator sits on d's denominator. ok is false when it would reach 16 whole notes.
func (d Duration) EqualOrGreaterPrintable() (Duration, bool) {
	n, den := d.Pair()
	if n < 1 {
		n = 1
	}
	odd, exp := splitDenominator(den)
	m := n / odd
	if n%odd != 0 {
		m++
	}
	c := nextRun(m)
	if c>>exp >= 16 {
		return Zero, false
	}
	return New(c, 1<<exp), true
}

// PrintableList splits d into printable durations, longest first, that sum to d.
// Zero yields an empty list. A negative duration returns ErrNegative, a duration
// longer than MaxDecomposable returns ErrTooLong and a remainder without a
// power-of-two denominator returns an *UnprintableError.
func (d Duration) PrintableList() ([]Duration, error) {
	if d.IsNegative() {
		return nil, ErrNegative
	}
	if d.Cmp(New(MaxDecomposable, 1)) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrTooLong, d)
	}
	var out []Duration
	rest := d
	for !rest.IsZero() {
		if rest.IsPrintable() {
			return append(out, rest), nil
		}
		next, ok := rest.EqualOrShorterPrintable()
		if !ok {
			return nil, unprintable(rest)
		}
		out = append(out, next)
		rest = rest.Sub(next)
	}
	return out, nil
}

// Lilypond renders a printable duration as a LilyPond duration token, e.g. "4.", "8..", "\maxima..."
func (d Duration) Lilypond() (string, error) {
	if !d.IsPrintable() {
		return "", unprintable(d)
	}
	return baseToken(d) + strings.Repeat(".", d.Dots()), nil
}

func baseToken(d Duration) string {
	switch f := d.Float(); {
	case f >= 8:
		return `\maxima`
	case f >= 4:
		return `\longa`
	case f >= 2:
		return `\breve`
	}
	exponent := bits.Len(uint(d.Denominator())) - 1 - d.Dots()
	return strconv.Itoa(1 << exponent)
}
