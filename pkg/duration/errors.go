package duration

import (
	"errors"
	"fmt"
)

// ErrNegative is returned when a negative duration is decomposed into printable durations
var ErrNegative = errors.New("duration: cannot decompose a negative duration")

// ErrTooLong is returned when a duration is longer than MaxDecomposable
var ErrTooLong = errors.New("duration: too long to decompose")

// UnprintableError reports a duration that cannot be written as a single notehead
type UnprintableError struct {
	Numerator   int
	Denominator int
}

func (e *UnprintableError) Error() string {
	return fmt.Sprintf("cannot print duration %d/%d", e.Numerator, e.Denominator)
}

func unprintable(d Duration) error {
	n, den := d.Pair()
	return &UnprintableError{Numerator: n, Denominator: den}
}
