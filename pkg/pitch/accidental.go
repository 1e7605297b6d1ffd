// Package pitch models spelled chromatic pitches and their transposition by intervals
package pitch

import (
	"fmt"
	"math"
)

// Accidental is a chromatic inflection counted in quarter tones, DoubleFlat (-4) to DoubleSharp (4)
type Accidental int8

const (
	DoubleFlat Accidental = iota - 4
	ThreeQuarterFlat
	Flat
	QuarterFlat
	Natural
	QuarterSharp
	Sharp
	ThreeQuarterSharp
	DoubleSharp
)

// InvalidAccidentalSizeError reports a semitone offset with no accidental
type InvalidAccidentalSizeError struct {
	Semitones float64
}

func (e *InvalidAccidentalSizeError) Error() string {
	return fmt.Sprintf("cannot create accidental from %g", e.Semitones)
}

// AccidentalFromSemitones maps an offset in [-2, 2], in steps of 0.5, to an Accidental
func AccidentalFromSemitones(semitones float64) (Accidental, error) {
	quarters := semitones * 2
	if quarters != math.Trunc(quarters) || quarters < -4 || quarters > 4 {
		return Natural, &InvalidAccidentalSizeError{Semitones: semitones}
	}
	return Accidental(quarters), nil
}

// Semitones returns the offset of the accidental
func (a Accidental) Semitones() float64 {
	return float64(a) / 2
}

func (a Accidental) quarterTones() int {
	return int(a)
}

var accidentalSuffixes = map[Accidental]string{
	DoubleFlat:        "ff",
	ThreeQuarterFlat:  "tqf",
	Flat:              "f",
	QuarterFlat:       "qf",
	Natural:           "",
	QuarterSharp:      "qs",
	Sharp:             "s",
	ThreeQuarterSharp: "tqs",
	DoubleSharp:       "ss",
}

// String returns the LilyPond (english) suffix
func (a Accidental) String() string {
	return accidentalSuffixes[a]
}
