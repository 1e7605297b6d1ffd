package pitch

import "strings"

// Octave is a scientific octave number; octave 4 holds middle C
type Octave int

// Semitones returns the offset from octave 4
func (o Octave) Semitones() int {
	return 12 * (int(o) - 4)
}

// String returns LilyPond octave marks relative to octave 3
func (o Octave) String() string {
	switch {
	case o > 3:
		return strings.Repeat("'", int(o)-3)
	case o < 3:
		return strings.Repeat(",", 3-int(o))
	}
	return ""
}
