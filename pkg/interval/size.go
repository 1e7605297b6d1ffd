package interval

import "strconv"

// Size is the nominal diatonic size of an interval class, Unison through Octave
type Size int

const (
	Unison Size = iota + 1
	Second
	Third
	Fourth
	Fifth
	Sixth
	Seventh
	Octave
)

var naturalSemitones = map[Size]float64{
	Unison:  0,
	Second:  2,
	Third:   4,
	Fourth:  5,
	Fifth:   7,
	Sixth:   9,
	Seventh: 11,
	Octave:  12,
}

// Semitones is the major or perfect width of the size
func (s Size) Semitones() float64 {
	return naturalSemitones[s]
}

// CanBePerfect reports whether the size takes Perfect rather than Major/Minor
func (s Size) CanBePerfect() bool {
	switch s {
	case Unison, Fourth, Fifth, Octave:
		return true
	}
	return false
}

// StaffSpaces is the vertical distance in diatonic steps
func (s Size) StaffSpaces() int {
	return int(s) - 1
}

func (s Size) String() string {
	return strconv.Itoa(int(s))
}
