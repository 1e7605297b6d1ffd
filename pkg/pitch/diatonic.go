package pitch

// DiatonicPitchClass is one of the seven letters C through B
type DiatonicPitchClass int8

const (
	C DiatonicPitchClass = iota
	D
	E
	F
	G
	A
	B
)

var naturalSemitones = [7]int{0, 2, 4, 5, 7, 9, 11}

var letters = [7]string{"c", "d", "e", "f", "g", "a", "b"}

// Index returns 0 for C through 6 for B
func (d DiatonicPitchClass) Index() int {
	return int(d)
}

// Semitones returns the natural pitch class of the letter
func (d DiatonicPitchClass) Semitones() int {
	return naturalSemitones[d]
}

// Shift moves the letter by n diatonic steps, wrapping around the scale
func (d DiatonicPitchClass) Shift(n int) DiatonicPitchClass {
	return diatonicFromIndex(int(d) + n)
}

func (d DiatonicPitchClass) Next() DiatonicPitchClass {
	return d.Shift(1)
}

func (d DiatonicPitchClass) Prev() DiatonicPitchClass {
	return d.Shift(-1)
}

func (d DiatonicPitchClass) String() string {
	return letters[d]
}

func diatonicFromIndex(i int) DiatonicPitchClass {
	return DiatonicPitchClass(((i % 7) + 7) % 7)
}
