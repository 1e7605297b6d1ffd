package pitch

import "github.com/james-see/engrave/pkg/interval"

// Pitch is a pitch class placed in an octave
type Pitch struct {
	class  PitchClass
	octave Octave
}

// C4 is middle C
var C4 = New(NewPitchClass(C, Natural), 4)

func New(class PitchClass, octave int) Pitch {
	return Pitch{class: class, octave: Octave(octave)}
}

func (p Pitch) Class() PitchClass { return p.class }
func (p Pitch) Octave() Octave    { return p.octave }

// Semitones is the signed distance from middle C, following the spelling:
// Cb4 is -1 and B#3 is 0.
func (p Pitch) Semitones() float64 {
	return float64(p.quarterTones()) / 2
}

func (p Pitch) quarterTones() int {
	return p.class.quarterTones() + 2*p.octave.Semitones()
}

// Transpose moves the pitch by i, keeping the letter distance the interval
// names unless that would need more than a double accidental.
func (p Pitch) Transpose(i interval.Interval) Pitch {
	target := p.quarterTones() + int(2*i.Semitones())
	letter := p.class.diatonic.Shift(i.StaffSpaces())

	anchor := nearestOctave(target, 2*letter.Semitones())
	residual := target - anchor
	octave := floorDiv(anchor, 24) + 4

	letter, residual, octave = simplify(letter, residual, octave)
	return New(NewPitchClass(letter, Accidental(residual)), octave)
}

// nearestOctave returns the height of pc closest to target, all in quarter tones.
// Ties resolve downward.
func nearestOctave(target, pc int) int {
	targetPC := mod(target, 24)
	down := mod(targetPC-pc, 24)
	up := mod(pc-targetPC, 24)
	if up < down {
		return target + up
	}
	return target - down
}

// simplify respells a residual beyond a double accidental onto a neighbouring letter
func simplify(letter DiatonicPitchClass, residual, octave int) (DiatonicPitchClass, int, int) {
	for residual > 4 {
		step := 4
		switch letter {
		case E:
			step = 2
		case B:
			step = 2
			octave++
		}
		letter = letter.Next()
		residual -= step
	}
	for residual < -4 {
		step := 4
		switch letter {
		case F:
			step = 2
		case C:
			step = 2
			octave--
		}
		letter = letter.Prev()
		residual += step
	}
	return letter, residual, octave
}

var sharpSpellings = [12]PitchClass{
	{C, Natural}, {C, Sharp}, {D, Natural}, {D, Sharp}, {E, Natural}, {F, Natural},
	{F, Sharp}, {G, Natural}, {G, Sharp}, {A, Natural}, {A, Sharp}, {B, Natural},
}

// FromSemitones spells a chromatic distance from middle C with sharps
func FromSemitones(n int) Pitch {
	return New(sharpSpellings[mod(n, 12)], floorDiv(n, 12)+4)
}

// FromMIDI spells a MIDI key number, 60 being middle C
func FromMIDI(key uint8) Pitch {
	return FromSemitones(int(key) - 60)
}

// MIDI returns the key number nearest the pitch, rounding quarter tones up
// and clamping to the MIDI range.
func (p Pitch) MIDI() uint8 {
	key := floorDiv(p.quarterTones()+1, 2) + 60
	switch {
	case key < 0:
		return 0
	case key > 127:
		return 127
	}
	return uint8(key)
}

// Compare orders by octave, then letter, then accidental
func (p Pitch) Compare(other Pitch) int {
	switch {
	case p.octave != other.octave:
		return sign(int(p.octave) - int(other.octave))
	case p.class.diatonic != other.class.diatonic:
		return sign(int(p.class.diatonic) - int(other.class.diatonic))
	}
	return sign(int(p.class.accidental) - int(other.class.accidental))
}

// String returns the LilyPond spelling, e.g. "cs'" for C#4
func (p Pitch) String() string {
	return p.class.String() + p.octave.String()
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}

func floorDiv(a, n int) int {
	q := a / n
	if a%n != 0 && (a < 0) != (n < 0) {
		q--
	}
	return q
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
