package interval

import "strconv"

// Interval is a possibly compound, directed interval: a Class plus whole octaves
type Interval struct {
	class    Class
	octaves  int
	polarity Polarity
}

// New builds an interval from a quality and a signed size such as 10 (a tenth) or -5.
// Sizes above an octave are folded into a class and an octave count; perfect octaves and
// their multiples keep an Octave class.
func New(quality Quality, size int) (Interval, error) {
	sign := 1
	if size < 0 {
		sign = -1
	}
	magnitude := size * sign
	if magnitude == 0 {
		return Interval{}, &InvalidClassError{Quality: quality, Size: Size(0)}
	}

	reduced, octaves := magnitude, 0
	for reduced > 7 {
		reduced -= 7
		octaves++
	}
	if reduced == 1 && magnitude >= 8 && quality.IsPerfect() {
		reduced = 8
		octaves--
	}

	class, err := NewClass(quality, Size(reduced))
	if err != nil {
		return Interval{}, err
	}

	polarity := NoPolarity
	if !class.IsPerfectUnison() {
		polarity = polarityOf(sign)
	}
	if polarity == Negative {
		class = class.Neg()
	}
	return Interval{class: class, octaves: octaves, polarity: polarity}, nil
}

// MustNew is like New but panics on an invalid quality/size pairing
func MustNew(quality Quality, size int) Interval {
	i, err := New(quality, size)
	if err != nil {
		panic(err)
	}
	return i
}

// Identity is the perfect unison, the directionless interval
var Identity = Interval{class: perfectUnison()}

func (i Interval) Class() Class       { return i.class }
func (i Interval) Octaves() int       { return i.octaves }
func (i Interval) Polarity() Polarity { return i.polarity }

// StaffSpaces is the signed diatonic step count
func (i Interval) StaffSpaces() int {
	return (i.class.StaffSpaces() + 7*i.octaves) * i.polarity.Sign()
}

func (i Interval) QuarterSharp() Interval {
	i = i.unfoldPerfectOctave()
	i.class = i.class.QuarterSharp()
	i.polarity = i.polarity.OrPositive()
	return i
}

func (i Interval) QuarterFlat() Interval {
	i = i.unfoldPerfectOctave()
	i.class = i.class.QuarterFlat()
	i.polarity = i.polarity.OrPositive()
	return i
}

// a quartertone-inflected octave has no class of its own
func (i Interval) unfoldPerfectOctave() Interval {
	if !i.class.IsPerfectOctave() {
		return i
	}
	unison := perfectUnison()
	unison.polarity = i.class.polarity
	i.class = unison
	i.octaves++
	return i
}

// Semitones returns the signed width including octaves
func (i Interval) Semitones() float64 {
	return i.class.Semitones() + float64(12*i.polarity.Sign()*i.octaves)
}

// Neg flips the direction of the interval and its class together
func (i Interval) Neg() Interval {
	i.polarity = i.polarity.Neg()
	i.class = i.class.Neg()
	return i
}

func (i Interval) String() string {
	c := i.class
	return c.polarity.String() + c.quality.String() + c.quartertone.String() +
		strconv.Itoa(int(c.size)+7*i.octaves)
}
