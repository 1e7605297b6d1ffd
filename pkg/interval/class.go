package interval

// Class is a simple interval: size, quality, direction and quartertone inflection.
// Non-perfect octave classes are stored as unisons.
type Class struct {
	size        Size
	quality     Quality
	polarity    Polarity
	quartertone Quartertone
}

// NewClass validates the quality/size pairing. Perfect sizes reject Major and Minor,
// the other sizes reject Perfect.
func NewClass(quality Quality, size Size) (Class, error) {
	if !validPair(quality, size) {
		return Class{}, &InvalidClassError{Quality: quality, Size: size}
	}
	if size == Octave && !quality.IsPerfect() {
		size = Unison
	}
	polarity := Positive
	if size == Unison && quality.IsPerfect() {
		polarity = NoPolarity
	}
	return Class{size: size, quality: quality, polarity: polarity}, nil
}

func validPair(quality Quality, size Size) bool {
	if size < Unison || size > Octave {
		return false
	}
	if size.CanBePerfect() {
		return !quality.IsMajor() && !quality.IsMinor()
	}
	return !quality.IsPerfect()
}

func perfectUnison() Class {
	return Class{size: Unison, quality: Perfect}
}

func (c Class) Size() Size               { return c.size }
func (c Class) Quality() Quality         { return c.quality }
func (c Class) Polarity() Polarity       { return c.polarity }
func (c Class) Quartertone() Quartertone { return c.quartertone }

// StaffSpaces is the undirected diatonic step count of the class
func (c Class) StaffSpaces() int {
	return c.size.StaffSpaces()
}

func (c Class) QuarterSharp() Class {
	return c.withQuartertone(QuarterSharp)
}

func (c Class) QuarterFlat() Class {
	return c.withQuartertone(QuarterFlat)
}

func (c Class) withQuartertone(q Quartertone) Class {
	c.quartertone = q
	c.polarity = c.polarity.OrPositive()
	return c
}

func (c Class) IsPerfectUnison() bool {
	return c.size == Unison && c.quality.IsPerfect() && c.quartertone == NoQuartertone
}

func (c Class) IsPerfectOctave() bool {
	return c.size == Octave && c.quality.IsPerfect() && c.quartertone == NoQuartertone
}

// Semitones returns the signed width of the class
func (c Class) Semitones() float64 {
	width := c.size.Semitones() + c.quality.Semitones(c.size) + c.quartertone.Semitones()
	return float64(c.polarity.Sign()) * width
}

// Neg reads the same class in the opposite direction. It does not invert the interval.
func (c Class) Neg() Class {
	c.polarity = c.polarity.Neg()
	return c
}

func (c Class) String() string {
	return c.polarity.String() + c.quality.String() + c.quartertone.String() + c.size.String()
}
