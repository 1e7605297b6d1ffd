package pitch

// PitchClass is a spelled, octave-free pitch
type PitchClass struct {
	diatonic   DiatonicPitchClass
	accidental Accidental
}

// NewPitchClass combines a letter and an accidental
func NewPitchClass(diatonic DiatonicPitchClass, accidental Accidental) PitchClass {
	return PitchClass{diatonic: diatonic, accidental: accidental}
}

func (pc PitchClass) Diatonic() DiatonicPitchClass {
	return pc.diatonic
}

func (pc PitchClass) Accidental() Accidental {
	return pc.accidental
}

// Semitones returns the pitch class normalized into [0, 12)
func (pc PitchClass) Semitones() float64 {
	q := pc.quarterTones() % 24
	if q < 0 {
		q += 24
	}
	return float64(q) / 2
}

// quarterTones is the unnormalized height above C: Cb is -2, B# is 24
func (pc PitchClass) quarterTones() int {
	return 2*pc.diatonic.Semitones() + pc.accidental.quarterTones()
}

func (pc PitchClass) String() string {
	return pc.diatonic.String() + pc.accidental.String()
}
