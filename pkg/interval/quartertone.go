package interval

// Quartertone is an optional half-semitone inflection of an interval
type Quartertone int8

const (
	NoQuartertone Quartertone = 0
	QuarterSharp  Quartertone = 1
	QuarterFlat   Quartertone = -1
)

func (q Quartertone) Semitones() float64 {
	return float64(q) / 2
}

func (q Quartertone) String() string {
	switch q {
	case QuarterSharp:
		return "+"
	case QuarterFlat:
		return "~"
	}
	return ""
}
