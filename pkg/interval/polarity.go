package interval

// Polarity is the direction of an interval. The zero value means no direction,
// which only the perfect unison has.
type Polarity int8

const (
	NoPolarity Polarity = 0
	Positive   Polarity = 1
	Negative   Polarity = -1
)

// Sign returns -1 for Negative and 1 otherwise
func (p Polarity) Sign() int {
	if p == Negative {
		return -1
	}
	return 1
}

// Neg flips the direction; a directionless polarity stays directionless
func (p Polarity) Neg() Polarity {
	return -p
}

// OrPositive defaults an unset polarity to Positive
func (p Polarity) OrPositive() Polarity {
	if p == NoPolarity {
		return Positive
	}
	return p
}

func polarityOf(n int) Polarity {
	if n > 0 {
		return Positive
	}
	return Negative
}

func (p Polarity) String() string {
	switch p {
	case Positive:
		return "+"
	case Negative:
		return "-"
	}
	return ""
}
