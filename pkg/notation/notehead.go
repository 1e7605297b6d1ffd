package notation

import (
	"github.com/james-see/engrave/pkg/interval"
	"github.com/james-see/engrave/pkg/pitch"
)

// AccidentalDisplay controls whether LilyPond prints an accidental it would otherwise omit
type AccidentalDisplay int8

const (
	Neutral AccidentalDisplay = iota
	Cautionary
	Forced
)

func (a AccidentalDisplay) String() string {
	switch a {
	case Cautionary:
		return "?"
	case Forced:
		return "!"
	}
	return ""
}

// Notehead is a written pitch with its accidental display
type Notehead struct {
	Pitch   pitch.Pitch
	Display AccidentalDisplay
}

func NewNotehead(p pitch.Pitch) Notehead {
	return Notehead{Pitch: p}
}

func (h Notehead) Forced() Notehead {
	h.Display = Forced
	return h
}

func (h Notehead) Cautionary() Notehead {
	h.Display = Cautionary
	return h
}

func (h Notehead) Neutral() Notehead {
	h.Display = Neutral
	return h
}

func (h Notehead) Transpose(i interval.Interval) Notehead {
	h.Pitch = h.Pitch.Transpose(i)
	return h
}

func (h Notehead) Lilypond() string {
	return h.Pitch.String() + h.Display.String()
}
