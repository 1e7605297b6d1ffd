package notation

import (
	"github.com/james-see/engrave/pkg/duration"
	"github.com/james-see/engrave/pkg/pitch"
)

// TiedNotes writes p for d as a run of printable notes, longest first, each
// tied to the next. d must be positive with a power-of-two denominator.
func TiedNotes(p pitch.Pitch, d duration.Duration) ([]Node, error) {
	parts, err := d.PrintableList()
	if err != nil {
		return nil, err
	}
	out := make([]Node, len(parts))
	for i, part := range parts {
		n, err := NewNote(p, part)
		if err != nil {
			return nil, err
		}
		n.Tied = i < len(parts)-1
		out[i] = n
	}
	return out, nil
}

// TiedChords is TiedNotes for a chord
func TiedChords(pitches []pitch.Pitch, d duration.Duration) ([]Node, error) {
	parts, err := d.PrintableList()
	if err != nil {
		return nil, err
	}
	out := make([]Node, len(parts))
	for i, part := range parts {
		c, err := NewChord(pitches, part)
		if err != nil {
			return nil, err
		}
		c.Tied = i < len(parts)-1
		out[i] = c
	}
	return out, nil
}

// Rests fills d with printable rests, longest first
func Rests(d duration.Duration) ([]Node, error) {
	parts, err := d.PrintableList()
	if err != nil {
		return nil, err
	}
	out := make([]Node, len(parts))
	for i, part := range parts {
		r, err := NewRest(part)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}
