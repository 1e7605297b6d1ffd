package notation

import (
	"sort"
	"strings"

	"github.com/james-see/engrave/pkg/duration"
	"github.com/james-see/engrave/pkg/pitch"
)

// Note is a single pitched event
type Note struct {
	notehead Notehead
	duration duration.Duration
	// Tied joins the note to the one that follows
	Tied bool
}

// NewNote fails with *duration.UnprintableError when d needs more than one notehead
func NewNote(p pitch.Pitch, d duration.Duration) (*Note, error) {
	if err := checkPrintable(d); err != nil {
		return nil, err
	}
	return &Note{notehead: NewNotehead(p), duration: d}, nil
}

func (n *Note) Notehead() Notehead                 { return n.notehead }
func (n *Note) WrittenPitch() pitch.Pitch          { return n.notehead.Pitch }
func (n *Note) WrittenDuration() duration.Duration { return n.duration }

func (n *Note) SetDisplay(d AccidentalDisplay) {
	n.notehead.Display = d
}

func (n *Note) Lilypond() (string, error) {
	d, err := n.duration.Lilypond()
	if err != nil {
		return "", err
	}
	return n.notehead.Lilypond() + d + tie(n.Tied), nil
}

func (n *Note) ToNote() *Note {
	c := *n
	return &c
}

func (n *Note) ToRest() *Rest     { return &Rest{duration: n.duration} }
func (n *Note) ToSpacer() *Spacer { return &Spacer{duration: n.duration} }

func (n *Note) ToChord() *Chord {
	return &Chord{noteheads: []Notehead{n.notehead}, duration: n.duration, Tied: n.Tied}
}

// Rest is a printed silence
type Rest struct {
	duration duration.Duration
}

func NewRest(d duration.Duration) (*Rest, error) {
	if err := checkPrintable(d); err != nil {
		return nil, err
	}
	return &Rest{duration: d}, nil
}

func (r *Rest) WrittenDuration() duration.Duration { return r.duration }

func (r *Rest) Lilypond() (string, error) {
	d, err := r.duration.Lilypond()
	if err != nil {
		return "", err
	}
	return "r" + d, nil
}

func (r *Rest) ToNote() *Note {
	return &Note{notehead: NewNotehead(pitch.C4), duration: r.duration}
}

func (r *Rest) ToRest() *Rest {
	c := *r
	return &c
}

func (r *Rest) ToSpacer() *Spacer { return &Spacer{duration: r.duration} }

func (r *Rest) ToChord() *Chord {
	return &Chord{noteheads: []Notehead{NewNotehead(pitch.C4)}, duration: r.duration}
}

// Spacer is an invisible rest
type Spacer struct {
	duration duration.Duration
}

func NewSpacer(d duration.Duration) (*Spacer, error) {
	if err := checkPrintable(d); err != nil {
		return nil, err
	}
	return &Spacer{duration: d}, nil
}

func (s *Spacer) WrittenDuration() duration.Duration { return s.duration }

func (s *Spacer) Lilypond() (string, error) {
	d, err := s.duration.Lilypond()
	if err != nil {
		return "", err
	}
	return "s" + d, nil
}

func (s *Spacer) ToNote() *Note {
	return &Note{notehead: NewNotehead(pitch.C4), duration: s.duration}
}

func (s *Spacer) ToRest() *Rest { return &Rest{duration: s.duration} }

func (s *Spacer) ToSpacer() *Spacer {
	c := *s
	return &c
}

func (s *Spacer) ToChord() *Chord {
	return &Chord{noteheads: []Notehead{NewNotehead(pitch.C4)}, duration: s.duration}
}

// Chord is a set of noteheads sharing one duration, kept in ascending order
type Chord struct {
	noteheads []Notehead
	duration  duration.Duration
	Tied      bool
}

// NewChord returns ErrEmptyChord without pitches and *duration.UnprintableError
// for a duration that needs more than one notehead.
func NewChord(pitches []pitch.Pitch, d duration.Duration) (*Chord, error) {
	if len(pitches) == 0 {
		return nil, ErrEmptyChord
	}
	if err := checkPrintable(d); err != nil {
		return nil, err
	}
	c := &Chord{duration: d}
	for _, p := range pitches {
		c.noteheads = append(c.noteheads, NewNotehead(p))
	}
	sortNoteheads(c.noteheads)
	return c, nil
}

func (c *Chord) WrittenDuration() duration.Duration { return c.duration }

// Noteheads returns a copy of the chord's noteheads, lowest first
func (c *Chord) Noteheads() []Notehead {
	return append([]Notehead(nil), c.noteheads...)
}

func (c *Chord) WrittenPitches() []pitch.Pitch {
	out := make([]pitch.Pitch, len(c.noteheads))
	for i, h := range c.noteheads {
		out[i] = h.Pitch
	}
	return out
}

// Insert adds a pitch in order
func (c *Chord) Insert(p pitch.Pitch) {
	c.InsertNotehead(NewNotehead(p))
}

// SetDisplay marks every notehead of the chord
func (c *Chord) SetDisplay(d AccidentalDisplay) {
	for i := range c.noteheads {
		c.noteheads[i].Display = d
	}
}

func (c *Chord) InsertNotehead(h Notehead) {
	c.noteheads = append(c.noteheads, h)
	sortNoteheads(c.noteheads)
}

func (c *Chord) Lilypond() (string, error) {
	d, err := c.duration.Lilypond()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("<\n")
	for _, h := range c.noteheads {
		b.WriteString(indent)
		b.WriteString(h.Lilypond())
		b.WriteString("\n")
	}
	b.WriteString(">")
	b.WriteString(d)
	b.WriteString(tie(c.Tied))
	return b.String(), nil
}

// ToNote keeps the lowest notehead
func (c *Chord) ToNote() *Note {
	head := NewNotehead(pitch.C4)
	if len(c.noteheads) > 0 {
		head = c.noteheads[0]
	}
	return &Note{notehead: head, duration: c.duration, Tied: c.Tied}
}

func (c *Chord) ToRest() *Rest     { return &Rest{duration: c.duration} }
func (c *Chord) ToSpacer() *Spacer { return &Spacer{duration: c.duration} }

func (c *Chord) ToChord() *Chord {
	cp := *c
	cp.noteheads = c.Noteheads()
	return &cp
}

func sortNoteheads(heads []Notehead) {
	sort.SliceStable(heads, func(i, j int) bool {
		if cmp := heads[i].Pitch.Compare(heads[j].Pitch); cmp != 0 {
			return cmp < 0
		}
		return heads[i].Display < heads[j].Display
	})
}

func checkPrintable(d duration.Duration) error {
	_, err := d.Lilypond()
	return err
}

func tie(tied bool) string {
	if tied {
		return "~"
	}
	return ""
}

func (*Note) node()   {}
func (*Rest) node()   {}
func (*Spacer) node() {}
func (*Chord) node()  {}
