// Package notation builds score trees of notes, rests, chords and contexts and
// renders them as LilyPond source.
package notation

import (
	"errors"

	"github.com/james-see/engrave/pkg/duration"
	"github.com/james-see/engrave/pkg/interval"
	"github.com/james-see/engrave/pkg/pitch"
)

// ErrEmptyChord is returned when a chord is built without pitches
var ErrEmptyChord = errors.New("notation: chord needs at least one pitch")

// Node is an element of a score tree. The set of implementations is closed:
// *Note, *Rest, *Spacer, *Chord, *Tuplet, *Container, *Voice, *Staff, *StaffGroup and *Score.
type Node interface {
	Lilypond() (string, error)
	node()
}

// Leaf is a node with a written duration and no children
type Leaf interface {
	Node
	WrittenDuration() duration.Duration
	ToNote() *Note
	ToRest() *Rest
	ToSpacer() *Spacer
	ToChord() *Chord
}

// IsLeaf reports whether n carries a written duration rather than children
func IsLeaf(n Node) bool {
	_, ok := n.(Leaf)
	return ok
}

// Children returns the direct contents of a composite node, nil for leaves
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Tuplet:
		return n.Contents
	case *Container:
		return n.Contents
	case *Voice:
		return n.Contents
	case *Staff:
		return n.Contents
	case *StaffGroup:
		return n.Contents
	case *Score:
		return n.Contents
	}
	return nil
}

// IsSimultaneous reports whether the children of n start together
func IsSimultaneous(n Node) bool {
	switch n := n.(type) {
	case *Container:
		return n.Simultaneous
	case *Voice:
		return n.Simultaneous
	case *Staff:
		return n.Simultaneous
	case *StaffGroup, *Score:
		return true
	}
	return false
}

// Walk visits n and its descendants depth-first, parents before children.
// It stops at the first error returned by visit.
func Walk(n Node, visit func(Node) error) error {
	if err := visit(n); err != nil {
		return err
	}
	for _, child := range Children(n) {
		if err := Walk(child, visit); err != nil {
			return err
		}
	}
	return nil
}

// Duration returns how long n sounds: sequential contents add up, simultaneous
// contents last as long as the longest child and tuplets scale their contents.
func Duration(n Node) duration.Duration {
	if leaf, ok := n.(Leaf); ok {
		return leaf.WrittenDuration()
	}
	var lengths []duration.Duration
	for _, child := range Children(n) {
		lengths = append(lengths, Duration(child))
	}
	if IsSimultaneous(n) {
		longest := duration.Zero
		for _, d := range lengths {
			longest = duration.Max(longest, d)
		}
		return longest
	}
	total := duration.Sum(lengths)
	if t, ok := n.(*Tuplet); ok {
		return t.Multiplier.Scale(total)
	}
	return total
}

// Transpose returns a deep copy of n with every pitch moved by i
func Transpose(n Node, i interval.Interval) Node {
	switch n := n.(type) {
	case *Note:
		c := *n
		c.notehead = n.notehead.Transpose(i)
		return &c
	case *Chord:
		c := *n
		c.noteheads = make([]Notehead, len(n.noteheads))
		for k, h := range n.noteheads {
			c.noteheads[k] = h.Transpose(i)
		}
		sortNoteheads(c.noteheads)
		return &c
	case *Rest:
		c := *n
		return &c
	case *Spacer:
		c := *n
		return &c
	case *Tuplet:
		c := *n
		c.Contents = transposeAll(n.Contents, i)
		return &c
	case *Container:
		c := *n
		c.Contents = transposeAll(n.Contents, i)
		return &c
	case *Voice:
		c := *n
		c.Contents = transposeAll(n.Contents, i)
		return &c
	case *Staff:
		c := *n
		c.Contents = transposeAll(n.Contents, i)
		return &c
	case *StaffGroup:
		c := *n
		c.Contents = transposeAll(n.Contents, i)
		return &c
	case *Score:
		c := *n
		c.Contents = transposeAll(n.Contents, i)
		return &c
	}
	return n
}

func transposeAll(nodes []Node, i interval.Interval) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for k, n := range nodes {
		out[k] = Transpose(n, i)
	}
	return out
}

// Pitches collects every written pitch under n in tree order
func Pitches(n Node) []pitch.Pitch {
	var out []pitch.Pitch
	_ = Walk(n, func(n Node) error {
		switch n := n.(type) {
		case *Note:
			out = append(out, n.WrittenPitch())
		case *Chord:
			out = append(out, n.WrittenPitches()...)
		}
		return nil
	})
	return out
}
