package converter

import (
	"github.com/james-see/engrave/pkg/duration"
	"github.com/james-see/engrave/pkg/notation"
)

// TimedNote is a sounding key placed in whole notes from the start of the piece
type TimedNote struct {
	Key    uint8
	Start  duration.Duration
	Length duration.Duration
}

// Timeline is the performance of one part
type Timeline struct {
	Name   string
	Notes  []TimedNote
	Length duration.Duration
}

// Timelines flattens a notation tree into one timeline per part. Each child
// of a Score becomes a part, with staff groups opened up into their staves;
// any other root is a single part.
func Timelines(root notation.Node) []Timeline {
	var parts []notation.Node
	if score, ok := root.(*notation.Score); ok {
		parts = splitParts(score.Contents)
	} else {
		parts = []notation.Node{root}
	}

	out := make([]Timeline, 0, len(parts))
	for _, part := range parts {
		p := &performer{open: map[uint8]int{}}
		length := p.place(part, duration.Zero, duration.NewMultiplier(1, 1))
		out = append(out, Timeline{Name: partName(part), Notes: p.notes, Length: length})
	}
	return out
}

func splitParts(nodes []notation.Node) []notation.Node {
	var out []notation.Node
	for _, n := range nodes {
		if g, ok := n.(*notation.StaffGroup); ok {
			out = append(out, splitParts(g.Contents)...)
			continue
		}
		out = append(out, n)
	}
	return out
}

func partName(n notation.Node) string {
	switch n := n.(type) {
	case *notation.Staff:
		return n.Name
	case *notation.Voice:
		return n.Name
	}
	return ""
}

// performer places notes in time. open maps keys whose last note was tied to
// the index of that note, so a following note on the same key extends it.
type performer struct {
	notes []TimedNote
	open  map[uint8]int
}

// place schedules n at start and returns how long it lasts
func (p *performer) place(n notation.Node, start duration.Duration, scale duration.Multiplier) duration.Duration {
	switch n := n.(type) {
	case *notation.Note:
		length := scale.Scale(n.WrittenDuration())
		p.sound(n.WrittenPitch().MIDI(), start, length, n.Tied)
		return length
	case *notation.Chord:
		length := scale.Scale(n.WrittenDuration())
		for _, pt := range n.WrittenPitches() {
			p.sound(pt.MIDI(), start, length, n.Tied)
		}
		return length
	case notation.Leaf:
		return scale.Scale(n.WrittenDuration())
	case *notation.Tuplet:
		return p.sequence(n.Contents, start, scale.Mul(n.Multiplier))
	}

	children := notation.Children(n)
	if notation.IsSimultaneous(n) {
		longest := duration.Zero
		for _, child := range children {
			longest = duration.Max(longest, p.place(child, start, scale))
		}
		return longest
	}
	return p.sequence(children, start, scale)
}

func (p *performer) sequence(nodes []notation.Node, start duration.Duration, scale duration.Multiplier) duration.Duration {
	cursor := start
	for _, n := range nodes {
		cursor = cursor.Add(p.place(n, cursor, scale))
	}
	return cursor.Sub(start)
}

func (p *performer) sound(key uint8, start, length duration.Duration, tied bool) {
	i, ok := p.open[key]
	if ok && p.notes[i].Start.Add(p.notes[i].Length).Equal(start) {
		p.notes[i].Length = p.notes[i].Length.Add(length)
	} else {
		p.notes = append(p.notes, TimedNote{Key: key, Start: start, Length: length})
		i = len(p.notes) - 1
	}
	if tied {
		p.open[key] = i
	} else {
		delete(p.open, key)
	}
}
