package document

import (
	"github.com/james-see/engrave/pkg/notation"
)

// FromNotation describes a notation tree as a document. Chords record a
// forced or cautionary accidental only when their lowest notehead has one.
func FromNotation(n notation.Node) Node {
	switch n := n.(type) {
	case *notation.Note:
		body := &Body{
			Pitch:    n.WrittenPitch().String(),
			Duration: n.WrittenDuration().String(),
			Tied:     n.Tied,
		}
		setDisplay(body, n.Notehead().Display)
		return Node{KindNote: body}
	case *notation.Chord:
		heads := n.Noteheads()
		body := &Body{Duration: n.WrittenDuration().String(), Tied: n.Tied}
		for _, h := range heads {
			body.Pitches = append(body.Pitches, h.Pitch.String())
		}
		if len(heads) > 0 {
			setDisplay(body, heads[0].Display)
		}
		return Node{KindChord: body}
	case *notation.Rest:
		return Node{KindRest: {Duration: n.WrittenDuration().String()}}
	case *notation.Spacer:
		return Node{KindSpacer: {Duration: n.WrittenDuration().String()}}
	case *notation.Tuplet:
		return Node{KindTuplet: {Ratio: n.Multiplier.String(), Contents: fromAll(n.Contents)}}
	case *notation.Container:
		return Node{KindContainer: {Simultaneous: n.Simultaneous, Contents: fromAll(n.Contents)}}
	case *notation.Voice:
		return Node{KindVoice: {
			Name:         n.Name,
			Context:      contextName(n.Context.String(), notation.DefaultVoice.String()),
			Simultaneous: n.Simultaneous,
			Contents:     fromAll(n.Contents),
		}}
	case *notation.Staff:
		return Node{KindStaff: {
			Name:         n.Name,
			Context:      contextName(n.Context.String(), notation.DefaultStaff.String()),
			Simultaneous: n.Simultaneous,
			Contents:     fromAll(n.Contents),
		}}
	case *notation.StaffGroup:
		return Node{KindStaffGroup: {
			Name:     n.Name,
			Context:  contextName(n.Context.String(), notation.DefaultStaffGroup.String()),
			Contents: fromAll(n.Contents),
		}}
	case *notation.Score:
		return Node{KindScore: {Name: n.Name, Contents: fromAll(n.Contents)}}
	}
	return nil
}

func fromAll(nodes []notation.Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, FromNotation(n))
	}
	return out
}

func setDisplay(body *Body, d notation.AccidentalDisplay) {
	body.Forced = d == notation.Forced
	body.Cautionary = d == notation.Cautionary
}

// contextName leaves the default context implicit
func contextName(name, def string) string {
	if name == def {
		return ""
	}
	return name
}
