package document

import (
	"errors"
	"fmt"

	"github.com/james-see/engrave/pkg/duration"
	"github.com/james-see/engrave/pkg/notation"
	"github.com/james-see/engrave/pkg/pitch"
)

// Build converts a document into a notation tree. Notes, chords and rests
// whose duration needs more than one notehead are split, tied where pitched.
// A root that expands to several leaves is wrapped in a container.
func Build(n Node) (notation.Node, error) {
	nodes, err := build(n, "$")
	if err != nil {
		return nil, err
	}
	if len(nodes) == 1 {
		return nodes[0], nil
	}
	return notation.NewContainer(nodes...), nil
}

func build(n Node, path string) ([]notation.Node, error) {
	kind, body, err := n.Kind()
	if err != nil {
		return nil, &PathError{Path: path, Err: err}
	}
	path += "." + kind

	nodes, err := buildKind(kind, body, path)
	var pe *PathError
	if err != nil && !errors.As(err, &pe) {
		return nil, &PathError{Path: path, Err: err}
	}
	return nodes, err
}

// PathError locates a failure inside a document, e.g. $.score.contents[0].staff
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string { return e.Path + ": " + e.Err.Error() }
func (e *PathError) Unwrap() error { return e.Err }

func buildKind(kind string, body *Body, path string) ([]notation.Node, error) {
	switch kind {
	case KindNote:
		return buildNote(body)
	case KindChord:
		return buildChord(body)
	case KindRest, KindSpacer:
		return buildSilence(kind, body)
	}

	contents, err := buildContents(body.Contents, path)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindContainer:
		return one(&notation.Container{Contents: contents, Simultaneous: body.Simultaneous})
	case KindTuplet:
		m, err := duration.ParseMultiplier(body.Ratio)
		if err != nil {
			return nil, err
		}
		if m.Float() <= 0 {
			return nil, fmt.Errorf("%w: tuplet ratio must be positive, got %s", ErrInvalidNode, m)
		}
		return one(notation.NewTuplet(m, contents...))
	case KindVoice:
		ctx, ok := notation.ParseVoiceContext(body.Context)
		if !ok {
			return nil, unknownContext(body.Context)
		}
		return one(&notation.Voice{Contents: contents, Simultaneous: body.Simultaneous, Name: body.Name, Context: ctx})
	case KindStaff:
		ctx, ok := notation.ParseStaffContext(body.Context)
		if !ok {
			return nil, unknownContext(body.Context)
		}
		return one(&notation.Staff{Contents: contents, Simultaneous: body.Simultaneous, Name: body.Name, Context: ctx})
	case KindStaffGroup:
		ctx, ok := notation.ParseStaffGroupContext(body.Context)
		if !ok {
			return nil, unknownContext(body.Context)
		}
		return one(&notation.StaffGroup{Contents: contents, Name: body.Name, Context: ctx})
	case KindScore:
		return one(&notation.Score{Contents: contents, Name: body.Name})
	}
	return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidNode, kind)
}

func buildContents(children []Node, path string) ([]notation.Node, error) {
	var out []notation.Node
	for i, child := range children {
		nodes, err := build(child, fmt.Sprintf("%s.contents[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, nodes...)
	}
	return out, nil
}

func buildNote(body *Body) ([]notation.Node, error) {
	p, err := pitch.Parse(body.Pitch)
	if err != nil {
		return nil, err
	}
	d, err := parseDuration(body.Duration)
	if err != nil {
		return nil, err
	}
	nodes, err := notation.TiedNotes(p, d)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		n.(*notation.Note).SetDisplay(display(body))
	}
	if body.Tied {
		nodes[len(nodes)-1].(*notation.Note).Tied = true
	}
	return nodes, nil
}

func buildChord(body *Body) ([]notation.Node, error) {
	pitches := make([]pitch.Pitch, 0, len(body.Pitches))
	for _, s := range body.Pitches {
		p, err := pitch.Parse(s)
		if err != nil {
			return nil, err
		}
		pitches = append(pitches, p)
	}
	if len(pitches) == 0 {
		return nil, notation.ErrEmptyChord
	}
	d, err := parseDuration(body.Duration)
	if err != nil {
		return nil, err
	}
	nodes, err := notation.TiedChords(pitches, d)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		n.(*notation.Chord).SetDisplay(display(body))
	}
	if body.Tied {
		nodes[len(nodes)-1].(*notation.Chord).Tied = true
	}
	return nodes, nil
}

func buildSilence(kind string, body *Body) ([]notation.Node, error) {
	d, err := parseDuration(body.Duration)
	if err != nil {
		return nil, err
	}
	rests, err := notation.Rests(d)
	if err != nil || kind == KindRest {
		return rests, err
	}
	out := make([]notation.Node, len(rests))
	for i, r := range rests {
		out[i] = r.(*notation.Rest).ToSpacer()
	}
	return out, nil
}

func parseDuration(s string) (duration.Duration, error) {
	if s == "" {
		return duration.Zero, fmt.Errorf("%w: missing duration", ErrInvalidNode)
	}
	d, err := duration.Parse(s)
	if err != nil {
		return duration.Zero, err
	}
	if d.IsZero() {
		return duration.Zero, fmt.Errorf("%w: zero duration", ErrInvalidNode)
	}
	return d, nil
}

func display(body *Body) notation.AccidentalDisplay {
	switch {
	case body.Forced:
		return notation.Forced
	case body.Cautionary:
		return notation.Cautionary
	}
	return notation.Neutral
}

func unknownContext(name string) error {
	return fmt.Errorf("%w: unknown context %q", ErrInvalidNode, name)
}

func one(n notation.Node) ([]notation.Node, error) {
	return []notation.Node{n}, nil
}
