package converter

import (
	"github.com/james-see/engrave/pkg/duration"
	"github.com/james-see/engrave/pkg/notation"
	"github.com/james-see/engrave/pkg/pitch"
)

// SequenceToScore writes each track as a named staff holding one voice.
// Notes starting on the same step form a chord lasting as long as its
// shortest note, a note is cut short where the next one starts and gaps
// become rests. Lengths that need several noteheads are tied.
func SequenceToScore(seq *Sequence) (*notation.Score, error) {
	score := notation.NewScore()
	for _, track := range seq.Tracks {
		voice, err := trackToVoice(track, seq.Grid)
		if err != nil {
			return nil, err
		}
		staff := notation.NewStaff(voice)
		staff.Name = track.Name
		score.Append(staff)
	}
	return score, nil
}

func trackToVoice(track Track, grid int) (*notation.Voice, error) {
	voice := notation.NewVoice()
	groups := groupByStart(track.Notes)
	cursor := 0

	for i, group := range groups {
		start := group[0].Start
		if start < cursor {
			continue
		}
		if start > cursor {
			rests, err := notation.Rests(duration.New(start-cursor, grid))
			if err != nil {
				return nil, err
			}
			voice.Append(rests...)
		}

		length := group[0].Length
		for _, n := range group[1:] {
			if n.Length < length {
				length = n.Length
			}
		}
		if i+1 < len(groups) && groups[i+1][0].Start < start+length {
			length = groups[i+1][0].Start - start
		}

		nodes, err := writeGroup(group, duration.New(length, grid))
		if err != nil {
			return nil, err
		}
		voice.Append(nodes...)
		cursor = start + length
	}
	return voice, nil
}

func writeGroup(group []NoteSpan, d duration.Duration) ([]notation.Node, error) {
	if len(group) == 1 {
		return notation.TiedNotes(pitch.FromMIDI(group[0].Key), d)
	}
	pitches := make([]pitch.Pitch, len(group))
	for i, n := range group {
		pitches[i] = pitch.FromMIDI(n.Key)
	}
	return notation.TiedChords(pitches, d)
}

// groupByStart splits notes sorted by start into runs sharing a start step,
// dropping repeated keys within a run
func groupByStart(notes []NoteSpan) [][]NoteSpan {
	var groups [][]NoteSpan
	for _, n := range notes {
		last := len(groups) - 1
		if last < 0 || groups[last][0].Start != n.Start {
			groups = append(groups, []NoteSpan{n})
			continue
		}
		duplicate := false
		for _, g := range groups[last] {
			duplicate = duplicate || g.Key == n.Key
		}
		if !duplicate {
			groups[last] = append(groups[last], n)
		}
	}
	return groups
}
