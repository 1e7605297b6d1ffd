package converter

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// ErrNoNotes is returned when a MIDI file or score contains nothing to convert
var ErrNoNotes = errors.New("no notes found")

// MIDIConverter handles MIDI file parsing and generation
type MIDIConverter struct {
	ticksPerQuarter uint16
	tempo           float64
	grid            int
}

// NewMIDIConverter creates a MIDI converter writing at the given resolution and
// tempo and reading onto a grid of 1/grid whole notes
func NewMIDIConverter(ticksPerQuarter uint16, tempo float64, grid int) *MIDIConverter {
	return &MIDIConverter{
		ticksPerQuarter: ticksPerQuarter,
		tempo:           tempo,
		grid:            grid,
	}
}

// ParseMIDIFile reads a MIDI file and quantizes its notes
func (m *MIDIConverter) ParseMIDIFile(filename string) (*Sequence, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read MIDI file: %w", err)
	}
	return m.ParseMIDI(data)
}

// ParseMIDI parses MIDI data and quantizes every track's notes to the grid.
// Tracks without notes are dropped.
func (m *MIDIConverter) ParseMIDI(data []byte) (*Sequence, error) {
	s, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse MIDI: %w", err)
	}

	ticksPerQuarter := m.ticksPerQuarter
	if mt, ok := s.TimeFormat.(smf.MetricTicks); ok {
		ticksPerQuarter = mt.Resolution()
	}
	ticksPerStep := float64(ticksPerQuarter) * 4 / float64(m.grid)
	quantize := func(tick int64) int {
		return int(math.Round(float64(tick) / ticksPerStep))
	}

	seq := &Sequence{Tempo: m.tempo, Grid: m.grid}

	type sounding struct {
		tick     int64
		velocity uint8
	}

	for i, track := range s.Tracks {
		name := fmt.Sprintf("Track %d", i+1)
		open := map[[2]uint8][]sounding{}
		var spans []NoteSpan
		var currentTick int64

		closeNote := func(channel, key uint8, tick int64) {
			id := [2]uint8{channel, key}
			starts := open[id]
			if len(starts) == 0 {
				return
			}
			on := starts[0]
			open[id] = starts[1:]
			start := quantize(on.tick)
			length := quantize(tick) - start
			if length < 1 {
				length = 1
			}
			spans = append(spans, NoteSpan{Key: key, Velocity: on.velocity, Start: start, Length: length})
		}

		for _, ev := range track {
			currentTick += int64(ev.Delta)
			msg := ev.Message

			var bpm float64
			var text string
			var channel, key, velocity uint8
			switch {
			case msg.GetMetaTempo(&bpm):
				if bpm > 0 && !math.IsInf(bpm, 0) {
					seq.Tempo = bpm
				}
			case msg.GetMetaTrackName(&text):
				if text != "" {
					name = text
				}
			case msg.GetNoteStart(&channel, &key, &velocity):
				id := [2]uint8{channel, key}
				open[id] = append(open[id], sounding{tick: currentTick, velocity: velocity})
			// note off, or note on with velocity 0
			case msg.GetNoteEnd(&channel, &key):
				closeNote(channel, key, currentTick)
			}
		}

		// notes still held at the end of the track stop there
		for id, starts := range open {
			for range starts {
				closeNote(id[0], id[1], currentTick)
			}
		}

		if len(spans) == 0 {
			continue
		}
		sort.SliceStable(spans, func(a, b int) bool {
			if spans[a].Start != spans[b].Start {
				return spans[a].Start < spans[b].Start
			}
			return spans[a].Key < spans[b].Key
		})
		seq.Tracks = append(seq.Tracks, Track{Name: name, Notes: spans})
	}

	if len(seq.Tracks) == 0 {
		return nil, ErrNoNotes
	}
	return seq, nil
}

// midiEvent is a note on or off at an absolute tick
type midiEvent struct {
	tick     uint32
	on       bool
	key      uint8
	velocity uint8
}

// GenerateMIDI writes one track per timeline, the first carrying tempo and a 4/4 time signature
func (m *MIDIConverter) GenerateMIDI(tracks []Timeline) ([]byte, error) {
	if len(tracks) == 0 {
		return nil, ErrNoNotes
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(m.ticksPerQuarter)
	ticksPerWhole := 4 * float64(m.ticksPerQuarter)
	channel := uint8(0)

	for i, tl := range tracks {
		var track smf.Track

		if i == 0 {
			track.Add(0, smf.MetaTempo(m.tempo))
			track.Add(0, smf.MetaMeter(4, 4))
		}
		if tl.Name != "" {
			track.Add(0, smf.MetaTrackSequenceName(tl.Name))
		}

		var events []midiEvent
		for _, n := range tl.Notes {
			on := uint32(math.Round(n.Start.Float() * ticksPerWhole))
			off := uint32(math.Round(n.Start.Add(n.Length).Float() * ticksPerWhole))
			if off <= on {
				continue
			}
			events = append(events,
				midiEvent{tick: on, on: true, key: n.Key, velocity: 100},
				midiEvent{tick: off, key: n.Key},
			)
		}
		// offs sort ahead of ons on the same tick so repeated keys retrigger
		sort.SliceStable(events, func(a, b int) bool {
			if events[a].tick != events[b].tick {
				return events[a].tick < events[b].tick
			}
			return !events[a].on && events[b].on
		})

		var currentTick uint32
		for _, ev := range events {
			delta := ev.tick - currentTick
			if ev.on {
				track.Add(delta, midi.NoteOn(channel, ev.key, ev.velocity))
			} else {
				track.Add(delta, midi.NoteOff(channel, ev.key))
			}
			currentTick = ev.tick
		}

		// pad to the end of the timeline so trailing rests survive
		end := uint32(math.Round(tl.Length.Float() * ticksPerWhole))
		if end > currentTick {
			track.Add(end-currentTick, smf.MetaMarker(""))
		}

		track.Close(0)
		if err := s.Add(track); err != nil {
			return nil, fmt.Errorf("failed to add track: %w", err)
		}
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write MIDI: %w", err)
	}
	return buf.Bytes(), nil
}
