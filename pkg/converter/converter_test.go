package converter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/james-see/engrave/pkg/config"
	"github.com/james-see/engrave/pkg/document"
	"github.com/james-see/engrave/pkg/interval"
)

type fixedEngraver struct{}

func (fixedEngraver) Version() string                  { return "2.24.0" }
func (fixedEngraver) Compile(source, out string) error { return nil }

func newTestConverter() *Converter {
	conv := New(config.New())
	conv.Engraver = fixedEngraver{}
	return conv
}

const melody = `
score:
  contents:
    - staff:
        name: Melody
        contents:
          - voice:
              contents:
                - note: {pitch: "c'", duration: 1/4}
                - note: {pitch: "d'", duration: 1/8}
                - rest: {duration: 1/8}
                - chord: {pitches: ["e'", "g'"], duration: 1/2}
                - note: {pitch: "a'", duration: 5/8}
                - rest: {duration: 3/8}
`

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		filename string
		expected Format
	}{
		{"test.mid", FormatMIDI},
		{"test.MIDI", FormatMIDI},
		{"test.ly", FormatLilypond},
		{"test.yaml", FormatYAML},
		{"test.yml", FormatYAML},
		{"test.json", FormatJSON},
		{"test.txt", FormatUnknown},
		{"test", FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			result := DetectFormat(tt.filename)
			if result != tt.expected {
				t.Errorf("DetectFormat(%q) = %v, want %v", tt.filename, result, tt.expected)
			}
		})
	}
}

func TestDetectFormatFromContent(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected Format
	}{
		{"MIDI file", []byte("MThd\x00\x00\x00\x06"), FormatMIDI},
		{"LilyPond", []byte("\\version \"2.24.0\"\n{ c'4 }"), FormatLilypond},
		{"JSON document", []byte(` {"note": {}}`), FormatJSON},
		{"YAML document", []byte("note: {pitch: c}"), FormatYAML},
		{"Short data", []byte{0x00, 0x01}, FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DetectFormatFromContent(tt.data)
			if result != tt.expected {
				t.Errorf("DetectFormatFromContent() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestDocumentToLilypond(t *testing.T) {
	conv := newTestConverter()

	out, err := conv.DocumentToLilypond([]byte(melody), document.YAML)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "\\version \"2.24.0\"\n\\language \"english\"\n\n\\new Score <<\n"))
	assert.Contains(t, string(out), "a'2~\n      a'8\n      r4.\n")
}

func TestMIDIRoundTrip(t *testing.T) {
	conv := newTestConverter()

	midiData, err := conv.DocumentToMIDI([]byte(melody), document.YAML)
	require.NoError(t, err)
	assert.Equal(t, "MThd", string(midiData[:4]))

	tree, err := conv.MIDIToScore(midiData)
	require.NoError(t, err)

	got, err := tree.Lilypond()
	require.NoError(t, err)
	assert.Equal(t, `\new Score <<
  \context Staff = "Melody" {
    \new Voice {
      c'4
      d'8
      r8
      <
        e'
        g'
      >2
      a'2~
      a'8
    }
  }
>>`, got)
}

func TestMIDIToLilypondTransposed(t *testing.T) {
	conv := newTestConverter()

	midiData, err := conv.DocumentToMIDI([]byte(melody), document.YAML)
	require.NoError(t, err)

	conv.Transposition = interval.MustNew(interval.Minor, 3)
	out, err := conv.MIDIToLilypond(midiData)
	require.NoError(t, err)
	assert.Contains(t, string(out), "ef'4\n")
	assert.Contains(t, string(out), "c''2~\n")
}

func TestTiedNotesPlayOnce(t *testing.T) {
	conv := newTestConverter()

	doc, err := document.Decode([]byte(melody), document.YAML)
	require.NoError(t, err)
	tree, err := document.Build(doc)
	require.NoError(t, err)

	timelines := Timelines(tree)
	require.Len(t, timelines, 1)
	assert.Equal(t, "Melody", timelines[0].Name)
	assert.Len(t, timelines[0].Notes, 5)
	last := timelines[0].Notes[4]
	assert.Equal(t, uint8(69), last.Key)
	assert.Equal(t, "5/8", last.Length.String())
	assert.Equal(t, "2/1", timelines[0].Length.String())

	_, err = conv.ScoreToMIDI(tree)
	require.NoError(t, err)
}

func TestConvertFile(t *testing.T) {
	conv := newTestConverter()
	dir := t.TempDir()

	in := filepath.Join(dir, "melody.yaml")
	require.NoError(t, os.WriteFile(in, []byte(melody), 0o644))

	mid := filepath.Join(dir, "melody.mid")
	require.NoError(t, conv.ConvertFile(in, mid))

	for _, out := range []string{"melody.ly", "melody.json", "back.yaml"} {
		t.Run(out, func(t *testing.T) {
			require.NoError(t, conv.ConvertFile(mid, filepath.Join(dir, out)))
			assert.FileExists(t, filepath.Join(dir, out))
		})
	}

	assert.Error(t, conv.ConvertFile(in, filepath.Join(dir, "melody.txt")))
	assert.Error(t, conv.ConvertFile(filepath.Join(dir, "melody.ly"), filepath.Join(dir, "again.mid")))
	assert.Error(t, conv.ConvertFile(filepath.Join(dir, "missing.mid"), filepath.Join(dir, "x.ly")))
}

func TestGetSupportedConversions(t *testing.T) {
	conversions := GetSupportedConversions()

	if len(conversions) == 0 {
		t.Error("GetSupportedConversions() returned empty list")
	}

	for _, conv := range conversions {
		from, to, ok := strings.Cut(conv, " -> ")
		assert.True(t, ok, conv)
		assert.NotEqual(t, from, to)
	}
}
