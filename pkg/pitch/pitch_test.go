package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/james-see/engrave/pkg/interval"
)

func TestTranspose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		from     string
		interval string
		want     string
	}{
		{"unison", "c'", "P1", "c'"},
		{"minor third", "c'", "m3", "ef'"},
		{"perfect fifth down", "c'", "-P5", "f"},
		{"augmented octave", "c'", "A8", "cs''"},
		{"augmented unison keeps letter", "ess'", "A1", "fss'"},
		{"quarter sharp major second", "dqs'", "M2", "eqs'"},
		{"quarter sharp perfect fifth", "dqs'", "P5", "aqs'"},
		{"major ninth", "c'", "M9", "d''"},
		{"octave down", "g", "-P8", "g,"},
		{"respell upward", "bss'", "A2", "dss''"},
		{"respell downward", "cff'", "-A2", "aff"},
		{"across B to C", "b'", "m2", "c''"},
		{"across C to B", "c'", "-m2", "b"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			from := MustParse(tt.from)
			i, err := interval.Parse(tt.interval)
			require.NoError(t, err)

			got := from.Transpose(i)
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, from.Semitones()+i.Semitones(), got.Semitones())
		})
	}
}

func TestTransposePreservesSemitones(t *testing.T) {
	t.Parallel()

	names := []string{"P1", "m2", "M2", "m3", "M3", "P4", "A4", "d5", "P5", "m6", "M6", "m7", "M7", "P8", "M9", "dd7", "AA3"}
	starts := []string{"c'", "ef", "gs,", "bff''", "fss'", "aqf", "etqs'"}

	for _, s := range starts {
		for _, n := range names {
			for _, neg := range []string{"", "-"} {
				i, err := interval.Parse(neg + n)
				if err != nil {
					continue
				}
				p := MustParse(s)
				got := p.Transpose(i)
				assert.Equal(t, p.Semitones()+i.Semitones(), got.Semitones(), "%s %s%s", s, neg, n)
				assert.LessOrEqual(t, got.Class().Accidental(), DoubleSharp)
				assert.GreaterOrEqual(t, got.Class().Accidental(), DoubleFlat)
			}
		}
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "c'", C4.String())
	assert.Equal(t, "fs", New(NewPitchClass(F, Sharp), 3).String())
	assert.Equal(t, "af''", New(NewPitchClass(A, Flat), 5).String())
	assert.Equal(t, "cqf'", New(NewPitchClass(C, QuarterFlat), 4).String())
	assert.Equal(t, "gtqs,", New(NewPitchClass(G, ThreeQuarterSharp), 2).String())
}

func TestSemitones(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, C4.Semitones())
	assert.Equal(t, 0.0, MustParse("bs").Semitones())
	assert.Equal(t, -1.0, MustParse("cf'").Semitones())
	assert.Equal(t, 1.0, MustParse("bss").Class().Semitones())
	assert.Equal(t, 11.5, MustParse("cqf").Class().Semitones())
	assert.Equal(t, 5.5, MustParse("etqs").Class().Semitones())
}

func TestParse(t *testing.T) {
	t.Parallel()

	p, err := Parse("bf,,")
	require.NoError(t, err)
	assert.Equal(t, B, p.Class().Diatonic())
	assert.Equal(t, Flat, p.Class().Accidental())
	assert.Equal(t, Octave(1), p.Octave())

	for _, bad := range []string{"", "h", "cx", "c',", "C'"} {
		_, err := Parse(bad)
		assert.ErrorIs(t, err, ErrSyntax, bad)
	}
}

func TestMIDI(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint8(60), C4.MIDI())
	assert.Equal(t, "cs'", FromMIDI(61).String())
	assert.Equal(t, "b", FromMIDI(59).String())
	assert.Equal(t, "a,,,", FromMIDI(21).String())
	assert.Equal(t, uint8(69), MustParse("a'").MIDI())
	assert.Equal(t, uint8(60), MustParse("bs").MIDI())
	assert.Equal(t, uint8(61), MustParse("cqs'").MIDI())
	assert.Equal(t, uint8(60), MustParse("cqf'").MIDI())
	assert.Equal(t, uint8(127), MustParse("g''").MIDI())
	assert.Equal(t, uint8(0), MustParse("c,,,,,,").MIDI())
}

func TestCompare(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -1, MustParse("b").Compare(C4))
	assert.Equal(t, 1, MustParse("d'").Compare(MustParse("cs'")))
	assert.Equal(t, -1, MustParse("cf'").Compare(C4))
	assert.Equal(t, 0, C4.Compare(MustParse("c'")))
}

func TestAccidentalFromSemitones(t *testing.T) {
	t.Parallel()

	a, err := AccidentalFromSemitones(-1.5)
	require.NoError(t, err)
	assert.Equal(t, ThreeQuarterFlat, a)

	var sizeErr *InvalidAccidentalSizeError
	_, err = AccidentalFromSemitones(2.5)
	assert.ErrorAs(t, err, &sizeErr)
	_, err = AccidentalFromSemitones(0.3)
	assert.ErrorAs(t, err, &sizeErr)
}

func TestDiatonicShift(t *testing.T) {
	t.Parallel()

	assert.Equal(t, C, B.Next())
	assert.Equal(t, B, C.Prev())
	assert.Equal(t, F, C.Shift(-4))
	assert.Equal(t, D, C.Shift(8))
}
