package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	p1 := MustNew(Perfect, 1)
	assert.Equal(t, Perfect, p1.Class().Quality())
	assert.Equal(t, Unison, p1.Class().Size())
	assert.Equal(t, 0, p1.Octaves())
	assert.Equal(t, NoPolarity, p1.Polarity())
	assert.Equal(t, Identity, p1)

	p8 := MustNew(Perfect, 8)
	assert.Equal(t, Octave, p8.Class().Size())
	assert.Equal(t, 0, p8.Octaves())
	assert.Equal(t, Positive, p8.Polarity())

	a8 := MustNew(Augmented(1), 8)
	assert.Equal(t, Augmented(1), a8.Class().Quality())
	assert.Equal(t, Unison, a8.Class().Size())
	assert.Equal(t, 1, a8.Octaves())
	assert.Equal(t, Positive, a8.Polarity())

	negM2 := MustNew(Major, -2)
	assert.Equal(t, Second, negM2.Class().Size())
	assert.Equal(t, Negative, negM2.Class().Polarity())
	assert.Equal(t, 0, negM2.Octaves())
	assert.Equal(t, Negative, negM2.Polarity())

	negP8 := MustNew(Perfect, -8)
	assert.Equal(t, Octave, negP8.Class().Size())
	assert.Equal(t, -12.0, negP8.Semitones())
}

func TestNewInvalid(t *testing.T) {
	_, err := New(Perfect, 2)
	assert.Error(t, err)

	_, err = New(Major, 12)
	assert.Error(t, err)

	_, err = New(Major, 0)
	assert.Error(t, err)

	assert.Panics(t, func() { MustNew(Minor, 5) })
}

func TestNeg(t *testing.T) {
	neg := MustNew(Major, 10).Neg()

	assert.Equal(t, Negative, neg.Class().Polarity())
	assert.Equal(t, Third, neg.Class().Size())
	assert.Equal(t, Negative, neg.Polarity())
	assert.Equal(t, 1, neg.Octaves())
}

func TestQuarterSharp(t *testing.T) {
	i := MustNew(Minor, 10).QuarterSharp()
	assert.Equal(t, QuarterSharp, i.Class().Quartertone())

	i = MustNew(Perfect, 8).QuarterSharp()
	assert.Equal(t, Perfect, i.Class().Quality())
	assert.Equal(t, Unison, i.Class().Size())
	assert.Equal(t, 1, i.Octaves())
	assert.Equal(t, 12.5, i.Semitones())

	i = MustNew(Perfect, 15).QuarterSharp().Neg()
	assert.Equal(t, Perfect, i.Class().Quality())
	assert.Equal(t, Unison, i.Class().Size())
	assert.Equal(t, 2, i.Octaves())
	assert.Equal(t, Negative, i.Polarity())
	assert.Equal(t, -24.5, i.Semitones())
}

func TestQuarterFlat(t *testing.T) {
	i := MustNew(Perfect, 11).QuarterFlat()
	assert.Equal(t, QuarterFlat, i.Class().Quartertone())

	i = MustNew(Perfect, 8).QuarterFlat()
	assert.Equal(t, QuarterFlat, i.Class().Quartertone())
	assert.Equal(t, Unison, i.Class().Size())
	assert.Equal(t, 1, i.Octaves())

	i = MustNew(Perfect, 15).QuarterFlat().Neg()
	assert.Equal(t, Unison, i.Class().Size())
	assert.Equal(t, 2, i.Octaves())
	assert.Equal(t, Negative, i.Polarity())
}

func TestSemitones(t *testing.T) {
	tests := []struct {
		quality Quality
		size    int
		want    float64
	}{
		{Perfect, 1, 0},
		{Minor, 2, 1},
		{Major, 3, 4},
		{Perfect, 5, 7},
		{Major, 9, 14},
		{Augmented(2), 8, 14},
		{Perfect, 15, 24},
		{Diminished(1), 12, 18},
		{Minor, -3, -3},
		{Perfect, -5, -7},
	}

	for _, tt := range tests {
		i := MustNew(tt.quality, tt.size)
		t.Run(i.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, i.Semitones())
			assert.Equal(t, -tt.want, i.Neg().Semitones())
		})
	}
}

func TestStaffSpaces(t *testing.T) {
	i := MustNew(Major, 9)
	assert.Equal(t, 8, i.StaffSpaces())
	assert.Equal(t, -8, i.Neg().StaffSpaces())
	assert.Equal(t, 0, Identity.StaffSpaces())
	assert.Equal(t, 7, MustNew(Perfect, 8).StaffSpaces())
}

func TestString(t *testing.T) {
	i := MustNew(Major, 9)
	assert.Equal(t, "+M9", i.String())
	assert.Equal(t, "-M9", i.Neg().String())
	assert.Equal(t, "+AA8", MustNew(Augmented(2), 8).String())
	assert.Equal(t, "P1", Identity.String())
}

func TestParse(t *testing.T) {
	for _, name := range []string{"P1", "+M9", "-M9", "+AA8", "-P5", "+m3", "-m~3", "+P+4", "+ddd7"} {
		t.Run(name, func(t *testing.T) {
			i, err := Parse(name)
			require.NoError(t, err)
			assert.Equal(t, name, i.String())
		})
	}

	i, err := Parse("M3")
	require.NoError(t, err)
	assert.Equal(t, MustNew(Major, 3), i)

	_, err = Parse("X3")
	assert.ErrorIs(t, err, ErrSyntax)

	_, err = Parse("P2")
	var classErr *InvalidClassError
	assert.ErrorAs(t, err, &classErr)
}
