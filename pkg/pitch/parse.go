package pitch

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrSyntax is returned by Parse for text that is not a LilyPond pitch
var ErrSyntax = errors.New("invalid pitch syntax")

var pitchPattern = regexp.MustCompile(`^([a-g])(ff|ss|tqf|tqs|qf|qs|f|s)?('*|,*)$`)

var suffixAccidentals = map[string]Accidental{
	"ff": DoubleFlat, "tqf": ThreeQuarterFlat, "f": Flat, "qf": QuarterFlat, "": Natural,
	"qs": QuarterSharp, "s": Sharp, "tqs": ThreeQuarterSharp, "ss": DoubleSharp,
}

// Parse reads a pitch in LilyPond english notation, e.g. "c'", "bf,," or "fs"
func Parse(s string) (Pitch, error) {
	match := pitchPattern.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return Pitch{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	letter := DiatonicPitchClass(strings.Index("cdefgab", match[1]))
	octave := 3
	if marks := match[3]; marks != "" {
		if marks[0] == '\'' {
			octave += len(marks)
		} else {
			octave -= len(marks)
		}
	}
	return New(NewPitchClass(letter, suffixAccidentals[match[2]]), octave), nil
}

// MustParse is like Parse but panics on malformed input
func MustParse(s string) Pitch {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// MarshalText implements encoding.TextMarshaler
func (p Pitch) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *Pitch) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
