package interval

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var namePattern = regexp.MustCompile(`^([+-]?)(P|M|m|d+|A+)([+~]?)([0-9]+)$`)

// Parse reads an interval name such as "M3", "+M9", "-P5", "AA8" or "-m~3"
func Parse(s string) (Interval, error) {
	match := namePattern.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return Interval{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	var quality Quality
	switch q := match[2]; q[0] {
	case 'P':
		quality = Perfect
	case 'M':
		quality = Major
	case 'm':
		quality = Minor
	case 'd':
		quality = Diminished(len(q))
	default:
		quality = Augmented(len(q))
	}

	size, err := strconv.Atoi(match[4])
	if err != nil || size == 0 {
		return Interval{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	if match[1] == "-" {
		size = -size
	}

	i, err := New(quality, size)
	if err != nil {
		return Interval{}, err
	}
	switch match[3] {
	case "+":
		i = i.QuarterSharp()
	case "~":
		i = i.QuarterFlat()
	}
	return i, nil
}

// MarshalText implements encoding.TextMarshaler
func (i Interval) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (i *Interval) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
