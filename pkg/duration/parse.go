package duration

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads "n/d" or a bare integer into a Duration
func Parse(s string) (Duration, error) {
	s = strings.TrimSpace(s)
	num, den, found := strings.Cut(s, "/")
	n, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil {
		return Zero, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if !found {
		return New(n, 1), nil
	}
	dd, err := strconv.Atoi(strings.TrimSpace(den))
	if err != nil {
		return Zero, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if dd == 0 {
		return Zero, fmt.Errorf("invalid duration %q: %w", s, ErrDivisionByZero)
	}
	return New(n, dd), nil
}

// ParseMultiplier reads "n/d" into a Multiplier
func ParseMultiplier(s string) (Multiplier, error) {
	d, err := Parse(s)
	if err != nil {
		return Multiplier{}, err
	}
	return NewMultiplier(d.Pair()), nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
