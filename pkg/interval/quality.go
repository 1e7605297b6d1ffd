// Package interval models melodic distance as quality, size, direction and octaves
package interval

import "strings"

type qualityKind int8

const (
	perfect qualityKind = iota
	major
	minor
	diminished
	augmented
)

// Quality is the Perfect/Major/Minor/Diminished(n)/Augmented(n) part of an interval
type Quality struct {
	kind   qualityKind
	degree int
}

var (
	Perfect = Quality{kind: perfect}
	Major   = Quality{kind: major}
	Minor   = Quality{kind: minor}
)

// Diminished returns a quality diminished n times. It panics if n < 1.
func Diminished(n int) Quality {
	if n < 1 {
		panic("interval: diminished degree must be at least 1")
	}
	return Quality{kind: diminished, degree: n}
}

// Augmented returns a quality augmented n times. It panics if n < 1.
func Augmented(n int) Quality {
	if n < 1 {
		panic("interval: augmented degree must be at least 1")
	}
	return Quality{kind: augmented, degree: n}
}

func (q Quality) IsPerfect() bool    { return q.kind == perfect }
func (q Quality) IsMajor() bool      { return q.kind == major }
func (q Quality) IsMinor() bool      { return q.kind == minor }
func (q Quality) IsDiminished() bool { return q.kind == diminished }
func (q Quality) IsAugmented() bool  { return q.kind == augmented }

// Degree is the number of times a diminished or augmented quality is applied, 0 otherwise
func (q Quality) Degree() int {
	return q.degree
}

// Semitones is the offset from the natural size of the interval.
// Diminishing a perfect size costs one semitone per degree; an imperfect size starts from minor.
func (q Quality) Semitones(size Size) float64 {
	switch q.kind {
	case minor:
		return -1
	case diminished:
		if size.CanBePerfect() {
			return -float64(q.degree)
		}
		return -float64(q.degree + 1)
	case augmented:
		return float64(q.degree)
	default:
		return 0
	}
}

func (q Quality) String() string {
	switch q.kind {
	case perfect:
		return "P"
	case major:
		return "M"
	case minor:
		return "m"
	case diminished:
		return strings.Repeat("d", q.degree)
	default:
		return strings.Repeat("A", q.degree)
	}
}
