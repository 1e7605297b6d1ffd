package notation

import (
	"strconv"

	"github.com/james-see/engrave/pkg/duration"
)

// Container groups nodes without a LilyPond context
type Container struct {
	Contents     []Node
	Simultaneous bool
}

func NewContainer(contents ...Node) *Container {
	return &Container{Contents: contents}
}

func (c *Container) Append(n ...Node) { c.Contents = append(c.Contents, n...) }

func (c *Container) Lilypond() (string, error) {
	open, end := delimiters(c.Simultaneous)
	return block(open, c.Contents, end)
}

// Tuplet scales its contents by Multiplier; 2/3 is a triplet
type Tuplet struct {
	Multiplier duration.Multiplier
	Contents   []Node
}

func NewTuplet(m duration.Multiplier, contents ...Node) *Tuplet {
	return &Tuplet{Multiplier: m, Contents: contents}
}

func (t *Tuplet) Append(n ...Node) { t.Contents = append(t.Contents, n...) }

// Lilypond writes the ratio inverted, as \tuplet expects
func (t *Tuplet) Lilypond() (string, error) {
	num, den := t.Multiplier.Pair()
	return block(`\tuplet `+strconv.Itoa(den)+"/"+strconv.Itoa(num)+" {", t.Contents, "}")
}

func (*Tuplet) node()    {}
func (*Container) node() {}
