package notation

// VoiceContext names the LilyPond context created by a Voice
type VoiceContext int

const (
	// DefaultVoice is the plain Voice context
	DefaultVoice VoiceContext = iota
	VaticanaVoice
	MensuralVoice
	Lyrics
	DrumVoice
	FiguredBass
	TabVoice
	CueVoice
	ChordNames
)

var voiceContexts = []string{
	"Voice", "VaticanaVoice", "MensuralVoice", "Lyrics", "DrumVoice",
	"FiguredBass", "TabVoice", "CueVoice", "ChordNames",
}

func (c VoiceContext) String() string { return contextName(voiceContexts, int(c)) }

// StaffContext names the LilyPond context created by a Staff
type StaffContext int

const (
	// DefaultStaff is the plain Staff context
	DefaultStaff StaffContext = iota
	RhythmicStaff
	TabStaff
	DrumStaff
	VaticanaStaff
	MensuralStaff
)

var staffContexts = []string{
	"Staff", "RhythmicStaff", "TabStaff", "DrumStaff", "VaticanaStaff", "MensuralStaff",
}

func (c StaffContext) String() string { return contextName(staffContexts, int(c)) }

// StaffGroupContext names the LilyPond context created by a StaffGroup
type StaffGroupContext int

const (
	DefaultStaffGroup StaffGroupContext = iota
	ChoirStaff
	GrandStaff
	PianoStaff
)

var staffGroupContexts = []string{"StaffGroup", "ChoirStaff", "GrandStaff", "PianoStaff"}

func (c StaffGroupContext) String() string { return contextName(staffGroupContexts, int(c)) }

// ParseVoiceContext looks a context up by its LilyPond name
func ParseVoiceContext(name string) (VoiceContext, bool) {
	i, ok := lookup(voiceContexts, name)
	return VoiceContext(i), ok
}

func ParseStaffContext(name string) (StaffContext, bool) {
	i, ok := lookup(staffContexts, name)
	return StaffContext(i), ok
}

func ParseStaffGroupContext(name string) (StaffGroupContext, bool) {
	i, ok := lookup(staffGroupContexts, name)
	return StaffGroupContext(i), ok
}

// contextName falls back to the default context for values outside the table
func contextName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return names[0]
	}
	return names[i]
}

func lookup(names []string, name string) (int, bool) {
	if name == "" {
		return 0, true
	}
	for i, n := range names {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// Voice is a single melodic line
type Voice struct {
	Contents     []Node
	Simultaneous bool
	Name         string
	Context      VoiceContext
}

func NewVoice(contents ...Node) *Voice {
	return &Voice{Contents: contents}
}

func (v *Voice) Append(n ...Node) { v.Contents = append(v.Contents, n...) }

func (v *Voice) Lilypond() (string, error) {
	return contextBlock(v.Context.String(), v.Name, v.Simultaneous, v.Contents)
}

// Staff holds voices or music directly
type Staff struct {
	Contents     []Node
	Simultaneous bool
	Name         string
	Context      StaffContext
}

func NewStaff(contents ...Node) *Staff {
	return &Staff{Contents: contents}
}

func (s *Staff) Append(n ...Node) { s.Contents = append(s.Contents, n...) }

func (s *Staff) Lilypond() (string, error) {
	return contextBlock(s.Context.String(), s.Name, s.Simultaneous, s.Contents)
}

// StaffGroup brackets staves; its contents always sound together
type StaffGroup struct {
	Contents []Node
	Name     string
	Context  StaffGroupContext
}

func NewStaffGroup(contents ...Node) *StaffGroup {
	return &StaffGroup{Contents: contents}
}

func (g *StaffGroup) Append(n ...Node) { g.Contents = append(g.Contents, n...) }

func (g *StaffGroup) Lilypond() (string, error) {
	return contextBlock(g.Context.String(), g.Name, true, g.Contents)
}

// Score is the root of a piece; its contents always sound together
type Score struct {
	Contents []Node
	Name     string
}

func NewScore(contents ...Node) *Score {
	return &Score{Contents: contents}
}

func (s *Score) Append(n ...Node) { s.Contents = append(s.Contents, n...) }

func (s *Score) Lilypond() (string, error) {
	return contextBlock("Score", s.Name, true, s.Contents)
}

func (*Voice) node()      {}
func (*Staff) node()      {}
func (*StaffGroup) node() {}
func (*Score) node()      {}
