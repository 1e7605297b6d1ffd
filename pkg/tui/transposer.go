package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/james-see/engrave/pkg/interval"
	"github.com/james-see/engrave/pkg/pitch"
)

var errNoPitches = errors.New("enter at least one pitch")

// transposer is the screen with a pitch field and an interval field
type transposer struct {
	inputs  []textinput.Model
	focused int
	results []pitch.Pitch
	err     error
}

func newTransposer() transposer {
	pitches := textinput.New()
	pitches.Prompt = "Pitches:  "
	pitches.Placeholder = "c' e' g'"
	pitches.CharLimit = 128

	iv := textinput.New()
	iv.Prompt = "Interval: "
	iv.Placeholder = "+m3"
	iv.CharLimit = 16

	return transposer{inputs: []textinput.Model{pitches, iv}}
}

func (t *transposer) focus(i int) tea.Cmd {
	for j := range t.inputs {
		t.inputs[j].Blur()
	}
	t.focused = i
	return t.inputs[i].Focus()
}

func (t transposer) Update(msg tea.Msg) (transposer, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "shift+tab", "up", "down":
			return t, t.focus((t.focused + 1) % len(t.inputs))
		case "enter":
			t.results, t.err = transposeAll(t.inputs[0].Value(), t.inputs[1].Value())
			return t, nil
		}
	}
	var cmd tea.Cmd
	t.inputs[t.focused], cmd = t.inputs[t.focused].Update(msg)
	return t, cmd
}

func (t transposer) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(" TRANSPOSER "))
	s.WriteString("\n\n")
	for _, in := range t.inputs {
		s.WriteString(in.View())
		s.WriteString("\n")
	}

	switch {
	case t.err != nil:
		s.WriteString("\n")
		s.WriteString(errorStyle.Render("✗ " + t.err.Error()))
	case len(t.results) > 0:
		s.WriteString("\n")
		names := make([]string, len(t.results))
		for i, p := range t.results {
			names[i] = lipgloss.NewStyle().Bold(true).Foreground(pitchColor(p)).Render(p.String())
		}
		s.WriteString(strings.Join(names, " "))
	}

	return s.String()
}

// transposeAll moves every whitespace-separated pitch in pitches by the interval
func transposeAll(pitches, name string) ([]pitch.Pitch, error) {
	fields := strings.Fields(pitches)
	if len(fields) == 0 {
		return nil, errNoPitches
	}
	i, err := interval.Parse(strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	out := make([]pitch.Pitch, len(fields))
	for n, f := range fields {
		p, err := pitch.Parse(f)
		if err != nil {
			return nil, err
		}
		out[n] = p.Transpose(i)
	}
	return out, nil
}

// pitchColor places the twelve-tone circle on the hue wheel so enharmonic
// spellings share a color
func pitchColor(p pitch.Pitch) lipgloss.Color {
	hue := p.Class().Semitones() * 30
	return lipgloss.Color(colorful.Hcl(hue, 0.6, 0.65).Clamped().Hex())
}
