// Package tui provides a terminal user interface for engrave
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/james-see/engrave/pkg/config"
	"github.com/james-see/engrave/pkg/converter"
)

// Engraving-inspired color scheme: ink on manuscript paper
var (
	inkBlue    = lipgloss.Color("#2B4C7E")
	paperCream = lipgloss.Color("#F5EFE0")
	quillGold  = lipgloss.Color("#C9A227")
	staffGray  = lipgloss.Color("#A0A0A0")

	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(paperCream).
			Background(inkBlue).
			Padding(0, 2).
			MarginBottom(1)

	menuStyle = lipgloss.NewStyle().
			Foreground(staffGray).
			PaddingLeft(2)

	selectedStyle = lipgloss.NewStyle().
			Foreground(quillGold).
			Bold(true).
			PaddingLeft(2)

	statusStyle = lipgloss.NewStyle().
			Foreground(quillGold).
			PaddingTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C0392B")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(quillGold).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(inkBlue).
			Padding(1, 2)
)

// State represents the current TUI state
type State int

const (
	StateMenu State = iota
	StateFilePicker
	StateConverting
	StateResult
	StateTransposer
)

// MenuItem represents a menu option
type MenuItem struct {
	Title       string
	Description string
	FromFormat  converter.Format
	ToFormat    converter.Format
}

var documentTypes = []string{".yaml", ".yml", ".json"}

var menuItems = []MenuItem{
	{Title: "MIDI → LilyPond", Description: "Quantize a MIDI file into a .ly score", FromFormat: converter.FormatMIDI, ToFormat: converter.FormatLilypond},
	{Title: "Document → LilyPond", Description: "Render a YAML or JSON score document as .ly", FromFormat: converter.FormatYAML, ToFormat: converter.FormatLilypond},
	{Title: "Document → MIDI", Description: "Perform a score document as a MIDI file", FromFormat: converter.FormatYAML, ToFormat: converter.FormatMIDI},
	{Title: "Transposer", Description: "Transpose pitches by an interval"},
	{Title: "Exit", Description: "Exit the application"},
}

const (
	transposerIndex = 3
	exitIndex       = 4
)

// Model represents the TUI model
type Model struct {
	cfg          *config.Config
	state        State
	menuIndex    int
	filePicker   filepicker.Model
	spinner      spinner.Model
	transposer   transposer
	selectedFile string
	outputFile   string
	conversion   MenuItem
	err          error
	width        int
	height       int
}

// conversionDoneMsg signals conversion completion
type conversionDoneMsg struct {
	outputFile string
	err        error
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, textinput.Blink)
}

// New creates a new TUI model
func New(cfg *config.Config) Model {
	// Initialize file picker
	fp := filepicker.New()
	fp.AllowedTypes = append([]string{".mid", ".midi"}, documentTypes...)
	fp.CurrentDirectory, _ = os.Getwd()

	// Initialize spinner
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(quillGold)

	return Model{
		cfg:        cfg,
		state:      StateMenu,
		menuIndex:  0,
		filePicker: fp,
		spinner:    s,
		transposer: newTransposer(),
	}
}

// Update handles TUI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle file picker state first - it needs to receive all messages
	if m.state == StateFilePicker {
		// Check for escape/quit keys first
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "esc":
				m.state = StateMenu
				return m, nil
			case "q", "ctrl+c":
				return m, tea.Quit
			}
		}

		// Pass all other messages to the file picker
		var cmd tea.Cmd
		m.filePicker, cmd = m.filePicker.Update(msg)

		// Check if file was selected
		if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
			m.selectedFile = path
			m.state = StateConverting
			return m, tea.Batch(m.spinner.Tick, m.performConversion())
		}

		return m, cmd
	}

	if m.state == StateTransposer {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "esc":
				m.state = StateMenu
				return m, nil
			case "ctrl+c":
				return m, tea.Quit
			}
		}
		var cmd tea.Cmd
		m.transposer, cmd = m.transposer.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.filePicker.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateMenu:
			return m.updateMenu(msg)
		case StateResult:
			return m.updateResult(msg)
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case conversionDoneMsg:
		m.state = StateResult
		m.outputFile = msg.outputFile
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		}
	case "down", "j":
		if m.menuIndex < len(menuItems)-1 {
			m.menuIndex++
		}
	case "enter":
		switch m.menuIndex {
		case exitIndex:
			return m, tea.Quit
		case transposerIndex:
			m.state = StateTransposer
			return m, m.transposer.focus(0)
		}
		m.conversion = menuItems[m.menuIndex]
		m.state = StateFilePicker

		// Set file picker filter based on input format
		if m.conversion.FromFormat == converter.FormatMIDI {
			m.filePicker.AllowedTypes = []string{".mid", ".midi"}
		} else {
			m.filePicker.AllowedTypes = documentTypes
		}

		return m, m.filePicker.Init()
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.state = StateMenu
		m.err = nil
		m.selectedFile = ""
		m.outputFile = ""
		return m, nil
	case "q", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func outputExtension(f converter.Format) string {
	if f == converter.FormatMIDI {
		return ".mid"
	}
	return ".ly"
}

func (m Model) performConversion() tea.Cmd {
	cfg, input, to := m.cfg, m.selectedFile, m.conversion.ToFormat
	return func() tea.Msg {
		conv := converter.New(cfg)

		// Generate output filename
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputFile := base + outputExtension(to)

		if err := conv.ConvertFile(input, outputFile); err != nil {
			return conversionDoneMsg{err: err}
		}

		return conversionDoneMsg{outputFile: outputFile}
	}
}

// View renders the TUI
func (m Model) View() string {
	var s strings.Builder

	// Header
	header := asciiLogo()
	s.WriteString(header)
	s.WriteString("\n")

	switch m.state {
	case StateMenu:
		s.WriteString(m.viewMenu())
	case StateFilePicker:
		s.WriteString(m.viewFilePicker())
	case StateConverting:
		s.WriteString(m.viewConverting())
	case StateResult:
		s.WriteString(m.viewResult())
	case StateTransposer:
		s.WriteString(boxStyle.Render(m.transposer.View()))
	}

	// Footer help
	s.WriteString("\n")
	if m.state == StateTransposer {
		s.WriteString(helpStyle.Render("tab: switch field • enter: transpose • esc: back"))
	} else {
		s.WriteString(helpStyle.Render("↑/↓: navigate • enter: select • q: quit"))
	}

	return s.String()
}

func (m Model) viewMenu() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(" SELECT ACTION "))
	s.WriteString("\n\n")

	for i, item := range menuItems {
		if i == m.menuIndex {
			s.WriteString(selectedStyle.Render(fmt.Sprintf("▸ %s", item.Title)))
			s.WriteString("\n")
			s.WriteString(lipgloss.NewStyle().Foreground(quillGold).PaddingLeft(4).Render(item.Description))
		} else {
			s.WriteString(menuStyle.Render(fmt.Sprintf("  %s", item.Title)))
		}
		s.WriteString("\n")
	}

	return boxStyle.Render(s.String())
}

func (m Model) viewFilePicker() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(fmt.Sprintf(" SELECT %s FILE ", strings.ToUpper(string(m.conversion.FromFormat)))))
	s.WriteString("\n\n")
	s.WriteString(m.filePicker.View())
	s.WriteString("\n")
	s.WriteString(helpStyle.Render("esc: back to menu"))

	return s.String()
}

func (m Model) viewConverting() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(" CONVERTING "))
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("%s Converting %s...\n", m.spinner.View(), filepath.Base(m.selectedFile)))
	s.WriteString(statusStyle.Render(fmt.Sprintf("  %s → %s", m.conversion.FromFormat, m.conversion.ToFormat)))

	return boxStyle.Render(s.String())
}

func (m Model) viewResult() string {
	var s strings.Builder

	if m.err != nil {
		s.WriteString(titleStyle.Render(" ERROR "))
		s.WriteString("\n\n")
		s.WriteString(errorStyle.Render(fmt.Sprintf("✗ Conversion failed: %s", m.err.Error())))
	} else {
		s.WriteString(titleStyle.Render(" SUCCESS "))
		s.WriteString("\n\n")
		s.WriteString(successStyle.Render("✓ Conversion complete!"))
		s.WriteString("\n\n")
		s.WriteString(fmt.Sprintf("Input:  %s\n", filepath.Base(m.selectedFile)))
		s.WriteString(fmt.Sprintf("Output: %s", filepath.Base(m.outputFile)))
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("Press enter to continue"))

	return boxStyle.Render(s.String())
}

func asciiLogo() string {
	logo := `
   _____ _   _  ____ ____      ___     _______ 
  | ____| \ | |/ ___|  _ \    / \ \   / / ____|
  |  _| |  \| | |  _| |_) |  / _ \ \ / /|  _|  
  | |___| |\  | |_| |  _ <  / ___ \ V / | |___ 
  |_____|_| \_|\____|_| \_\/_/   \_\_/  |_____|
`
	return lipgloss.NewStyle().Foreground(inkBlue).Render(logo)
}

// Run starts the TUI application
func Run(cfg *config.Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
