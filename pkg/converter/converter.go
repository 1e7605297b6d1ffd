package converter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/james-see/engrave/pkg/config"
	"github.com/james-see/engrave/pkg/document"
	"github.com/james-see/engrave/pkg/interval"
	"github.com/james-see/engrave/pkg/lilypond"
	"github.com/james-see/engrave/pkg/notation"
)

// Format represents a file format
type Format string

const (
	FormatMIDI     Format = "midi"
	FormatLilypond Format = "lilypond"
	FormatYAML     Format = "yaml"
	FormatJSON     Format = "json"
	FormatUnknown  Format = "unknown"
)

// DetectFormat detects the format of a file based on extension
func DetectFormat(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".mid", ".midi":
		return FormatMIDI
	case ".ly":
		return FormatLilypond
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatUnknown
	}
}

// DetectFormatFromContent detects format from file content
func DetectFormatFromContent(data []byte) Format {
	trimmed := strings.TrimSpace(string(data))
	switch {
	case len(data) >= 4 && string(data[:4]) == "MThd":
		return FormatMIDI
	case strings.HasPrefix(trimmed, `\version`):
		return FormatLilypond
	case strings.HasPrefix(trimmed, "{"):
		return FormatJSON
	case strings.Contains(trimmed, ":"):
		return FormatYAML
	}
	return FormatUnknown
}

func (f Format) document() document.Format {
	if f == FormatJSON {
		return document.JSON
	}
	return document.YAML
}

func (f Format) isDocument() bool {
	return f == FormatYAML || f == FormatJSON
}

// Converter handles format conversions
type Converter struct {
	// Engraver supplies the \version written into LilyPond output
	Engraver lilypond.Engraver
	// Transposition is applied to every score before it is written
	Transposition interval.Interval

	cfg    *config.Config
	midi   *MIDIConverter
	logger *logrus.Logger
}

// New creates a Converter using the MIDI and LilyPond settings in cfg
func New(cfg *config.Config) *Converter {
	return &Converter{
		Engraver:      lilypond.NewShellEngraver(cfg.LilypondBinary, cfg.DefaultVersion),
		Transposition: interval.Identity,
		cfg:           cfg,
		midi:          NewMIDIConverter(cfg.TicksPerQuarter, cfg.Tempo, cfg.Grid),
		logger:        cfg.Logger,
	}
}

// ConvertFile converts a file from one format to another
func (c *Converter) ConvertFile(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	inputFormat := DetectFormat(inputPath)
	if inputFormat == FormatUnknown {
		inputFormat = DetectFormatFromContent(data)
	}
	outputFormat := DetectFormat(outputPath)
	if outputFormat == FormatUnknown {
		return errors.New("cannot determine output format from filename")
	}

	outputData, err := c.Convert(data, inputFormat, outputFormat)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if err := os.WriteFile(outputPath, outputData, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"input":  inputPath,
		"output": outputPath,
		"from":   inputFormat,
		"to":     outputFormat,
		"bytes":  len(outputData),
	}).Info("converted file")
	return nil
}

// Convert converts data between formats. MIDI and documents can be read;
// LilyPond is write-only.
func (c *Converter) Convert(data []byte, from, to Format) ([]byte, error) {
	var tree notation.Node
	var err error
	switch {
	case from == FormatMIDI:
		tree, err = c.MIDIToScore(data)
	case from.isDocument():
		tree, err = c.documentToScore(data, from.document())
	default:
		return nil, fmt.Errorf("unsupported conversion: %s to %s", from, to)
	}
	if err != nil {
		return nil, err
	}

	switch {
	case to == FormatLilypond:
		return c.Lilypond(tree)
	case to == FormatMIDI:
		return c.ScoreToMIDI(tree)
	case to.isDocument():
		return document.Encode(document.FromNotation(tree), to.document())
	}
	return nil, fmt.Errorf("unsupported conversion: %s to %s", from, to)
}

// MIDIToScore quantizes MIDI data into a score with one staff per track
func (c *Converter) MIDIToScore(data []byte) (notation.Node, error) {
	seq, err := c.midi.ParseMIDI(data)
	if err != nil {
		return nil, err
	}
	score, err := SequenceToScore(seq)
	if err != nil {
		return nil, err
	}
	c.logger.WithFields(logrus.Fields{"tracks": len(seq.Tracks), "tempo": seq.Tempo, "grid": seq.Grid}).Debug("read MIDI")
	return c.transpose(score), nil
}

// ScoreToMIDI performs a notation tree as a MIDI file
func (c *Converter) ScoreToMIDI(tree notation.Node) ([]byte, error) {
	timelines := Timelines(tree)
	c.logger.WithFields(logrus.Fields{"tracks": len(timelines)}).Debug("writing MIDI")
	return c.midi.GenerateMIDI(timelines)
}

// Lilypond renders a complete .ly file for tree
func (c *Converter) Lilypond(tree notation.Node) ([]byte, error) {
	f := lilypond.NewFile(c.cfg, tree)
	f.Engraver = c.Engraver
	src, err := f.Source()
	if err != nil {
		return nil, err
	}
	return []byte(src + "\n"), nil
}

// MIDIToLilypond converts MIDI data to LilyPond source
func (c *Converter) MIDIToLilypond(midiData []byte) ([]byte, error) {
	return c.Convert(midiData, FormatMIDI, FormatLilypond)
}

// DocumentToLilypond converts a YAML or JSON score document to LilyPond source
func (c *Converter) DocumentToLilypond(data []byte, format document.Format) ([]byte, error) {
	tree, err := c.documentToScore(data, format)
	if err != nil {
		return nil, err
	}
	return c.Lilypond(tree)
}

// DocumentToMIDI converts a YAML or JSON score document to MIDI data
func (c *Converter) DocumentToMIDI(data []byte, format document.Format) ([]byte, error) {
	tree, err := c.documentToScore(data, format)
	if err != nil {
		return nil, err
	}
	return c.ScoreToMIDI(tree)
}

func (c *Converter) documentToScore(data []byte, format document.Format) (notation.Node, error) {
	doc, err := document.Decode(data, format)
	if err != nil {
		return nil, err
	}
	tree, err := document.Build(doc)
	if err != nil {
		return nil, err
	}
	return c.transpose(tree), nil
}

func (c *Converter) transpose(tree notation.Node) notation.Node {
	if c.Transposition == interval.Identity {
		return tree
	}
	return notation.Transpose(tree, c.Transposition)
}

// GetSupportedConversions returns a list of supported conversion paths
func GetSupportedConversions() []string {
	return []string{
		"midi -> lilypond",
		"midi -> yaml",
		"midi -> json",
		"yaml -> lilypond",
		"yaml -> midi",
		"yaml -> json",
		"json -> lilypond",
		"json -> midi",
		"json -> yaml",
	}
}
