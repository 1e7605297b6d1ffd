// Package document reads and writes scores as YAML or JSON trees.
//
// Every element is a map with a single key naming its kind:
//
//	score:
//	  name: Example
//	  contents:
//	    - staff:
//	        contents:
//	          - note: {pitch: "c'", duration: 1/4}
//	          - chord: {pitches: ["c'", "e'"], duration: 1/2, tied: true}
//	          - tuplet: {ratio: 2/3, contents: [...]}
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kinds of document elements
const (
	KindScore      = "score"
	KindStaffGroup = "staff_group"
	KindStaff      = "staff"
	KindVoice      = "voice"
	KindContainer  = "container"
	KindTuplet     = "tuplet"
	KindNote       = "note"
	KindRest       = "rest"
	KindSpacer     = "spacer"
	KindChord      = "chord"
)

// ErrInvalidNode is wrapped by every structural error in a document
var ErrInvalidNode = errors.New("invalid document node")

// Node is a document element: exactly one kind mapped to its body
type Node map[string]*Body

// Body carries the fields of every kind; each kind reads the ones it needs
type Body struct {
	Name         string   `yaml:"name,omitempty" json:"name,omitempty"`
	Context      string   `yaml:"context,omitempty" json:"context,omitempty"`
	Simultaneous bool     `yaml:"simultaneous,omitempty" json:"simultaneous,omitempty"`
	Ratio        string   `yaml:"ratio,omitempty" json:"ratio,omitempty"`
	Pitch        string   `yaml:"pitch,omitempty" json:"pitch,omitempty"`
	Pitches      []string `yaml:"pitches,omitempty" json:"pitches,omitempty"`
	Duration     string   `yaml:"duration,omitempty" json:"duration,omitempty"`
	Forced       bool     `yaml:"forced,omitempty" json:"forced,omitempty"`
	Cautionary   bool     `yaml:"cautionary,omitempty" json:"cautionary,omitempty"`
	Tied         bool     `yaml:"tied,omitempty" json:"tied,omitempty"`
	Contents     []Node   `yaml:"contents,omitempty" json:"contents,omitempty"`
}

// Kind returns the single key of n
func (n Node) Kind() (string, *Body, error) {
	if len(n) != 1 {
		keys := make([]string, 0, len(n))
		for k := range n {
			keys = append(keys, k)
		}
		return "", nil, fmt.Errorf("%w: want exactly one kind, got %v", ErrInvalidNode, keys)
	}
	for k, body := range n {
		if body == nil {
			body = &Body{}
		}
		return k, body, nil
	}
	return "", nil, nil
}

// Format is a document encoding
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// FormatFromPath picks the encoding from a file extension
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, true
	case ".json":
		return JSON, true
	}
	return "", false
}

// Decode parses data in the given format
func Decode(data []byte, format Format) (Node, error) {
	var n Node
	var err error
	switch format {
	case JSON:
		err = json.Unmarshal(data, &n)
	default:
		err = yaml.Unmarshal(data, &n)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s document: %w", format, err)
	}
	if n == nil {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidNode)
	}
	return n, nil
}

// Parse decodes JSON when data starts with '{' and YAML otherwise
func Parse(data []byte) (Node, error) {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		return Decode(data, JSON)
	}
	return Decode(data, YAML)
}

// ReadFile decodes the document at path, choosing the format by extension
func ReadFile(path string) (Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	if format, ok := FormatFromPath(path); ok {
		return Decode(data, format)
	}
	return Parse(data)
}

// Encode serializes n in the given format
func Encode(n Node, format Format) ([]byte, error) {
	if format == JSON {
		return json.MarshalIndent(n, "", "  ")
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
