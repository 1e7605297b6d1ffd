package lilypond

import (
	"regexp"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/gruntwork-io/go-commons/shell"
)

// Engraver turns LilyPond source into a PDF
type Engraver interface {
	// Version reports the LilyPond version to declare in \version
	Version() string
	// Compile engraves source, writing <outputBase>.pdf
	Compile(source, outputBase string) error
}

// Viewer opens a compiled document
type Viewer interface {
	Open(path string) error
}

var versionPattern = regexp.MustCompile(`\d+(?:\.\d+)+`)

// ParseVersion extracts the first dotted version number from `lilypond --version` output
func ParseVersion(output, fallback string) string {
	if v := versionPattern.FindString(output); v != "" {
		return v
	}
	return fallback
}

// ShellEngraver runs an installed lilypond binary
type ShellEngraver struct {
	Binary         string
	DefaultVersion string
}

func NewShellEngraver(binary, defaultVersion string) *ShellEngraver {
	return &ShellEngraver{Binary: binary, DefaultVersion: defaultVersion}
}

// Installed reports whether the binary is on PATH
func (e *ShellEngraver) Installed() bool {
	return shell.CommandInstalled(e.Binary)
}

func (e *ShellEngraver) Version() string {
	if !e.Installed() {
		return e.DefaultVersion
	}
	out, err := shell.RunShellCommandAndGetOutput(shell.NewShellOptions(), e.Binary, "--version")
	if err != nil {
		return e.DefaultVersion
	}
	return ParseVersion(out, e.DefaultVersion)
}

func (e *ShellEngraver) Compile(source, outputBase string) error {
	if !e.Installed() {
		return errors.WithStackTrace(&NotInstalledError{Binary: e.Binary})
	}
	if err := shell.RunShellCommand(shell.NewShellOptions(), e.Binary, "-o", outputBase, source); err != nil {
		return errors.WithStackTrace(err)
	}
	return nil
}

// ShellViewer opens files with a desktop command such as open or xdg-open
type ShellViewer struct {
	Command string
}

func NewShellViewer(command string) *ShellViewer {
	return &ShellViewer{Command: command}
}

func (v *ShellViewer) Open(path string) error {
	if !shell.CommandInstalled(v.Command) {
		return errors.WithStackTrace(&NotInstalledError{Binary: v.Command})
	}
	if err := shell.RunShellCommand(shell.NewShellOptions(), v.Command, path); err != nil {
		return errors.WithStackTrace(err)
	}
	return nil
}

// NotInstalledError reports a missing external program
type NotInstalledError struct {
	Binary string
}

func (e *NotInstalledError) Error() string {
	return e.Binary + " is not installed or not on PATH"
}
