// Package lilypond writes score trees to .ly files and drives the lilypond engraver
package lilypond

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"

	"github.com/james-see/engrave/pkg/config"
	"github.com/james-see/engrave/pkg/notation"
)

const timestampLayout = "2006-01-02-15-04-05"

// File is a score bound for disk. Save, Compile and Show each run the
// earlier steps when they have not happened yet.
type File struct {
	Engraver Engraver
	Viewer   Viewer
	Clock    clock.Clock

	content    notation.Node
	dir        string
	language   string
	sourcePath string
	outputPath string
	logger     *logrus.Logger
}

// NewFile binds content to the directories and programs named in cfg
func NewFile(cfg *config.Config, content notation.Node) *File {
	return &File{
		Engraver: NewShellEngraver(cfg.LilypondBinary, cfg.DefaultVersion),
		Viewer:   NewShellViewer(cfg.Viewer),
		Clock:    clock.RealClock{},
		content:  content,
		dir:      cfg.OutputDir,
		language: cfg.Language,
		logger:   cfg.Logger,
	}
}

// SourcePath is the .ly file written by Save or SaveTo, empty before either
func (f *File) SourcePath() string { return f.sourcePath }

// OutputPath is the PDF written by Compile, empty before it runs
func (f *File) OutputPath() string { return f.outputPath }

// Source renders the complete file text
func (f *File) Source() (string, error) {
	body, err := f.content.Lilypond()
	if err != nil {
		return "", err
	}
	return f.prelude() + "\n\n" + body, nil
}

func (f *File) prelude() string {
	return fmt.Sprintf("\\version %q\n\\language %q", f.Engraver.Version(), f.language)
}

// Save writes the file into the output directory under a timestamped name
func (f *File) Save() (string, error) {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return "", errors.WithStackTrace(err)
	}
	now := f.Clock.Now()
	name := now.Format(timestampLayout) + "-" + strconv.FormatInt(now.UnixMicro(), 10) + ".ly"
	return f.write(filepath.Join(f.dir, name))
}

// SaveTo writes the file to path, resolved against the working directory
func (f *File) SaveTo(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.WithStackTrace(err)
	}
	return f.write(abs)
}

func (f *File) write(path string) (string, error) {
	text, err := f.Source()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", errors.WithStackTrace(err)
	}
	f.sourcePath = path
	f.outputPath = ""
	f.logger.WithFields(logrus.Fields{"path": path, "bytes": len(text)}).Debug("saved lilypond file")
	return path, nil
}

// Compile engraves the saved source to PDF and returns the PDF path
func (f *File) Compile() (string, error) {
	if f.sourcePath == "" {
		if _, err := f.Save(); err != nil {
			return "", err
		}
	}
	base := strings.TrimSuffix(f.sourcePath, ".ly")
	if err := f.Engraver.Compile(f.sourcePath, base); err != nil {
		return "", fmt.Errorf("failed to compile %s: %w", f.sourcePath, err)
	}
	f.outputPath = base + ".pdf"
	f.logger.WithFields(logrus.Fields{"source": f.sourcePath, "output": f.outputPath}).Info("compiled score")
	return f.outputPath, nil
}

// Show opens the compiled PDF
func (f *File) Show() error {
	if f.outputPath == "" {
		if _, err := f.Compile(); err != nil {
			return err
		}
	}
	if err := f.Viewer.Open(f.outputPath); err != nil {
		return fmt.Errorf("failed to open %s: %w", f.outputPath, err)
	}
	return nil
}
