package lilypond

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clocktesting "k8s.io/utils/clock/testing"

	"github.com/james-see/engrave/pkg/config"
	"github.com/james-see/engrave/pkg/duration"
	"github.com/james-see/engrave/pkg/notation"
)

type fakeEngraver struct {
	version  string
	err      error
	compiled [][2]string
}

func (e *fakeEngraver) Version() string { return e.version }

func (e *fakeEngraver) Compile(source, outputBase string) error {
	e.compiled = append(e.compiled, [2]string{source, outputBase})
	return e.err
}

type fakeViewer struct {
	opened []string
}

func (v *fakeViewer) Open(path string) error {
	v.opened = append(v.opened, path)
	return nil
}

func newTestFile(t *testing.T) (*File, *fakeEngraver, *fakeViewer) {
	t.Helper()

	cfg := config.New()
	cfg.OutputDir = filepath.Join(t.TempDir(), "scores")

	rest, err := notation.NewRest(duration.New(1, 4))
	require.NoError(t, err)

	f := NewFile(cfg, notation.NewContainer(rest))
	engraver := &fakeEngraver{version: "2.24.3"}
	viewer := &fakeViewer{}
	f.Engraver = engraver
	f.Viewer = viewer
	f.Clock = clocktesting.NewFakeClock(time.Date(2024, 3, 9, 14, 5, 7, 123456000, time.UTC))
	return f, engraver, viewer
}

func TestNewFile(t *testing.T) {
	f, _, _ := newTestFile(t)

	assert.Empty(t, f.SourcePath())
	assert.Empty(t, f.OutputPath())
}

func TestSource(t *testing.T) {
	f, _, _ := newTestFile(t)

	src, err := f.Source()
	require.NoError(t, err)
	assert.Equal(t, "\\version \"2.24.3\"\n\\language \"english\"\n\n{\n  r4\n}", src)
}

func TestSave(t *testing.T) {
	f, _, _ := newTestFile(t)

	path, err := f.Save()
	require.NoError(t, err)
	assert.Equal(t, path, f.SourcePath())
	assert.Equal(t, "2024-03-09-14-05-07-1709993107123456.ly", filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "r4")
}

func TestSaveTo(t *testing.T) {
	f, _, _ := newTestFile(t)
	target := filepath.Join(t.TempDir(), "nested", "..", "test.ly")

	path, err := f.SaveTo(target)
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(target), path)
	assert.FileExists(t, path)
}

func TestCompileSavesFirst(t *testing.T) {
	f, engraver, _ := newTestFile(t)

	out, err := f.Compile()
	require.NoError(t, err)

	require.Len(t, engraver.compiled, 1)
	source := engraver.compiled[0][0]
	assert.Equal(t, f.SourcePath(), source)
	assert.Equal(t, source[:len(source)-len(".ly")], engraver.compiled[0][1])
	assert.Equal(t, engraver.compiled[0][1]+".pdf", out)
	assert.Equal(t, out, f.OutputPath())
}

func TestCompileError(t *testing.T) {
	f, engraver, _ := newTestFile(t)
	engraver.err = errors.New("exit status 1")

	_, err := f.Compile()
	assert.ErrorIs(t, err, engraver.err)
	assert.Empty(t, f.OutputPath())
}

func TestShow(t *testing.T) {
	f, engraver, viewer := newTestFile(t)

	require.NoError(t, f.Show())
	require.NoError(t, f.Show())

	assert.Len(t, engraver.compiled, 1)
	assert.Equal(t, []string{f.OutputPath(), f.OutputPath()}, viewer.opened)
}

func TestSaveUnprintable(t *testing.T) {
	f, _, _ := newTestFile(t)
	f.content = notation.NewContainer(&notation.Note{})

	_, err := f.Save()
	var unprintable *duration.UnprintableError
	assert.ErrorAs(t, err, &unprintable)
	assert.Empty(t, f.SourcePath())
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		output string
		want   string
	}{
		{"GNU LilyPond 2.24.1 (running Guile 2.2)", "2.24.1"},
		{"GNU LilyPond 2.25.10\n\nCopyright (c) 1996--2023", "2.25.10"},
		{"", "2.24.0"},
		{"no version here", "2.24.0"},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseVersion(tt.output, "2.24.0"))
		})
	}
}

func TestShellEngraverFallsBack(t *testing.T) {
	e := NewShellEngraver("engrave-missing-binary", "2.24.0")

	assert.False(t, e.Installed())
	assert.Equal(t, "2.24.0", e.Version())
	assert.Error(t, e.Compile("in.ly", "in"))
	assert.Error(t, NewShellViewer("engrave-missing-viewer").Open("in.pdf"))
}
