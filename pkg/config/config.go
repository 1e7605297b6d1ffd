// Package config holds runtime options shared by the CLI, API server and TUI
package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/james-see/engrave/pkg/logger"
)

// Config represents options that configure the global behavior of the program
type Config struct {
	// Project logger
	Logger *logrus.Logger `yaml:"-"`

	// Directory where generated .ly and .pdf files are written
	OutputDir string `yaml:"output_dir"`

	// LilyPond executable used for compiling and version detection
	LilypondBinary string `yaml:"lilypond_binary"`

	// Command used to open compiled PDFs
	Viewer string `yaml:"viewer"`

	// Version written to \version when lilypond is not installed
	DefaultVersion string `yaml:"default_version"`

	// Note-name language written to \language
	Language string `yaml:"language"`

	// MIDI resolution and tempo for exported files
	TicksPerQuarter uint16  `yaml:"ticks_per_quarter"`
	Tempo           float64 `yaml:"tempo"`

	// Grid is the quantization step for MIDI import, as a fraction 1/Grid of a whole note
	Grid int `yaml:"grid"`

	LogLevel string `yaml:"log_level"`
}

// New creates a Config with reasonable defaults for real usage
func New() *Config {
	viewer := "xdg-open"
	if runtime.GOOS == "darwin" {
		viewer = "open"
	}
	return &Config{
		Logger:          logger.GetProjectLogger(),
		OutputDir:       "/tmp/engrave",
		LilypondBinary:  "lilypond",
		Viewer:          viewer,
		DefaultVersion:  "2.24.0",
		Language:        "english",
		TicksPerQuarter: 480,
		Tempo:           120,
		Grid:            32,
		LogLevel:        "info",
	}
}

// Load reads a YAML file over the defaults
func Load(path string) (*Config, error) {
	cfg := New()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log_level: %w", err)
	}
	if level != cfg.Logger.GetLevel() {
		cfg.Logger = logger.New(level)
	}
	return cfg, nil
}

// Validate checks the numeric options
func (c *Config) Validate() error {
	if c.Grid <= 0 || c.Grid&(c.Grid-1) != 0 {
		return fmt.Errorf("grid must be a positive power of two, got %d", c.Grid)
	}
	if c.Tempo <= 0 {
		return fmt.Errorf("tempo must be positive, got %g", c.Tempo)
	}
	if c.TicksPerQuarter == 0 {
		return fmt.Errorf("ticks_per_quarter must be positive")
	}
	return nil
}
