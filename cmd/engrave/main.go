// Package main is the entry point for the engrave CLI
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/james-see/engrave/pkg/api"
	"github.com/james-see/engrave/pkg/config"
	"github.com/james-see/engrave/pkg/converter"
	"github.com/james-see/engrave/pkg/document"
	"github.com/james-see/engrave/pkg/duration"
	"github.com/james-see/engrave/pkg/interval"
	"github.com/james-see/engrave/pkg/lilypond"
	"github.com/james-see/engrave/pkg/logger"
	"github.com/james-see/engrave/pkg/notation"
	"github.com/james-see/engrave/pkg/pitch"
	"github.com/james-see/engrave/pkg/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var cfg = config.New()

var (
	configPath    string
	verbose       bool
	outputFile    string
	transposition string
	showPDF       bool
	serverPort    int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "engrave",
	Short: "Transpose, split and engrave music notation with LilyPond",
	Long: `engrave is a toolkit for pitch and duration arithmetic that renders
score documents and MIDI files as LilyPond source.

Examples:
  engrave transpose +m3 c' e' g'
  engrave interval M9
  engrave split 5/8
  engrave render score.yaml -o score.ly --transpose=-M2
  engrave compile score.yaml --show
  engrave midi2ly song.mid -o song.ly
  engrave tui
  engrave serve --port 8080`,
	Version:           fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

var transposeCmd = &cobra.Command{
	Use:   "transpose <interval> <pitch>...",
	Short: "Transpose pitches by an interval",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runTranspose,
}

var intervalCmd = &cobra.Command{
	Use:   "interval <name>",
	Short: "Show the size of an interval",
	Args:  cobra.ExactArgs(1),
	RunE:  runInterval,
}

var splitCmd = &cobra.Command{
	Use:   "split <duration>",
	Short: "Split a duration into printable note values",
	Args:  cobra.ExactArgs(1),
	RunE:  runSplit,
}

var renderCmd = &cobra.Command{
	Use:   "render <document>",
	Short: "Render a YAML or JSON score document as LilyPond",
	Long:  `Renders the document to stdout, or to the file given with --output.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

var compileCmd = &cobra.Command{
	Use:   "compile <document>",
	Short: "Engrave a score document to PDF with lilypond",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompile,
}

var convertCmd = &cobra.Command{
	Use:   "convert <input>",
	Short: "Auto-detect and convert between formats",
	Long:  `Automatically detects input format and converts to the output format based on file extension.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

var midi2lyCmd = &cobra.Command{
	Use:   "midi2ly <input.mid>",
	Short: "Convert MIDI to LilyPond",
	Args:  cobra.ExactArgs(1),
	RunE:  runMIDIToLilypond,
}

var doc2midiCmd = &cobra.Command{
	Use:   "doc2midi <document>",
	Short: "Convert a score document to MIDI",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentToMIDI,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	RunE:  runTUI,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	for _, cmd := range []*cobra.Command{renderCmd, compileCmd, convertCmd, midi2lyCmd, doc2midiCmd} {
		cmd.Flags().StringVarP(&transposition, "transpose", "t", "", "Interval to transpose by, e.g. +M2")
	}

	// Output flags
	renderCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output .ly file path")
	convertCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path (required)")
	_ = convertCmd.MarkFlagRequired("output")
	midi2lyCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output .ly file path")
	doc2midiCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output .mid file path")

	// compile command
	compileCmd.Flags().BoolVar(&showPDF, "show", false, "Open the PDF after compiling")

	// serve command
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "Server port")

	// Add commands
	rootCmd.AddCommand(transposeCmd)
	rootCmd.AddCommand(intervalCmd)
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(midi2lyCmd)
	rootCmd.AddCommand(doc2midiCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if verbose {
		cfg.LogLevel = logrus.DebugLevel.String()
		cfg.Logger = logger.New(logrus.DebugLevel)
	}
	return nil
}

func newConverter() (*converter.Converter, error) {
	conv := converter.New(cfg)
	if transposition == "" {
		return conv, nil
	}
	i, err := interval.Parse(transposition)
	if err != nil {
		return nil, err
	}
	conv.Transposition = i
	return conv, nil
}

func getOutputPath(input, defaultExt string) string {
	if outputFile != "" {
		return outputFile
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + defaultExt
}

func runTranspose(cmd *cobra.Command, args []string) error {
	i, err := interval.Parse(args[0])
	if err != nil {
		return err
	}
	out := make([]string, 0, len(args)-1)
	for _, arg := range args[1:] {
		p, err := pitch.Parse(arg)
		if err != nil {
			return err
		}
		out = append(out, p.Transpose(i).String())
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, " "))
	return nil
}

func runInterval(cmd *cobra.Command, args []string) error {
	i, err := interval.Parse(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %g semitones, %d staff spaces\n", i, i.Semitones(), i.StaffSpaces())
	return nil
}

func runSplit(cmd *cobra.Command, args []string) error {
	d, err := duration.Parse(args[0])
	if err != nil {
		return err
	}
	parts, err := d.PrintableList()
	if err != nil {
		return err
	}
	tokens := make([]string, len(parts))
	for i, part := range parts {
		if tokens[i], err = part.Lilypond(); err != nil {
			return err
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(tokens, " "))
	return nil
}

func readDocument(path string) (notation.Node, error) {
	doc, err := document.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tree, err := document.Build(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if transposition != "" {
		i, err := interval.Parse(transposition)
		if err != nil {
			return nil, err
		}
		tree = notation.Transpose(tree, i)
	}
	return tree, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	tree, err := readDocument(args[0])
	if err != nil {
		return err
	}
	f := lilypond.NewFile(cfg, tree)
	if outputFile == "" {
		src, err := f.Source()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), src)
		return nil
	}
	path, err := f.SaveTo(outputFile)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Rendered %s -> %s\n", args[0], path)
	return nil
}

func runCompile(cmd *cobra.Command, args []string) error {
	tree, err := readDocument(args[0])
	if err != nil {
		return err
	}
	f := lilypond.NewFile(cfg, tree)
	if showPDF {
		if err := f.Show(); err != nil {
			return err
		}
	} else if _, err := f.Compile(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Compiled %s -> %s\n", f.SourcePath(), f.OutputPath())
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]
	conv, err := newConverter()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Converting %s -> %s\n", input, outputFile)
	if err := conv.ConvertFile(input, outputFile); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Conversion complete!")
	return nil
}

func runMIDIToLilypond(cmd *cobra.Command, args []string) error {
	return convertTo(cmd, args[0], ".ly")
}

func runDocumentToMIDI(cmd *cobra.Command, args []string) error {
	return convertTo(cmd, args[0], ".mid")
}

func convertTo(cmd *cobra.Command, input, ext string) error {
	output := getOutputPath(input, ext)

	conv, err := newConverter()
	if err != nil {
		return err
	}
	if err := conv.ConvertFile(input, output); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Converted %s -> %s\n", input, output)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	return tui.Run(cfg)
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Fprintf(cmd.OutOrStdout(), "Starting API server on port %d...\n", serverPort)
	return api.StartServer(cfg, serverPort)
}
