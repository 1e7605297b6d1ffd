// Package converter provides conversion between MIDI files, score documents and LilyPond source
package converter

// NoteSpan is a quantized note on a track, measured in grid steps
type NoteSpan struct {
	Key      uint8 // MIDI note number (0-127)
	Velocity uint8 // Velocity (1-127)
	Start    int   // First step
	Length   int   // Steps sounding, at least 1
}

// End is the first step after the note
func (n NoteSpan) End() int {
	return n.Start + n.Length
}

// Track is one MIDI track reduced to note spans
type Track struct {
	Name  string
	Notes []NoteSpan
}

// Sequence is a MIDI file quantized to a grid of 1/Grid whole notes
type Sequence struct {
	Tracks []Track
	Tempo  float64
	Grid   int
}

// ConversionResult holds the result of a conversion
type ConversionResult struct {
	Data     []byte
	Filename string
	Format   Format
	Error    error
}
