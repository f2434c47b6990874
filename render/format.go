// Package render turns transcript chunks into subtitle text. Each output
// format is a preamble, a per-chunk renderer and a postamble, selected by a
// Format value.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sonnes/subtitler/core"
	"github.com/sonnes/subtitler/palette"
)

// Format identifies an output format. Its value doubles as the output file
// extension.
type Format string

const (
	Text Format = "txt"
	VTT  Format = "vtt"
	SRT  Format = "srt"
	HTML Format = "html"
)

var formats = []Format{Text, VTT, SRT, HTML}

var errMissing = errors.New("missing")

// Subtitles returns the formats produced by a combined "all" conversion.
func Subtitles() []Format {
	return []Format{Text, VTT, SRT}
}

// ParseFormat resolves a format selector such as "vtt".
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return "", fmt.Errorf("unknown output format %q (want one of %s)", s, strings.Join(names, ", "))
}

// Ext returns the output file extension, without the dot.
func (f Format) Ext() string {
	return string(f)
}

// Preamble returns the text emitted once before any cue.
func Preamble(f Format) string {
	switch f {
	case VTT:
		return "WEBVTT\n\n"
	case HTML:
		return htmlPreamble
	default:
		return ""
	}
}

// Postamble returns the text emitted once after the last cue.
func Postamble(f Format) string {
	if f == HTML {
		return htmlPostamble
	}
	return ""
}

// FormatChunk renders one chunk. index is the chunk's 1-based position in the
// transcript.
func FormatChunk(f Format, c core.Chunk, index int) (string, error) {
	switch f {
	case Text:
		return formatText(c), nil
	case VTT:
		return formatVTT(c, index)
	case SRT:
		return formatSRT(c, index)
	case HTML:
		return formatHTML(c, index)
	default:
		return "", fmt.Errorf("unknown output format %q", f)
	}
}

func formatText(c core.Chunk) string {
	return c.Text + "\n"
}

func formatVTT(c core.Chunk, index int) (string, error) {
	if c.Timestamp == nil {
		return "", missingTimestamp(index)
	}
	start := FormatSeconds(c.Timestamp.Start, VTTSeparator)
	end := FormatSeconds(c.Timestamp.End, VTTSeparator)
	return fmt.Sprintf("%d\n%s --> %s\n%s\n\n", index, start, end, c.Text), nil
}

func formatSRT(c core.Chunk, index int) (string, error) {
	if c.Timestamp == nil {
		return "", missingTimestamp(index)
	}
	if c.Speaker == "" {
		return "", &core.InputFormatError{Index: index, Field: "speaker", Err: errMissing}
	}
	color, ok := palette.Color(c.Speaker)
	if !ok {
		return "", &core.UnknownSpeakerError{Index: index, Speaker: c.Speaker}
	}
	start := FormatSeconds(c.Timestamp.Start, SRTSeparator)
	end := FormatSeconds(c.Timestamp.End, SRTSeparator)
	return fmt.Sprintf("%d\n%s --> %s\n<font color=\"%s\" data-speaker=\"%s\">%s</font>\n\n",
		index, start, end, color, c.Speaker, c.Text), nil
}

func missingTimestamp(index int) error {
	return &core.InputFormatError{Index: index, Field: "timestamp", Err: errMissing}
}
