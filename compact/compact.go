// Package compact provides a Transformer that folds runs of short chunks from
// the same speaker into single cues for easier reading.
package compact

import (
	"strings"

	"github.com/sonnes/subtitler/core"
)

// Config controls the compact transformer behavior.
type Config struct {
	// MaxGap is the largest silence, in seconds, between two chunks of the
	// same speaker that still merges them.
	MaxGap float64

	// MaxChars caps the length of merged text. Zero means no cap.
	MaxChars int
}

// Compactor merges adjacent same-speaker chunks.
type Compactor struct {
	maxGap   float64
	maxChars int
}

// New creates a Compactor from the given config.
func New(cfg Config) *Compactor {
	return &Compactor{maxGap: cfg.MaxGap, maxChars: cfg.MaxChars}
}

// Transform implements core.Transformer.
func (c *Compactor) Transform(t *core.Transcript) error {
	if len(t.Chunks) < 2 {
		return nil
	}

	out := make([]core.Chunk, 0, len(t.Chunks))
	out = append(out, t.Chunks[0])
	for _, next := range t.Chunks[1:] {
		last := &out[len(out)-1]
		if c.canMerge(*last, next) {
			*last = merge(*last, next)
			continue
		}
		out = append(out, next)
	}
	t.Chunks = out
	return nil
}

// canMerge reports whether next continues prev. Chunks without timing are
// never merged since their gap is unknown.
func (c *Compactor) canMerge(prev, next core.Chunk) bool {
	if prev.Timestamp == nil || next.Timestamp == nil {
		return false
	}
	if prev.Speaker != next.Speaker {
		return false
	}
	gap := next.Timestamp.Start - prev.Timestamp.End
	if gap < 0 || gap > c.maxGap {
		return false
	}
	if c.maxChars > 0 && len(joinText(prev.Text, next.Text)) > c.maxChars {
		return false
	}
	return true
}

func merge(prev, next core.Chunk) core.Chunk {
	return core.Chunk{
		Text:      joinText(prev.Text, next.Text),
		Timestamp: &core.Timestamp{Start: prev.Timestamp.Start, End: next.Timestamp.End},
		Speaker:   prev.Speaker,
	}
}

// joinText concatenates two chunk texts with exactly one space between them.
// Leading whitespace of the first text is kept so merged output starts the
// way the source did.
func joinText(a, b string) string {
	a = strings.TrimRight(a, " \t")
	b = strings.TrimLeft(b, " \t")
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}
