// Package core defines the transcript model that readers produce and
// renderers consume: an ordered list of timestamped, speaker-attributed chunks.
package core

// Transcript is the full document, read once and rendered once.
type Transcript struct {
	Chunks []Chunk
}

// Chunk is one timestamped unit of transcript text. Its position in
// Transcript.Chunks defines its 1-based cue index.
type Chunk struct {
	Text      string
	Timestamp *Timestamp // nil when the source omits it
	Speaker   string     // e.g. "SPEAKER_00"; required for SRT
}

// Timestamp is a cue time range in seconds. Start <= End is expected but
// not enforced.
type Timestamp struct {
	Start float64
	End   float64
}
