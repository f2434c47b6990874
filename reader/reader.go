// Package reader defines the interface for loading transcript documents
// into the core transcript model.
package reader

import "github.com/sonnes/subtitler/core"

// Reader loads a transcript from disk.
type Reader interface {
	// ReadFile parses the document at path. Failures are reported as
	// *core.InputReadError or *core.InputFormatError.
	ReadFile(path string) (*core.Transcript, error)
}
