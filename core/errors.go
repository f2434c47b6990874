package core

import "fmt"

// InputReadError reports an input file that could not be opened or read.
type InputReadError struct {
	Path string
	Err  error
}

func (e *InputReadError) Error() string {
	return fmt.Sprintf("read input %s: %v", e.Path, e.Err)
}

func (e *InputReadError) Unwrap() error { return e.Err }

// InputFormatError reports a document that is not valid JSON, lacks the
// speakers field, or contains a chunk with a missing or malformed field.
// Index is the 1-based chunk index, or 0 when the whole document is at fault.
type InputFormatError struct {
	Index int
	Field string
	Err   error
}

func (e *InputFormatError) Error() string {
	switch {
	case e.Index == 0 && e.Field == "":
		return fmt.Sprintf("invalid input: %v", e.Err)
	case e.Index == 0:
		return fmt.Sprintf("invalid input: field %q: %v", e.Field, e.Err)
	default:
		return fmt.Sprintf("invalid input: chunk %d: field %q: %v", e.Index, e.Field, e.Err)
	}
}

func (e *InputFormatError) Unwrap() error { return e.Err }

// UnknownSpeakerError reports a speaker identifier with no palette color.
type UnknownSpeakerError struct {
	Index   int
	Speaker string
}

func (e *UnknownSpeakerError) Error() string {
	return fmt.Sprintf("chunk %d: unknown speaker %q", e.Index, e.Speaker)
}

// OutputWriteError reports a destination that could not be written.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("write output %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error { return e.Err }
