// Package speakers reads diarized transcripts: a JSON document whose
// top-level "speakers" array holds {text, timestamp, speaker} chunks.
package speakers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sonnes/subtitler/core"
)

// Reader reads "speakers" JSON documents.
type Reader struct{}

// Raw JSON deserialization types. Pointers distinguish a missing key or a
// null element from a zero value.

type rawDocument struct {
	Speakers *[]json.RawMessage `json:"speakers"`
}

type rawChunk struct {
	Text      *string    `json:"text" validate:"required"`
	Timestamp []*float64 `json:"timestamp" validate:"omitempty,len=2,dive,required"`
	Speaker   string     `json:"speaker"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ReadFile parses the transcript document at path.
func (r *Reader) ReadFile(path string) (*core.Transcript, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &core.InputReadError{Path: path, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &core.InputReadError{Path: path, Err: err}
	}

	return Parse(data)
}

// Parse decodes and validates a transcript document held in memory.
func Parse(data []byte) (*core.Transcript, error) {
	var doc rawDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &core.InputFormatError{Err: err}
	}
	if doc.Speakers == nil {
		return nil, &core.InputFormatError{Field: "speakers", Err: errors.New("missing")}
	}

	t := &core.Transcript{Chunks: make([]core.Chunk, 0, len(*doc.Speakers))}
	for i, raw := range *doc.Speakers {
		c, err := parseChunk(raw)
		if err != nil {
			err.Index = i + 1
			return nil, err
		}
		t.Chunks = append(t.Chunks, c)
	}
	return t, nil
}

// parseChunk decodes one chunk. The returned error has no index set.
func parseChunk(data json.RawMessage) (core.Chunk, *core.InputFormatError) {
	var rc rawChunk
	if err := json.Unmarshal(data, &rc); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			field, _, _ := strings.Cut(typeErr.Field, ".")
			return core.Chunk{}, &core.InputFormatError{Field: field, Err: err}
		}
		return core.Chunk{}, &core.InputFormatError{Err: err}
	}

	if err := validate.Struct(rc); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return core.Chunk{}, &core.InputFormatError{Field: fieldName(fe), Err: describe(fe)}
		}
		return core.Chunk{}, &core.InputFormatError{Err: err}
	}

	c := core.Chunk{Text: *rc.Text, Speaker: rc.Speaker}
	if len(rc.Timestamp) == 2 {
		c.Timestamp = &core.Timestamp{Start: *rc.Timestamp[0], End: *rc.Timestamp[1]}
	}
	return c, nil
}

// fieldName reports the JSON key of a failed field. Element failures such as
// "timestamp[1]" are attributed to the enclosing key.
func fieldName(fe validator.FieldError) string {
	name, _, _ := strings.Cut(fe.Field(), "[")
	return name
}

func describe(fe validator.FieldError) error {
	switch fe.Tag() {
	case "required":
		if _, elem, ok := strings.Cut(fe.Field(), "["); ok {
			return fmt.Errorf("element %s is null", strings.TrimSuffix(elem, "]"))
		}
		return errors.New("missing")
	case "len":
		return fmt.Errorf("must have %s elements", fe.Param())
	default:
		return fmt.Errorf("failed %q validation", fe.Tag())
	}
}
