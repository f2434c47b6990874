package core

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appendTransformer string

func (a appendTransformer) Transform(t *Transcript) error {
	for i := range t.Chunks {
		t.Chunks[i].Text += string(a)
	}
	return nil
}

type failTransformer struct{}

func (failTransformer) Transform(*Transcript) error { return errors.New("boom") }

func TestChain(t *testing.T) {
	tr := &Transcript{Chunks: []Chunk{{Text: "a"}, {Text: "b"}}}
	require.NoError(t, Chain(tr, appendTransformer("1"), nil, appendTransformer("2")))
	assert.Equal(t, "a12", tr.Chunks[0].Text)
	assert.Equal(t, "b12", tr.Chunks[1].Text)

	err := Chain(tr, failTransformer{}, appendTransformer("3"))
	assert.EqualError(t, err, "boom")
	assert.Equal(t, "a12", tr.Chunks[0].Text)
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "read",
			err:  &InputReadError{Path: "in.json", Err: fs.ErrNotExist},
			want: "read input in.json: file does not exist",
		},
		{
			name: "document format",
			err:  &InputFormatError{Err: errors.New("unexpected EOF")},
			want: "invalid input: unexpected EOF",
		},
		{
			name: "document field",
			err:  &InputFormatError{Field: "speakers", Err: errors.New("missing")},
			want: `invalid input: field "speakers": missing`,
		},
		{
			name: "chunk field",
			err:  &InputFormatError{Index: 3, Field: "text", Err: errors.New("missing")},
			want: `invalid input: chunk 3: field "text": missing`,
		},
		{
			name: "speaker",
			err:  &UnknownSpeakerError{Index: 2, Speaker: "SPEAKER_99"},
			want: `chunk 2: unknown speaker "SPEAKER_99"`,
		},
		{
			name: "write",
			err:  &OutputWriteError{Path: "out/output.srt", Err: fs.ErrPermission},
			want: "write output out/output.srt: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.want)
		})
	}
}

func TestErrorsUnwrap(t *testing.T) {
	err := error(&InputReadError{Path: "x", Err: fs.ErrNotExist})
	assert.ErrorIs(t, err, fs.ErrNotExist)

	err = &OutputWriteError{Path: "x", Err: fs.ErrPermission}
	assert.ErrorIs(t, err, fs.ErrPermission)
}
