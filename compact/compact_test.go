package compact

import (
	"path/filepath"
	"testing"

	"github.com/sonnes/subtitler/core"
	"github.com/sonnes/subtitler/reader/speakers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readTestdata(t *testing.T, name string) *core.Transcript {
	t.Helper()
	r := &speakers.Reader{}
	tr, err := r.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return tr
}

func ts(start, end float64) *core.Timestamp {
	return &core.Timestamp{Start: start, End: end}
}

func TestJoinText(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"plain", "Hello", "world", "Hello world"},
		{"whisper leading spaces", " Hello", " world", " Hello world"},
		{"trailing space", "Hello ", "world", "Hello world"},
		{"empty first", "", " world", "world"},
		{"empty second", " Hello", "", " Hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, joinText(tt.a, tt.b))
		})
	}
}

func TestTransform(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		in   []core.Chunk
		want []core.Chunk
	}{
		{
			name: "merges same speaker within gap",
			cfg:  Config{MaxGap: 0.5},
			in: []core.Chunk{
				{Text: " So", Timestamp: ts(0, 1), Speaker: "SPEAKER_00"},
				{Text: " anyway", Timestamp: ts(1.2, 2), Speaker: "SPEAKER_00"},
				{Text: " Right.", Timestamp: ts(2, 3), Speaker: "SPEAKER_01"},
			},
			want: []core.Chunk{
				{Text: " So anyway", Timestamp: ts(0, 2), Speaker: "SPEAKER_00"},
				{Text: " Right.", Timestamp: ts(2, 3), Speaker: "SPEAKER_01"},
			},
		},
		{
			name: "gap too large",
			cfg:  Config{MaxGap: 0.5},
			in: []core.Chunk{
				{Text: "a", Timestamp: ts(0, 1), Speaker: "SPEAKER_00"},
				{Text: "b", Timestamp: ts(2, 3), Speaker: "SPEAKER_00"},
			},
			want: []core.Chunk{
				{Text: "a", Timestamp: ts(0, 1), Speaker: "SPEAKER_00"},
				{Text: "b", Timestamp: ts(2, 3), Speaker: "SPEAKER_00"},
			},
		},
		{
			name: "overlapping chunks kept apart",
			cfg:  Config{MaxGap: 1},
			in: []core.Chunk{
				{Text: "a", Timestamp: ts(0, 2), Speaker: "SPEAKER_00"},
				{Text: "b", Timestamp: ts(1, 3), Speaker: "SPEAKER_00"},
			},
			want: []core.Chunk{
				{Text: "a", Timestamp: ts(0, 2), Speaker: "SPEAKER_00"},
				{Text: "b", Timestamp: ts(1, 3), Speaker: "SPEAKER_00"},
			},
		},
		{
			name: "missing timestamp never merges",
			cfg:  Config{MaxGap: 10},
			in: []core.Chunk{
				{Text: "a", Speaker: "SPEAKER_00"},
				{Text: "b", Speaker: "SPEAKER_00"},
			},
			want: []core.Chunk{
				{Text: "a", Speaker: "SPEAKER_00"},
				{Text: "b", Speaker: "SPEAKER_00"},
			},
		},
		{
			name: "chain of three",
			cfg:  Config{MaxGap: 0.1},
			in: []core.Chunk{
				{Text: "one", Timestamp: ts(0, 1), Speaker: "SPEAKER_02"},
				{Text: "two", Timestamp: ts(1, 2), Speaker: "SPEAKER_02"},
				{Text: "three", Timestamp: ts(2.05, 3), Speaker: "SPEAKER_02"},
			},
			want: []core.Chunk{
				{Text: "one two three", Timestamp: ts(0, 3), Speaker: "SPEAKER_02"},
			},
		},
		{
			name: "max chars stops merge",
			cfg:  Config{MaxGap: 1, MaxChars: 8},
			in: []core.Chunk{
				{Text: "one", Timestamp: ts(0, 1), Speaker: "SPEAKER_00"},
				{Text: "two", Timestamp: ts(1, 2), Speaker: "SPEAKER_00"},
				{Text: "three", Timestamp: ts(2, 3), Speaker: "SPEAKER_00"},
			},
			want: []core.Chunk{
				{Text: "one two", Timestamp: ts(0, 2), Speaker: "SPEAKER_00"},
				{Text: "three", Timestamp: ts(2, 3), Speaker: "SPEAKER_00"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &core.Transcript{Chunks: tt.in}
			require.NoError(t, New(tt.cfg).Transform(tr))
			assert.Equal(t, tt.want, tr.Chunks)
		})
	}
}

func TestTransformSingleChunk(t *testing.T) {
	tr := &core.Transcript{Chunks: []core.Chunk{{Text: "only"}}}
	require.NoError(t, New(Config{MaxGap: 1}).Transform(tr))
	assert.Equal(t, []core.Chunk{{Text: "only"}}, tr.Chunks)
}

func TestTransformFixture(t *testing.T) {
	tr := readTestdata(t, "interview.json")
	require.Len(t, tr.Chunks, 6)

	require.NoError(t, New(Config{MaxGap: 0.3}).Transform(tr))
	require.Len(t, tr.Chunks, 3)

	assert.Equal(t, " Thanks for joining. Let's begin with your background.", tr.Chunks[0].Text)
	assert.Equal(t, ts(0, 4.2), tr.Chunks[0].Timestamp)
	assert.Equal(t, "SPEAKER_01", tr.Chunks[1].Speaker)
	assert.Equal(t, " Sure. I started in radio. Then moved to podcasts.", tr.Chunks[1].Text)
	assert.Equal(t, " Great.", tr.Chunks[2].Text)
}
