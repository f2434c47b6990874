// Package convert drives a conversion: read the transcript, apply
// transformers, render every chunk in order and write the output file.
package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/sonnes/subtitler/core"
	"github.com/sonnes/subtitler/reader"
	"github.com/sonnes/subtitler/reader/speakers"
	"github.com/sonnes/subtitler/render"
)

// outputName is the base name of every written file; the format supplies the
// extension.
const outputName = "output"

// EntryFunc receives each rendered entry before it is appended to the output.
type EntryFunc func(c core.Chunk, entry string) error

// Options configures a single conversion.
type Options struct {
	Input     string
	Format    render.Format
	OutputDir string

	// OnEntry, when set, is called with every rendered entry (--verbose).
	OnEntry EntryFunc

	// Transformers run over the transcript after reading and before
	// rendering, in order.
	Transformers []core.Transformer

	// Reader overrides the default speakers JSON reader.
	Reader reader.Reader
}

// OutputPath returns the file a conversion to f writes inside dir.
func OutputPath(dir string, f render.Format) string {
	return filepath.Join(dir, outputName+"."+f.Ext())
}

// Run converts opts.Input to opts.Format and returns the written path.
// Nothing is written when reading or rendering fails.
func Run(opts Options) (string, error) {
	t, err := load(opts)
	if err != nil {
		return "", err
	}

	out, err := Render(t, opts.Format, opts.OnEntry)
	if err != nil {
		return "", err
	}

	path := OutputPath(opts.OutputDir, opts.Format)
	if err := writeFile(path, out); err != nil {
		return "", err
	}
	log.Info("wrote output", "path", path, "format", opts.Format, "chunks", len(t.Chunks))
	return path, nil
}

// RunAll converts opts.Input to every subtitle format (txt, vtt, srt). All
// formats are rendered before any file is written, so a chunk that fails in
// one format leaves the output directory untouched. opts.Format is ignored.
func RunAll(opts Options) ([]string, error) {
	t, err := load(opts)
	if err != nil {
		return nil, err
	}

	formats := render.Subtitles()
	outputs := make([]string, len(formats))
	for i, f := range formats {
		out, err := Render(t, f, opts.OnEntry)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f, err)
		}
		outputs[i] = out
	}

	paths := make([]string, 0, len(formats))
	for i, f := range formats {
		path := OutputPath(opts.OutputDir, f)
		if err := writeFile(path, outputs[i]); err != nil {
			return paths, err
		}
		log.Info("wrote output", "path", path, "format", f, "chunks", len(t.Chunks))
		paths = append(paths, path)
	}
	return paths, nil
}

// Render produces the complete output for t: the format preamble, every
// chunk with its 1-based index, then the postamble. onEntry may be nil.
func Render(t *core.Transcript, f render.Format, onEntry EntryFunc) (string, error) {
	var b strings.Builder
	b.WriteString(render.Preamble(f))

	for i, c := range t.Chunks {
		entry, err := render.FormatChunk(f, c, i+1)
		if err != nil {
			return "", err
		}
		if onEntry != nil {
			if err := onEntry(c, entry); err != nil {
				return "", fmt.Errorf("echo chunk %d: %w", i+1, err)
			}
		}
		b.WriteString(entry)
	}

	b.WriteString(render.Postamble(f))
	return b.String(), nil
}

func load(opts Options) (*core.Transcript, error) {
	r := opts.Reader
	if r == nil {
		r = &speakers.Reader{}
	}

	t, err := r.ReadFile(opts.Input)
	if err != nil {
		return nil, err
	}
	log.Debug("read transcript", "path", opts.Input, "chunks", len(t.Chunks))

	if err := core.Chain(t, opts.Transformers...); err != nil {
		return nil, fmt.Errorf("transform: %w", err)
	}
	if len(opts.Transformers) > 0 {
		log.Debug("transformed transcript", "chunks", len(t.Chunks))
	}
	return t, nil
}

// writeFile replaces path with data atomically: the bytes go to a temporary
// file in the same directory which is then renamed over path. The directory
// must already exist.
func writeFile(path, data string) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".output-*")
	if err != nil {
		return &core.OutputWriteError{Path: path, Err: err}
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &core.OutputWriteError{Path: path, Err: err}
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &core.OutputWriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &core.OutputWriteError{Path: path, Err: err}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return &core.OutputWriteError{Path: path, Err: err}
	}
	return nil
}
