package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/sonnes/subtitler/core"
	"github.com/sonnes/subtitler/palette"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// neutralColor marks cues whose speaker has no palette entry.
const neutralColor = "#94a3b8"

// Cue text may carry light markdown (emphasis, links). Raw HTML is omitted
// because the renderer runs without the unsafe option.
var md = goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Strikethrough))

const htmlPreamble = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Transcript</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; color: #0f172a; }
.cue { border-left: 4px solid; padding: 0.25rem 0 0.25rem 0.75rem; margin: 0.75rem 0; }
.cue header { font-size: 0.8rem; color: #64748b; }
.cue .speaker { font-weight: 600; margin-right: 0.5rem; }
.cue p { margin: 0.25rem 0; }
</style>
</head>
<body>
<main>
`

const htmlPostamble = `</main>
</body>
</html>
`

var cueTmpl = template.Must(template.New("cue").Parse(
	`<section class="cue" id="cue-{{.Index}}" data-speaker="{{.Speaker}}" style="border-left-color: {{.Color}}">
<header>{{if .Speaker}}<span class="speaker" style="color: {{.Color}}">{{.Speaker}}</span>{{end}}<time>{{.Start}} &ndash; {{.End}}</time></header>
{{.Body}}</section>
`))

type cueData struct {
	Index   int
	Speaker string
	Color   string
	Start   string
	End     string
	Body    template.HTML
}

func formatHTML(c core.Chunk, index int) (string, error) {
	if c.Timestamp == nil {
		return "", missingTimestamp(index)
	}

	color, ok := palette.Color(c.Speaker)
	if !ok {
		color = neutralColor
	}

	var body bytes.Buffer
	if err := md.Convert([]byte(strings.TrimSpace(c.Text)), &body); err != nil {
		return "", fmt.Errorf("chunk %d: convert text: %w", index, err)
	}

	var out strings.Builder
	err := cueTmpl.Execute(&out, cueData{
		Index:   index,
		Speaker: c.Speaker,
		Color:   color,
		Start:   FormatSeconds(c.Timestamp.Start, VTTSeparator),
		End:     FormatSeconds(c.Timestamp.End, VTTSeparator),
		Body:    template.HTML(body.String()),
	})
	if err != nil {
		return "", fmt.Errorf("chunk %d: execute cue template: %w", index, err)
	}
	return out.String(), nil
}
