package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/sonnes/subtitler/compact"
	"github.com/sonnes/subtitler/convert"
	"github.com/sonnes/subtitler/core"
	"github.com/sonnes/subtitler/redact"
	"github.com/sonnes/subtitler/render"
	"github.com/sonnes/subtitler/render/terminal"
	"github.com/urfave/cli/v3"
)

// formatAll selects every subtitle format in one run.
const formatAll = "all"

func newRoot() *cli.Command {
	return &cli.Command{
		Name:      "subtitler",
		Usage:     "Convert a diarized JSON transcript into text, WebVTT or SubRip subtitles",
		ArgsUsage: "<input.json>",
		Description: `Reads a JSON document whose "speakers" array holds {text, timestamp, speaker}
chunks and writes output.<format> into the output directory. SRT captions are
colored per speaker (SPEAKER_00..SPEAKER_64).

Example:
  subtitler -f vtt -o /tmp/subs meeting.json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output_format",
				Aliases: []string{"f"},
				Usage:   "Output format: txt, vtt, srt, html, or all (txt, vtt and srt)",
				Value:   formatAll,
				Sources: cli.EnvVars("SUBTITLER_OUTPUT_FORMAT"),
			},
			&cli.StringFlag{
				Name:    "output_dir",
				Aliases: []string{"o"},
				Usage:   "Directory where the output file(s) are written",
				Value:   ".",
				Sources: cli.EnvVars("SUBTITLER_OUTPUT_DIR"),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Print each entry as it is added",
			},
			&cli.StringSliceFlag{
				Name:  "redact",
				Usage: "Rules to redact from chunk text. Example: --redact=secrets,pii",
			},
			&cli.StringSliceFlag{
				Name:  "redact-allow",
				Usage: "Regex patterns exempt from redaction (repeatable)",
			},
			&cli.FloatFlag{
				Name:  "compact",
				Usage: "Merge adjacent chunks of one speaker separated by at most this many seconds",
			},
			&cli.IntFlag{
				Name:  "compact-max-chars",
				Usage: "Skip a --compact merge whose text would exceed this many bytes (0 for no cap)",
			},
			&cli.StringFlag{
				Name:    "log",
				Usage:   "Log level: debug, info, warn, error",
				Value:   "error",
				Sources: cli.EnvVars("SUBTITLER_LOG"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := log.ParseLevel(cmd.String("log"))
			if err != nil {
				return ctx, err
			}
			log.SetLevel(level)
			return ctx, nil
		},
		Action: convertAction,
	}
}

func convertAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return fmt.Errorf("expected exactly one input file, got %d", cmd.NArg())
	}

	transformers, err := newTransformers(cmd)
	if err != nil {
		return err
	}

	opts := convert.Options{
		Input:        cmd.Args().First(),
		OutputDir:    cmd.String("output_dir"),
		Transformers: transformers,
	}
	if cmd.Bool("verbose") {
		opts.OnEntry = terminal.New(cmd.Root().Writer).Entry
	}

	selector := cmd.String("output_format")
	if selector == formatAll {
		_, err := convert.RunAll(opts)
		return err
	}

	f, err := render.ParseFormat(selector)
	if err != nil {
		return err
	}
	opts.Format = f

	_, err = convert.Run(opts)
	return err
}

// newTransformers builds the optional redact and compact passes from CLI
// flags, in that order.
func newTransformers(cmd *cli.Command) ([]core.Transformer, error) {
	var transformers []core.Transformer

	if rules := cmd.StringSlice("redact"); len(rules) > 0 {
		cfg, err := redact.ParseRules(rules)
		if err != nil {
			return nil, err
		}
		cfg.Allowlist = cmd.StringSlice("redact-allow")
		redactor, err := redact.New(cfg)
		if err != nil {
			return nil, err
		}
		if redactor.Enabled() {
			transformers = append(transformers, redactor)
		}
	}

	if gap := cmd.Float("compact"); gap > 0 {
		transformers = append(transformers, compact.New(compact.Config{
			MaxGap:   gap,
			MaxChars: int(cmd.Int("compact-max-chars")),
		}))
	}

	return transformers, nil
}
