package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jinzhu/inflection"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"axlab.dev/variant/pkg/script"
)

// ErrFalse is returned when a comparison does not hold, so the process exits
// with a non-zero status.
var ErrFalse = errors.New("comparison is false")

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

func main() {
	if err := newApp().Run(os.Args); err != nil {
		if !errors.Is(err, ErrFalse) {
			logger.Error().Err(err).Msg("varcmp failed")
		}
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "varcmp",
		Usage: "compare dynamic values against typed literals",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   "auto",
				Usage:   "log output: auto, console or json",
				EnvVars: []string{"VARCMP_LOG_FORMAT"},
			},
		},
		Before: func(ctx *cli.Context) (err error) {
			logger, err = newLogger(ctx.App.ErrWriter, ctx.String("log-format"), ctx.Bool("verbose"))
			return err
		},
		Commands: cli.Commands{
			// varcmp run --strict FILE...
			&cli.Command{
				Name:      "run",
				Usage:     "run comparison scripts and print each outcome",
				ArgsUsage: "FILE...",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "tab-width",
						Value: script.DefaultTabWidth,
						Usage: "tab width for error columns",
					},
					&cli.BoolFlag{
						Name:  "strict",
						Usage: "fail when any comparison is false",
					},
				},
				Action: runScripts,
			},
			// varcmp check --doc FILE --op OP --literal LIT [--format yaml|msgpack] [--path a.0.b]
			&cli.Command{
				Name:  "check",
				Usage: "compare a decoded document against a literal",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "doc",
						Aliases:  []string{"d"},
						Required: true,
						Usage:    "document file",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "document format: yaml or msgpack (default from the file extension)",
					},
					&cli.StringFlag{
						Name:  "path",
						Usage: "dot separated member path into the document",
					},
					&cli.StringFlag{
						Name:     "op",
						Required: true,
						Usage:    "one of == != < <= > >=",
					},
					&cli.StringFlag{
						Name:     "literal",
						Aliases:  []string{"l"},
						Required: true,
						Usage:    "literal as written in scripts, e.g. 42u8 or \"text\"",
					},
				},
				Action: checkDocument,
			},
		},
	}
}

func runScripts(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return fmt.Errorf("run: no script files given")
	}

	prog := script.Program{}
	prog.SetTabWidth(ctx.Int("tab-width"))
	for _, file := range ctx.Args().Slice() {
		if _, err := prog.LoadSource(file); err != nil {
			return err
		}
		logger.Debug().Str("file", file).Msg("loaded script")
	}

	outcomes, err := prog.Run()
	failed := 0
	for _, it := range outcomes {
		fmt.Fprintln(ctx.App.Writer, it.String())
		if !it.Result {
			failed++
			logger.Debug().Str("at", it.Span.Location()).Msg("comparison is false")
		}
	}
	if err != nil {
		return err
	}

	logger.Info().Msgf("%d %s, %d false", len(outcomes), plural(len(outcomes), "comparison"), failed)
	if failed > 0 && ctx.Bool("strict") {
		return fmt.Errorf("%d %s: %w", failed, plural(failed, "comparison"), ErrFalse)
	}
	return nil
}

func plural(count int, word string) string {
	if count == 1 {
		return word
	}
	return inflection.Plural(word)
}
