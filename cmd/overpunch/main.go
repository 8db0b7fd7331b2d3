// Command overpunch converts between decimals and overpunched fields.
//
// Usage:
//
//	overpunch [flags] extract FIELD...
//	overpunch [flags] format DECIMAL...
//
// The field layout comes from -picture (e.g. s9(7)v99) or -scale, either of
// which may also be set in a TOML file given with -config.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/calebcase/overpunch/decimal"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}

	return zerolog.New(output).Level(level).With().Timestamp().Str("app", "overpunch").Logger()
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("overpunch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: overpunch [flags] extract|format VALUE...\n")
		fs.PrintDefaults()
	}

	var (
		configPath = fs.String("config", "", "path to a TOML config file")
		picture    = fs.String("picture", "", "picture clause describing the field, e.g. s9(7)v99")
		scale      = fs.Int("scale", 0, "fractional digits, used when no picture is given")
		enc        = fs.String("encoding", "", "sign encoding name (standard, ebcdic)")
		logLevel   = fs.String("log-level", "", "log level (debug, info, warn, error)")
	)

	err := fs.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitUsage
	}

	cfg := defaultConfig()
	if *configPath != "" {
		cfg, err = loadConfig(*configPath)
		if err != nil {
			logger := newLogger(stderr, zerolog.InfoLevel)
			logger.Error().Err(err).Str("path", *configPath).Msg("failed to load config")

			return exitUsage
		}
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	// A scale on the command line replaces a configured picture, but an
	// explicit picture still wins.
	if set["scale"] {
		cfg.Scale = *scale
		cfg.Picture = ""
	}

	if set["picture"] {
		cfg.Picture = *picture
	}

	if set["encoding"] {
		cfg.Encoding = *enc
	}

	if *logLevel != "" {
		cfg.LogLevel, err = zerolog.ParseLevel(*logLevel)
		if err != nil {
			fmt.Fprintf(stderr, "overpunch: %v\n", err)

			return exitUsage
		}
	}

	logger := newLogger(stderr, cfg.LogLevel)

	if fs.NArg() < 1 {
		fs.Usage()

		return exitUsage
	}

	schema, err := cfg.schema()
	if err != nil {
		logger.Error().Err(err).Msg("invalid field layout")

		return exitUsage
	}

	logger.Debug().
		Str("picture", cfg.Picture).
		Int("scale", schema.Scale).
		Str("encoding", cfg.Encoding).
		Msg("field layout")

	cmd, values := fs.Arg(0), fs.Args()[1:]

	var convert func(string) (string, error)

	switch cmd {
	case "extract":
		convert = func(v string) (string, error) {
			d, err := schema.Extract(v)
			if err != nil {
				return "", err
			}

			return d.String(), nil
		}
	case "format":
		convert = func(v string) (string, error) {
			d, err := decimal.Parse(v)
			if err != nil {
				return "", err
			}

			return schema.Format(d)
		}
	default:
		logger.Error().Str("command", cmd).Msg("unknown command")
		fs.Usage()

		return exitUsage
	}

	status := exitOK

	for _, v := range values {
		out, err := convert(v)
		if err != nil {
			logger.Error().Err(err).Str("command", cmd).Str("input", v).Msg("conversion failed")
			status = exitFailure

			continue
		}

		logger.Debug().Str("command", cmd).Str("input", v).Str("output", out).Msg("converted")
		fmt.Fprintln(stdout, out)
	}

	return status
}
