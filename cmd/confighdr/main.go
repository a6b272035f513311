// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// confighdr turns a NAME=VALUE build configuration into a C header.
//
// Usage:
//
//	confighdr [flags] <output_header_path>
//	confighdr -check
//
// Every line of the configuration (default kernel.config) must have the shape
// NAME=VALUE. Each entry whose value is not "n" becomes "#define NAME VALUE".
//
// Exit codes:
//   - 0: Header written (or configuration valid with -check)
//   - 1: Malformed configuration line
//   - 2: Usage or options error
//   - 3: Configuration unreadable or header unwritable
//   - 4: Unexpected failure
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ManuGH/confighdr/internal/config"
	"github.com/ManuGH/confighdr/internal/header"
	"github.com/ManuGH/confighdr/internal/kconfig"
	xlog "github.com/ManuGH/confighdr/internal/log"
	"github.com/ManuGH/confighdr/internal/version"
	"github.com/rs/zerolog"
)

const (
	exitOK        = 0
	exitMalformed = 1
	exitUsage     = 2
	exitIO        = 3
	exitInternal  = 4
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("confighdr", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		input       string
		optionsPath string
		logLevel    string
		check       bool
		showVersion bool
	)
	fs.StringVar(&input, "input", "", "configuration file to read (default "+config.DefaultInput+")")
	fs.StringVar(&optionsPath, "options", "", "YAML options file (env "+config.EnvOptions+")")
	fs.StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	fs.BoolVar(&check, "check", false, "validate the configuration without writing a header")
	fs.BoolVar(&showVersion, "version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage:")
		fmt.Fprintln(stderr, "  confighdr [flags] <output_header_path>")
		fmt.Fprintln(stderr, "  confighdr -check")
		fmt.Fprintln(stderr, "")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if showVersion {
		fmt.Fprintln(stdout, version.String())
		return exitOK
	}

	var output string
	switch {
	case check && fs.NArg() == 0:
	case fs.NArg() == 1:
		output = fs.Arg(0)
	default:
		fmt.Fprintln(stderr, "Error: exactly one output header path is required")
		fmt.Fprintln(stderr, "")
		fs.Usage()
		return exitUsage
	}

	bootstrap := xlog.New(xlog.Config{Level: logLevel, Output: stderr})
	loader := config.NewLoader(optionsPath, bootstrap)
	loader.Overrides = config.Options{Input: input, LogLevel: logLevel}
	opts, err := loader.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	runID := xlog.NewRunID()
	logger := xlog.New(xlog.Config{Level: opts.LogLevel, Output: stderr}).
		With().
		Str(xlog.FieldRunID, runID).
		Logger()
	ctx := xlog.ContextWithRunID(context.Background(), runID)
	ctx = logger.WithContext(ctx)

	res, err := header.Generate(ctx, header.Request{
		Input:     opts.Input,
		Output:    output,
		Guard:     opts.Guard,
		CheckOnly: check,
	})
	if err != nil {
		return report(stderr, logger, err)
	}

	if check {
		fmt.Fprintf(stdout, "%s: %d entries (%d enabled, %d disabled)\n",
			opts.Input, res.Total, res.Enabled, res.Disabled)
	}
	return exitOK
}

// report prints the user-facing diagnostic and maps err to an exit code.
func report(stderr io.Writer, logger zerolog.Logger, err error) int {
	var mle *kconfig.MalformedLineError
	if errors.As(err, &mle) {
		logger.Debug().Err(err).Int(xlog.FieldLine, mle.Line).Msg("malformed configuration line")
		fmt.Fprintf(stderr, "Error: Bad config line at line %d\n", mle.Line)
		return exitMalformed
	}

	var ioErr *header.IOError
	if errors.As(err, &ioErr) {
		logger.Debug().Err(ioErr.Err).
			Str(xlog.FieldOp, ioErr.Op).
			Str(xlog.FieldPath, ioErr.Path).
			Msg("config header I/O failure")
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitIO
	}

	logger.Error().Err(err).Msg("config header generation failed")
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitInternal
}
