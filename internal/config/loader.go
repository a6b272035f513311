// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Loader resolves Options with precedence: Overrides > ENV > File > Defaults.
type Loader struct {
	optionsPath string
	logger      zerolog.Logger

	// Overrides holds command-line values; non-empty fields win over
	// every other source.
	Overrides Options
}

// NewLoader creates a loader. An empty optionsPath falls back to
// CONFIGHDR_OPTIONS; if both are empty no options file is read.
func NewLoader(optionsPath string, logger zerolog.Logger) *Loader {
	return &Loader{
		optionsPath: optionsPath,
		logger:      logger.With().Str("component", "config").Logger(),
	}
}

func (l *Loader) envString(key, defaultVal string) string {
	return parseStringWithLogger(l.logger, key, defaultVal)
}

// OptionsPath returns the options file that Load reads, if any.
func (l *Loader) OptionsPath() string {
	if l.optionsPath != "" {
		return l.optionsPath
	}
	return os.Getenv(EnvOptions)
}

// Load resolves and validates the options.
// Order: Defaults -> Parse File (Strict) -> Apply Env -> Apply Overrides -> Validate
func (l *Loader) Load() (Options, error) {
	opts := Defaults()

	if path := l.OptionsPath(); path != "" {
		fileOpts, err := l.loadFile(path)
		if err != nil {
			return opts, fmt.Errorf("load options file: %w", err)
		}
		mergeFileOptions(&opts, fileOpts)
		l.logger.Debug().Str("path", path).Msg("using options file")
	}

	opts.Input = l.envString(EnvInput, opts.Input)
	opts.Guard = l.envString(EnvGuard, opts.Guard)
	opts.LogLevel = strings.ToLower(l.envString(EnvLogLevel, opts.LogLevel))

	if l.Overrides.Input != "" {
		opts.Input = l.Overrides.Input
	}
	if l.Overrides.Guard != "" {
		opts.Guard = l.Overrides.Guard
	}
	if l.Overrides.LogLevel != "" {
		opts.LogLevel = strings.ToLower(l.Overrides.LogLevel)
	}

	if err := Validate(opts); err != nil {
		return opts, fmt.Errorf("options validation failed: %w", err)
	}
	return opts, nil
}

// loadFile loads options from a YAML file with STRICT parsing.
// Unknown fields are an error to catch typos in build scripts.
func (l *Loader) loadFile(path string) (*FileOptions, error) {
	path = filepath.Clean(path)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("unsupported options format: %s (only YAML supported)", ext)
	}

	// #nosec G304 -- options file paths are provided by the operator via CLI/ENV
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var fileOpts FileOptions
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // Reject unknown fields

	if err := dec.Decode(&fileOpts); err != nil {
		if errors.Is(err, io.EOF) {
			return &FileOptions{}, nil
		}
		if strings.Contains(err.Error(), "field") && strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("%w: %v", ErrUnknownOptionField, err)
		}
		return nil, fmt.Errorf("strict options parse error: %w", err)
	}

	// Strict: Ensure no multiple documents or trailing content
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("options file contains multiple documents or trailing content")
	}

	return &fileOpts, nil
}

func mergeFileOptions(dst *Options, src *FileOptions) {
	if src.Input != nil {
		dst.Input = *src.Input
	}
	if src.Guard != nil {
		dst.Guard = *src.Guard
	}
	if src.LogLevel != nil {
		dst.LogLevel = *src.LogLevel
	}
}
