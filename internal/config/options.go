// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"errors"

	"github.com/ManuGH/confighdr/internal/header"
	"github.com/ManuGH/confighdr/internal/validate"
)

// Defaults
const (
	DefaultInput    = "kernel.config"
	DefaultGuard    = header.DefaultGuard
	DefaultLogLevel = "warn"
)

// Environment variables
const (
	EnvOptions  = "CONFIGHDR_OPTIONS"
	EnvInput    = "CONFIGHDR_INPUT"
	EnvGuard    = "CONFIGHDR_GUARD"
	EnvLogLevel = "LOG_LEVEL"
)

// ErrUnknownOptionField classifies strict YAML parse failures caused by unknown keys.
// Use errors.Is(err, ErrUnknownOptionField) instead of string matching.
var ErrUnknownOptionField = errors.New("unknown option field")

// Options configures the generator itself, not the build configuration it reads.
type Options struct {
	Input    string
	Guard    string
	LogLevel string
}

// FileOptions is the on-disk shape of an options file. Pointer fields
// distinguish "absent" from "set to empty".
type FileOptions struct {
	Input    *string `yaml:"input,omitempty"`
	Guard    *string `yaml:"guard,omitempty"`
	LogLevel *string `yaml:"logLevel,omitempty"`
}

// Defaults returns options with every field at its default.
func Defaults() Options {
	return Options{
		Input:    DefaultInput,
		Guard:    DefaultGuard,
		LogLevel: DefaultLogLevel,
	}
}

// Validate checks the resolved options.
func Validate(opts Options) error {
	v := validate.New()

	v.NotEmpty("input", opts.Input)
	v.Identifier("guard", opts.Guard)
	if _, err := validate.ParseLogLevel(opts.LogLevel); err != nil {
		v.AddError("logLevel", validate.ErrInvalidLogLevel.Message, opts.LogLevel)
	}

	return v.Err()
}
