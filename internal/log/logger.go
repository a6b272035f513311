// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel keeps build output quiet unless something goes wrong.
const DefaultLevel = zerolog.WarnLevel

// Config captures options for configuring a logger.
type Config struct {
	Level   string    // optional log level ("debug", "info", etc.)
	Output  io.Writer // optional writer (defaults to os.Stderr)
	Service string    // optional service name attached to every log entry
}

var (
	once sync.Once
	base zerolog.Logger
)

// New builds a logger from cfg without touching global state.
// An empty level falls back to LOG_LEVEL; unparsable levels use DefaultLevel.
func New(cfg Config) zerolog.Logger {
	level := DefaultLevel
	if cfg.Level != "" {
		if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil {
			level = parsed
		}
	} else if env := os.Getenv("LOG_LEVEL"); env != "" {
		if parsed, err := zerolog.ParseLevel(env); err == nil {
			level = parsed
		}
	}

	writer := cfg.Output
	if writer == nil {
		// stdout belongs to the build system
		writer = os.Stderr
	}

	service := cfg.Service
	if service == "" {
		service = os.Getenv("LOG_SERVICE")
		if service == "" {
			service = "confighdr"
		}
	}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", service).
		Logger()
}

// Configure initialises the package-level logger exactly once.
func Configure(cfg Config) {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339
		base = New(cfg)
	})
}

func logger() zerolog.Logger {
	Configure(Config{})
	return base
}

// Base returns the configured base logger instance.
func Base() zerolog.Logger {
	return logger()
}
