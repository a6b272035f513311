// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package config resolves the generator's own options.
//
// Precedence is ENV > options file > defaults. The options file is YAML and
// parsed strictly:
//
//	input: kernel.config
//	guard: _ONYX_CONFIG_H
//	logLevel: warn
//
// The build configuration that becomes the header (kernel.config) is parsed by
// package kconfig, not here.
package config
