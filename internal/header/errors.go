// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package header

import (
	"errors"
	"fmt"
)

// ErrIO classifies failures to read the configuration or write the header.
var ErrIO = errors.New("config header I/O failure")

// ErrNoOutput is returned when a writing run has no output path.
var ErrNoOutput = errors.New("output path is required")

// Operations reported by IOError.
const (
	OpOpenInput    = "open input"
	OpReadInput    = "read input"
	OpCreateOutput = "create output"
	OpWriteOutput  = "write output"
	OpCommitOutput = "commit output"
)

// IOError wraps a file access failure with the operation and path involved.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
