// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package kconfig

import (
	"errors"
	"fmt"
)

// ErrMalformedLine classifies lines that do not split into a name/value pair.
// Use errors.Is(err, ErrMalformedLine) instead of string matching.
var ErrMalformedLine = errors.New("malformed config line")

// MalformedLineError reports the offending line and how many tokens it produced.
type MalformedLineError struct {
	Line   int
	Tokens int
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("bad config line at line %d: expected 2 tokens, got %d", e.Line, e.Tokens)
}

func (e *MalformedLineError) Is(target error) bool {
	return target == ErrMalformedLine
}
