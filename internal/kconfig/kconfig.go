// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package kconfig parses line-oriented NAME=VALUE build configuration files.
package kconfig

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DisabledValue marks an entry as switched off. Disabled entries are parsed but
// never emitted as macro definitions.
const DisabledValue = "n"

// Entry is one parsed configuration line.
type Entry struct {
	Line  int    // 1-based line number in the source file
	Raw   string // line content without the trailing newline
	Name  string
	Value string
}

// Enabled reports whether the entry produces a macro definition.
func (e Entry) Enabled() bool {
	return e.Value != DisabledValue
}

// Define returns the preprocessor definition for the entry, without newline.
func (e Entry) Define() string {
	return "#define " + e.Name + " " + e.Value
}

// ParseLine tokenizes a single line. The first '=' is treated as a separator,
// then the line is split on whitespace; anything other than exactly two tokens
// is rejected.
func ParseLine(line int, raw string) (Entry, error) {
	tokens := strings.Fields(strings.Replace(raw, "=", " ", 1))
	if len(tokens) != 2 {
		return Entry{}, &MalformedLineError{Line: line, Tokens: len(tokens)}
	}
	return Entry{
		Line:  line,
		Raw:   raw,
		Name:  tokens[0],
		Value: tokens[1],
	}, nil
}

// Parse reads all entries from r in file order. It stops at the first
// malformed line and returns a *MalformedLineError for it. Lines have no
// length limit.
func Parse(r io.Reader) ([]Entry, error) {
	br := bufio.NewReader(r)

	var entries []Entry
	line := 0
	for {
		raw, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read line %d: %w", line+1, err)
		}
		if raw != "" {
			line++
			raw = strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
			entry, perr := ParseLine(line, raw)
			if perr != nil {
				return nil, perr
			}
			entries = append(entries, entry)
		}
		if err != nil {
			return entries, nil
		}
	}
}

// Stats counts enabled and disabled entries.
type Stats struct {
	Total    int
	Enabled  int
	Disabled int
}

// Summary tallies entries by state.
func Summary(entries []Entry) Stats {
	s := Stats{Total: len(entries)}
	for _, e := range entries {
		if e.Enabled() {
			s.Enabled++
		} else {
			s.Disabled++
		}
	}
	return s
}
