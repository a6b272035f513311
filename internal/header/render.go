// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package header renders parsed build configuration as a C preprocessor header.
package header

import (
	"bufio"
	"io"

	"github.com/ManuGH/confighdr/internal/kconfig"
)

// DefaultGuard is the include-guard macro of the generated header.
const DefaultGuard = "_ONYX_CONFIG_H"

// Render writes the complete header document for entries to w.
// Disabled entries are skipped; everything else keeps input order.
func Render(w io.Writer, guard string, entries []kconfig.Entry) error {
	guard = guardOrDefault(guard)

	bw := bufio.NewWriter(w)
	bw.WriteString("#ifndef " + guard + "\n")
	bw.WriteString("#define " + guard + "\n\n")
	for _, e := range entries {
		if !e.Enabled() {
			continue
		}
		bw.WriteString(e.Define())
		bw.WriteByte('\n')
	}
	bw.WriteString("\n#endif\n")

	// bufio.Writer keeps the first error and reports it here.
	return bw.Flush()
}
