// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldRunID     = "run_id"
	FieldComponent = "component"
	FieldEvent     = "event"

	// Path fields
	FieldPath       = "path"
	FieldInputPath  = "input_path"
	FieldOutputPath = "output_path"

	// Generator fields
	FieldLine     = "line"
	FieldGuard    = "guard"
	FieldEntries  = "entries"
	FieldEnabled  = "enabled"
	FieldDisabled = "disabled"
	FieldOp       = "op"
)
