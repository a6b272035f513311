// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package header

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ManuGH/confighdr/internal/kconfig"
	xlog "github.com/ManuGH/confighdr/internal/log"
	"github.com/google/renameio/v2"
)

// Request describes one generator run.
type Request struct {
	Input     string // configuration file to read
	Output    string // header to create or replace; ignored when CheckOnly is set
	Guard     string // include-guard macro, DefaultGuard when empty
	CheckOnly bool   // parse and validate without writing
}

// Result summarises a successful run.
type Result struct {
	Entries []kconfig.Entry
	kconfig.Stats
}

// Generate reads and validates the whole configuration before the output is
// touched, so a malformed line or unreadable input never produces a header.
// The header is committed with an atomic rename; an existing file at the
// output path survives any failure.
func Generate(ctx context.Context, req Request) (Result, error) {
	logger := xlog.WithComponentFromContext(ctx, "header")

	if req.Output == "" && !req.CheckOnly {
		return Result{}, ErrNoOutput
	}

	entries, err := readConfig(req.Input)
	if err != nil {
		return Result{}, err
	}
	res := Result{Entries: entries, Stats: kconfig.Summary(entries)}

	logger.Debug().
		Str(xlog.FieldEvent, "config.parsed").
		Str(xlog.FieldInputPath, req.Input).
		Int(xlog.FieldEntries, res.Total).
		Int(xlog.FieldEnabled, res.Enabled).
		Int(xlog.FieldDisabled, res.Disabled).
		Msg("configuration parsed")

	if req.CheckOnly {
		return res, nil
	}

	if err := writeHeader(ctx, req.Output, guardOrDefault(req.Guard), entries); err != nil {
		return Result{}, err
	}

	logger.Info().
		Str(xlog.FieldEvent, "header.written").
		Str(xlog.FieldOutputPath, req.Output).
		Str(xlog.FieldGuard, guardOrDefault(req.Guard)).
		Int(xlog.FieldEnabled, res.Enabled).
		Msg("config header written")
	return res, nil
}

func guardOrDefault(guard string) string {
	if guard == "" {
		return DefaultGuard
	}
	return guard
}

func readConfig(path string) ([]kconfig.Entry, error) {
	// #nosec G304 -- build tool, path provided by the operator
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, &IOError{Op: OpOpenInput, Path: path, Err: err}
	}
	defer f.Close()

	entries, err := kconfig.Parse(f)
	if err != nil {
		if errors.Is(err, kconfig.ErrMalformedLine) {
			return nil, err
		}
		return nil, &IOError{Op: OpReadInput, Path: path, Err: err}
	}
	return entries, nil
}

// writeHeader renders into a pending file next to path and renames it into
// place once fully written and synced.
func writeHeader(ctx context.Context, path, guard string, entries []kconfig.Entry) error {
	logger := xlog.FromContext(ctx)

	pendingFile, err := renameio.NewPendingFile(path,
		renameio.WithPermissions(0o644),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return &IOError{Op: OpCreateOutput, Path: path, Err: err}
	}
	defer func() {
		// no-op once committed
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug().Err(err).Str(xlog.FieldPath, path).Msg("cleanup pending header file")
		}
	}()

	if err := Render(pendingFile, guard, entries); err != nil {
		return &IOError{Op: OpWriteOutput, Path: path, Err: fmt.Errorf("render header: %w", err)}
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return &IOError{Op: OpCommitOutput, Path: path, Err: err}
	}
	return nil
}
