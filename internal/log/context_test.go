// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package log

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextWithRunID(t *testing.T) {
	tests := []struct {
		name  string
		ctx   context.Context
		runID string
		want  string
	}{
		{
			name:  "nil context",
			ctx:   nil,
			runID: "run-123",
			want:  "run-123",
		},
		{
			name:  "background context",
			ctx:   context.Background(),
			runID: "run-456",
			want:  "run-456",
		},
		{
			name:  "empty run ID",
			ctx:   context.Background(),
			runID: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := ContextWithRunID(tt.ctx, tt.runID)
			if got := RunIDFromContext(ctx); got != tt.want {
				t.Errorf("RunIDFromContext() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRunIDFromContext_Missing(t *testing.T) {
	assert.Equal(t, "", RunIDFromContext(nil))
	assert.Equal(t, "", RunIDFromContext(context.Background()))
}

func TestNewRunID_Unique(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestWithContext_AddsRunID(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	ctx := ContextWithRunID(context.Background(), "abc")
	l := WithContext(ctx, base)
	l.Info().Msg("hello")

	var fields map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fields))
	assert.Equal(t, "abc", fields[FieldRunID])
}

func TestWithContext_NoFields(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	l := WithContext(context.Background(), base)
	l.Info().Msg("hello")

	var fields map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fields))
	_, ok := fields[FieldRunID]
	assert.False(t, ok)
}

func TestFromContext_PrefersAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	attached := zerolog.New(&buf).With().Str("marker", "attached").Logger()
	ctx := attached.WithContext(context.Background())

	l := WithComponentFromContext(ctx, "header")
	l.Info().Msg("from context")

	var fields map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fields))
	assert.Equal(t, "attached", fields["marker"])
	assert.Equal(t, "header", fields[FieldComponent])
}

func TestFromContext_FallsBackToBase(t *testing.T) {
	require.NotNil(t, FromContext(nil))
	require.NotNil(t, FromContext(context.Background()))
}
