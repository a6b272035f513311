// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsToWarn(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	var buf bytes.Buffer
	l := New(Config{Output: &buf})

	l.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("shown")
	var fields map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fields))
	assert.Equal(t, "shown", fields["message"])
	assert.Equal(t, "confighdr", fields["service"])
}

func TestNew_LevelPrecedence(t *testing.T) {
	tests := []struct {
		name  string
		level string
		env   string
		want  zerolog.Level
	}{
		{name: "explicit level", level: "debug", want: zerolog.DebugLevel},
		{name: "explicit beats env", level: "error", env: "debug", want: zerolog.ErrorLevel},
		{name: "env when unset", env: "info", want: zerolog.InfoLevel},
		{name: "invalid explicit", level: "chatty", want: DefaultLevel},
		{name: "invalid env", env: "chatty", want: DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.env)
			var buf bytes.Buffer
			l := New(Config{Level: tt.level, Output: &buf})
			assert.Equal(t, tt.want, l.GetLevel())
		})
	}
}

func TestNew_ServiceOverride(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Output: &buf, Service: "kbuild"})
	l.Info().Msg("x")

	var fields map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fields))
	assert.Equal(t, "kbuild", fields["service"])
}
