// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Accumulates(t *testing.T) {
	v := New()
	assert.True(t, v.IsValid())
	assert.NoError(t, v.Err())

	v.NotEmpty("input", "  ")
	v.Identifier("guard", "1BAD")
	assert.False(t, v.IsValid())
	require.Len(t, v.Errors(), 2)

	err := v.Err()
	require.Error(t, err)
	var verr ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Errors(), 2)
	assert.Contains(t, err.Error(), "validation failed for input")
	assert.Contains(t, err.Error(), "; validation failed for guard")
}

func TestValidator_ErrIsSnapshot(t *testing.T) {
	v := New()
	v.NotEmpty("a", "")
	err := v.Err()
	v.NotEmpty("b", "")

	var verr ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Errors(), 1)
	assert.Equal(t, "validation failed for a: value cannot be empty", err.Error())
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"_ONYX_CONFIG_H", true},
		{"CONFIG_H", true},
		{"a1_b2", true},
		{"_", true},
		{"", false},
		{"1ABC", false},
		{"ONYX-CONFIG", false},
		{"ONYX CONFIG", false},
		{"CONFIG.H", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			v := New()
			v.Identifier("guard", tt.value)
			assert.Equal(t, tt.valid, v.IsValid())
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	for _, s := range []string{"trace", "debug", "info", "warn", "error"} {
		lvl, err := ParseLogLevel(s)
		require.NoError(t, err)
		assert.Equal(t, s, lvl.String())
	}

	_, err := ParseLogLevel("verbose")
	assert.Equal(t, ErrInvalidLogLevel, err)
}
