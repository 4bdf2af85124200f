package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irfansharif/flowangle/internal/explore"
)

func decodeGrid(t *testing.T) explore.Options {
	t.Helper()
	opts, err := explore.DecodeOptions(strings.NewReader(`
rotation = 15.0
canvas_size = 800.0
resolution = 200
`))
	require.NoError(t, err)
	return opts
}

func TestApplyFlagsKeepsOptionsFile(t *testing.T) {
	opts := applyFlags(decodeGrid(t), map[string]bool{})
	require.Equal(t, 15.0, opts.Rotation)
	require.Equal(t, 800.0, opts.CanvasSize)
	require.Equal(t, 200, opts.Resolution)
}

func TestApplyFlagsOverridesPassed(t *testing.T) {
	defer func(prev float64) { *size = prev }(*size)
	*size = 1000

	opts := applyFlags(decodeGrid(t), map[string]bool{"size": true, "sweep": true})
	require.Equal(t, 1000.0, opts.CanvasSize)
	require.Equal(t, 15.0, opts.Rotation)
	require.Equal(t, 200, opts.Resolution)
}

func TestApplyFlagsDefaults(t *testing.T) {
	opts := applyFlags(explore.DefaultOptions(), map[string]bool{})
	require.Equal(t, explore.DefaultOptions(), opts)
}
