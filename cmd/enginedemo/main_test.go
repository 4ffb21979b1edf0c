package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexmarch/pkg/engine"
)

func TestNewSeedStateIsPlayable(t *testing.T) {
	state := NewSeedState(7)

	require.Len(t, state.Players, 2)
	assert.Equal(t, "arathir", state.CurrentPlayer().ID)
	assert.Equal(t, engine.Day, state.TimeOfDay)
	assert.True(t, state.Players[0].Position.IsAdjacent(engine.HexCoord{Q: 1, R: 0}))
}

func TestRunCompletesScriptWithoutError(t *testing.T) {
	cfg := DefaultDemoConfig()
	cfg.Seed = 7
	cfg.LogLevel = "error"

	err := run(cfg)
	require.NoError(t, err)
}

func TestRunRejectsBadLogLevel(t *testing.T) {
	cfg := DefaultDemoConfig()
	cfg.LogLevel = "not-a-level"

	err := run(cfg)
	assert.Error(t, err)
}
