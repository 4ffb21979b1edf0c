package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexmarch/pkg/catalog"
	"hexmarch/pkg/engine"
)

func twoPlayerState() engine.GameState {
	return engine.GameState{
		RoundPhase:  engine.PhasePlay,
		CurrentTurn: 0,
		Players: []engine.Player{
			{ID: "arathir", Position: engine.HexCoord{Q: 0, R: 0}, Move: 2},
			{ID: "seren", Position: engine.HexCoord{Q: 5, R: 5}, Move: 2},
		},
		Map: engine.GameMap{
			Tiles: []engine.TilePlacement{
				{TileDefID: "tile_greenglade", Origin: engine.HexCoord{Q: 0, R: 0}},
			},
		},
	}
}

func TestValidateMoveAcceptsAdjacentAffordableHex(t *testing.T) {
	cat := catalog.Default()
	state := twoPlayerState()

	a := engine.NewAction(engine.ActionMove).With("to", engine.HexCoord{Q: 1, R: 0})
	rej := Validate(&state, cat, "arathir", a)
	assert.Nil(t, rej)
}

func TestValidateMoveRejectsNonAdjacentHex(t *testing.T) {
	cat := catalog.Default()
	state := twoPlayerState()

	a := engine.NewAction(engine.ActionMove).With("to", engine.HexCoord{Q: 9, R: 9})
	rej := Validate(&state, cat, "arathir", a)
	require.NotNil(t, rej)
	assert.Equal(t, CodeNotAdjacent, rej.Code)
}

func TestValidateMoveRejectsOutOfTurnPlayer(t *testing.T) {
	cat := catalog.Default()
	state := twoPlayerState()

	a := engine.NewAction(engine.ActionMove).With("to", engine.HexCoord{Q: 6, R: 5})
	rej := Validate(&state, cat, "seren", a)
	require.NotNil(t, rej)
	assert.Equal(t, CodeNotYourTurn, rej.Code)
}

func TestValidateMoveRejectsMissingTargetHex(t *testing.T) {
	cat := catalog.Default()
	state := twoPlayerState()

	a := engine.NewAction(engine.ActionMove)
	rej := Validate(&state, cat, "arathir", a)
	require.NotNil(t, rej)
	assert.Equal(t, CodeNoTargetHex, rej.Code)
}

func TestValidateMoveRejectsInsufficientMove(t *testing.T) {
	cat := catalog.Default()
	state := twoPlayerState()
	state.Players[0].Move = 1 // greenglade offset (1,0) costs 2 (plains)

	a := engine.NewAction(engine.ActionMove).With("to", engine.HexCoord{Q: 1, R: 0})
	rej := Validate(&state, cat, "arathir", a)
	require.NotNil(t, rej)
	assert.Equal(t, CodeNotEnoughMove, rej.Code)
}

func TestValidateMoveRejectsEnteringRampagingHexDirectly(t *testing.T) {
	cat := catalog.Default()
	state := twoPlayerState()
	state.Map.Sites = map[string]engine.SiteOccupancy{
		engine.HexCoord{Q: 1, R: 0}.String(): {
			SiteDefID:         "site_village_greenglade",
			Hex:               engine.HexCoord{Q: 1, R: 0},
			RampagingEnemyIDs: []string{"enemy_rampaging_wolf"},
		},
	}

	a := engine.NewAction(engine.ActionMove).With("to", engine.HexCoord{Q: 1, R: 0})
	rej := Validate(&state, cat, "arathir", a)
	require.NotNil(t, rej)
	assert.Equal(t, CodeBlockedByRampaging, rej.Code)
}

func TestValidateMoveRejectsWhenMoveForbidden(t *testing.T) {
	cat := catalog.Default()
	state := twoPlayerState()
	state.Players[0].Flags.MoveForbidden = true

	a := engine.NewAction(engine.ActionMove).With("to", engine.HexCoord{Q: 1, R: 0})
	rej := Validate(&state, cat, "arathir", a)
	require.NotNil(t, rej)
	assert.Equal(t, CodeAlreadyActed, rej.Code)
}
