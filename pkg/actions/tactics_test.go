package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexmarch/pkg/catalog"
	"hexmarch/pkg/engine"
	"hexmarch/pkg/validation"
)

// twoPlayerTacticsState builds a two-player state whose tactic
// reservoir holds both default tactics, one per time of day.
func twoPlayerTacticsState() (engine.GameState, *catalog.Catalog) {
	cat := catalog.Default()
	state := engine.GameState{
		Round:      1,
		TimeOfDay:  engine.Day,
		RNG:        engine.NewRNGStream(7),
		RoundPhase: engine.PhasePlay,
		Players: []engine.Player{
			{ID: "arathir"},
			{ID: "belwyn"},
		},
		Reservoirs: map[engine.Reservoir][]string{
			engine.ReservoirTactics: {"tactic_early_scout", "tactic_nightfall_haste"},
		},
	}
	return state, cat
}

// TestRoundTransitionEntersTacticsSelection verifies a round transition
// lands in the tactics-selection phase when the refreshed tactic offer
// is non-empty, and skips straight to play when it is not.
func TestRoundTransitionEntersTacticsSelection(t *testing.T) {
	state, cat := twoPlayerTacticsState()
	ctx := Context{Cat: cat, PlayerID: "arathir"}

	events := performRoundTransition(&state, ctx)

	assert.Equal(t, 2, state.Round)
	assert.Equal(t, engine.Night, state.TimeOfDay)
	assert.Equal(t, engine.PhaseTacticsSelection, state.RoundPhase)
	assert.Len(t, state.Offers[engine.OfferTactic], 2)
	assertHasEvent(t, events, engine.EventNewRoundStarted)

	// without tactics, the same transition opens directly in play.
	bare, _ := twoPlayerTacticsState()
	bare.Reservoirs = nil
	performRoundTransition(&bare, ctx)
	assert.Equal(t, engine.PhasePlay, bare.RoundPhase)
}

// TestSelectTacticRotatesThroughPlayersIntoPlay drives both players'
// tactic picks through Submit: each claim removes the tactic from the
// shared offer, applies its effect, and hands selection to the next
// player; the final pick opens the play phase at player zero.
func TestSelectTacticRotatesThroughPlayersIntoPlay(t *testing.T) {
	state, cat := twoPlayerTacticsState()
	d := testDispatcher(cat)
	performRoundTransition(&state, Context{Cat: cat, PlayerID: "arathir"})
	require.Equal(t, engine.PhaseTacticsSelection, state.RoundPhase)
	require.Equal(t, engine.Night, state.TimeOfDay)

	// a day tactic is out of season at night.
	result := d.Submit(state, "arathir", engine.NewAction(engine.ActionSelectTactic).With("tactic_id", "tactic_early_scout"))
	require.Error(t, result.Err)
	assert.Equal(t, validation.CodeTacticTimeOfDay, rejectionCode(t, result.Err))

	result = d.Submit(state, "arathir", engine.NewAction(engine.ActionSelectTactic).With("tactic_id", "tactic_nightfall_haste"))
	require.NoError(t, result.Err)
	state = result.State
	assertHasEvent(t, result.Events, engine.EventTacticSelected)

	p, _ := state.PlayerByID("arathir")
	assert.Equal(t, "tactic_nightfall_haste", p.TacticID)
	assert.Equal(t, 3, p.Move, "Nightfall Haste grants 3 move")
	assert.NotContains(t, state.Offers[engine.OfferTactic], "tactic_nightfall_haste")
	assert.Equal(t, engine.PhaseTacticsSelection, state.RoundPhase)
	assert.Equal(t, "belwyn", state.CurrentPlayer().ID, "selection passes to the next player without a tactic")
	assert.Empty(t, state.UndoStack, "claiming a shared offer slot is never reversible")

	// belwyn cannot re-claim arathir's tactic, and the only remaining
	// offer entry is out of season — selection still has to resolve, so
	// give belwyn a matching tactic to finish the round setup.
	result = d.Submit(state, "belwyn", engine.NewAction(engine.ActionSelectTactic).With("tactic_id", "tactic_nightfall_haste"))
	require.Error(t, result.Err)
	assert.Equal(t, validation.CodeTacticNotInOffer, rejectionCode(t, result.Err))

	cat.Tactics["tactic_moonlit_watch"] = catalog.TacticDef{
		ID:        "tactic_moonlit_watch",
		Name:      "Moonlit Watch",
		TimeOfDay: engine.Night,
		Effects:   []engine.AtomicEffect{{Kind: engine.EffGainInfluence, Amount: 1}},
	}
	state.Offers[engine.OfferTactic] = append(state.Offers[engine.OfferTactic], "tactic_moonlit_watch")

	result = d.Submit(state, "belwyn", engine.NewAction(engine.ActionSelectTactic).With("tactic_id", "tactic_moonlit_watch"))
	require.NoError(t, result.Err)
	state = result.State

	assert.Equal(t, engine.PhasePlay, state.RoundPhase, "the last pick opens the play phase")
	assert.Equal(t, "arathir", state.CurrentPlayer().ID)
}

// TestSelectTacticRejectedOutsideSelectionPhase verifies the phase gate.
func TestSelectTacticRejectedOutsideSelectionPhase(t *testing.T) {
	state, cat := twoPlayerTacticsState()
	state.Offers = map[engine.OfferKind][]string{engine.OfferTactic: {"tactic_early_scout"}}
	d := testDispatcher(cat)

	result := d.Submit(state, "arathir", engine.NewAction(engine.ActionSelectTactic).With("tactic_id", "tactic_early_scout"))
	require.Error(t, result.Err)
	assert.Equal(t, validation.CodeWrongPhase, rejectionCode(t, result.Err))
}
