package actions

import (
	"hexmarch/pkg/engine"
)

// doSelectTactic claims one tactic card from the shared tactic offer
// during the tactics-selection round phase. Players pick in turn order;
// once the last player has a tactic, the round phase advances to play
// with the turn back at player zero. Claiming a shared offer slot is a
// resource commit, so the command is never reversible.
func doSelectTactic(state engine.GameState, ctx Context) (engine.GameState, []engine.Event, bool, error) {
	_, idx := state.PlayerByID(ctx.PlayerID)
	if idx < 0 {
		return state, nil, false, engine.NewInternal("player not found", nil)
	}
	tacticID := ctx.Action.Str("tactic_id")
	def, err := ctx.Cat.Tactic(tacticID)
	if err != nil {
		return state, nil, false, engine.NewInternal("tactic definition missing", err)
	}

	offer := state.Offers[engine.OfferTactic]
	for i, id := range offer {
		if id == tacticID {
			state.Offers[engine.OfferTactic] = append(offer[:i], offer[i+1:]...)
			break
		}
	}
	state.Players[idx].TacticID = tacticID

	events := []engine.Event{
		engine.NewEvent(engine.EventTacticSelected, ctx.PlayerID).With("tactic_id", tacticID),
	}
	for _, eff := range def.Effects {
		events = append(events, applyAtomicEffect(&state, ctx, idx, eff)...)
	}

	if next, ok := nextTacticChooser(&state); ok {
		state.CurrentTurn = next
	} else {
		state.RoundPhase = engine.PhasePlay
		state.CurrentTurn = 0
	}
	return state, events, false, nil
}

// nextTacticChooser returns the index of the next player still without
// a tactic this round, or false once everyone has chosen.
func nextTacticChooser(state *engine.GameState) (int, bool) {
	for i := range state.Players {
		if state.Players[i].TacticID == "" {
			return i, true
		}
	}
	return 0, false
}
