package actions

import (
	"hexmarch/pkg/engine"
)

// doDeclareRest locks in the rest kind for the remainder of the turn:
// further movement, combat, and interaction become forbidden until
// complete-rest resolves it.
func doDeclareRest(state engine.GameState, ctx Context) (engine.GameState, []engine.Event, bool, error) {
	_, idx := state.PlayerByID(ctx.PlayerID)
	if idx < 0 {
		return state, nil, false, engine.NewInternal("player not found", nil)
	}
	kind := ctx.Action.Str("kind")
	if kind == "" {
		kind = "standard"
	}
	state.Players[idx].Flags.IsResting = true
	state.Players[idx].Flags.RestKind = kind
	state.Players[idx].Flags.MoveForbidden = true

	ev := engine.NewEvent(engine.EventRestDeclared, ctx.PlayerID).With("kind", kind)
	return state, []engine.Event{ev}, true, nil
}

// doCompleteRest resolves the declared rest: standard rest discards
// one non-wound card from hand; slow-recovery permanently removes one
// wound card from discard (it does not return to any deck).
func doCompleteRest(state engine.GameState, ctx Context) (engine.GameState, []engine.Event, bool, error) {
	p, idx := state.PlayerByID(ctx.PlayerID)
	if idx < 0 {
		return state, nil, false, engine.NewInternal("player not found", nil)
	}
	kind := p.Flags.RestKind

	var ev engine.Event
	if kind == "slow-recovery" {
		healed := removeOneWoundFromDiscard(&state.Players[idx])
		ev = engine.NewEvent(engine.EventRestCompleted, ctx.PlayerID).With("kind", kind).With("wound_healed", healed)
	} else {
		cardID := ctx.Action.Str("card_id")
		removeFromHand(&state.Players[idx], cardID)
		state.Players[idx].Discard = append(state.Players[idx].Discard, cardID)
		ev = engine.NewEvent(engine.EventRestCompleted, ctx.PlayerID).With("kind", kind).With("card_id", cardID)
	}

	state.Players[idx].Flags.IsResting = false
	state.Players[idx].Flags.RestKind = ""
	state.Players[idx].Flags.HasRested = true
	state.Players[idx].Flags.HasActed = true

	return state, []engine.Event{ev}, true, nil
}

// removeOneWoundFromDiscard removes a single "card_wound" entry from
// p's discard pile outright, reporting whether one was found.
func removeOneWoundFromDiscard(p *engine.Player) bool {
	for i, c := range p.Discard {
		if c == "card_wound" {
			p.Discard = append(p.Discard[:i], p.Discard[i+1:]...)
			return true
		}
	}
	return false
}
